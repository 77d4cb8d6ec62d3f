package form

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/dannyyo/checklist-go/pkg/checklist"
	"github.com/dannyyo/checklist-go/pkg/checklist/models"
	"golang.org/x/term"
)

// TerminalAnswer holds the raw values entered for one question.
type TerminalAnswer struct {
	Result       string
	Comment      string
	EvidencePath string
}

// TerminalInput holds every raw value collected by the terminal form.
type TerminalInput struct {
	Branch         string
	Date           string
	TimeIn         string
	TimeOut        string
	Staff          string
	Answers        []TerminalAnswer
	Observations   string
	AnnexPaths     string
	VisitPerson    string
	FollowupPerson string
}

// RunTUI asks for the header, one group per question and, when trailing is
// set, the closing section. Accessible (line based) mode is used when in is
// not a terminal.
func RunTUI(in io.Reader, out io.Writer, title string, questions []models.Question, trailing bool, now time.Time) (*Submission, error) {
	input := TerminalInput{
		Date:    now.Format(DateLayout),
		Answers: make([]TerminalAnswer, len(questions)),
	}

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewNote().Title(title),
			huh.NewInput().Title("Sucursal").Value(&input.Branch),
			huh.NewInput().
				Title("Fecha").
				Description("AAAA-MM-DD, otro formato usa la fecha de hoy").
				Value(&input.Date),
			huh.NewInput().Title("Hora de entrada").Placeholder("2:13 p.m.").Value(&input.TimeIn),
			huh.NewInput().Title("Hora de salida").Placeholder("4:05 p.m.").Value(&input.TimeOut),
			huh.NewText().Title("Empleados en revisión (uno por línea)").Value(&input.Staff),
		),
	}

	for i, q := range questions {
		a := &input.Answers[i]
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("%d. %s", i+1, q.Text)).
				Options(resultSelectOptions()...).
				Value(&a.Result),
			huh.NewText().Title("Comentario:").Value(&a.Comment),
			huh.NewInput().
				Title("Adjuntar evidencia (ruta de imagen opcional)").
				Value(&a.EvidencePath).
				Validate(validateOptionalFile),
		))
	}

	if trailing {
		groups = append(groups, huh.NewGroup(
			huh.NewText().Title("Observaciones:").Value(&input.Observations),
			huh.NewText().
				Title("Anexo fotos de más áreas").
				Description("Una ruta por línea").
				Value(&input.AnnexPaths).
				Validate(validateFileList),
			huh.NewInput().Title("Persona que realizó la visita:").Value(&input.VisitPerson),
			huh.NewInput().Title("Se informa para su seguimiento a:").Value(&input.FollowupPerson),
		))
	}

	form := huh.NewForm(groups...).
		WithInput(in).
		WithOutput(out)

	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("form failed: %w", err)
	}

	return BuildSubmission(questions, input, now)
}

// BuildSubmission converts raw terminal values into a Submission, loading
// evidence and annex images from disk.
func BuildSubmission(questions []models.Question, input TerminalInput, now time.Time) (*Submission, error) {
	date, err := time.Parse(DateLayout, strings.TrimSpace(input.Date))
	if err != nil {
		date = now
	}

	sub := &Submission{
		Session: checklist.NewSession(questions),
		Header: models.HeaderInfo{
			Branch:  strings.TrimSpace(input.Branch),
			Date:    date,
			TimeIn:  strings.TrimSpace(input.TimeIn),
			TimeOut: strings.TrimSpace(input.TimeOut),
			Staff:   input.Staff,
		},
		Trailing: models.TrailingInfo{
			Observations:   input.Observations,
			VisitPerson:    strings.TrimSpace(input.VisitPerson),
			FollowupPerson: strings.TrimSpace(input.FollowupPerson),
		},
	}

	for i, a := range input.Answers {
		if i >= len(questions) {
			break
		}
		evidence, err := loadImage(a.EvidencePath)
		if err != nil {
			return nil, err
		}
		answer := models.Answer{
			Result:   models.ParseResult(a.Result),
			Comment:  a.Comment,
			Evidence: evidence,
		}
		if err := sub.Session.Set(i, answer); err != nil {
			return nil, err
		}
	}

	for _, path := range splitLines(input.AnnexPaths) {
		img, err := loadImage(path)
		if err != nil {
			return nil, err
		}
		if img != nil {
			sub.Trailing.AnnexPhotos = append(sub.Trailing.AnnexPhotos, *img)
		}
	}

	return sub, nil
}

func resultSelectOptions() []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("Sin respuesta", "")}
	for _, r := range models.Results {
		opts = append(opts, huh.NewOption(r.Label(), r.Key()))
	}
	return opts
}

func loadImage(path string) (*models.Image, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image %s: %w", path, err)
	}
	return &models.Image{Name: filepath.Base(path), Data: data}, nil
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// validateOptionalFile rejects a path that cannot be read, so a typo is
// caught while the question is still on screen.
func validateOptionalFile(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	info, err := os.Stat(s)
	if err != nil {
		return fmt.Errorf("no se encontró %s", s)
	}
	if info.IsDir() {
		return fmt.Errorf("%s es un directorio", s)
	}
	return nil
}

func validateFileList(s string) error {
	for _, path := range splitLines(s) {
		if err := validateOptionalFile(path); err != nil {
			return err
		}
	}
	return nil
}
