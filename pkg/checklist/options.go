// Package checklist collects store inspection answers and writes them into
// spreadsheet reports.
package checklist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dannyyo/checklist-go/pkg/checklist/models"
	"github.com/dannyyo/checklist-go/pkg/checklist/parser"
	"gopkg.in/yaml.v3"
)

// Variant selects where questions come from and how answers are placed.
type Variant string

const (
	// VariantTemplate reads questions from a template column and writes
	// answers back into the rows they came from.
	VariantTemplate Variant = "template"
	// VariantStatic uses a declared question list and appends answers to a
	// fresh workbook.
	VariantStatic Variant = "static"
)

// DefaultTemplate is the template file name used by the template preset.
const DefaultTemplate = "CHECK LIST Tiendas.xlsx"

// ImageSize is a display size in pixels.
type ImageSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// HeaderCells holds the fixed addresses of the header fields.
// An empty address means the field is not written.
type HeaderCells struct {
	Branch string `yaml:"branch,omitempty"`
	Date   string `yaml:"date,omitempty"`
	// DateFormat is a Go time layout.
	DateFormat string `yaml:"date_format,omitempty"`
	TimeIn     string `yaml:"time_in,omitempty"`
	TimeOut    string `yaml:"time_out,omitempty"`
	// TimeFormat, when set, reformats times entered as HH:MM.
	TimeFormat string `yaml:"time_format,omitempty"`
	Staff      string `yaml:"staff,omitempty"`
}

// AnswerColumns holds the columns written for each answer.
type AnswerColumns struct {
	// StartRow places questions without a template row: row = StartRow + index.
	StartRow int `yaml:"start_row,omitempty"`
	// Question, when set, receives the question text.
	Question string `yaml:"question,omitempty"`
	// Pass, Fail and NotApplicable are the marker columns.
	Pass          string `yaml:"pass,omitempty"`
	Fail          string `yaml:"fail,omitempty"`
	NotApplicable string `yaml:"not_applicable,omitempty"`
	Marker        string `yaml:"marker,omitempty"`
	// Result, when set, receives the result label instead of a marker.
	Result       string    `yaml:"result,omitempty"`
	Comment      string    `yaml:"comment,omitempty"`
	Evidence     string    `yaml:"evidence,omitempty"`
	EvidenceSize ImageSize `yaml:"evidence_size"`
	// Clear blanks the answer cells of a row before writing it.
	Clear bool `yaml:"clear"`
}

// RowFor returns the sheet row that receives the answer to q.
func (a AnswerColumns) RowFor(q models.Question) int {
	if q.HasSourceRow() {
		return q.SourceRow
	}
	return a.StartRow + q.Index
}

// MarkerColumn returns the marker column for r, or "" for ResultUnset.
func (a AnswerColumns) MarkerColumn(r models.Result) string {
	switch r {
	case models.ResultPass:
		return a.Pass
	case models.ResultFail:
		return a.Fail
	case models.ResultNotApplicable:
		return a.NotApplicable
	}
	return ""
}

// TrailingCells holds the addresses of the fields after the answers.
type TrailingCells struct {
	Observations string `yaml:"observations,omitempty"`
	// AnnexStart is the anchor of the first annex photo; the rest follow
	// one row below each other.
	AnnexStart     string    `yaml:"annex_start,omitempty"`
	AnnexMax       int       `yaml:"annex_max,omitempty"`
	AnnexSize      ImageSize `yaml:"annex_size"`
	VisitPerson    string    `yaml:"visit_person,omitempty"`
	VisitLabel     string    `yaml:"visit_label,omitempty"`
	FollowupPerson string    `yaml:"followup_person,omitempty"`
	FollowupLabel  string    `yaml:"followup_label,omitempty"`
}

// Enabled reports whether any trailing field is written.
func (t TrailingCells) Enabled() bool {
	return t.Observations != "" || t.AnnexStart != "" || t.VisitPerson != "" || t.FollowupPerson != ""
}

// Options configures one checklist variant.
type Options struct {
	Variant Variant `yaml:"variant"`
	// Title is shown on top of the form.
	Title string `yaml:"title,omitempty"`
	// Template is the workbook to fill. Empty means a new workbook.
	Template string `yaml:"template,omitempty"`
	// Sheet is the sheet to read and write. Empty means the active sheet.
	Sheet        string `yaml:"sheet,omitempty"`
	OutputDir    string `yaml:"output_dir,omitempty"`
	OutputPrefix string `yaml:"output_prefix,omitempty"`
	// QuestionRange is the single-column range scanned for questions.
	QuestionRange   string   `yaml:"question_range,omitempty"`
	StaticQuestions []string `yaml:"static_questions,omitempty"`
	// Labels maps cells to literal text written before anything else.
	Labels   map[string]string `yaml:"labels,omitempty"`
	Header   HeaderCells       `yaml:"header"`
	Answers  AnswerColumns     `yaml:"answers"`
	Trailing TrailingCells     `yaml:"trailing"`
}

// DefaultOptions returns the template-driven checklist layout.
func DefaultOptions() Options {
	return Options{
		Variant:       VariantTemplate,
		Title:         "Check List Tiendas",
		Template:      DefaultTemplate,
		OutputDir:     "reports",
		OutputPrefix:  "CHECKLIST",
		QuestionRange: "F17:F178",
		Header: HeaderCells{
			Branch:     "H2",
			Date:       "H5",
			DateFormat: "02/01/2006",
			TimeIn:     "J6",
			TimeOut:    "J8",
			Staff:      "F12",
		},
		Answers: AnswerColumns{
			Pass:          "B",
			Fail:          "C",
			NotApplicable: "D",
			Marker:        "X",
			Comment:       "E",
			Evidence:      "G",
			EvidenceSize:  ImageSize{Width: 150, Height: 120},
			Clear:         true,
		},
		Trailing: TrailingCells{
			Observations:   "F183",
			AnnexStart:     "F187",
			AnnexMax:       6,
			AnnexSize:      ImageSize{Width: 220, Height: 150},
			VisitPerson:    "F193",
			VisitLabel:     "PERSONA QUE REALIZO LA VISITA:",
			FollowupPerson: "F195",
			FollowupLabel:  "SE INFORMA PARA SU SEGUIMIENTO A:",
		},
	}
}

// StaticOptions returns the hardcoded-question review layout.
func StaticOptions() Options {
	return Options{
		Variant:      VariantStatic,
		Title:        "Revisión de Tienda",
		Sheet:        "Revisión",
		OutputDir:    "reports",
		OutputPrefix: "Revision",
		StaticQuestions: []string{
			"Verificar apertura de tienda de acuerdo a su horario",
			"Garantizar la limpieza permanente del local en general",
			"Comprobar que los mostradores y vitrinas estén limpias",
		},
		Labels: map[string]string{
			"A1": "Sucursal",
			"A2": "Fecha",
			"A3": "Hora entrada",
			"A4": "Hora salida",
			"A5": "Empleados revisados",
			"A7": "Pregunta",
			"B7": "Resultado",
			"C7": "Comentario",
			"D7": "Evidencia",
		},
		Header: HeaderCells{
			Branch:     "B1",
			Date:       "B2",
			DateFormat: "02/01/2006",
			TimeIn:     "B3",
			TimeOut:    "B4",
			TimeFormat: "03:04 PM",
			Staff:      "B5",
		},
		Answers: AnswerColumns{
			StartRow:     8,
			Question:     "A",
			Result:       "B",
			Comment:      "C",
			Evidence:     "D",
			EvidenceSize: ImageSize{Width: 200, Height: 120},
		},
	}
}

// PresetOptions returns the preset for a variant. An empty variant selects
// the template preset.
func PresetOptions(v Variant) (Options, error) {
	switch v {
	case VariantTemplate, "":
		return DefaultOptions(), nil
	case VariantStatic:
		return StaticOptions(), nil
	default:
		return Options{}, fmt.Errorf("%w: %q (must be template or static)", ErrUnknownVariant, v)
	}
}

// LoadOptions reads a YAML layout file. Keys that are absent keep the value
// of the preset named by the file's variant. A relative template path is
// resolved against the directory holding the file.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("reading options: %w", err)
	}

	var probe struct {
		Variant Variant `yaml:"variant"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return Options{}, fmt.Errorf("parsing options %s: %w", path, err)
	}

	opts, err := PresetOptions(probe.Variant)
	if err != nil {
		return Options{}, err
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parsing options %s: %w", path, err)
	}

	if opts.Template != "" && !filepath.IsAbs(opts.Template) {
		opts.Template = filepath.Join(filepath.Dir(path), opts.Template)
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks that the layout can be used to generate reports.
func (o Options) Validate() error {
	switch o.Variant {
	case VariantTemplate:
		if o.Template == "" {
			return fmt.Errorf("template variant requires a template path")
		}
		rng, err := parser.ParseRange(o.QuestionRange)
		if err != nil {
			return err
		}
		if !rng.SingleColumn() {
			return fmt.Errorf("%w: question range %s must span one column", parser.ErrInvalidRange, rng)
		}
	case VariantStatic:
		if o.Answers.StartRow <= 0 {
			return fmt.Errorf("static variant requires answers.start_row")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownVariant, o.Variant)
	}

	a := o.Answers
	if a.Result == "" && (a.Pass == "" || a.Fail == "" || a.NotApplicable == "" || a.Marker == "") {
		return fmt.Errorf("answers need either a result column or pass/fail/not_applicable columns with a marker")
	}
	if strings.TrimSpace(o.OutputPrefix) == "" {
		return fmt.Errorf("output_prefix must not be empty")
	}
	if o.Trailing.AnnexStart != "" && o.Trailing.AnnexMax <= 0 {
		return fmt.Errorf("trailing.annex_max must be positive when annex_start is set")
	}
	return nil
}
