package checklist

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dannyyo/checklist-go/pkg/checklist/models"
	"github.com/dannyyo/checklist-go/pkg/checklist/parser"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ContentType is the MIME type of generated reports.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Generator writes checklist sessions into workbooks.
type Generator struct {
	opts   Options
	logger *zap.Logger
	now    func() time.Time
}

// NewGenerator creates a Generator for opts. A nil logger discards logs.
func NewGenerator(opts Options, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{opts: opts, logger: logger, now: time.Now}
}

// Options returns the layout the generator writes.
func (g *Generator) Options() Options {
	return g.opts
}

// ReportFileName returns "<prefix>_<branch>_<YYYYMMDD>.xlsx". Path separators
// in the branch are replaced so the name stays a single path element.
func ReportFileName(prefix, branch string, date time.Time) string {
	branch = strings.NewReplacer("/", "-", "\\", "-").Replace(strings.TrimSpace(branch))
	return fmt.Sprintf("%s_%s_%s.xlsx", prefix, branch, date.Format("20060102"))
}

// reportWriter carries the state of one generation.
type reportWriter struct {
	f       *excelize.File
	sheet   string
	opts    Options
	scratch *scratchDir
	report  *models.Report
	logger  *zap.Logger
}

// Generate writes the session answers plus header and trailing fields into a
// new report file under Options.OutputDir. Image failures are recorded as
// warnings on the returned report; any other failure aborts generation.
// Scratch images are removed on every path.
func (g *Generator) Generate(session *Session, header models.HeaderInfo, trailing models.TrailingInfo) (*models.Report, error) {
	id := session.ID
	if id == "" {
		id = uuid.NewString()
	}
	if header.Date.IsZero() {
		header.Date = g.now()
	}

	f, sheet, err := g.openWorkbook()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scratch, err := newScratchDir(id, g.logger)
	if err != nil {
		return nil, err
	}
	defer scratch.cleanup()

	w := &reportWriter{
		f:       f,
		sheet:   sheet,
		opts:    g.opts,
		scratch: scratch,
		report:  &models.Report{ID: id, Questions: session.Len()},
		logger:  g.logger.With(zap.String("report", id)),
	}

	if err := w.writeLabels(); err != nil {
		return nil, err
	}
	if err := w.writeHeader(header); err != nil {
		return nil, err
	}
	if err := w.writeAnswers(session); err != nil {
		return nil, err
	}
	if err := w.writeTrailing(trailing); err != nil {
		return nil, err
	}

	outDir := g.opts.OutputDir
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	w.report.FileName = ReportFileName(g.opts.OutputPrefix, header.Branch, header.Date)
	w.report.Path = filepath.Join(outDir, w.report.FileName)
	if err := f.SaveAs(w.report.Path); err != nil {
		return nil, fmt.Errorf("saving report: %w", err)
	}

	w.logger.Info("report generated",
		zap.String("path", w.report.Path),
		zap.Int("questions", w.report.Questions),
		zap.Int("answered", w.report.Answered),
		zap.Int("images", w.report.Images),
		zap.Int("warnings", len(w.report.Warnings)))
	return w.report, nil
}

func (g *Generator) openWorkbook() (*excelize.File, string, error) {
	if g.opts.Template == "" {
		f := excelize.NewFile()
		sheet := f.GetSheetName(0)
		if g.opts.Sheet != "" && g.opts.Sheet != sheet {
			if err := f.SetSheetName(sheet, g.opts.Sheet); err != nil {
				_ = f.Close()
				return nil, "", fmt.Errorf("naming sheet: %w", err)
			}
			sheet = g.opts.Sheet
		}
		return f, sheet, nil
	}

	if _, err := os.Stat(g.opts.Template); os.IsNotExist(err) {
		return nil, "", fmt.Errorf("%w: %s", ErrTemplateNotFound, g.opts.Template)
	}
	f, err := excelize.OpenFile(g.opts.Template)
	if err != nil {
		return nil, "", fmt.Errorf("opening template: %w", err)
	}
	sheet, err := resolveSheet(f, g.opts.Sheet)
	if err != nil {
		_ = f.Close()
		return nil, "", err
	}
	return f, sheet, nil
}

func (w *reportWriter) set(cell string, value interface{}) error {
	if cell == "" {
		return nil
	}
	if err := w.f.SetCellValue(w.sheet, cell, value); err != nil {
		return fmt.Errorf("writing %s: %w", cell, err)
	}
	return nil
}

func (w *reportWriter) writeLabels() error {
	cells := make([]string, 0, len(w.opts.Labels))
	for cell := range w.opts.Labels {
		cells = append(cells, cell)
	}
	sort.Strings(cells)
	for _, cell := range cells {
		if err := w.set(cell, w.opts.Labels[cell]); err != nil {
			return err
		}
	}
	return nil
}

func (w *reportWriter) writeHeader(h models.HeaderInfo) error {
	cells := w.opts.Header
	if cells.DateFormat == "" {
		cells.DateFormat = "02/01/2006"
	}
	values := []struct {
		cell  string
		value string
	}{
		{cells.Branch, h.Branch},
		{cells.Date, h.Date.Format(cells.DateFormat)},
		{cells.TimeIn, formatClock(h.TimeIn, cells.TimeFormat)},
		{cells.TimeOut, formatClock(h.TimeOut, cells.TimeFormat)},
		{cells.Staff, h.Staff},
	}
	for _, v := range values {
		if err := w.set(v.cell, v.value); err != nil {
			return err
		}
	}
	return nil
}

// formatClock rewrites an "HH:MM" value with layout. Other input is kept.
func formatClock(value, layout string) string {
	value = strings.TrimSpace(value)
	if layout == "" || value == "" {
		return value
	}
	t, err := time.Parse("15:04", value)
	if err != nil {
		return value
	}
	return t.Format(layout)
}

func (w *reportWriter) writeAnswers(session *Session) error {
	cols := w.opts.Answers
	answers := session.Answers()

	for i, q := range session.Questions {
		a := answers[i]
		row := cols.RowFor(q)

		if cols.Clear {
			for _, col := range []string{cols.Pass, cols.Fail, cols.NotApplicable, cols.Result, cols.Comment} {
				if err := w.setColumn(col, row, nil); err != nil {
					return err
				}
			}
		}

		if err := w.setColumn(cols.Question, row, q.Text); err != nil {
			return err
		}

		if a.Result != models.ResultUnset {
			w.report.Answered++
			var err error
			if cols.Result != "" {
				err = w.setColumn(cols.Result, row, a.Result.Label())
			} else {
				err = w.setColumn(cols.MarkerColumn(a.Result), row, cols.Marker)
			}
			if err != nil {
				return err
			}
		}

		if a.Comment != "" {
			if err := w.setColumn(cols.Comment, row, a.Comment); err != nil {
				return err
			}
		}

		if a.HasEvidence() && cols.Evidence != "" {
			cell, err := parser.CellAt(cols.Evidence, row)
			if err != nil {
				return err
			}
			w.embed("evidence", i+1, fmt.Sprintf("evidencia_%d", i), a.Evidence, cell, cols.EvidenceSize)
		}
	}
	return nil
}

func (w *reportWriter) setColumn(col string, row int, value interface{}) error {
	if col == "" {
		return nil
	}
	cell, err := parser.CellAt(col, row)
	if err != nil {
		return err
	}
	return w.set(cell, value)
}

func (w *reportWriter) writeTrailing(t models.TrailingInfo) error {
	cells := w.opts.Trailing
	if !cells.Enabled() {
		return nil
	}

	if err := w.set(cells.Observations, t.Observations); err != nil {
		return err
	}

	if cells.AnnexStart != "" {
		for i := range t.AnnexPhotos {
			if i >= cells.AnnexMax {
				break
			}
			cell, err := parser.OffsetRow(cells.AnnexStart, i)
			if err != nil {
				return err
			}
			w.embed("annex", i+1, fmt.Sprintf("anexo_%d", i), &t.AnnexPhotos[i], cell, cells.AnnexSize)
		}
	}

	if err := w.writeLabeled(cells.VisitPerson, cells.VisitLabel, t.VisitPerson); err != nil {
		return err
	}
	return w.writeLabeled(cells.FollowupPerson, cells.FollowupLabel, t.FollowupPerson)
}

// writeLabeled keeps the text before the first colon of the existing cell
// (or fallback when the cell is empty) and appends value after it.
func (w *reportWriter) writeLabeled(cell, fallback, value string) error {
	if cell == "" {
		return nil
	}
	existing, err := w.f.GetCellValue(w.sheet, cell)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cell, err)
	}
	return w.set(cell, LabeledValue(existing, fallback, value))
}

// LabeledValue returns "<label>: <value>" where label is the part of current
// (or fallback, if current is empty) before its first colon.
func LabeledValue(current, fallback, value string) string {
	if current == "" {
		current = fallback
	}
	label, _, _ := strings.Cut(current, ":")
	return label + ": " + value
}

// embed stages img and anchors it at cell. Failures become warnings.
func (w *reportWriter) embed(kind string, index int, name string, img *models.Image, cell string, size ImageSize) {
	err := w.addPicture(name, img, cell, size)
	if err != nil {
		embedErr := NewEmbedError(kind, index, cell, err)
		w.report.Warnings = append(w.report.Warnings, embedErr.Error())
		w.logger.Warn("image embed failed",
			zap.String("kind", kind),
			zap.Int("index", index),
			zap.String("cell", cell),
			zap.Error(err))
		return
	}
	w.report.Images++
}

func (w *reportWriter) addPicture(name string, img *models.Image, cell string, size ImageSize) error {
	path, err := w.scratch.writePNG(name, img, size)
	if err != nil {
		return err
	}
	return w.f.AddPicture(w.sheet, cell, path, &excelize.GraphicOptions{
		AltText: img.Name,
	})
}
