package checklist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dannyyo/checklist-go/pkg/checklist/models"
	"github.com/dannyyo/checklist-go/pkg/checklist/parser"
	"github.com/xuri/excelize/v2"
)

// QuestionSource produces the questions of a checklist session.
type QuestionSource interface {
	Questions() ([]models.Question, error)
}

// NewSource returns the question source for opts.Variant.
func NewSource(opts Options) QuestionSource {
	if opts.Variant == VariantStatic {
		return StaticSource(opts.StaticQuestions)
	}
	return &TemplateSource{
		Path:  opts.Template,
		Sheet: opts.Sheet,
		Range: opts.QuestionRange,
	}
}

// TemplateSource reads questions from a column of a template workbook.
type TemplateSource struct {
	Path  string
	Sheet string
	Range string
}

// Questions opens the template and extracts the question rows.
func (s *TemplateSource) Questions() ([]models.Question, error) {
	if _, err := os.Stat(s.Path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, s.Path)
	}

	rng, err := parser.ParseRange(s.Range)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("opening template: %w", err)
	}
	defer f.Close()

	sheet, err := resolveSheet(f, s.Sheet)
	if err != nil {
		return nil, err
	}

	questions, err := parser.ExtractQuestions(f, sheet, rng)
	if err != nil {
		return nil, fmt.Errorf("reading questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w in %s of %s", ErrNoQuestions, rng, filepath.Base(s.Path))
	}
	return questions, nil
}

// StaticSource is a declared list of question texts.
type StaticSource []string

// Questions returns the declared questions in order, skipping blank entries.
func (s StaticSource) Questions() ([]models.Question, error) {
	var questions []models.Question
	for _, text := range s {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		questions = append(questions, models.Question{Index: len(questions), Text: text})
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w in static question list", ErrNoQuestions)
	}
	return questions, nil
}

// resolveSheet returns name when it exists, or the active sheet when name is empty.
func resolveSheet(f *excelize.File, name string) (string, error) {
	if name == "" {
		return f.GetSheetName(f.GetActiveSheetIndex()), nil
	}
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return "", err
	}
	if idx < 0 {
		return "", fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	return name, nil
}
