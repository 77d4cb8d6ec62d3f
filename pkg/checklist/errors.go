package checklist

import (
	"errors"
	"fmt"
)

// ErrNoQuestions indicates a question source produced nothing. It is fatal:
// no form is rendered and no report is generated.
var ErrNoQuestions = errors.New("no questions found")

// ErrTemplateNotFound indicates the template workbook does not exist.
var ErrTemplateNotFound = errors.New("template not found")

// ErrSheetNotFound indicates the configured sheet is missing from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrUnknownVariant indicates an unsupported Options.Variant.
var ErrUnknownVariant = errors.New("unknown variant")

// ErrQuestionIndex indicates an answer refers to a question outside the session.
var ErrQuestionIndex = errors.New("question index out of range")

// EmbedError represents a failure to place one image in the report.
// It never aborts generation; it is reported as a warning.
type EmbedError struct {
	Kind  string // "evidence" or "annex"
	Index int    // 1-based item number
	Cell  string
	Err   error
}

func (e *EmbedError) Error() string {
	return fmt.Sprintf("could not embed %s image %d at %s: %v", e.Kind, e.Index, e.Cell, e.Err)
}

func (e *EmbedError) Unwrap() error {
	return e.Err
}

// NewEmbedError creates a new EmbedError.
func NewEmbedError(kind string, index int, cell string, err error) *EmbedError {
	return &EmbedError{
		Kind:  kind,
		Index: index,
		Cell:  cell,
		Err:   err,
	}
}
