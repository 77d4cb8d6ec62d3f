package models

import "strings"

// Result is the outcome chosen for a question.
type Result int

const (
	// ResultUnset means no option was selected. It is written as a blank.
	ResultUnset Result = iota
	// ResultPass is "Cumple".
	ResultPass
	// ResultFail is "No cumple".
	ResultFail
	// ResultNotApplicable is "N/A".
	ResultNotApplicable
)

// Results lists the selectable outcomes in display order.
var Results = []Result{ResultPass, ResultFail, ResultNotApplicable}

var resultLabels = map[Result]string{
	ResultPass:          "Cumple",
	ResultFail:          "No cumple",
	ResultNotApplicable: "N/A",
}

var resultKeys = map[Result]string{
	ResultPass:          "pass",
	ResultFail:          "fail",
	ResultNotApplicable: "na",
}

// Label returns the user-facing label, or "" for ResultUnset.
func (r Result) Label() string {
	return resultLabels[r]
}

// Key returns the stable form value, or "" for ResultUnset.
func (r Result) Key() string {
	return resultKeys[r]
}

func (r Result) String() string {
	if r == ResultUnset {
		return "unset"
	}
	return r.Key()
}

// ParseResult accepts either a key ("pass", "fail", "na") or a label
// ("Cumple", "No cumple", "N/A"). Anything else yields ResultUnset.
func ParseResult(s string) Result {
	s = strings.TrimSpace(s)
	for _, r := range Results {
		if strings.EqualFold(s, r.Key()) || strings.EqualFold(s, r.Label()) {
			return r
		}
	}
	return ResultUnset
}

// Image is an uploaded picture held in memory.
type Image struct {
	// Name is the original file name (informational only).
	Name string `json:"name"`
	// Data is the raw file content.
	Data []byte `json:"-"`
}

// Answer is the user's response to one question.
type Answer struct {
	// QuestionIndex references Question.Index.
	QuestionIndex int `json:"question_index"`
	// Result is the chosen outcome.
	Result Result `json:"result"`
	// Comment is free text, possibly empty.
	Comment string `json:"comment,omitempty"`
	// Evidence is an optional photo.
	Evidence *Image `json:"evidence,omitempty"`
}

// HasEvidence reports whether a non-empty evidence image is attached.
func (a Answer) HasEvidence() bool {
	return a.Evidence != nil && len(a.Evidence.Data) > 0
}
