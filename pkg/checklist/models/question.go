// Package models defines data structures for checklist collection and reporting.
package models

// Question represents a single checklist item.
type Question struct {
	// Index is the 0-based position of the question in its session.
	Index int `json:"index"`
	// SourceRow is the template row the text was read from (1-based).
	// Zero means the question was declared statically and is placed by order.
	SourceRow int `json:"source_row,omitempty"`
	// Text is the question text as shown to the user.
	Text string `json:"text"`
}

// HasSourceRow reports whether the question is anchored to a template row.
func (q Question) HasSourceRow() bool {
	return q.SourceRow > 0
}
