package parser

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// headerMaxWords is the largest token count a section header may have.
	headerMaxWords = 4
	// headerForbidden lists characters that never appear in a section header.
	headerForbidden = ".?:;"
)

// IsSectionHeader reports whether text names a block of questions
// (e.g. "PERSONAL", "CALIDAD") rather than being a question itself.
//
// A header is fully upper-case, has at most four whitespace separated
// tokens and contains none of . ? : ;
func IsSectionHeader(text string) bool {
	// Casers carry state; one per call.
	upper := cases.Upper(language.Und)
	if upper.String(text) != text {
		return false
	}
	if len(strings.Fields(text)) > headerMaxWords {
		return false
	}
	return !strings.ContainsAny(text, headerForbidden)
}
