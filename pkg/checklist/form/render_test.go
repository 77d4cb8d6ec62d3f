package form

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dannyyo/checklist-go/pkg/checklist/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_OneGroupPerQuestion(t *testing.T) {
	questions := []models.Question{
		{Index: 0, SourceRow: 18, Text: "Empleado llega puntual."},
		{Index: 1, SourceRow: 19, Text: "Uniforme completo."},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Page{
		Title:     "Check List Tiendas",
		Today:     "2025-10-18",
		Questions: questions,
		Trailing:  true,
		AnnexMax:  6,
	}))
	html := buf.String()

	assert.Contains(t, html, "1. Empleado llega puntual.")
	assert.Contains(t, html, "2. Uniforme completo.")
	for i := range questions {
		assert.Equal(t, 3, strings.Count(html, `name="`+ResultField(i)+`"`))
		assert.Contains(t, html, `name="`+CommentField(i)+`"`)
		assert.Contains(t, html, `name="`+EvidenceField(i)+`"`)
	}
	assert.NotContains(t, html, "checked", "no result is preselected")
	assert.Contains(t, html, `value="2025-10-18"`)
	assert.Contains(t, html, `name="annex" accept="image/*" multiple`)
	assert.Contains(t, html, `name="visit_person"`)
	assert.Contains(t, html, `name="question_set" value="`+QuestionSet(questions)+`"`)
}

func TestRender_WithoutTrailing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Page{
		Title:     "Revisión de Tienda",
		Questions: []models.Question{{Text: "Uno"}},
	}))
	assert.NotContains(t, buf.String(), `name="observations"`)
}

func TestRenderResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderResult(&buf, ResultPage{
		Title:       "Check List Tiendas",
		Report:      &models.Report{FileName: "CHECKLIST_Centro_20251018.xlsx", Warnings: []string{"could not embed evidence image 1 at G18: bad"}},
		DownloadURL: "/reports/CHECKLIST_Centro_20251018.xlsx",
	}))
	html := buf.String()
	assert.Contains(t, html, `href="/reports/CHECKLIST_Centro_20251018.xlsx"`)
	assert.Contains(t, html, "could not embed evidence image 1 at G18")
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderError(&buf, ErrorPage{Title: "x", Message: "<no questions>"}))
	assert.Contains(t, buf.String(), "&lt;no questions&gt;")
}
