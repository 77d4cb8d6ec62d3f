package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dannyyo/checklist-go/pkg/checklist"
	"github.com/dannyyo/checklist-go/pkg/checklist/form"
	"github.com/dannyyo/checklist-go/pkg/checklist/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, source checklist.QuestionSource) (http.Handler, checklist.Options) {
	t.Helper()
	opts := checklist.StaticOptions()
	opts.OutputDir = t.TempDir()
	gen := checklist.NewGenerator(opts, zap.NewNop())
	return NewRouter(NewHandler(source, gen, nil), zap.NewNop()), opts
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	h, _ := newTestRouter(t, checklist.StaticSource{"Uno"})
	rec := serve(h, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestForm(t *testing.T) {
	h, _ := newTestRouter(t, checklist.StaticSource{"¿Piso limpio?", "¿Vitrinas ordenadas?"})
	rec := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "¿Piso limpio?")
	assert.Contains(t, body, "¿Vitrinas ordenadas?")
	assert.Contains(t, body, `action="/generate"`)
}

func TestForm_NoQuestions(t *testing.T) {
	h, _ := newTestRouter(t, checklist.StaticSource{"", "  "})
	rec := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "No se detectaron preguntas")
}

func TestGenerateAndDownload(t *testing.T) {
	source := checklist.StaticSource{"¿Piso limpio?", "¿Vitrinas ordenadas?"}
	h, opts := newTestRouter(t, source)
	questions, err := source.Questions()
	require.NoError(t, err)

	values := url.Values{
		form.FieldQuestionSet: {form.QuestionSet(questions)},
		"branch":              {"Centro"},
		"date":                {"2025-10-18"},
		"result_0":            {"pass"},
		"comment_0":           {"Todo bien"},
		"result_1":            {"fail"},
	}
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "/reports/Revision_Centro_20251018.xlsx")
	assert.FileExists(t, filepath.Join(opts.OutputDir, "Revision_Centro_20251018.xlsx"))

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/reports/Revision_Centro_20251018.xlsx", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, checklist.ContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(opts.Sheet, "B9")
	require.NoError(t, err)
	assert.Equal(t, "No cumple", v)
}

func TestGenerate_StaleForm(t *testing.T) {
	rendered := []models.Question{{Text: "¿Piso limpio?"}}
	h, opts := newTestRouter(t, checklist.StaticSource{"¿Vitrinas ordenadas?", "¿Piso limpio?"})

	values := url.Values{
		form.FieldQuestionSet: {form.QuestionSet(rendered)},
		"branch":              {"Centro"},
		"result_0":            {"pass"},
	}
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := serve(h, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Las preguntas de la plantilla cambiaron")

	entries, err := os.ReadDir(opts.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDownload_Rejects(t *testing.T) {
	h, opts := newTestRouter(t, checklist.StaticSource{"Uno"})
	require.NoError(t, os.WriteFile(filepath.Join(opts.OutputDir, "notes.txt"), []byte("x"), 0o644))

	tests := []struct {
		path     string
		expected int
	}{
		{"/reports/notes.txt", http.StatusBadRequest},
		{"/reports/..%2Fsecret.xlsx", http.StatusBadRequest},
		{"/reports/missing.xlsx", http.StatusNotFound},
	}
	for _, tt := range tests {
		rec := serve(h, httptest.NewRequest(http.MethodGet, tt.path, nil))
		assert.Equal(t, tt.expected, rec.Code, tt.path)
	}
}

func TestRecovery(t *testing.T) {
	h := Recovery(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
