// Package server exposes the checklist form over HTTP.
package server

import (
	"errors"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dannyyo/checklist-go/pkg/checklist"
	"github.com/dannyyo/checklist-go/pkg/checklist/form"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the form, generates reports and hands them out.
type Handler struct {
	source checklist.QuestionSource
	gen    *checklist.Generator
	logger *zap.Logger
	now    func() time.Time
}

// NewHandler creates a Handler. Questions are read from source on every
// request so template edits show up without a restart.
func NewHandler(source checklist.QuestionSource, gen *checklist.Generator, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{source: source, gen: gen, logger: logger, now: time.Now}
}

func (h *Handler) title() string {
	if t := h.gen.Options().Title; t != "" {
		return t
	}
	return "Check List"
}

// Healthz reports liveness.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// Form renders one input group per question.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	questions, err := h.source.Questions()
	if err != nil {
		h.questionError(w, err)
		return
	}

	opts := h.gen.Options()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := form.Render(w, form.Page{
		Title:     h.title(),
		Today:     h.now().Format(form.DateLayout),
		Questions: questions,
		Trailing:  opts.Trailing.Enabled(),
		AnnexMax:  opts.Trailing.AnnexMax,
	}); err != nil {
		h.logger.Error("rendering form failed", zap.Error(err))
	}
}

// Generate builds the report from a form post and links to the download.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	questions, err := h.source.Questions()
	if err != nil {
		h.questionError(w, err)
		return
	}

	sub, err := form.Decode(r, questions, h.now())
	if errors.Is(err, form.ErrQuestionsChanged) {
		h.logger.Warn("stale form submitted", zap.Int("questions", len(questions)))
		h.renderError(w, http.StatusConflict, "Las preguntas de la plantilla cambiaron desde que se abrió el formulario. Vuelve a cargarlo y responde de nuevo.")
		return
	}
	if err != nil {
		h.logger.Warn("decoding submission failed", zap.Error(err))
		h.renderError(w, http.StatusBadRequest, "No se pudo leer el formulario: "+err.Error())
		return
	}

	report, err := h.gen.Generate(sub.Session, sub.Header, sub.Trailing)
	if err != nil {
		h.logger.Error("generating report failed", zap.String("session", sub.Session.ID), zap.Error(err))
		h.renderError(w, http.StatusInternalServerError, "No se pudo generar el archivo: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := form.RenderResult(w, form.ResultPage{
		Title:       h.title(),
		Report:      report,
		DownloadURL: "/reports/" + url.PathEscape(report.FileName),
	}); err != nil {
		h.logger.Error("rendering result failed", zap.Error(err))
	}
}

// Download serves a generated report from the output directory.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	if name == "" || filepath.Base(name) != name || !strings.HasSuffix(name, ".xlsx") {
		http.Error(w, "invalid report name", http.StatusBadRequest)
		return
	}

	dir := h.gen.Options().OutputDir
	if dir == "" {
		dir = "."
	}
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			http.Error(w, "report not found", http.StatusNotFound)
			return
		}
		h.logger.Error("opening report failed", zap.String("name", name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", checklist.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	http.ServeContent(w, r, name, info.ModTime(), f)
}

func (h *Handler) questionError(w http.ResponseWriter, err error) {
	h.logger.Error("loading questions failed", zap.Error(err))
	msg := "No se pudieron cargar las preguntas: " + err.Error()
	if errors.Is(err, checklist.ErrNoQuestions) {
		msg = "No se detectaron preguntas válidas. Revisa la plantilla. (" + err.Error() + ")"
	}
	h.renderError(w, http.StatusInternalServerError, msg)
}

func (h *Handler) renderError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := form.RenderError(w, form.ErrorPage{Title: h.title(), Message: msg}); err != nil {
		h.logger.Error("rendering error page failed", zap.Error(err))
	}
}
