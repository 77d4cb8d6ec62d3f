// Package form renders the checklist form and turns submissions into
// checklist sessions.
package form

import (
	"fmt"
	"html/template"
	"io"

	"github.com/dannyyo/checklist-go/pkg/checklist/models"
)

// Field names. Every per-question field carries the question index so that
// state never collides between questions.
const (
	FieldBranch         = "branch"
	FieldDate           = "date"
	FieldTimeIn         = "time_in"
	FieldTimeOut        = "time_out"
	FieldStaff          = "staff"
	FieldObservations   = "observations"
	FieldAnnex          = "annex"
	FieldVisitPerson    = "visit_person"
	FieldFollowupPerson = "followup_person"
	FieldQuestionSet    = "question_set"
)

// ResultField is the radio group name for question i.
func ResultField(i int) string { return fmt.Sprintf("result_%d", i) }

// CommentField is the comment textarea name for question i.
func CommentField(i int) string { return fmt.Sprintf("comment_%d", i) }

// EvidenceField is the file input name for question i.
func EvidenceField(i int) string { return fmt.Sprintf("evidence_%d", i) }

// ResultOption is one radio button.
type ResultOption struct {
	Key   string
	Label string
}

// ResultOptions returns the three selectable outcomes.
func ResultOptions() []ResultOption {
	opts := make([]ResultOption, 0, len(models.Results))
	for _, r := range models.Results {
		opts = append(opts, ResultOption{Key: r.Key(), Label: r.Label()})
	}
	return opts
}

// Page is the data behind the checklist form.
type Page struct {
	Title     string
	Today     string
	Questions []models.Question
	// QuestionSet is filled from Questions when empty.
	QuestionSet string
	Results     []ResultOption
	// Trailing shows the closing section (observations, annex, signers).
	Trailing bool
	AnnexMax int
}

// ResultPage is shown after a report is generated.
type ResultPage struct {
	Title       string
	Report      *models.Report
	DownloadURL string
}

// ErrorPage is shown when the form cannot be built.
type ErrorPage struct {
	Title   string
	Message string
}

var funcs = template.FuncMap{
	"resultField":   ResultField,
	"commentField":  CommentField,
	"evidenceField": EvidenceField,
	"inc":           func(i int) int { return i + 1 },
}

var (
	formTmpl   = template.Must(template.New("form").Funcs(funcs).Parse(layoutHTML + formHTML))
	resultTmpl = template.Must(template.New("result").Funcs(funcs).Parse(layoutHTML + resultHTML))
	errorTmpl  = template.Must(template.New("error").Funcs(funcs).Parse(layoutHTML + errorHTML))
)

// Render writes the checklist form.
func Render(w io.Writer, page Page) error {
	if page.Results == nil {
		page.Results = ResultOptions()
	}
	if page.QuestionSet == "" {
		page.QuestionSet = QuestionSet(page.Questions)
	}
	return formTmpl.ExecuteTemplate(w, "page", page)
}

// RenderResult writes the download page.
func RenderResult(w io.Writer, page ResultPage) error {
	return resultTmpl.ExecuteTemplate(w, "page", page)
}

// RenderError writes an error page.
func RenderError(w io.Writer, page ErrorPage) error {
	return errorTmpl.ExecuteTemplate(w, "page", page)
}

const layoutHTML = `{{define "page"}}<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 56rem; margin: 0 auto; padding: 1rem; }
textarea, input, label { font-size: 16px; }
label { display: block; margin: .5rem 0; }
textarea, input[type=text], input[type=date], input[type=time] { width: 100%; box-sizing: border-box; }
fieldset { border: 0; border-top: 1px solid #ccc; padding: 1rem 0; }
.options label { display: inline-block; margin-right: 1rem; }
button { font-size: 18px; padding: 10px 20px; }
.error { color: #a00; }
.warning { color: #a60; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{template "content" .}}
</body>
</html>{{end}}`

const formHTML = `{{define "content"}}<form method="post" action="/generate" enctype="multipart/form-data">
<input type="hidden" name="question_set" value="{{.QuestionSet}}">
<fieldset>
<label>Sucursal<input type="text" name="branch"></label>
<label>Fecha<input type="date" name="date" value="{{.Today}}"></label>
<label>Hora de entrada (ej. 2:13 p.m.)<input type="text" name="time_in"></label>
<label>Hora de salida (ej. 4:05 p.m.)<input type="text" name="time_out"></label>
<label>Empleados en revisión (uno por línea)<textarea name="staff" rows="4"></textarea></label>
</fieldset>
<h2>Responde el checklist:</h2>
{{range $q := .Questions}}<fieldset class="question">
<h3>{{inc $q.Index}}. {{$q.Text}}</h3>
<div class="options">Resultado:
{{range $.Results}}<label><input type="radio" name="{{resultField $q.Index}}" value="{{.Key}}"> {{.Label}}</label>
{{end}}</div>
<label>Comentario:<textarea name="{{commentField $q.Index}}" rows="2"></textarea></label>
<label>Adjuntar evidencia (imagen opcional)<input type="file" name="{{evidenceField $q.Index}}" accept="image/*"></label>
</fieldset>
{{end}}{{if .Trailing}}<h2>Sección final del checklist</h2>
<fieldset>
<label>Observaciones:<textarea name="observations" rows="4"></textarea></label>
<label>Anexo fotos de más áreas (hasta {{.AnnexMax}})<input type="file" name="annex" accept="image/*" multiple></label>
<label>Persona que realizó la visita:<input type="text" name="visit_person"></label>
<label>Se informa para su seguimiento a:<input type="text" name="followup_person"></label>
</fieldset>
{{end}}<button type="submit">Generar Check List</button>
</form>{{end}}`

const resultHTML = `{{define "content"}}<p>Check List generado correctamente.</p>
{{range .Report.Warnings}}<p class="warning">{{.}}</p>
{{end}}<p><a href="{{.DownloadURL}}" download>Descargar {{.Report.FileName}}</a></p>
<p><a href="/">Nuevo check list</a></p>{{end}}`

const errorHTML = `{{define "content"}}<p class="error">{{.Message}}</p>{{end}}`
