package models

// Report describes a generated spreadsheet.
type Report struct {
	// ID identifies the generation run.
	ID string `json:"id"`
	// FileName is the base name offered for download.
	FileName string `json:"file_name"`
	// Path is where the workbook was saved.
	Path string `json:"path"`
	// Answered counts answers with a result other than Unset.
	Answered int `json:"answered"`
	// Questions is the number of questions in the session.
	Questions int `json:"questions"`
	// Images counts pictures embedded successfully.
	Images int `json:"images"`
	// Warnings lists non-fatal problems (failed embeds).
	Warnings []string `json:"warnings,omitempty"`
}
