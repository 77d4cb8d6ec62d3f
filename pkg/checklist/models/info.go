package models

import "time"

// HeaderInfo holds the fields written at the top of the report.
type HeaderInfo struct {
	Branch  string    `json:"branch" mapstructure:"branch"`
	Date    time.Time `json:"date" mapstructure:"date"`
	TimeIn  string    `json:"time_in" mapstructure:"time_in"`
	TimeOut string    `json:"time_out" mapstructure:"time_out"`
	// Staff is a multi-line list, one employee per line.
	Staff string `json:"staff" mapstructure:"staff"`
}

// TrailingInfo holds the fields written after the answers.
type TrailingInfo struct {
	Observations   string  `json:"observations" mapstructure:"observations"`
	AnnexPhotos    []Image `json:"-" mapstructure:"-"`
	VisitPerson    string  `json:"visit_person" mapstructure:"visit_person"`
	FollowupPerson string  `json:"followup_person" mapstructure:"followup_person"`
}
