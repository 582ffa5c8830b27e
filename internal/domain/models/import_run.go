package models

import "time"

// ImportRowError records why one spreadsheet row was skipped.
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportRun accumulates the outcome of a single import. It is created per
// request and passed explicitly through the parse/validate/persist chain,
// so concurrent imports never share state.
type ImportRun struct {
	Id        string           `json:"runId"`
	StartedAt time.Time        `json:"startedAt"`
	Imported  int              `json:"imported"`
	Skipped   int              `json:"skipped"`
	Errors    []ImportRowError `json:"errors"`
}

func (r *ImportRun) Accept() {
	r.Imported++
}

func (r *ImportRun) Skip(row int, reason string) {
	r.Skipped++
	r.Errors = append(r.Errors, ImportRowError{Row: row, Reason: reason})
}
