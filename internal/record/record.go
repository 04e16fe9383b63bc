// Package record defines the work record, the single entity cvpress stores
// and renders. A record is one employment entry: title, company, date range,
// and an optional free-text description. Records are immutable once created;
// the store assigns the ID at insert time.
package record

import (
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Sentinel validation errors. Callers can match these with errors.Is.
var (
	ErrMissingTitle     = errors.New("record: title is required")
	ErrMissingCompany   = errors.New("record: company is required")
	ErrMissingStartDate = errors.New("record: start date is required")
)

// Record is one work-history entry.
//
// EndDate is optional: an empty EndDate means the position is ongoing and
// renders as "Present". Description is optional free text; it is rendered
// into the document after LaTeX escaping.
type Record struct {
	ID          int64  `yaml:"-"`
	Title       string `yaml:"title"`
	Company     string `yaml:"company"`
	StartDate   string `yaml:"start_date"`
	EndDate     string `yaml:"end_date,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Validate checks the required fields. Title, company, and start date must be
// non-empty; everything else is optional.
func (r Record) Validate() error {
	if r.Title == "" {
		return ErrMissingTitle
	}
	if r.Company == "" {
		return ErrMissingCompany
	}
	if r.StartDate == "" {
		return ErrMissingStartDate
	}
	return nil
}

// Normalized returns a copy of the record with all text fields normalized to
// Unicode NFC. Equivalent input (composed vs decomposed accents) then produces
// byte-identical rows and byte-identical rendered documents.
func (r Record) Normalized() Record {
	r.Title = norm.NFC.String(r.Title)
	r.Company = norm.NFC.String(r.Company)
	r.StartDate = norm.NFC.String(r.StartDate)
	r.EndDate = norm.NFC.String(r.EndDate)
	r.Description = norm.NFC.String(r.Description)
	return r
}

// DateRange formats the record's employment span. An empty end date renders
// as "Present". The "--" is the LaTeX en dash.
func (r Record) DateRange() string {
	end := r.EndDate
	if end == "" {
		end = "Present"
	}
	return fmt.Sprintf("%s -- %s", r.StartDate, end)
}
