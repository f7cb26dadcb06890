package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ExtractionStatus describes how far server-side resume extraction has
// progressed for a candidate.
type ExtractionStatus string

const (
	// ExtractionPending means the resume is uploaded but not yet parsed.
	ExtractionPending ExtractionStatus = "pending"

	// ExtractionSuccess means structured fields were extracted.
	ExtractionSuccess ExtractionStatus = "success"

	// ExtractionFailed means parsing did not produce usable fields.
	ExtractionFailed ExtractionStatus = "failed"
)

// ParseExtractionStatus normalises the status string reported by the API.
// Deployed servers report free-form values such as "Extracted"; anything
// non-empty that is not an explicit failure is treated as success, and an
// empty value as pending.
func ParseExtractionStatus(raw string) ExtractionStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return ExtractionPending
	case "pending", "queued", "processing":
		return ExtractionPending
	case "failed", "error":
		return ExtractionFailed
	default:
		return ExtractionSuccess
	}
}

// CompanyHistoryEntry is one position in a candidate's work history,
// in the order the extractor produced it.
type CompanyHistoryEntry struct {
	// Company is the employer name.
	Company string

	// Duration is free text, e.g. "2019 - 2022".
	Duration string

	// IsCurrent marks the candidate's present employer.
	IsCurrent bool
}

// Candidate is a person whose resume was uploaded and parsed server-side.
// The client never mutates a Candidate; it only replaces whole snapshots
// fetched from the API.
type Candidate struct {
	// ID is the server-assigned unique identifier.
	ID string

	// Name is the extracted full name.
	Name string

	// Email is the extracted contact email.
	Email string

	// Phone is the extracted contact number.
	Phone string

	// Company is the current employer.
	Company string

	// Designation is the current job title.
	Designation string

	// Confidence is the extractor's confidence in the fields, 0.0 to 1.0.
	Confidence float64

	// ExtractionStatus reports how extraction ended.
	ExtractionStatus ExtractionStatus

	// TelegramUsername is the linked Telegram handle, empty when unset.
	TelegramUsername string

	// Skills preserves the extractor's insertion order and may repeat.
	Skills []string

	// CompanyHistory is ordered most recent first.
	CompanyHistory []CompanyHistoryEntry
}

// DisplayName returns the candidate name title-cased for headings.
// The extractor's "Not found" placeholder is passed through untouched.
func (c *Candidate) DisplayName() string {
	if c.Name == "" || c.Name == "Not found" {
		return c.Name
	}
	words := strings.Fields(strings.ToLower(c.Name))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// Initials returns up to two uppercase initials for the avatar badge,
// or "NA" when no usable name exists.
func (c *Candidate) Initials() string {
	if c.Name == "" || c.Name == "Not found" {
		return "NA"
	}
	parts := strings.Fields(c.Name)
	if len(parts) > 2 {
		parts = parts[:2]
	}
	var b strings.Builder
	for _, p := range parts {
		r, _ := utf8.DecodeRuneInString(p)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
