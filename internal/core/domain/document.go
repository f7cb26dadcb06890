package domain

import "strings"

// DocumentType identifies which identity artifact a document holds.
type DocumentType string

const (
	// DocumentPAN is the candidate's PAN card.
	DocumentPAN DocumentType = "pan"

	// DocumentAadhaar is the candidate's Aadhaar card.
	DocumentAadhaar DocumentType = "aadhaar"
)

// DocumentStatus describes where a document is in the collection flow.
type DocumentStatus string

const (
	// DocumentRequested means collection was initiated but nothing received.
	DocumentRequested DocumentStatus = "requested"

	// DocumentCollected means the file was received and stored server-side.
	DocumentCollected DocumentStatus = "collected"
)

// ParseDocumentType normalises the type string reported by the API,
// which uses display casing ("PAN", "Aadhaar").
func ParseDocumentType(raw string) DocumentType {
	return DocumentType(strings.ToLower(strings.TrimSpace(raw)))
}

// ParseDocumentStatus normalises the status string reported by the API.
// An empty status on a stored record means the file is already on disk.
func ParseDocumentStatus(raw string) DocumentStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "requested", "pending":
		return DocumentRequested
	default:
		return DocumentCollected
	}
}

// Document is an identity artifact tied to exactly one candidate.
// The client only reads documents; creation happens server-side.
type Document struct {
	// ID is the server-assigned unique identifier.
	ID string

	// CandidateID links to the owning Candidate.
	CandidateID string

	// Type is the identity artifact kind.
	Type DocumentType

	// Status is the collection state.
	Status DocumentStatus

	// FileURL locates the stored file. May be relative to the API base;
	// resolve it before use as a display source.
	FileURL string
}
