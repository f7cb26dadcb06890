// Package tui provides the interactive terminal interface for traqcheck.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/parassrivastav/traqcheck-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Candidate exposes candidate reads and the destructive delete.
	Candidate driving.CandidateService

	// Document exposes identity-document reads and submission.
	Document driving.DocumentService

	// Upload drives resume uploads.
	Upload driving.UploadService

	// Drops optionally delivers resume paths dropped into the watched
	// directory. Nil disables drop handling.
	Drops <-chan string
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	candidate driving.CandidateService,
	document driving.DocumentService,
	upload driving.UploadService,
) *Ports {
	return &Ports{
		Candidate: candidate,
		Document:  document,
		Upload:    upload,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Candidate == nil {
		return ErrMissingCandidateService
	}
	if p.Document == nil {
		return ErrMissingDocumentService
	}
	if p.Upload == nil {
		return ErrMissingUploadService
	}
	return nil
}
