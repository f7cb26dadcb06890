package driving

import (
	"context"

	"github.com/parassrivastav/traqcheck-cli/internal/core/domain"
)

// DocumentService exposes identity-document reads and submission.
type DocumentService interface {
	// List fetches the documents for a candidate.
	List(ctx context.Context, candidateID string) ([]domain.Document, error)

	// Submit uploads PAN and Aadhaar files. Both paths are required and
	// checked before any request is sent.
	Submit(ctx context.Context, candidateID, panPath, aadhaarPath string) error

	// ResolveFileURL resolves a possibly relative file URL against the
	// API base for display.
	ResolveFileURL(raw string) string
}
