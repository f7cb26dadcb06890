package services

import (
	"context"
	"fmt"
	"os"

	"github.com/parassrivastav/traqcheck-cli/internal/core/domain"
	"github.com/parassrivastav/traqcheck-cli/internal/core/ports/driven"
	"github.com/parassrivastav/traqcheck-cli/internal/core/ports/driving"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService fronts the remote API for identity documents.
type DocumentService struct {
	api driven.CandidateAPI
}

// NewDocumentService creates a new document service.
func NewDocumentService(api driven.CandidateAPI) *DocumentService {
	return &DocumentService{api: api}
}

// List fetches the documents for a candidate.
func (s *DocumentService) List(ctx context.Context, candidateID string) ([]domain.Document, error) {
	if candidateID == "" {
		return nil, domain.ErrInvalidInput
	}
	docs, err := s.api.ListDocuments(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("list documents for %s: %w", candidateID, err)
	}
	return docs, nil
}

// Submit uploads PAN and Aadhaar files for a candidate. Both files must
// exist locally; the check happens before any request is sent.
func (s *DocumentService) Submit(ctx context.Context, candidateID, panPath, aadhaarPath string) error {
	if candidateID == "" {
		return domain.ErrNoCandidateSelected
	}
	if panPath == "" || aadhaarPath == "" {
		return domain.ErrNoFile
	}
	for _, p := range []string{panPath, aadhaarPath} {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("%w: %s", domain.ErrNoFile, p)
		}
	}
	if err := s.api.SubmitDocuments(ctx, candidateID, panPath, aadhaarPath); err != nil {
		return fmt.Errorf("submit documents for %s: %w", candidateID, err)
	}
	return nil
}

// ResolveFileURL resolves a possibly relative file URL against the API base.
func (s *DocumentService) ResolveFileURL(raw string) string {
	return s.api.ResolveFileURL(raw)
}
