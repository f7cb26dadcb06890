package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/parassrivastav/traqcheck-cli/internal/core/domain"
	"github.com/parassrivastav/traqcheck-cli/internal/core/ports/driven"
	"github.com/parassrivastav/traqcheck-cli/internal/core/ports/driving"

	"github.com/parassrivastav/traqcheck-cli/internal/logger"
)

// Ensure CandidateService implements the interface.
var _ driving.CandidateService = (*CandidateService)(nil)

// CandidateService fronts the remote candidate API for reads, telegram
// linking, document requests and the destructive delete.
type CandidateService struct {
	api driven.CandidateAPI
}

// NewCandidateService creates a new candidate service.
func NewCandidateService(api driven.CandidateAPI) *CandidateService {
	return &CandidateService{api: api}
}

// List fetches all candidates.
func (s *CandidateService) List(ctx context.Context) ([]domain.Candidate, error) {
	candidates, err := s.api.ListCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	logger.Debug("listed %d candidates", len(candidates))
	return candidates, nil
}

// Get fetches one candidate's full detail.
func (s *CandidateService) Get(ctx context.Context, id string) (*domain.Candidate, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	candidate, err := s.api.GetCandidate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get candidate %s: %w", id, err)
	}
	return candidate, nil
}

// Delete removes a candidate and its documents server-side. Irreversible.
func (s *CandidateService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	if err := s.api.DeleteCandidate(ctx, id); err != nil {
		return fmt.Errorf("delete candidate %s: %w", id, err)
	}
	logger.Info("deleted candidate %s", id)
	return nil
}

// UpdateTelegram links a Telegram handle to a candidate.
func (s *CandidateService) UpdateTelegram(ctx context.Context, id, username string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	if strings.TrimSpace(username) == "" {
		return domain.ErrTelegramUsernameRequired
	}
	if err := s.api.UpdateTelegram(ctx, id, strings.TrimSpace(username)); err != nil {
		return fmt.Errorf("update telegram for %s: %w", id, err)
	}
	return nil
}

// RequestDocuments triggers identity-document collection for a candidate.
func (s *CandidateService) RequestDocuments(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", domain.ErrInvalidInput
	}
	msg, err := s.api.RequestDocuments(ctx, id)
	if err != nil {
		return "", fmt.Errorf("request documents for %s: %w", id, err)
	}
	return msg, nil
}
