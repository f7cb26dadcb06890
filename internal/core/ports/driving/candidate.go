package driving

import (
	"context"

	"github.com/parassrivastav/traqcheck-cli/internal/core/domain"
)

// CandidateService exposes candidate reads and the destructive delete.
type CandidateService interface {
	// List fetches all candidates.
	List(ctx context.Context) ([]domain.Candidate, error)

	// Get fetches one candidate's full detail.
	Get(ctx context.Context, id string) (*domain.Candidate, error)

	// Delete removes a candidate and its documents server-side.
	Delete(ctx context.Context, id string) error

	// UpdateTelegram links a Telegram handle. Rejects empty usernames
	// before any request is sent.
	UpdateTelegram(ctx context.Context, id, username string) error

	// RequestDocuments starts identity-document collection and returns
	// the server's status message.
	RequestDocuments(ctx context.Context, id string) (string, error)
}
