package driven

import (
	"context"

	"github.com/parassrivastav/traqcheck-cli/internal/core/domain"
)

// ProgressFunc receives upload progress as a whole percentage, computed
// from bytes transferred over bytes total. Values are reported as the
// transport observes them and are not guaranteed monotonic.
type ProgressFunc func(percent int)

// UploadReceipt is the server's response to a successful resume upload.
type UploadReceipt struct {
	// CandidateID is the id of the candidate created from the resume.
	CandidateID string

	// Confidence is the extractor's confidence for the new record.
	Confidence float64

	// StageMessages are the human-readable stage outcomes the server
	// reports for the one logical upload. May be empty.
	StageMessages []string
}

// CandidateAPI is the remote recruiter service consumed over HTTP.
// All failures are returned as errors; the caller decides whether they
// surface as notifications or stay silent.
type CandidateAPI interface {
	// ListCandidates fetches the full candidate list.
	ListCandidates(ctx context.Context) ([]domain.Candidate, error)

	// GetCandidate fetches one candidate's full detail.
	GetCandidate(ctx context.Context, id string) (*domain.Candidate, error)

	// ListDocuments fetches the identity documents for a candidate.
	ListDocuments(ctx context.Context, candidateID string) ([]domain.Document, error)

	// UploadResume submits a resume file as multipart form data,
	// reporting transfer progress through fn when non-nil.
	UploadResume(ctx context.Context, path string, fn ProgressFunc) (*UploadReceipt, error)

	// RequestDocuments triggers identity-document collection and returns
	// the server's status message.
	RequestDocuments(ctx context.Context, candidateID string) (string, error)

	// UpdateTelegram links a Telegram handle to a candidate.
	UpdateTelegram(ctx context.Context, candidateID, username string) error

	// SubmitDocuments uploads PAN and Aadhaar files for a candidate.
	SubmitDocuments(ctx context.Context, candidateID, panPath, aadhaarPath string) error

	// DeleteCandidate removes a candidate and its documents. Irreversible.
	DeleteCandidate(ctx context.Context, id string) error

	// ResolveFileURL resolves a possibly relative document file URL
	// against the configured API base.
	ResolveFileURL(raw string) string
}
