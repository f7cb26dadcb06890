package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/parassrivastav/traqcheck-cli/internal/core/domain"
	"github.com/parassrivastav/traqcheck-cli/internal/core/ports/driven"
	"github.com/parassrivastav/traqcheck-cli/internal/core/ports/driving"

	"github.com/parassrivastav/traqcheck-cli/internal/logger"
)

// Ensure UploadService implements the interface.
var _ driving.UploadService = (*UploadService)(nil)

// UploadService validates and streams resume uploads.
type UploadService struct {
	api driven.CandidateAPI
}

// NewUploadService creates a new upload service.
func NewUploadService(api driven.CandidateAPI) *UploadService {
	return &UploadService{api: api}
}

// AllowedResume reports whether path has an accepted resume extension.
// Type filtering happens at this boundary, not inside the progress tracker.
func AllowedResume(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".docx":
		return true
	default:
		return false
	}
}

// Upload streams a resume to the server, reporting transfer progress
// through fn when non-nil. Server stage messages are defaulted when the
// response omits them so callers always have a sequence to announce.
func (s *UploadService) Upload(ctx context.Context, path string, fn driving.ProgressFunc) (*driving.UploadOutcome, error) {
	if path == "" {
		return nil, domain.ErrNoFile
	}
	if !AllowedResume(path) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, filepath.Ext(path))
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoFile, path)
	}

	receipt, err := s.api.UploadResume(ctx, path, driven.ProgressFunc(fn))
	if err != nil {
		return nil, fmt.Errorf("upload resume: %w", err)
	}

	messages := receipt.StageMessages
	if len(messages) == 0 {
		messages = DefaultUploadStageMessages()
	}
	logger.Info("uploaded %s as candidate %s", filepath.Base(path), receipt.CandidateID)

	return &driving.UploadOutcome{
		CandidateID:   receipt.CandidateID,
		Confidence:    receipt.Confidence,
		StageMessages: messages,
	}, nil
}

// DefaultUploadStageMessages returns the fixed stage sequence used when
// the server response carries none.
func DefaultUploadStageMessages() []string {
	return []string{
		"Resume uploaded successfully",
		"Extraction successful",
		"Fields have been saved to DB",
	}
}
