package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parassrivastav/traqcheck-cli/internal/core/domain"
	"github.com/parassrivastav/traqcheck-cli/internal/core/ports/driven"
)

func TestAllowedResume(t *testing.T) {
	assert.True(t, AllowedResume("cv.pdf"))
	assert.True(t, AllowedResume("CV.PDF"))
	assert.True(t, AllowedResume("resume.docx"))
	assert.False(t, AllowedResume("resume.doc"))
	assert.False(t, AllowedResume("notes.txt"))
	assert.False(t, AllowedResume("archive"))
}

func TestUploadServiceRejectsBadInput(t *testing.T) {
	svc := NewUploadService(&mockAPI{})
	ctx := context.Background()

	_, err := svc.Upload(ctx, "", nil)
	assert.ErrorIs(t, err, domain.ErrNoFile)

	_, err = svc.Upload(ctx, writeTempFile(t, "notes.txt"), nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)

	_, err = svc.Upload(ctx, "/nonexistent/cv.pdf", nil)
	assert.ErrorIs(t, err, domain.ErrNoFile)
}

func TestUploadServicePassesThroughServerStages(t *testing.T) {
	api := &mockAPI{
		uploadFunc: func(_ context.Context, _ string, fn driven.ProgressFunc) (*driven.UploadReceipt, error) {
			fn(50)
			fn(100)
			return &driven.UploadReceipt{
				CandidateID:   "c-9",
				Confidence:    0.87,
				StageMessages: []string{"Received", "Parsed"},
			}, nil
		},
	}
	svc := NewUploadService(api)

	var reported []int
	outcome, err := svc.Upload(context.Background(), writeTempFile(t, "cv.pdf"), func(p int) {
		reported = append(reported, p)
	})
	require.NoError(t, err)
	assert.Equal(t, "c-9", outcome.CandidateID)
	assert.InDelta(t, 0.87, outcome.Confidence, 1e-9)
	assert.Equal(t, []string{"Received", "Parsed"}, outcome.StageMessages)
	assert.Equal(t, []int{50, 100}, reported)
}

func TestUploadServiceDefaultsStageMessages(t *testing.T) {
	api := &mockAPI{
		uploadFunc: func(context.Context, string, driven.ProgressFunc) (*driven.UploadReceipt, error) {
			return &driven.UploadReceipt{CandidateID: "c-9"}, nil
		},
	}
	svc := NewUploadService(api)

	outcome, err := svc.Upload(context.Background(), writeTempFile(t, "cv.docx"), nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultUploadStageMessages(), outcome.StageMessages)
}
