package driving

import "context"

// ProgressFunc receives upload progress as a whole percentage.
type ProgressFunc func(percent int)

// UploadOutcome is what a finished resume upload yields to the caller.
type UploadOutcome struct {
	// CandidateID is the id of the freshly created candidate.
	CandidateID string

	// Confidence is the extractor's confidence for the new record.
	Confidence float64

	// StageMessages are the server's per-stage outcomes for the upload,
	// already defaulted when the server omits them.
	StageMessages []string
}

// UploadService drives a single resume upload.
type UploadService interface {
	// Upload validates the file (exists, .pdf or .docx) and streams it
	// to the server, reporting progress through fn when non-nil.
	Upload(ctx context.Context, path string, fn ProgressFunc) (*UploadOutcome, error)
}
