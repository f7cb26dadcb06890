package services

import "github.com/parassrivastav/traqcheck-cli/internal/core/domain"

// UploadPhase is the state of the upload progress tracker.
type UploadPhase int

const (
	// UploadIdle means no upload is running.
	UploadIdle UploadPhase = iota

	// UploadRunning means bytes are being transferred.
	UploadRunning

	// UploadSucceeded is the terminal success state before reset.
	UploadSucceeded

	// UploadFailed is the terminal failure state before reset.
	UploadFailed
)

// String returns the phase name for logging.
func (p UploadPhase) String() string {
	switch p {
	case UploadIdle:
		return "idle"
	case UploadRunning:
		return "uploading"
	case UploadSucceeded:
		return "succeeded"
	case UploadFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// UploadResult is the feedback a terminal transition yields: a toast
// sequence on success, a single error notice on failure, and whether the
// candidate list should be refreshed.
type UploadResult struct {
	// StageMessages is the success sequence to announce, nil on failure.
	StageMessages []string

	// Notify is the single error notice, nil on success.
	Notify *Notice

	// Refresh asks for a non-silent candidate-list refresh.
	Refresh bool
}

// UploadTracker drives a single-file upload through
// Idle -> Uploading -> Succeeded/Failed -> Idle. It owns only display
// state; the transfer itself runs with the caller, which feeds progress
// events in as they arrive.
type UploadTracker struct {
	phase    UploadPhase
	progress int
	file     string
}

// NewUploadTracker creates a tracker in the idle state.
func NewUploadTracker() *UploadTracker {
	return &UploadTracker{}
}

// Start enters the uploading state for one file. Returns
// domain.ErrUploadInProgress when an upload is already running; the UI
// offers a single upload affordance, so this guards rapid double-invocation.
func (t *UploadTracker) Start(file string) error {
	if t.phase == UploadRunning {
		return domain.ErrUploadInProgress
	}
	t.phase = UploadRunning
	t.progress = 0
	t.file = file
	return nil
}

// Progress records a reported percentage. The latest reported value is
// displayed verbatim, clamped to [0,100]; non-monotonic input is
// tolerated and no smoothing is applied. Ignored outside Uploading.
func (t *UploadTracker) Progress(percent int) {
	if t.phase != UploadRunning {
		return
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	t.progress = percent
}

// Succeed records a finished upload. The stage messages (already
// defaulted by the upload service) become the announcement sequence,
// progress resets, and a non-silent refresh is requested.
func (t *UploadTracker) Succeed(stageMessages []string) UploadResult {
	t.phase = UploadSucceeded
	t.progress = 0
	t.file = ""
	return UploadResult{StageMessages: stageMessages, Refresh: true}
}

// Fail records a failed upload. One error notice is produced, preferring
// the server's text; progress resets and no retry is scheduled, the
// user must re-invoke the upload.
func (t *UploadTracker) Fail(err error) UploadResult {
	t.phase = UploadFailed
	t.progress = 0
	t.file = ""
	return UploadResult{
		Notify: &Notice{
			Message:  messageFromError(err, "Error uploading resume"),
			Severity: domain.SeverityError,
		},
	}
}

// Phase returns the current tracker state.
func (t *UploadTracker) Phase() UploadPhase {
	return t.phase
}

// Percent returns the latest displayed progress value.
func (t *UploadTracker) Percent() int {
	return t.progress
}

// File returns the file being uploaded, empty when idle.
func (t *UploadTracker) File() string {
	return t.file
}
