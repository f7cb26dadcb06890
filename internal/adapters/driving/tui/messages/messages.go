// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and command completions that flow through
// the Elm architecture: network responses, timer ticks and navigation.
package messages

import (
	"time"

	"github.com/parassrivastav/traqcheck-cli/internal/core/domain"
	"github.com/parassrivastav/traqcheck-cli/internal/core/ports/driving"
	"github.com/parassrivastav/traqcheck-cli/internal/core/services"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewDashboard is the candidate list.
	ViewDashboard ViewType = iota
	// ViewProfile shows a selected candidate with documents and actions.
	ViewProfile
	// ViewUpload is the resume upload view.
	ViewUpload
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewDashboard:
		return "dashboard"
	case ViewProfile:
		return "profile"
	case ViewUpload:
		return "upload"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// Quit signals the application should exit.
type Quit struct{}

// PollTick fires the recurring silent list refresh. Generation guards
// against ticks from a torn-down chain.
type PollTick struct {
	Generation uint64
}

// RetryDue fires the single silent retry scheduled after a failed
// non-silent refresh.
type RetryDue struct {
	Token services.RefreshToken
}

// CandidatesLoaded carries a completed candidate-list fetch.
type CandidatesLoaded struct {
	Token      services.RefreshToken
	Candidates []domain.Candidate
	Err        error
}

// CandidateSelected asks for a candidate's profile to be opened.
type CandidateSelected struct {
	ID string
}

// CandidateLoaded carries a completed candidate detail fetch.
type CandidateLoaded struct {
	Token     services.SelectToken
	Candidate *domain.Candidate
	Err       error
}

// DocumentsLoaded carries a completed document-list fetch for the
// selected candidate.
type DocumentsLoaded struct {
	Token     services.SelectToken
	Documents []domain.Document
	Err       error
}

// ToastTick wakes the notification queue scheduler. Generation guards
// against stale wake-ups after the schedule changed.
type ToastTick struct {
	Generation uint64
	Now        time.Time
}

// UploadStarted signals a resume transfer began.
type UploadStarted struct {
	File string
}

// UploadProgressed carries one reported transfer percentage.
type UploadProgressed struct {
	Percent int
}

// UploadTransferDone carries the raw transfer completion before the
// tracker records a terminal state.
type UploadTransferDone struct {
	Outcome *driving.UploadOutcome
	Err     error
}

// UploadFinished carries the terminal upload outcome.
type UploadFinished struct {
	Outcome *services.UploadResult
}

// ResumeDropped signals the drop watcher saw a new resume file.
type ResumeDropped struct {
	Path string
}

// RefreshRequested asks for a candidate-list refresh.
type RefreshRequested struct {
	Silent bool
}

// DeleteRequested asks the delete workflow to capture a target.
type DeleteRequested struct {
	Candidate *domain.Candidate
}

// DeleteConfirmed approves the pending delete.
type DeleteConfirmed struct{}

// DeleteCancelled abandons the pending delete with no remote effect.
type DeleteCancelled struct{}

// DeleteCommitted carries the raw remote delete completion before the
// workflow records it.
type DeleteCommitted struct {
	Err error
}

// TelegramUpdated signals the telegram link call completed.
type TelegramUpdated struct {
	Err error
}

// DocumentsRequested carries the request-documents response.
type DocumentsRequested struct {
	Message string
	Err     error
}

// DocumentsSubmitted signals the identity-document submission completed.
type DocumentsSubmitted struct {
	Err error
}
