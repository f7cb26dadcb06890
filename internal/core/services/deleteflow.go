package services

import (
	"fmt"

	"github.com/parassrivastav/traqcheck-cli/internal/core/domain"

	"github.com/parassrivastav/traqcheck-cli/internal/logger"
)

// DeletePhase is the state of the delete confirmation workflow.
type DeletePhase int

const (
	// DeleteIdle means no delete is pending.
	DeleteIdle DeletePhase = iota

	// DeleteAwaitingConfirmation means a target is captured and the
	// confirmation prompt is showing.
	DeleteAwaitingConfirmation

	// DeleteCommitting means the remote delete is in flight.
	DeleteCommitting
)

// PendingDelete captures the target of an unconfirmed delete: just the
// identity and display name needed for the prompt.
type PendingDelete struct {
	// CandidateID is the delete target.
	CandidateID string

	// DisplayName is shown in the confirmation prompt.
	DisplayName string
}

// DeleteResult is the feedback a finished commit yields.
type DeleteResult struct {
	// Removed is the id to drop from the local list, empty on failure.
	Removed string

	// Notify is the toast to enqueue.
	Notify *Notice

	// SilentRefresh asks for a background candidate-list refresh after a
	// successful delete.
	SilentRefresh bool
}

// DeleteFlow guards the destructive candidate delete behind an explicit
// confirmation step. At most one delete request is ever pending; a second
// request while one awaits confirmation replaces the pending target.
// Nothing is removed locally until the server confirms, so a failed
// commit needs no rollback.
type DeleteFlow struct {
	phase   DeletePhase
	pending *PendingDelete
}

// NewDeleteFlow creates a workflow with no pending delete.
func NewDeleteFlow() *DeleteFlow {
	return &DeleteFlow{}
}

// Request captures a candidate as the pending delete target. While a
// commit is in flight the request is ignored; while another target
// awaits confirmation it is replaced.
func (f *DeleteFlow) Request(candidate *domain.Candidate) {
	if candidate == nil || f.phase == DeleteCommitting {
		return
	}
	f.pending = &PendingDelete{
		CandidateID: candidate.ID,
		DisplayName: candidate.DisplayName(),
	}
	f.phase = DeleteAwaitingConfirmation
}

// Cancel abandons the pending delete with no remote effect.
func (f *DeleteFlow) Cancel() {
	if f.phase != DeleteAwaitingConfirmation {
		return
	}
	f.pending = nil
	f.phase = DeleteIdle
}

// Confirm moves the pending delete into the committing state and returns
// the target for the remote call. Returns nil when nothing awaits
// confirmation.
func (f *DeleteFlow) Confirm() *PendingDelete {
	if f.phase != DeleteAwaitingConfirmation || f.pending == nil {
		return nil
	}
	f.phase = DeleteCommitting
	return f.pending
}

// Finish feeds the remote delete result back. Success removes the
// candidate locally, announces it, and asks for a silent refresh;
// failure announces one error and returns to idle with the list
// untouched. Either way the workflow ends with no pending delete.
func (f *DeleteFlow) Finish(err error) DeleteResult {
	if f.phase != DeleteCommitting || f.pending == nil {
		return DeleteResult{}
	}
	target := f.pending
	f.pending = nil
	f.phase = DeleteIdle

	if err != nil {
		logger.Warn("delete of candidate %s failed: %v", target.CandidateID, err)
		return DeleteResult{
			Notify: &Notice{
				Message:  messageFromError(err, "Error deleting candidate"),
				Severity: domain.SeverityError,
			},
		}
	}

	name := target.DisplayName
	if name == "" {
		name = target.CandidateID
	}
	return DeleteResult{
		Removed: target.CandidateID,
		Notify: &Notice{
			Message:  fmt.Sprintf("Deleted %s", name),
			Severity: domain.SeveritySuccess,
		},
		SilentRefresh: true,
	}
}

// Phase returns the current workflow state.
func (f *DeleteFlow) Phase() DeletePhase {
	return f.phase
}

// Pending returns the captured target, nil when idle.
func (f *DeleteFlow) Pending() *PendingDelete {
	return f.pending
}
