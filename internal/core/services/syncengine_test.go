package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parassrivastav/traqcheck-cli/internal/core/domain"
)

// serverError is a test double for adapter errors carrying server text.
type serverError struct {
	message string
}

func (e *serverError) Error() string         { return e.message }
func (e *serverError) ServerMessage() string { return e.message }

func testCandidates() []domain.Candidate {
	return []domain.Candidate{
		{ID: "c-1", Name: "Asha Rao", Email: "asha@example.com"},
		{ID: "c-2", Name: "Vikram Mehta", Email: "vikram@example.com"},
	}
}

func TestSyncEngineRefreshSuccess(t *testing.T) {
	e := NewSyncEngine()

	tok := e.BeginRefresh(false)
	out := e.ApplyRefresh(tok, testCandidates(), nil)

	assert.True(t, out.Applied)
	assert.Nil(t, out.Notify)
	assert.False(t, out.ScheduleRetry)
	assert.Len(t, e.Candidates(), 2)
	assert.False(t, e.Failed())
}

func TestSyncEngineRefreshIsIdempotent(t *testing.T) {
	e := NewSyncEngine()

	tok := e.BeginRefresh(false)
	e.ApplyRefresh(tok, testCandidates(), nil)
	first := e.Candidates()

	tok = e.BeginRefresh(true)
	e.ApplyRefresh(tok, testCandidates(), nil)

	// Same remote state applied twice yields the same local state.
	assert.Equal(t, first, e.Candidates())
}

func TestSyncEngineStaleRefreshDiscarded(t *testing.T) {
	e := NewSyncEngine()

	old := e.BeginRefresh(false)
	newer := e.BeginRefresh(true)

	out := e.ApplyRefresh(old, testCandidates(), nil)
	assert.False(t, out.Applied)
	assert.Empty(t, e.Candidates())

	out = e.ApplyRefresh(newer, testCandidates(), nil)
	assert.True(t, out.Applied)
	assert.Len(t, e.Candidates(), 2)
}

func TestSyncEngineNonSilentFailureNotifiesAndSchedulesOneRetry(t *testing.T) {
	e := NewSyncEngine()

	tok := e.BeginRefresh(false)
	out := e.ApplyRefresh(tok, nil, errors.New("connection refused"))

	require.NotNil(t, out.Notify)
	assert.Equal(t, "Unable to fetch candidates", out.Notify.Message)
	assert.Equal(t, domain.SeverityError, out.Notify.Severity)
	assert.True(t, out.ScheduleRetry)
	assert.True(t, e.Failed())
	assert.True(t, e.RetryPending())

	// A second failure while the retry is pending must not chain
	// another retry.
	tok = e.BeginRefresh(false)
	out = e.ApplyRefresh(tok, nil, errors.New("still down"))
	assert.NotNil(t, out.Notify)
	assert.False(t, out.ScheduleRetry)
}

func TestSyncEngineFailurePrefersServerMessage(t *testing.T) {
	e := NewSyncEngine()

	tok := e.BeginRefresh(false)
	out := e.ApplyRefresh(tok, nil, &serverError{message: "Database unavailable"})

	require.NotNil(t, out.Notify)
	assert.Equal(t, "Database unavailable", out.Notify.Message)
}

func TestNoticeFromErrorSurfacesValidationText(t *testing.T) {
	// Client-side validation failures carry their own text; the generic
	// fallback is for remote failures without a server message.
	n := NoticeFromError(domain.ErrTelegramUsernameRequired, "Error updating Telegram username")
	require.NotNil(t, n)
	assert.Equal(t, "Telegram username required", n.Message)
	assert.Equal(t, domain.SeverityError, n.Severity)

	wrapped := fmt.Errorf("%w: cv.txt", domain.ErrUnsupportedFileType)
	assert.Equal(t, "Unsupported file type: cv.txt",
		NoticeFromError(wrapped, "Error uploading resume").Message)

	assert.Equal(t, "Error uploading resume",
		NoticeFromError(errors.New("connection refused"), "Error uploading resume").Message)
}

func TestSyncEngineSilentFailureStaysQuiet(t *testing.T) {
	e := NewSyncEngine()

	tok := e.BeginRefresh(false)
	e.ApplyRefresh(tok, testCandidates(), nil)

	tok = e.BeginRefresh(true)
	out := e.ApplyRefresh(tok, nil, errors.New("timeout"))

	assert.True(t, out.Applied)
	assert.Nil(t, out.Notify)
	assert.False(t, out.ScheduleRetry)
	// The stale snapshot stays visible, only the flag flips.
	assert.Len(t, e.Candidates(), 2)
	assert.True(t, e.Failed())
}

func TestSyncEngineRetryFailureDoesNotChain(t *testing.T) {
	e := NewSyncEngine()

	tok := e.BeginRefresh(false)
	out := e.ApplyRefresh(tok, nil, errors.New("down"))
	require.True(t, out.ScheduleRetry)

	// The retry fires, runs silently, and fails again.
	e.RetryDue()
	assert.False(t, e.RetryPending())

	tok = e.BeginRefresh(true)
	out = e.ApplyRefresh(tok, nil, errors.New("still down"))
	assert.Nil(t, out.Notify)
	assert.False(t, out.ScheduleRetry)
}

func TestSyncEngineSelectSuccess(t *testing.T) {
	e := NewSyncEngine()

	tok := e.BeginSelect("c-1")
	candidate := &domain.Candidate{ID: "c-1", Name: "Asha Rao"}
	out := e.ApplySelect(tok, candidate, nil)

	assert.True(t, out.Applied)
	assert.True(t, out.FetchDocuments)
	require.NotNil(t, e.Selected())
	assert.Equal(t, "c-1", e.Selected().ID)
	assert.Empty(t, e.Documents())
}

func TestSyncEngineSelectFailureKeepsPriorSelection(t *testing.T) {
	e := NewSyncEngine()

	tok := e.BeginSelect("c-1")
	e.ApplySelect(tok, &domain.Candidate{ID: "c-1"}, nil)

	tok = e.BeginSelect("c-2")
	out := e.ApplySelect(tok, nil, errors.New("not found"))

	assert.True(t, out.Applied)
	require.NotNil(t, out.Notify)
	assert.False(t, out.FetchDocuments)
	require.NotNil(t, e.Selected())
	assert.Equal(t, "c-1", e.Selected().ID)
}

func TestSyncEngineLaterSelectSupersedesEarlier(t *testing.T) {
	e := NewSyncEngine()

	tok1 := e.BeginSelect("c-1")
	tok2 := e.BeginSelect("c-2")

	// Responses arrive out of order: the superseded select resolves
	// last and must be discarded entirely.
	out := e.ApplySelect(tok2, &domain.Candidate{ID: "c-2"}, nil)
	assert.True(t, out.Applied)

	docs := []domain.Document{{ID: "d-2", Type: domain.DocumentPAN}}
	e.ApplyDocuments(tok2, docs, nil)

	out = e.ApplySelect(tok1, &domain.Candidate{ID: "c-1"}, nil)
	assert.False(t, out.Applied)
	assert.False(t, out.FetchDocuments)

	// Late documents for the stale token are dropped too.
	staleDocs := e.ApplyDocuments(tok1, []domain.Document{{ID: "d-1"}}, nil)
	assert.False(t, staleDocs.Applied)

	require.NotNil(t, e.Selected())
	assert.Equal(t, "c-2", e.Selected().ID)
	require.Len(t, e.Documents(), 1)
	assert.Equal(t, "d-2", e.Documents()[0].ID)
}

func TestSyncEngineDocumentsFailureKeepsSelection(t *testing.T) {
	e := NewSyncEngine()

	tok := e.BeginSelect("c-1")
	e.ApplySelect(tok, &domain.Candidate{ID: "c-1"}, nil)

	out := e.ApplyDocuments(tok, nil, errors.New("boom"))

	assert.True(t, out.Applied)
	require.NotNil(t, out.Notify)
	assert.Equal(t, "Unable to fetch documents", out.Notify.Message)
	require.NotNil(t, e.Selected())
	assert.Equal(t, "c-1", e.Selected().ID)
}

func TestSyncEngineRemoveCandidate(t *testing.T) {
	e := NewSyncEngine()

	tok := e.BeginRefresh(false)
	e.ApplyRefresh(tok, testCandidates(), nil)

	sel := e.BeginSelect("c-1")
	e.ApplySelect(sel, &domain.Candidate{ID: "c-1"}, nil)
	e.ApplyDocuments(sel, []domain.Document{{ID: "d-1"}}, nil)

	e.RemoveCandidate("c-1")

	require.Len(t, e.Candidates(), 1)
	assert.Equal(t, "c-2", e.Candidates()[0].ID)
	assert.Nil(t, e.Selected())
	assert.Empty(t, e.Documents())

	// A document response for the removed selection is now stale.
	out := e.ApplyDocuments(sel, []domain.Document{{ID: "d-9"}}, nil)
	assert.False(t, out.Applied)
}

func TestSyncEngineRemoveUnselectedCandidateKeepsSelection(t *testing.T) {
	e := NewSyncEngine()

	tok := e.BeginRefresh(false)
	e.ApplyRefresh(tok, testCandidates(), nil)

	sel := e.BeginSelect("c-1")
	e.ApplySelect(sel, &domain.Candidate{ID: "c-1"}, nil)

	e.RemoveCandidate("c-2")

	require.NotNil(t, e.Selected())
	assert.Equal(t, "c-1", e.Selected().ID)
	require.Len(t, e.Candidates(), 1)
}
