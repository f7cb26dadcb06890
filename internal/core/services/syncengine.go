package services

import (
	"errors"
	"unicode"
	"unicode/utf8"

	"github.com/parassrivastav/traqcheck-cli/internal/core/domain"

	"github.com/parassrivastav/traqcheck-cli/internal/logger"
)

// RefreshToken identifies one issued candidate-list refresh.
type RefreshToken uint64

// SelectToken identifies one issued candidate selection.
type SelectToken uint64

// Notice is user-visible feedback an engine asks the caller to enqueue.
type Notice struct {
	// Message is the toast text.
	Message string

	// Severity is success or error.
	Severity domain.Severity
}

// RefreshOutcome describes what the caller must do after a refresh
// completes.
type RefreshOutcome struct {
	// Applied is false when the response was stale and discarded.
	Applied bool

	// Notify is a toast to enqueue, nil for silent failures and successes.
	Notify *Notice

	// ScheduleRetry asks for exactly one silent refresh after
	// domain.RetryDelay.
	ScheduleRetry bool
}

// SelectOutcome describes what the caller must do after a candidate
// detail fetch completes.
type SelectOutcome struct {
	// Applied is false when the response was stale and discarded.
	Applied bool

	// Notify is a toast to enqueue on failure.
	Notify *Notice

	// FetchDocuments asks the caller to fetch the selected candidate's
	// document list next, using the same token.
	FetchDocuments bool
}

// DocumentsOutcome describes what the caller must do after a document
// list fetch completes.
type DocumentsOutcome struct {
	// Applied is false when the response was stale and discarded.
	Applied bool

	// Notify is a toast to enqueue on failure. A documents failure never
	// discards the candidate selection.
	Notify *Notice
}

// SyncEngine keeps the local candidate list and current selection
// consistent with the remote source of truth. It is a pure state machine:
// timers and network calls live with the caller, completions are fed back
// in, and every in-flight operation carries a token so that stale
// responses are discarded rather than applied out of order.
type SyncEngine struct {
	candidates []domain.Candidate
	failed     bool

	refreshToken  RefreshToken
	refreshSilent bool
	retryPending  bool

	selected    *domain.Candidate
	documents   []domain.Document
	selectToken SelectToken
}

// NewSyncEngine creates an engine with an empty snapshot.
func NewSyncEngine() *SyncEngine {
	return &SyncEngine{}
}

// BeginRefresh issues a token for a candidate-list fetch. Only the most
// recently issued token will be applied.
func (e *SyncEngine) BeginRefresh(silent bool) RefreshToken {
	e.refreshToken++
	e.refreshSilent = silent
	return e.refreshToken
}

// ApplyRefresh feeds a completed list fetch back into the engine.
// Success replaces the snapshot atomically and clears the failure flag.
// A non-silent failure produces one error toast and asks for exactly one
// silent retry; a silent failure stays quiet and never chains another
// retry, bounding retry storms to one extra attempt per failure.
func (e *SyncEngine) ApplyRefresh(tok RefreshToken, list []domain.Candidate, err error) RefreshOutcome {
	if tok != e.refreshToken {
		logger.Debug("discarding stale refresh response (token %d, latest %d)", tok, e.refreshToken)
		return RefreshOutcome{}
	}

	if err != nil {
		e.failed = true
		if e.refreshSilent {
			return RefreshOutcome{Applied: true}
		}
		out := RefreshOutcome{
			Applied: true,
			Notify: &Notice{
				Message:  messageFromError(err, "Unable to fetch candidates"),
				Severity: domain.SeverityError,
			},
		}
		if !e.retryPending {
			e.retryPending = true
			out.ScheduleRetry = true
		}
		return out
	}

	e.candidates = list
	e.failed = false
	return RefreshOutcome{Applied: true}
}

// RetryDue marks the pending silent retry as fired. The caller should
// follow with BeginRefresh(true) and the matching fetch.
func (e *SyncEngine) RetryDue() {
	e.retryPending = false
}

// BeginSelect issues a token for a candidate detail fetch, superseding
// any selection still in flight. The prior snapshot is discarded once the
// detail arrives; concurrent selects are resolved by the token, not by
// arrival order.
func (e *SyncEngine) BeginSelect(id string) SelectToken {
	e.selectToken++
	logger.Debug("selecting candidate %s (token %d)", id, e.selectToken)
	return e.selectToken
}

// ApplySelect feeds a completed detail fetch back into the engine. On
// success the candidate becomes the current selection with an empty
// document list, and the caller is asked to fetch documents next. On
// failure the previous selection is left untouched.
func (e *SyncEngine) ApplySelect(tok SelectToken, candidate *domain.Candidate, err error) SelectOutcome {
	if tok != e.selectToken {
		logger.Debug("discarding stale selection response (token %d, latest %d)", tok, e.selectToken)
		return SelectOutcome{}
	}

	if err != nil {
		return SelectOutcome{
			Applied: true,
			Notify: &Notice{
				Message:  messageFromError(err, "Unable to fetch candidate"),
				Severity: domain.SeverityError,
			},
		}
	}

	e.selected = candidate
	e.documents = nil
	return SelectOutcome{Applied: true, FetchDocuments: true}
}

// ApplyDocuments feeds a completed document list fetch back into the
// engine. Failure surfaces an error but keeps the candidate selection:
// partial success is allowed.
func (e *SyncEngine) ApplyDocuments(tok SelectToken, docs []domain.Document, err error) DocumentsOutcome {
	if tok != e.selectToken {
		logger.Debug("discarding stale documents response (token %d, latest %d)", tok, e.selectToken)
		return DocumentsOutcome{}
	}

	if err != nil {
		return DocumentsOutcome{
			Applied: true,
			Notify: &Notice{
				Message:  messageFromError(err, "Unable to fetch documents"),
				Severity: domain.SeverityError,
			},
		}
	}

	e.documents = docs
	return DocumentsOutcome{Applied: true}
}

// CurrentSelectToken returns the token of the live selection, for
// follow-up document re-fetches that must still respect supersession.
func (e *SyncEngine) CurrentSelectToken() SelectToken {
	return e.selectToken
}

// RemoveCandidate drops a confirmed-deleted candidate from the snapshot.
// This is the only local mutation outside a full refresh. When the
// deleted candidate was selected, the selection and its documents are
// cleared and any in-flight selection is invalidated.
func (e *SyncEngine) RemoveCandidate(id string) {
	kept := e.candidates[:0]
	for _, c := range e.candidates {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	e.candidates = kept

	if e.selected != nil && e.selected.ID == id {
		e.selected = nil
		e.documents = nil
		e.selectToken++
	}
}

// Candidates returns the last successfully fetched snapshot.
func (e *SyncEngine) Candidates() []domain.Candidate {
	return e.candidates
}

// Selected returns the current candidate selection, nil when none.
func (e *SyncEngine) Selected() *domain.Candidate {
	return e.selected
}

// Documents returns the selected candidate's document list.
func (e *SyncEngine) Documents() []domain.Document {
	return e.documents
}

// Failed reports whether the last refresh failed. Silent failures set it
// too; the status bar renders it as a retrying banner.
func (e *SyncEngine) Failed() bool {
	return e.failed
}

// RetryPending reports whether a silent retry is scheduled.
func (e *SyncEngine) RetryPending() bool {
	return e.retryPending
}

// serverMessenger is implemented by adapter errors that carry a
// server-provided message.
type serverMessenger interface {
	ServerMessage() string
}

// NoticeFromError builds an error notice for a failed operation,
// preferring the server's error text over the fallback.
func NoticeFromError(err error, fallback string) *Notice {
	return &Notice{
		Message:  messageFromError(err, fallback),
		Severity: domain.SeverityError,
	}
}

// messageFromError prefers the server's error text over the generic
// per-operation fallback. Validation gaps never left the process, so
// their own text names what the user must fix.
func messageFromError(err error, fallback string) string {
	var sm serverMessenger
	if errors.As(err, &sm) && sm.ServerMessage() != "" {
		return sm.ServerMessage()
	}
	if domain.IsValidationGap(err) {
		return capitalise(err.Error())
	}
	return fallback
}

// capitalise upper-cases the first rune for toast display.
func capitalise(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
