package domain

import "time"

// Severity classifies a toast for styling and logging.
type Severity string

const (
	// SeveritySuccess is positive feedback.
	SeveritySuccess Severity = "success"

	// SeverityError is failure feedback.
	SeverityError Severity = "error"
)

// Toast is a transient, auto-expiring feedback message. Toasts are
// client-only and never persisted.
type Toast struct {
	// ID is a unique identifier for removal bookkeeping.
	ID string

	// Message is the human-readable text.
	Message string

	// Severity is success or error.
	Severity Severity

	// CreatedAt is when the toast became visible.
	CreatedAt time.Time

	// ExpiresAt is CreatedAt plus the fixed display window.
	ExpiresAt time.Time
}

// Timing constants for the sync and notification engines. Each timer is
// independent and individually cancelable on teardown.
const (
	// PollInterval is the cadence of silent background list refreshes,
	// the sole liveness mechanism (no push channel).
	PollInterval = 12 * time.Second

	// RetryDelay is the wait before the single silent retry scheduled
	// after a failed non-silent refresh.
	RetryDelay = 3 * time.Second

	// ToastTTL is the fixed display window of every toast. It is never
	// reset by later queue activity.
	ToastTTL = 3600 * time.Millisecond

	// ToastSpacing staggers toasts enqueued as an ordered sequence.
	ToastSpacing = 600 * time.Millisecond
)
