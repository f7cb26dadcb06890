// Package toast renders the transient notification stack for the TUI.
package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driving/tui/messages"
	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driving/tui/styles"
	"github.com/parassrivastav/traqcheck-cli/internal/core/domain"
	"github.com/parassrivastav/traqcheck-cli/internal/core/services"
)

// Toaster owns the notification queue and its single wake-up timer.
// Every mutation re-arms one tick for the queue's earliest scheduled
// event; the generation counter makes superseded ticks inert, so
// teardown is simply letting the last tick go stale.
type Toaster struct {
	styles     *styles.Styles
	queue      *services.ToastQueue
	generation uint64
}

// New creates a toaster with an empty queue.
func New(s *styles.Styles) *Toaster {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Toaster{
		styles: s,
		queue:  services.NewToastQueue(),
	}
}

// NewWithQueue creates a toaster over an existing queue, for tests that
// inject a clock.
func NewWithQueue(s *styles.Styles, q *services.ToastQueue) *Toaster {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Toaster{styles: s, queue: q}
}

// Enqueue surfaces one toast and re-arms the scheduler.
func (t *Toaster) Enqueue(message string, severity domain.Severity) tea.Cmd {
	t.queue.Enqueue(message, severity)
	return t.schedule()
}

// EnqueueSequence schedules a staggered toast sequence and re-arms the
// scheduler.
func (t *Toaster) EnqueueSequence(msgs []string, severity domain.Severity) tea.Cmd {
	t.queue.EnqueueSequence(msgs, severity)
	return t.schedule()
}

// Notify enqueues an engine notice. Nil notices are a no-op so callers
// can pass outcomes through unconditionally.
func (t *Toaster) Notify(n *services.Notice) tea.Cmd {
	if n == nil {
		return nil
	}
	return t.Enqueue(n.Message, n.Severity)
}

// Update handles scheduler wake-ups.
func (t *Toaster) Update(msg tea.Msg) (*Toaster, tea.Cmd) {
	tick, ok := msg.(messages.ToastTick)
	if !ok || tick.Generation != t.generation {
		return t, nil
	}
	t.queue.Advance(tick.Now)
	return t, t.schedule()
}

// schedule arms one tick for the earliest scheduled queue event,
// invalidating any tick already in flight.
func (t *Toaster) schedule() tea.Cmd {
	next, ok := t.queue.Next()
	if !ok {
		t.generation++
		return nil
	}
	t.generation++
	gen := t.generation
	return tea.Tick(time.Until(next), func(now time.Time) tea.Msg {
		return messages.ToastTick{Generation: gen, Now: now}
	})
}

// View renders the visible toasts in enqueue order, newest last.
func (t *Toaster) View() string {
	active := t.queue.Active()
	if len(active) == 0 {
		return ""
	}
	out := ""
	for i, toast := range active {
		style := t.styles.ToastSuccess
		if toast.Severity == domain.SeverityError {
			style = t.styles.ToastError
		}
		if i > 0 {
			out += "\n"
		}
		out += style.Render(toast.Message)
	}
	return out
}

// Active exposes the visible toasts, for tests and the status bar.
func (t *Toaster) Active() []domain.Toast {
	return t.queue.Active()
}
