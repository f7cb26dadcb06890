package services

import (
	"container/heap"
	"time"

	"github.com/google/uuid"

	"github.com/parassrivastav/traqcheck-cli/internal/core/domain"
)

// toastEventKind distinguishes scheduled queue events.
type toastEventKind int

const (
	eventShow toastEventKind = iota
	eventExpire
)

// toastEvent is one scheduled mutation of the queue: a staggered arrival
// or an expiry.
type toastEvent struct {
	at   time.Time
	seq  uint64
	kind toastEventKind

	// For eventShow: the toast to surface.
	message  string
	severity domain.Severity

	// For eventExpire: the toast to remove.
	toastID string
}

// eventHeap orders events by due time, sequence number as tiebreaker so
// same-instant events apply in schedule order.
type eventHeap []toastEvent

func (h eventHeap) Len() int { return len(h) }
func (h eventHeap) Less(i, j int) bool {
	if h[i].at.Equal(h[j].at) {
		return h[i].seq < h[j].seq
	}
	return h[i].at.Before(h[j].at)
}
func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) { *h = append(*h, x.(toastEvent)) }

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	ev := old[n-1]
	*h = old[:n-1]
	return ev
}

// ToastQueue owns every Toast. It renders transient feedback in enqueue
// order with a fixed independent TTL per toast, and staggers sequenced
// arrivals. All timing flows through one event heap drained by Advance,
// so the caller needs a single wake-up timer and teardown is dropping
// the queue.
type ToastQueue struct {
	now    func() time.Time
	active []domain.Toast
	events eventHeap
	seq    uint64
}

// NewToastQueue creates an empty queue using the real clock.
func NewToastQueue() *ToastQueue {
	return NewToastQueueWithClock(time.Now)
}

// NewToastQueueWithClock creates a queue with an injectable clock.
func NewToastQueueWithClock(now func() time.Time) *ToastQueue {
	return &ToastQueue{now: now}
}

// Enqueue surfaces a toast immediately and schedules its removal after
// domain.ToastTTL. The expiry is fixed at enqueue time and is not reset
// by later queue activity. Returns the new toast.
func (q *ToastQueue) Enqueue(message string, severity domain.Severity) domain.Toast {
	return q.show(message, severity, q.now())
}

// EnqueueSequence schedules the messages to surface in input order,
// spaced domain.ToastSpacing apart starting now. Used when one backend
// action reports several human-readable stages.
func (q *ToastQueue) EnqueueSequence(messages []string, severity domain.Severity) {
	base := q.now()
	for i, msg := range messages {
		if i == 0 {
			q.show(msg, severity, base)
			continue
		}
		q.seq++
		heap.Push(&q.events, toastEvent{
			at:       base.Add(time.Duration(i) * domain.ToastSpacing),
			seq:      q.seq,
			kind:     eventShow,
			message:  msg,
			severity: severity,
		})
	}
}

// show makes a toast active at the given instant and schedules its expiry.
func (q *ToastQueue) show(message string, severity domain.Severity, at time.Time) domain.Toast {
	t := domain.Toast{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		CreatedAt: at,
		ExpiresAt: at.Add(domain.ToastTTL),
	}
	q.active = append(q.active, t)
	q.seq++
	heap.Push(&q.events, toastEvent{
		at:      t.ExpiresAt,
		seq:     q.seq,
		kind:    eventExpire,
		toastID: t.ID,
	})
	return t
}

// Advance applies every event due at or before now: staggered arrivals
// surface and expired toasts are removed, first expired first. Returns
// true when anything changed.
func (q *ToastQueue) Advance(now time.Time) bool {
	changed := false
	for len(q.events) > 0 && !q.events[0].at.After(now) {
		ev := heap.Pop(&q.events).(toastEvent)
		switch ev.kind {
		case eventShow:
			q.show(ev.message, ev.severity, ev.at)
		case eventExpire:
			q.remove(ev.toastID)
		}
		changed = true
	}
	return changed
}

// remove drops a toast from the active list, preserving enqueue order of
// the remainder.
func (q *ToastQueue) remove(id string) {
	kept := q.active[:0]
	for _, t := range q.active {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	q.active = kept
}

// Next returns the due time of the earliest scheduled event, false when
// nothing is pending. The caller uses it to arm its single wake-up timer.
func (q *ToastQueue) Next() (time.Time, bool) {
	if len(q.events) == 0 {
		return time.Time{}, false
	}
	return q.events[0].at, true
}

// Active returns the visible toasts in enqueue order.
func (q *ToastQueue) Active() []domain.Toast {
	return q.active
}
