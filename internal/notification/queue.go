// Package notification manages ephemeral user-facing messages. The queue
// has a lifecycle independent of domain data: dropping or dismissing a
// notification never affects certificates, plans, or the audit trail.
package notification

import (
	"context"
	"sync"
	"time"

	id "denclass/pkg/domain"
	"denclass/pkg/requestcontext"
)

// Severity mirrors the UI toast levels.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// DefaultAutoHide is how long a notification stays visible unless the
// caller overrides it.
const DefaultAutoHide = 6 * time.Second

// Notification is a transient UI message produced by store mutations.
type Notification struct {
	ID         id.NotificationID `json:"id"`
	Message    string            `json:"message"`
	Severity   Severity          `json:"severity"`
	AutoHide   time.Duration     `json:"autoHideDuration"`
	EnqueuedAt time.Time         `json:"-"`
}

// expiresAt is when the dispatcher may auto-dismiss the notification.
func (n Notification) expiresAt() time.Time {
	return n.EnqueuedAt.Add(n.AutoHide)
}

// Queue is a bounded-lifetime, insertion-ordered notification buffer.
// Oldest entries come first in List, matching toast stacking order.
type Queue struct {
	mu       sync.Mutex
	items    []Notification
	autoHide time.Duration

	dismissed int64
}

type QueueOption func(q *Queue)

// WithAutoHide overrides the default auto-hide duration for all
// notifications enqueued without an explicit duration.
func WithAutoHide(d time.Duration) QueueOption {
	return func(q *Queue) {
		if d > 0 {
			q.autoHide = d
		}
	}
}

func NewQueue(opts ...QueueOption) *Queue {
	q := &Queue{autoHide: DefaultAutoHide}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Enqueue appends a notification with a generated unique id. The enqueue
// time comes from the operation-scoped context clock so tests can pin it.
func (q *Queue) Enqueue(ctx context.Context, message string, severity Severity) Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := Notification{
		ID:         id.NewNotificationID(),
		Message:    message,
		Severity:   severity,
		AutoHide:   q.autoHide,
		EnqueuedAt: requestcontext.Now(ctx),
	}
	q.items = append(q.items, n)
	return n
}

// Dismiss removes the matching notification. Dismissing an absent id is a
// no-op, which makes the race between explicit dismissal and auto-dismissal
// safe: both converge on the same removal.
func (q *Queue) Dismiss(notificationID id.NotificationID) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, n := range q.items {
		if n.ID == notificationID {
			q.items = append(q.items[:i], q.items[i+1:]...)
			q.dismissed++
			return true
		}
	}
	return false
}

// Sweep dismisses every notification whose auto-hide window has elapsed at
// now. Returns the number removed. The dispatcher calls this on each tick;
// tests call it directly with synthetic times.
func (q *Queue) Sweep(now time.Time) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	kept := q.items[:0]
	removed := 0
	for _, n := range q.items {
		if !n.expiresAt().After(now) {
			removed++
			continue
		}
		kept = append(kept, n)
	}
	q.items = kept
	q.dismissed += int64(removed)
	return removed
}

// List returns the notifications in insertion order, oldest first.
func (q *Queue) List() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Notification{}, q.items...)
}

// Len returns the current queue depth.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Dismissed returns the total number of notifications removed so far.
func (q *Queue) Dismissed() int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dismissed
}
