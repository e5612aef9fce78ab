package audit

import (
	"context"
	"sync"

	id "denclass/pkg/domain"
	"denclass/pkg/platform/sentinel"
)

// Log is the in-memory, append-only audit trail. Entries are held
// most-recent-first: every insert prepends, so the head of List is always
// the latest action.
type Log struct {
	mu     sync.RWMutex
	events []Event
}

func NewLog(initial ...Event) *Log {
	log := &Log{}
	log.events = append(log.events, initial...)
	return log
}

// Prepend inserts an event at the head of the log.
func (l *Log) Prepend(_ context.Context, event Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append([]Event{event}, l.events...)
	return nil
}

// List returns all events, most recent first.
func (l *Log) List(_ context.Context) ([]Event, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Event{}, l.events...), nil
}

// ListRecent returns up to limit events from the head of the log.
func (l *Log) ListRecent(_ context.Context, limit int) ([]Event, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if limit < 0 {
		limit = 0
	}
	if limit > len(l.events) {
		limit = len(l.events)
	}
	return append([]Event{}, l.events[:limit]...), nil
}

// ListByObject returns events for one object type, most recent first.
func (l *Log) ListByObject(_ context.Context, objectType ObjectType) ([]Event, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var matched []Event
	for _, event := range l.events {
		if event.ObjectType == objectType {
			matched = append(matched, event)
		}
	}
	return matched, nil
}

// FindByID returns the event with the given id.
func (l *Log) FindByID(_ context.Context, eventID id.AuditEventID) (Event, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, event := range l.events {
		if event.ID == eventID {
			return event, nil
		}
	}
	return Event{}, sentinel.ErrNotFound
}

// CountHighRisk returns the number of events flagged RiskHigh.
func (l *Log) CountHighRisk(_ context.Context) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	count := 0
	for _, event := range l.events {
		if event.RiskLevel == RiskHigh {
			count++
		}
	}
	return count, nil
}

// Len returns the current number of events.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.events)
}
