package audit

import (
	"context"
	"log/slog"

	id "denclass/pkg/domain"
	dErrors "denclass/pkg/domain-errors"
	"denclass/pkg/requestcontext"
)

// Store is the sink the service appends to. *Log satisfies it; tests can
// swap in fakes.
type Store interface {
	Prepend(ctx context.Context, event Event) error
}

// Service captures structured audit events. It is append-only and fills in
// the fields callers commonly leave zero: id, timestamp, and actor.
type Service struct {
	store  Store
	logger *slog.Logger
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Emit validates and appends an event. Zero timestamps default to the
// operation-scoped now; empty ids are generated; an empty actor falls back
// to the context actor. Externally originated events (role-permission
// changes, document uploads) enter the trail through here.
func (s *Service) Emit(ctx context.Context, event Event) error {
	if event.ObjectType == "" || event.Action == "" {
		return dErrors.New(dErrors.CodeValidation, "audit event requires object type and action")
	}
	if event.ID == "" {
		event.ID = id.NewAuditEventID()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.Actor == "" {
		event.Actor = requestcontext.Actor(ctx)
	}
	if err := s.store.Prepend(ctx, event); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to append audit event")
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, event.Action,
			"log_type", "audit",
			"object_type", event.ObjectType,
			"object_id", event.ObjectID,
			"actor", event.Actor,
			"risk_level", event.RiskLevel,
		)
	}
	return nil
}
