// Package service orchestrates senior review of treatment-plan changes.
// Approving or returning a plan clears its re-approval flag, appends one
// audit event, and enqueues a UI notification.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"denclass/internal/audit"
	"denclass/internal/notification"
	planmetrics "denclass/internal/treatmentplan/metrics"
	"denclass/internal/treatmentplan/models"
	id "denclass/pkg/domain"
	dErrors "denclass/pkg/domain-errors"
	"denclass/pkg/platform/sentinel"
	"denclass/pkg/requestcontext"
)

type PlanStore interface {
	FindByID(ctx context.Context, planID id.TreatmentPlanID) (*models.TreatmentPlan, error)
	Execute(ctx context.Context, planID id.TreatmentPlanID, validate func(*models.TreatmentPlan) error, mutate func(*models.TreatmentPlan)) (*models.TreatmentPlan, error)
	List(ctx context.Context, status models.Status) ([]*models.TreatmentPlan, error)
	CountAwaiting(ctx context.Context) (int, error)
}

type AuditEmitter interface {
	Emit(ctx context.Context, event audit.Event) error
}

type Notifier interface {
	Enqueue(ctx context.Context, message string, severity notification.Severity) notification.Notification
}

// Service orchestrates treatment-plan review decisions.
type Service struct {
	plans    PlanStore
	auditor  AuditEmitter
	notifier Notifier
	logger   *slog.Logger
	metrics  *planmetrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithNotifier(notifier Notifier) Option {
	return func(s *Service) {
		s.notifier = notifier
	}
}

func WithMetrics(m *planmetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func NewService(plans PlanStore, auditor AuditEmitter, opts ...Option) *Service {
	s := &Service{plans: plans, auditor: auditor}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Review resolves a plan with the approver's decision. Notes are optional
// for both outcomes and replace the plan's risk notes only when provided.
// Post-review the plan never requires re-approval, whatever the flag held
// before. An unknown id fails with CodeNotFound.
//
// One logical timestamp is captured per call and shared by the record
// update and its audit event.
func (s *Service) Review(ctx context.Context, planID id.TreatmentPlanID, decision models.Decision, approver, notes string) (*models.TreatmentPlan, error) {
	start := time.Now()
	approver = strings.TrimSpace(approver)
	if planID == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "treatment plan id is required")
	}

	now := requestcontext.Now(ctx)
	var previous models.Status
	plan, err := s.plans.Execute(ctx, planID,
		func(p *models.TreatmentPlan) error {
			previous = p.Status
			return p.CanDecide(decision, approver)
		},
		func(p *models.TreatmentPlan) {
			p.ApplyDecision(decision, notes, now)
		},
	)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "treatment plan not found")
		}
		return nil, err
	}

	if err := s.auditor.Emit(ctx, audit.Event{
		ObjectType: audit.ObjectTreatmentPlan,
		ObjectID:   planID.String(),
		Action:     "REVIEW_" + strings.ToUpper(string(decision)),
		Timestamp:  now,
		Actor:      approver,
		Details:    fmt.Sprintf("Treatment plan %s %s by %s.", planID, decision, approver),
		Diff:       audit.StatusDiff(string(previous), string(plan.Status)),
	}); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		severity := notification.SeveritySuccess
		if decision == models.DecisionReturned {
			severity = notification.SeverityInfo
		}
		s.notifier.Enqueue(ctx, fmt.Sprintf("Treatment plan %s %s.", planID, decision), severity)
	}

	if s.metrics != nil {
		s.metrics.IncrementDecision(decision == models.DecisionApproved)
		s.metrics.ObserveReview(start)
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "treatment plan reviewed",
			"plan_id", plan.ID,
			"previous_status", previous,
			"decision", decision,
			"approver", approver,
		)
	}
	return plan, nil
}

// Get returns one treatment plan by id.
func (s *Service) Get(ctx context.Context, planID id.TreatmentPlanID) (*models.TreatmentPlan, error) {
	plan, err := s.plans.FindByID(ctx, planID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "treatment plan not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load treatment plan")
	}
	return plan, nil
}

// List returns plans in queue order, optionally filtered by status.
func (s *Service) List(ctx context.Context, status models.Status) ([]*models.TreatmentPlan, error) {
	if status != "" && !status.Valid() {
		return nil, dErrors.New(dErrors.CodeValidation, "unknown treatment plan status")
	}
	plans, err := s.plans.List(ctx, status)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list treatment plans")
	}
	return plans, nil
}
