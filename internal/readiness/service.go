// Package readiness derives the dashboard queue metrics from the current
// record set. Nothing here is stored: every snapshot is recomputed so the
// counts always reflect the collections as they stand.
package readiness

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	certmodels "denclass/internal/certificate/models"
	platformmetrics "denclass/internal/platform/metrics"
)

// Snapshot is the set of derived queue counts shown on the command center
// dashboard.
type Snapshot struct {
	PendingCertificates   int `json:"pendingRegistrations"`
	UpdatedCertificates   int `json:"updatedCertificates"`
	ExpiredCertificates   int `json:"expiredCertificates"`
	PlansAwaitingApproval int `json:"treatmentPlansAwaiting"`
	HighRiskAlerts        int `json:"highRiskAlerts"`
}

type CertificateCounter interface {
	CountByStatus(ctx context.Context, status certmodels.Status) (int, error)
}

type PlanCounter interface {
	CountAwaiting(ctx context.Context) (int, error)
}

type AuditCounter interface {
	CountHighRisk(ctx context.Context) (int, error)
}

// Service aggregates counts across the three collections.
type Service struct {
	certificates CertificateCounter
	plans        PlanCounter
	auditLog     AuditCounter
	metrics      *platformmetrics.Metrics
}

type Option func(s *Service)

func WithMetrics(m *platformmetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func NewService(certificates CertificateCounter, plans PlanCounter, auditLog AuditCounter, opts ...Option) *Service {
	s := &Service{certificates: certificates, plans: plans, auditLog: auditLog}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot fans the five counts out with shared-context cancellation and
// returns them as one consistent-enough view: collections are independent,
// so cross-collection skew is acceptable here (single logical actor).
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)

	var snap Snapshot
	g.Go(func() error {
		n, err := s.certificates.CountByStatus(ctx, certmodels.StatusPending)
		snap.PendingCertificates = n
		return err
	})
	g.Go(func() error {
		n, err := s.certificates.CountByStatus(ctx, certmodels.StatusUpdated)
		snap.UpdatedCertificates = n
		return err
	})
	g.Go(func() error {
		n, err := s.certificates.CountByStatus(ctx, certmodels.StatusExpired)
		snap.ExpiredCertificates = n
		return err
	})
	g.Go(func() error {
		n, err := s.plans.CountAwaiting(ctx)
		snap.PlansAwaitingApproval = n
		return err
	})
	g.Go(func() error {
		n, err := s.auditLog.CountHighRisk(ctx)
		snap.HighRiskAlerts = n
		return err
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	if s.metrics != nil {
		s.metrics.ObserveSnapshot(start)
	}
	return snap, nil
}
