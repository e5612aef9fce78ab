// Package service orchestrates certificate review: each mutation computes
// the next record state, commits it atomically, appends exactly one audit
// event sharing the mutation timestamp, and enqueues a UI notification.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"denclass/internal/audit"
	certmetrics "denclass/internal/certificate/metrics"
	"denclass/internal/certificate/models"
	"denclass/internal/notification"
	id "denclass/pkg/domain"
	dErrors "denclass/pkg/domain-errors"
	"denclass/pkg/platform/sentinel"
	"denclass/pkg/requestcontext"
)

type CertificateStore interface {
	FindByID(ctx context.Context, certID id.CertificateID) (*models.Certificate, error)
	Execute(ctx context.Context, certID id.CertificateID, validate func(*models.Certificate) error, mutate func(*models.Certificate)) (*models.Certificate, error)
	List(ctx context.Context, status models.Status) ([]*models.Certificate, error)
	CountByStatus(ctx context.Context, status models.Status) (int, error)
}

type AuditEmitter interface {
	Emit(ctx context.Context, event audit.Event) error
}

type Notifier interface {
	Enqueue(ctx context.Context, message string, severity notification.Severity) notification.Notification
}

// Service orchestrates certificate lifecycle review.
type Service struct {
	certificates CertificateStore
	auditor      AuditEmitter
	notifier     Notifier
	logger       *slog.Logger
	metrics      *certmetrics.Metrics
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

func WithMetrics(m *certmetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func NewService(certificates CertificateStore, auditor AuditEmitter, opts ...Option) *Service {
	s := &Service{certificates: certificates, auditor: auditor}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UpdateStatus transitions a certificate to status, recording reviewer and
// review time. Validation runs before any mutation: a rejection with blank
// notes fails with CodeValidation and leaves the collection and audit log
// untouched. An unknown id fails with CodeNotFound rather than a silent
// no-op, so integration bugs surface at the call site.
//
// Uses the Execute callback pattern for atomic validate-then-mutate; the
// store holds its lock during both validation and mutation. One logical
// timestamp is captured per call and shared by the record update and its
// audit event.
func (s *Service) UpdateStatus(ctx context.Context, certID id.CertificateID, status models.Status, reviewer, notes string) (*models.Certificate, error) {
	start := time.Now()
	reviewer = strings.TrimSpace(reviewer)
	if certID == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "certificate id is required")
	}

	now := requestcontext.Now(ctx)
	var previous models.Status
	cert, err := s.certificates.Execute(ctx, certID,
		func(c *models.Certificate) error {
			previous = c.Status
			return c.CanReview(status, reviewer, notes)
		},
		func(c *models.Certificate) {
			c.ApplyReview(status, reviewer, notes, now)
		},
	)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "certificate not found")
		}
		return nil, err
	}

	if err := s.auditor.Emit(ctx, audit.Event{
		ObjectType: audit.ObjectCertificate,
		ObjectID:   certID.String(),
		Action:     "STATUS_" + strings.ToUpper(string(status)),
		Timestamp:  now,
		Actor:      reviewer,
		Details:    fmt.Sprintf("Certificate %s marked as %s by %s.", certID, status, reviewer),
		Diff:       audit.StatusDiff(string(previous), string(status)),
	}); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		severity := notification.SeveritySuccess
		if status == models.StatusRejected {
			severity = notification.SeverityWarning
		}
		s.notifier.Enqueue(ctx, fmt.Sprintf("Certificate %s marked as %s.", certID, status), severity)
	}

	s.recordReview(status, start)
	s.logReview(ctx, cert, previous)
	return cert, nil
}

// Approve marks the certificate approved. Rationale notes are optional.
func (s *Service) Approve(ctx context.Context, certID id.CertificateID, reviewer, notes string) (*models.Certificate, error) {
	return s.UpdateStatus(ctx, certID, models.StatusApproved, reviewer, notes)
}

// Reject marks the certificate rejected. Rationale notes are mandatory;
// blank notes fail validation before any state changes.
func (s *Service) Reject(ctx context.Context, certID id.CertificateID, reviewer, notes string) (*models.Certificate, error) {
	return s.UpdateStatus(ctx, certID, models.StatusRejected, reviewer, notes)
}

// Get returns one certificate by id.
func (s *Service) Get(ctx context.Context, certID id.CertificateID) (*models.Certificate, error) {
	cert, err := s.certificates.FindByID(ctx, certID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "certificate not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load certificate")
	}
	return cert, nil
}

// List returns certificates in queue order, optionally filtered by status.
func (s *Service) List(ctx context.Context, status models.Status) ([]*models.Certificate, error) {
	if status != "" && !status.Valid() {
		return nil, dErrors.New(dErrors.CodeValidation, "unknown certificate status")
	}
	certs, err := s.certificates.List(ctx, status)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list certificates")
	}
	return certs, nil
}

func (s *Service) recordReview(status models.Status, start time.Time) {
	if s.metrics == nil {
		return
	}
	switch status {
	case models.StatusApproved:
		s.metrics.IncrementApproved()
	case models.StatusRejected:
		s.metrics.IncrementRejected()
	}
	s.metrics.ObserveReview(start)
}

func (s *Service) logReview(ctx context.Context, cert *models.Certificate, previous models.Status) {
	if s.logger == nil {
		return
	}
	s.logger.InfoContext(ctx, "certificate reviewed",
		"certificate_id", cert.ID,
		"previous_status", previous,
		"status", cert.Status,
		"reviewer", cert.Reviewer,
	)
}
