package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"denclass/internal/audit"
	"denclass/internal/certificate/models"
	certstore "denclass/internal/certificate/store"
	"denclass/internal/notification"
	id "denclass/pkg/domain"
	dErrors "denclass/pkg/domain-errors"
	"denclass/pkg/requestcontext"
)

type CertificateServiceSuite struct {
	suite.Suite
	store   *certstore.InMemory
	log     *audit.Log
	queue   *notification.Queue
	service *Service
	ctx     context.Context
	now     time.Time
}

func TestCertificateServiceSuite(t *testing.T) {
	suite.Run(t, new(CertificateServiceSuite))
}

func (s *CertificateServiceSuite) SetupTest() {
	s.store = certstore.NewInMemory()
	s.log = audit.NewLog()
	s.queue = notification.NewQueue()
	s.service = NewService(s.store, audit.NewService(s.log), WithNotifier(s.queue))
	s.now = time.Date(2024, 10, 26, 14, 30, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)

	s.Require().NoError(s.store.Create(s.ctx, &models.Certificate{
		ID:            "CERT-001",
		UserName:      "CPT Maria Lopez",
		Rank:          "CPT",
		Unit:          "807th MED BDE",
		RoleRequested: "Medical Readiness Coordinator",
		Type:          models.TypeHIPAA,
		Status:        models.StatusPending,
		UploadedAt:    s.now.Add(-24 * time.Hour),
		ExpiresAt:     s.now.Add(330 * 24 * time.Hour),
		FileName:      "Lopez_MRC_HIPAA.pdf",
	}))
}

func (s *CertificateServiceSuite) TestApprove() {
	s.Run("approves a pending certificate", func() {
		cert, err := s.service.Approve(s.ctx, "CERT-001", "COL Oates", "")
		s.Require().NoError(err)

		s.Equal(models.StatusApproved, cert.Status)
		s.Equal("COL Oates", cert.Reviewer)
		s.Equal(s.now, cert.LastReviewedAt)

		s.Require().Equal(1, s.log.Len())
		events, err := s.log.List(s.ctx)
		s.Require().NoError(err)
		s.Equal("STATUS_APPROVED", events[0].Action)
		s.Equal(audit.ObjectCertificate, events[0].ObjectType)
		s.Equal("CERT-001", events[0].ObjectID)
		s.Equal("COL Oates", events[0].Actor)
		s.Equal("pending", events[0].Diff["status"].Previous)
		s.Equal("approved", events[0].Diff["status"].Current)
	})

	s.Run("audit event shares the mutation timestamp", func() {
		events, err := s.log.List(s.ctx)
		s.Require().NoError(err)
		cert, err := s.service.Get(s.ctx, "CERT-001")
		s.Require().NoError(err)
		s.Equal(cert.LastReviewedAt, events[0].Timestamp)
	})

	s.Run("enqueues a success notification", func() {
		notifications := s.queue.List()
		s.Require().Len(notifications, 1)
		s.Equal(notification.SeveritySuccess, notifications[0].Severity)
		s.Equal("Certificate CERT-001 marked as approved.", notifications[0].Message)
	})
}

func (s *CertificateServiceSuite) TestReject() {
	s.Run("rejects with rationale notes", func() {
		cert, err := s.service.Reject(s.ctx, "CERT-001", "COL Oates", "License mismatch")
		s.Require().NoError(err)

		s.Equal(models.StatusRejected, cert.Status)
		s.Equal("License mismatch", cert.Notes)

		events, err := s.log.List(s.ctx)
		s.Require().NoError(err)
		s.Equal("STATUS_REJECTED", events[0].Action)
	})

	s.Run("enqueues a warning notification", func() {
		notifications := s.queue.List()
		s.Require().Len(notifications, 1)
		s.Equal(notification.SeverityWarning, notifications[0].Severity)
	})
}

func (s *CertificateServiceSuite) TestRejectValidation() {
	s.Run("empty notes fail before any mutation", func() {
		_, err := s.service.Reject(s.ctx, "CERT-001", "COL Oates", "")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("whitespace-only notes fail as well", func() {
		_, err := s.service.Reject(s.ctx, "CERT-001", "COL Oates", "   ")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("certificate, audit log, and queue are unchanged", func() {
		cert, err := s.service.Get(s.ctx, "CERT-001")
		s.Require().NoError(err)
		s.Equal(models.StatusPending, cert.Status)
		s.Empty(cert.Reviewer)
		s.Zero(s.log.Len())
		s.Zero(s.queue.Len())
	})
}

func (s *CertificateServiceSuite) TestUpdateStatus() {
	s.Run("missing id fails with CodeNotFound", func() {
		_, err := s.service.UpdateStatus(s.ctx, "CERT-999", models.StatusApproved, "COL Oates", "")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		s.Zero(s.log.Len())
		s.Zero(s.queue.Len())
	})

	s.Run("blank reviewer fails validation", func() {
		_, err := s.service.UpdateStatus(s.ctx, "CERT-001", models.StatusApproved, "  ", "")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("unknown status fails validation", func() {
		_, err := s.service.UpdateStatus(s.ctx, "CERT-001", "archived", "COL Oates", "")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("empty notes retain previous notes", func() {
		_, err := s.service.UpdateStatus(s.ctx, "CERT-001", models.StatusUpdated, "COL Oates", "awaiting replacement upload")
		s.Require().NoError(err)

		cert, err := s.service.UpdateStatus(s.ctx, "CERT-001", models.StatusApproved, "COL Oates", "")
		s.Require().NoError(err)
		s.Equal("awaiting replacement upload", cert.Notes)
	})

	s.Run("sequential mutations prepend audit events in call order", func() {
		events, err := s.log.List(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(events, 2)
		s.Equal("STATUS_APPROVED", events[0].Action)
		s.Equal("STATUS_UPDATED", events[1].Action)
		s.Equal("updated", events[0].Diff["status"].Previous)
	})
}

func (s *CertificateServiceSuite) TestReads() {
	s.Run("Get returns CodeNotFound for unknown id", func() {
		_, err := s.service.Get(s.ctx, id.CertificateID("CERT-404"))
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("List rejects unknown status filter", func() {
		_, err := s.service.List(s.ctx, "archived")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("List filters by status", func() {
		certs, err := s.service.List(s.ctx, models.StatusPending)
		s.Require().NoError(err)
		s.Require().Len(certs, 1)
		s.Equal(id.CertificateID("CERT-001"), certs[0].ID)
	})
}
