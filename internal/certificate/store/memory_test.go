package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"denclass/internal/certificate/models"
	id "denclass/pkg/domain"
	dErrors "denclass/pkg/domain-errors"
	"denclass/pkg/platform/sentinel"
)

type CertificateStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func TestCertificateStoreSuite(t *testing.T) {
	suite.Run(t, new(CertificateStoreSuite))
}

func (s *CertificateStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func (s *CertificateStoreSuite) newCertificate(certID string, status models.Status) *models.Certificate {
	return &models.Certificate{
		ID:            id.CertificateID(certID),
		UserName:      "CPT Maria Lopez",
		Rank:          "CPT",
		Unit:          "807th MED BDE",
		RoleRequested: "Medical Readiness Coordinator",
		Type:          models.TypeHIPAA,
		Status:        status,
		UploadedAt:    time.Now().Add(-24 * time.Hour),
		ExpiresAt:     time.Now().Add(330 * 24 * time.Hour),
		FileName:      "Lopez_MRC_HIPAA.pdf",
	}
}

// TestCreationAndLookups verifies the store correctly creates and retrieves
// certificates.
func (s *CertificateStoreSuite) TestCreationAndLookups() {
	s.Run("creates and finds certificate by ID", func() {
		cert := s.newCertificate("CERT-001", models.StatusPending)
		s.Require().NoError(s.store.Create(s.ctx, cert))

		found, err := s.store.FindByID(s.ctx, cert.ID)
		s.Require().NoError(err)
		s.Equal(cert.UserName, found.UserName)
		s.Equal(models.StatusPending, found.Status)
	})

	s.Run("returns ErrNotFound for unknown ID", func() {
		_, err := s.store.FindByID(s.ctx, "CERT-999")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("rejects duplicate id", func() {
		cert := s.newCertificate("CERT-002", models.StatusPending)
		s.Require().NoError(s.store.Create(s.ctx, cert))
		s.ErrorIs(s.store.Create(s.ctx, cert), sentinel.ErrAlreadyExists)
	})

	s.Run("FindByID returns a copy", func() {
		cert := s.newCertificate("CERT-003", models.StatusPending)
		s.Require().NoError(s.store.Create(s.ctx, cert))

		found, err := s.store.FindByID(s.ctx, cert.ID)
		s.Require().NoError(err)
		found.Status = models.StatusRejected

		again, err := s.store.FindByID(s.ctx, cert.ID)
		s.Require().NoError(err)
		s.Equal(models.StatusPending, again.Status)
	})
}

// TestExecute verifies atomic validate-then-mutate semantics.
func (s *CertificateStoreSuite) TestExecute() {
	s.Run("mutates after validation passes", func() {
		cert := s.newCertificate("CERT-010", models.StatusPending)
		s.Require().NoError(s.store.Create(s.ctx, cert))

		now := time.Now()
		updated, err := s.store.Execute(s.ctx, cert.ID,
			func(c *models.Certificate) error {
				return c.CanReview(models.StatusApproved, "COL Oates", "")
			},
			func(c *models.Certificate) {
				c.ApplyReview(models.StatusApproved, "COL Oates", "", now)
			},
		)
		s.Require().NoError(err)
		s.Equal(models.StatusApproved, updated.Status)
		s.Equal("COL Oates", updated.Reviewer)
	})

	s.Run("validation failure leaves the record untouched", func() {
		cert := s.newCertificate("CERT-011", models.StatusPending)
		s.Require().NoError(s.store.Create(s.ctx, cert))

		_, err := s.store.Execute(s.ctx, cert.ID,
			func(c *models.Certificate) error {
				return c.CanReview(models.StatusRejected, "COL Oates", "  ")
			},
			func(c *models.Certificate) {
				c.ApplyReview(models.StatusRejected, "COL Oates", "  ", time.Now())
			},
		)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))

		found, err := s.store.FindByID(s.ctx, cert.ID)
		s.Require().NoError(err)
		s.Equal(models.StatusPending, found.Status)
		s.Empty(found.Reviewer)
	})

	s.Run("returns ErrNotFound for unknown id", func() {
		_, err := s.store.Execute(s.ctx, "CERT-999",
			func(c *models.Certificate) error { return nil },
			func(c *models.Certificate) {},
		)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

// TestListing verifies ordering and status filtering.
func (s *CertificateStoreSuite) TestListing() {
	pending := s.newCertificate("CERT-020", models.StatusPending)
	expired := s.newCertificate("CERT-021", models.StatusExpired)
	updated := s.newCertificate("CERT-022", models.StatusUpdated)
	for _, cert := range []*models.Certificate{pending, expired, updated} {
		s.Require().NoError(s.store.Create(s.ctx, cert))
	}

	s.Run("lists in insertion order", func() {
		certs, err := s.store.List(s.ctx, "")
		s.Require().NoError(err)
		s.Require().Len(certs, 3)
		s.Equal(pending.ID, certs[0].ID)
		s.Equal(expired.ID, certs[1].ID)
		s.Equal(updated.ID, certs[2].ID)
	})

	s.Run("filters by status", func() {
		certs, err := s.store.List(s.ctx, models.StatusExpired)
		s.Require().NoError(err)
		s.Require().Len(certs, 1)
		s.Equal(expired.ID, certs[0].ID)
	})

	s.Run("counts by status", func() {
		count, err := s.store.CountByStatus(s.ctx, models.StatusPending)
		s.Require().NoError(err)
		s.Equal(1, count)
	})
}
