package store

import (
	"context"
	"sync"

	"denclass/internal/certificate/models"
	id "denclass/pkg/domain"
	"denclass/pkg/platform/sentinel"
)

// InMemory holds the certificate collection behind a mutex. Insertion order
// is preserved so listings match the seeded queue ordering.
type InMemory struct {
	mu    sync.RWMutex
	certs map[id.CertificateID]*models.Certificate
	order []id.CertificateID
}

func NewInMemory() *InMemory {
	return &InMemory{certs: make(map[id.CertificateID]*models.Certificate)}
}

// Create registers a certificate. Fails with ErrAlreadyExists on id reuse;
// identity fields are immutable after this point.
func (s *InMemory) Create(_ context.Context, cert *models.Certificate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.certs[cert.ID]; exists {
		return sentinel.ErrAlreadyExists
	}
	s.certs[cert.ID] = cert.Clone()
	s.order = append(s.order, cert.ID)
	return nil
}

func (s *InMemory) FindByID(_ context.Context, certID id.CertificateID) (*models.Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cert, exists := s.certs[certID]
	if !exists {
		return nil, sentinel.ErrNotFound
	}
	return cert.Clone(), nil
}

// Execute atomically validates and mutates one certificate under the store
// lock. Readers observe either the fully-old or fully-new record, never a
// partial update. Returns the updated record, or the validation error with
// the record untouched.
func (s *InMemory) Execute(
	_ context.Context,
	certID id.CertificateID,
	validate func(*models.Certificate) error,
	mutate func(*models.Certificate),
) (*models.Certificate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cert, exists := s.certs[certID]
	if !exists {
		return nil, sentinel.ErrNotFound
	}
	if err := validate(cert); err != nil {
		return nil, err
	}
	mutate(cert)
	return cert.Clone(), nil
}

// List returns certificates in insertion order, optionally filtered by
// status. A zero-value status means no filter.
func (s *InMemory) List(_ context.Context, status models.Status) ([]*models.Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var certs []*models.Certificate
	for _, certID := range s.order {
		cert := s.certs[certID]
		if status != "" && cert.Status != status {
			continue
		}
		certs = append(certs, cert.Clone())
	}
	return certs, nil
}

// CountByStatus returns the number of certificates currently in status.
func (s *InMemory) CountByStatus(_ context.Context, status models.Status) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, cert := range s.certs {
		if cert.Status == status {
			count++
		}
	}
	return count, nil
}
