package store

import (
	"context"
	"sync"

	"denclass/internal/treatmentplan/models"
	id "denclass/pkg/domain"
	"denclass/pkg/platform/sentinel"
)

// InMemory holds the treatment-plan collection behind a mutex, preserving
// insertion order for queue listings.
type InMemory struct {
	mu    sync.RWMutex
	plans map[id.TreatmentPlanID]*models.TreatmentPlan
	order []id.TreatmentPlanID
}

func NewInMemory() *InMemory {
	return &InMemory{plans: make(map[id.TreatmentPlanID]*models.TreatmentPlan)}
}

func (s *InMemory) Create(_ context.Context, plan *models.TreatmentPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.plans[plan.ID]; exists {
		return sentinel.ErrAlreadyExists
	}
	s.plans[plan.ID] = plan.Clone()
	s.order = append(s.order, plan.ID)
	return nil
}

func (s *InMemory) FindByID(_ context.Context, planID id.TreatmentPlanID) (*models.TreatmentPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	plan, exists := s.plans[planID]
	if !exists {
		return nil, sentinel.ErrNotFound
	}
	return plan.Clone(), nil
}

// Execute atomically validates and mutates one plan under the store lock.
// Readers observe either the fully-old or fully-new record.
func (s *InMemory) Execute(
	_ context.Context,
	planID id.TreatmentPlanID,
	validate func(*models.TreatmentPlan) error,
	mutate func(*models.TreatmentPlan),
) (*models.TreatmentPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	plan, exists := s.plans[planID]
	if !exists {
		return nil, sentinel.ErrNotFound
	}
	if err := validate(plan); err != nil {
		return nil, err
	}
	mutate(plan)
	return plan.Clone(), nil
}

// List returns plans in insertion order, optionally filtered by status.
func (s *InMemory) List(_ context.Context, status models.Status) ([]*models.TreatmentPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var plans []*models.TreatmentPlan
	for _, planID := range s.order {
		plan := s.plans[planID]
		if status != "" && plan.Status != status {
			continue
		}
		plans = append(plans, plan.Clone())
	}
	return plans, nil
}

// CountAwaiting returns how many plans still need a senior decision.
func (s *InMemory) CountAwaiting(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, plan := range s.plans {
		if plan.AwaitingReview() {
			count++
		}
	}
	return count, nil
}
