package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"denclass/internal/treatmentplan/models"
	id "denclass/pkg/domain"
	"denclass/pkg/platform/sentinel"
)

type PlanStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func TestPlanStoreSuite(t *testing.T) {
	suite.Run(t, new(PlanStoreSuite))
}

func (s *PlanStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func (s *PlanStoreSuite) newPlan(planID string, status models.Status) *models.TreatmentPlan {
	return &models.TreatmentPlan{
		ID:                 id.TreatmentPlanID(planID),
		SoldierName:        "SSG Howard Mills",
		DODID:              "128-44-9312",
		Unit:               "807th MED BDE",
		Provider:           "Dr. Selena Park",
		Status:             status,
		CurrentCategory:    models.Category3C,
		PreviousCategory:   models.Category3B,
		SubmittedAt:        time.Now().Add(-24 * time.Hour),
		LastUpdatedAt:      time.Now().Add(-24 * time.Hour),
		RequiresReapproval: true,
		Delta: models.Delta{
			ID:              "DELTA-9001",
			AddedProcedures: []string{"ADA 2750 x3"},
		},
	}
}

func (s *PlanStoreSuite) TestCreationAndLookups() {
	s.Run("creates and finds plan by ID", func() {
		plan := s.newPlan("TP-10234", models.StatusAwaitingApproval)
		s.Require().NoError(s.store.Create(s.ctx, plan))

		found, err := s.store.FindByID(s.ctx, plan.ID)
		s.Require().NoError(err)
		s.Equal(plan.SoldierName, found.SoldierName)
		s.True(found.RequiresReapproval)
	})

	s.Run("returns ErrNotFound for unknown ID", func() {
		_, err := s.store.FindByID(s.ctx, "TP-99999")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("clones delta slices on reads", func() {
		plan := s.newPlan("TP-10250", models.StatusInReview)
		s.Require().NoError(s.store.Create(s.ctx, plan))

		found, err := s.store.FindByID(s.ctx, plan.ID)
		s.Require().NoError(err)
		found.Delta.AddedProcedures[0] = "tampered"

		again, err := s.store.FindByID(s.ctx, plan.ID)
		s.Require().NoError(err)
		s.Equal("ADA 2750 x3", again.Delta.AddedProcedures[0])
	})
}

func (s *PlanStoreSuite) TestExecute() {
	s.Run("applies a decision atomically", func() {
		plan := s.newPlan("TP-10234", models.StatusAwaitingApproval)
		s.Require().NoError(s.store.Create(s.ctx, plan))

		now := time.Now()
		updated, err := s.store.Execute(s.ctx, plan.ID,
			func(p *models.TreatmentPlan) error {
				return p.CanDecide(models.DecisionReturned, "COL Oates")
			},
			func(p *models.TreatmentPlan) {
				p.ApplyDecision(models.DecisionReturned, "", now)
			},
		)
		s.Require().NoError(err)
		s.Equal(models.StatusReturned, updated.Status)
		s.False(updated.RequiresReapproval)
	})

	s.Run("returns ErrNotFound for unknown id", func() {
		_, err := s.store.Execute(s.ctx, "TP-99999",
			func(p *models.TreatmentPlan) error { return nil },
			func(p *models.TreatmentPlan) {},
		)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *PlanStoreSuite) TestQueues() {
	awaiting := s.newPlan("TP-10234", models.StatusAwaitingApproval)
	inReview := s.newPlan("TP-10251", models.StatusInReview)
	approved := s.newPlan("TP-10087", models.StatusApproved)
	approved.RequiresReapproval = false
	for _, plan := range []*models.TreatmentPlan{awaiting, inReview, approved} {
		s.Require().NoError(s.store.Create(s.ctx, plan))
	}

	s.Run("lists in insertion order with status filter", func() {
		plans, err := s.store.List(s.ctx, "")
		s.Require().NoError(err)
		s.Require().Len(plans, 3)
		s.Equal(awaiting.ID, plans[0].ID)

		filtered, err := s.store.List(s.ctx, models.StatusInReview)
		s.Require().NoError(err)
		s.Require().Len(filtered, 1)
		s.Equal(inReview.ID, filtered[0].ID)
	})

	s.Run("counts plans awaiting review", func() {
		count, err := s.store.CountAwaiting(s.ctx)
		s.Require().NoError(err)
		s.Equal(2, count)
	})
}
