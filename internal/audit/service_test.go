package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	dErrors "denclass/pkg/domain-errors"
	"denclass/pkg/requestcontext"
)

type AuditServiceSuite struct {
	suite.Suite
	log     *Log
	service *Service
	ctx     context.Context
	now     time.Time
}

func TestAuditServiceSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceSuite))
}

func (s *AuditServiceSuite) SetupTest() {
	s.log = NewLog()
	s.service = NewService(s.log)
	s.now = time.Date(2024, 10, 26, 12, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
}

func (s *AuditServiceSuite) TestEmit() {
	s.Run("fills id, timestamp, and actor defaults", func() {
		ctx := requestcontext.WithActor(s.ctx, "COL Oates")
		err := s.service.Emit(ctx, Event{
			ObjectType: ObjectRole,
			ObjectID:   "ROLE-DENTIST",
			Action:     "PERMISSION_UPDATE",
		})
		s.Require().NoError(err)

		events, err := s.log.List(ctx)
		s.Require().NoError(err)
		s.Require().Len(events, 1)
		s.NotEmpty(events[0].ID)
		s.Contains(string(events[0].ID), "AUD-")
		s.Equal(s.now, events[0].Timestamp)
		s.Equal("COL Oates", events[0].Actor)
	})

	s.Run("preserves caller-provided fields", func() {
		explicit := s.now.Add(-time.Hour)
		err := s.service.Emit(s.ctx, Event{
			ID:         "AUD-5001",
			ObjectType: ObjectCertificate,
			ObjectID:   "CERT-002",
			Action:     "UPLOAD_REPLACEMENT",
			Timestamp:  explicit,
			Actor:      "MSG Daniel Richards",
		})
		s.Require().NoError(err)

		event, err := s.log.FindByID(s.ctx, "AUD-5001")
		s.Require().NoError(err)
		s.Equal(explicit, event.Timestamp)
		s.Equal("MSG Daniel Richards", event.Actor)
	})

	s.Run("rejects events without object type or action", func() {
		err := s.service.Emit(s.ctx, Event{ObjectID: "CERT-001"})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal(2, s.log.Len())
	})
}
