package audit

import (
	"time"

	id "denclass/pkg/domain"
)

// ObjectType classifies the entity an audit event refers to.
type ObjectType string

const (
	ObjectCertificate   ObjectType = "certificate"
	ObjectTreatmentPlan ObjectType = "treatment-plan"
	ObjectRole          ObjectType = "role"
	ObjectUser          ObjectType = "user"
)

// RiskLevel flags events that need compliance attention. Empty means the
// event carries no risk assessment.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// FieldDiff records one field's value before and after a mutation.
type FieldDiff struct {
	Previous string `json:"previous"`
	Current  string `json:"current"`
}

// Event is emitted from domain logic to capture key actions.
//
// Invariants:
//   - Events are immutable once appended; never edited or removed
//   - Every certificate/treatment-plan status mutation produces exactly one
//     event, timestamped identically to the record update
//
// Action is a free-form verb string ("STATUS_APPROVED", "REVIEW_RETURNED",
// "PERMISSION_UPDATE") so externally originated events fit the same log.
type Event struct {
	ID         id.AuditEventID      `json:"id"`
	ObjectType ObjectType           `json:"objectType"`
	ObjectID   string               `json:"objectId"`
	Action     string               `json:"action"`
	Timestamp  time.Time            `json:"timestamp"`
	Actor      string               `json:"actor"`
	Details    string               `json:"details"`
	Diff       map[string]FieldDiff `json:"diff,omitempty"`
	RiskLevel  RiskLevel            `json:"riskLevel,omitempty"`
}

// StatusDiff builds the single-field diff attached to review transitions.
func StatusDiff(previous, current string) map[string]FieldDiff {
	return map[string]FieldDiff{
		"status": {Previous: previous, Current: current},
	}
}
