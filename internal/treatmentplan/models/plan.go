package models

import (
	"strings"
	"time"

	id "denclass/pkg/domain"
	dErrors "denclass/pkg/domain-errors"
)

// Status is a treatment plan's position in the re-approval workflow.
type Status string

const (
	StatusAwaitingApproval Status = "awaiting-approval"
	StatusInReview         Status = "in-review"
	StatusApproved         Status = "approved"
	StatusReturned         Status = "returned"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAwaitingApproval, StatusInReview, StatusApproved, StatusReturned:
		return true
	}
	return false
}

// Category is the Dental Readiness Classification tier. 3C is the highest
// clinical/financial complexity and requires senior approval.
type Category string

const (
	Category3A Category = "3A"
	Category3B Category = "3B"
	Category3C Category = "3C"
)

// Decision is the outcome of a senior review.
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionReturned Decision = "returned"
)

func (d Decision) Valid() bool {
	return d == DecisionApproved || d == DecisionReturned
}

// Status returns the plan status a decision resolves to.
func (d Decision) Status() Status {
	if d == DecisionApproved {
		return StatusApproved
	}
	return StatusReturned
}

// Delta captures the change under review: which procedures moved and what
// it costs.
type Delta struct {
	ID                id.DeltaID `json:"id"`
	Description       string     `json:"description"`
	AddedProcedures   []string   `json:"addedProcedures"`
	RemovedProcedures []string   `json:"removedProcedures"`
	FinancialImpact   string     `json:"financialImpact"`
}

// TreatmentPlan is the aggregate root for a plan change awaiting senior
// review.
//
// Invariants:
//   - Identity and subject fields are immutable after creation
//   - A review decision mutates only Status, RequiresReapproval,
//     LastUpdatedAt, and RiskNotes
//   - Once Status is approved or returned, RequiresReapproval is false
type TreatmentPlan struct {
	ID                 id.TreatmentPlanID `json:"id"`
	SoldierName        string             `json:"soldierName"`
	DODID              string             `json:"dodId"`
	Unit               string             `json:"unit"`
	Provider           string             `json:"provider"`
	Status             Status             `json:"status"`
	CurrentCategory    Category           `json:"currentCategory"`
	PreviousCategory   Category           `json:"previousCategory,omitempty"`
	OriginalApprover   string             `json:"originalApprover,omitempty"`
	SubmittedAt        time.Time          `json:"submittedAt"`
	LastUpdatedAt      time.Time          `json:"lastUpdatedAt"`
	RequiresReapproval bool               `json:"requiresReapproval"`
	ChangeSummary      string             `json:"changeSummary"`
	Delta              Delta              `json:"delta"`
	RiskNotes          string             `json:"riskNotes,omitempty"`
}

// CanDecide checks whether a review decision request is well-formed.
// Notes are optional for both decisions; a returned plan deliberately does
// not require rationale the way a rejected certificate does.
// Use with ApplyDecision in Execute callbacks.
func (p *TreatmentPlan) CanDecide(decision Decision, approver string) error {
	if !decision.Valid() {
		return dErrors.New(dErrors.CodeValidation, "decision must be approved or returned")
	}
	if strings.TrimSpace(approver) == "" {
		return dErrors.New(dErrors.CodeValidation, "approver is required")
	}
	return nil
}

// ApplyDecision resolves the review: the plan takes the decision's status,
// the re-approval flag clears, and risk notes are replaced only when
// provided. Call CanDecide first to validate.
func (p *TreatmentPlan) ApplyDecision(decision Decision, notes string, now time.Time) {
	p.Status = decision.Status()
	p.RequiresReapproval = false
	p.LastUpdatedAt = now
	if notes != "" {
		p.RiskNotes = notes
	}
}

// AwaitingReview reports whether the plan still needs a senior decision.
func (p *TreatmentPlan) AwaitingReview() bool {
	return p.RequiresReapproval && p.Status != StatusApproved
}

// Clone returns a copy safe to hand outside the store lock. Procedure
// slices are copied so callers cannot reach back into stored state.
func (p *TreatmentPlan) Clone() *TreatmentPlan {
	clone := *p
	clone.Delta.AddedProcedures = append([]string{}, p.Delta.AddedProcedures...)
	clone.Delta.RemovedProcedures = append([]string{}, p.Delta.RemovedProcedures...)
	return &clone
}
