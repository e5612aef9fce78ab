package models

import (
	"strings"
	"time"

	id "denclass/pkg/domain"
	dErrors "denclass/pkg/domain-errors"
)

// Status is a certificate's position in the review lifecycle.
type Status string

const (
	StatusPending  Status = "pending"
	StatusUpdated  Status = "updated"
	StatusExpired  Status = "expired"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is a known lifecycle status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusUpdated, StatusExpired, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// ReviewableStatuses is the set of source statuses the admin UI exposes
// review actions for. This is a caller convention, not an engine guard:
// CanReview deliberately permits transitions out of approved/rejected so
// corrections remain possible through direct service calls.
var ReviewableStatuses = []Status{StatusPending, StatusUpdated, StatusExpired}

// Type identifies the credential document class.
type Type string

const (
	TypeHIPAA   Type = "HIPAA"
	TypeDoDI    Type = "DoDI 6025.19"
	TypeLicense Type = "License"
)

// Certificate is the aggregate root for a dental-readiness credential under
// review.
//
// Invariants:
//   - Identity and subject fields (ID, UserName, Rank, Unit, RoleRequested,
//     Type, UploadedAt, ExpiresAt, FileName, OCR fields) are immutable after
//     creation
//   - A review mutates only Status, Reviewer, LastReviewedAt, and Notes
//   - A rejection always carries a non-blank rationale in Notes
//
// OCRConfidence is a seeded [0,1] score from the extraction engine; this
// module treats it as opaque reference data.
type Certificate struct {
	ID                 id.CertificateID `json:"id"`
	UserName           string           `json:"userName"`
	Rank               string           `json:"rank"`
	Unit               string           `json:"unit"`
	RoleRequested      string           `json:"roleRequested"`
	Type               Type             `json:"type"`
	Status             Status           `json:"status"`
	UploadedAt         time.Time        `json:"uploadedAt"`
	ExpiresAt          time.Time        `json:"expiresAt"`
	OCRExtractedExpiry time.Time        `json:"ocrExtractedExpiry,omitzero"`
	OCRConfidence      float64          `json:"ocrConfidence,omitempty"`
	Reviewer           string           `json:"reviewer,omitempty"`
	LastReviewedAt     time.Time        `json:"lastReviewedAt,omitzero"`
	Notes              string           `json:"notes,omitempty"`
	FileName           string           `json:"fileName"`
}

// CanReview checks whether a review transition to status is acceptable.
// Returns an error if the transition request is malformed; it never
// inspects the current status (see ReviewableStatuses).
// Use with ApplyReview in Execute callbacks.
func (c *Certificate) CanReview(status Status, reviewer, notes string) error {
	if !status.Valid() {
		return dErrors.New(dErrors.CodeValidation, "unknown certificate status")
	}
	if strings.TrimSpace(reviewer) == "" {
		return dErrors.New(dErrors.CodeValidation, "reviewer is required")
	}
	if status == StatusRejected && strings.TrimSpace(notes) == "" {
		return dErrors.New(dErrors.CodeValidation, "rejection requires rationale notes")
	}
	return nil
}

// ApplyReview transitions the certificate to status, recording the reviewer
// and review time. Notes are replaced only when non-empty; otherwise the
// previous notes are retained. Call CanReview first to validate.
func (c *Certificate) ApplyReview(status Status, reviewer, notes string, now time.Time) {
	c.Status = status
	c.Reviewer = reviewer
	c.LastReviewedAt = now
	if notes != "" {
		c.Notes = notes
	}
}

// Clone returns a copy safe to hand outside the store lock.
func (c *Certificate) Clone() *Certificate {
	clone := *c
	return &clone
}
