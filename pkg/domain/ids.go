// Package domain holds the typed identifiers shared across modules.
//
// IDs are human-readable prefixed strings ("CERT-001", "AUD-3f9c2a1b") so
// audit trails and notifications stay legible to reviewers. Generated IDs
// take their entropy from a v4 UUID.
package domain

import (
	"strings"

	"github.com/google/uuid"
)

type (
	CertificateID   string
	TreatmentPlanID string
	DeltaID         string
	AuditEventID    string
	NotificationID  string
	RoleID          string
)

func (id CertificateID) String() string   { return string(id) }
func (id TreatmentPlanID) String() string { return string(id) }
func (id AuditEventID) String() string    { return string(id) }
func (id NotificationID) String() string  { return string(id) }
func (id RoleID) String() string          { return string(id) }

// NewAuditEventID generates an id for an audit log entry.
func NewAuditEventID() AuditEventID {
	return AuditEventID("AUD-" + shortID())
}

// NewNotificationID generates an id for an ephemeral notification.
func NewNotificationID() NotificationID {
	return NotificationID("NTF-" + shortID())
}

// shortID returns the first eight hex characters of a v4 UUID. Collision
// odds are acceptable for in-memory collections that live for one session.
func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
