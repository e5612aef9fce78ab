package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedIDs(t *testing.T) {
	t.Run("audit event ids carry the AUD prefix", func(t *testing.T) {
		id := NewAuditEventID()
		require.True(t, strings.HasPrefix(id.String(), "AUD-"))
		assert.Len(t, id.String(), len("AUD-")+8)
	})

	t.Run("notification ids carry the NTF prefix", func(t *testing.T) {
		id := NewNotificationID()
		require.True(t, strings.HasPrefix(id.String(), "NTF-"))
		assert.Len(t, id.String(), len("NTF-")+8)
	})

	t.Run("successive ids are distinct", func(t *testing.T) {
		seen := make(map[NotificationID]bool)
		for i := 0; i < 64; i++ {
			id := NewNotificationID()
			require.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
	})
}

// Typed IDs keep certificate, plan, and audit identifiers from being
// mixed up at call sites. If these types become aliases, cross-type
// assignments start compiling and the distinction is lost.
func TestTypeDistinction(t *testing.T) {
	certID := CertificateID("CERT-001")
	planID := TreatmentPlanID("TP-10234")

	// var _ CertificateID = planID // compile error
	// var _ TreatmentPlanID = certID // compile error

	assert.NotEqual(t, string(certID), string(planID))
}
