// Package role holds the role-definition reference catalog. Definitions
// are descriptive data for the admin UI, not an enforced policy engine:
// nothing in this module consults permissions before acting. Changes to
// role permissions originate outside this scope and reach the system only
// as audit events.
package role

import (
	"context"
	"sync"

	id "denclass/pkg/domain"
	"denclass/pkg/platform/sentinel"
)

// PermissionItem describes one grantable capability.
type PermissionItem struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Definition is a static role record: what the role may do, what
// credentials it requires, and which actions are sensitive enough to need
// audit confirmation.
type Definition struct {
	ID                  id.RoleID        `json:"id"`
	Name                string           `json:"name"`
	Description         string           `json:"description"`
	RequiredCredentials []string         `json:"requiredCredentials"`
	Permissions         []PermissionItem `json:"permissions"`
	DefaultReports      []string         `json:"defaultReports"`
	SensitiveActions    []string         `json:"sensitiveActions"`
	ImpersonationNotes  string           `json:"impersonationNotes,omitempty"`
}

// Catalog is a read-only lookup over role definitions.
type Catalog struct {
	mu   sync.RWMutex
	defs []Definition
	byID map[id.RoleID]int
}

func NewCatalog(defs ...Definition) *Catalog {
	c := &Catalog{byID: make(map[id.RoleID]int, len(defs))}
	for i, def := range defs {
		c.defs = append(c.defs, def)
		c.byID[def.ID] = i
	}
	return c
}

func (c *Catalog) Get(_ context.Context, roleID id.RoleID) (Definition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, exists := c.byID[roleID]
	if !exists {
		return Definition{}, sentinel.ErrNotFound
	}
	return c.defs[i], nil
}

func (c *Catalog) List(_ context.Context) ([]Definition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Definition{}, c.defs...), nil
}
