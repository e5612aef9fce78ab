package config

import (
	"os"
	"strconv"
	"time"
)

// App captures process-level configuration for the review core.
type App struct {
	// NotificationAutoHide is how long notifications stay before the
	// dispatcher auto-dismisses them.
	NotificationAutoHide time.Duration
	// AuditRecentLimit bounds ListRecent reads for the audit page.
	AuditRecentLimit int
	// SeedDemoData loads the demo collections on startup.
	SeedDemoData bool
}

// FromEnv builds an App config from environment variables so composition
// roots stay lean.
func FromEnv() App {
	cfg := App{
		NotificationAutoHide: 6 * time.Second,
		AuditRecentLimit:     50,
		SeedDemoData:         os.Getenv("DENCLASS_SEED_DEMO") == "true",
	}
	if raw := os.Getenv("DENCLASS_NOTIFY_AUTOHIDE"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.NotificationAutoHide = d
		}
	}
	if raw := os.Getenv("DENCLASS_AUDIT_RECENT_LIMIT"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.AuditRecentLimit = n
		}
	}
	return cfg
}
