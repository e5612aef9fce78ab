// Package app wires the review core into one explicit state container.
// There is no ambient singleton: construct an App per process (or per
// test) and pass it to whatever presentation layer drives it.
package app

import (
	"context"
	"log/slog"
	"time"

	"denclass/internal/audit"
	certmetrics "denclass/internal/certificate/metrics"
	certservice "denclass/internal/certificate/service"
	certstore "denclass/internal/certificate/store"
	"denclass/internal/notification"
	"denclass/internal/platform/config"
	platformmetrics "denclass/internal/platform/metrics"
	"denclass/internal/readiness"
	"denclass/internal/role"
	"denclass/internal/store"
	planmetrics "denclass/internal/treatmentplan/metrics"
	planservice "denclass/internal/treatmentplan/service"
	planstore "denclass/internal/treatmentplan/store"
)

// App owns the collections and exposes the mutation entry points the
// presentation layer dispatches into.
type App struct {
	Certificates   *certservice.Service
	TreatmentPlans *planservice.Service
	Auditor        *audit.Service
	AuditLog       *audit.Log
	Roles          *role.Catalog
	Notifications  *notification.Queue
	Dispatcher     *notification.Dispatcher
	Readiness      *readiness.Service

	CertificateStore *certstore.InMemory
	PlanStore        *planstore.InMemory
}

// Metrics bundles the per-module metric sets. Construct at most once per
// process: prometheus registration is global.
type Metrics struct {
	Certificates *certmetrics.Metrics
	Plans        *planmetrics.Metrics
	Platform     *platformmetrics.Metrics
}

func NewMetrics() *Metrics {
	return &Metrics{
		Certificates: certmetrics.New(),
		Plans:        planmetrics.New(),
		Platform:     platformmetrics.New(),
	}
}

type Option func(o *options)

type options struct {
	logger  *slog.Logger
	metrics *Metrics
	clock   notification.Clock
	seedAt  time.Time
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func WithClock(clock notification.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithSeedTime anchors demo-record ages for deterministic tests.
func WithSeedTime(t time.Time) Option {
	return func(o *options) {
		o.seedAt = t
	}
}

// New builds a fully wired App from configuration.
func New(ctx context.Context, cfg config.App, opts ...Option) *App {
	o := &options{clock: notification.SystemClock{}, seedAt: time.Now()}
	for _, opt := range opts {
		opt(o)
	}

	certificates := certstore.NewInMemory()
	plans := planstore.NewInMemory()
	auditLog := audit.NewLog()
	queue := notification.NewQueue(notification.WithAutoHide(cfg.NotificationAutoHide))

	var auditOpts []audit.Option
	if o.logger != nil {
		auditOpts = append(auditOpts, audit.WithLogger(o.logger))
	}
	auditor := audit.NewService(auditLog, auditOpts...)

	certOpts := []certservice.Option{certservice.WithNotifier(queue)}
	planOpts := []planservice.Option{planservice.WithNotifier(queue)}
	readinessOpts := []readiness.Option{}
	dispatcherOpts := []notification.DispatcherOption{notification.WithClock(o.clock)}
	if o.logger != nil {
		certOpts = append(certOpts, certservice.WithLogger(o.logger))
		planOpts = append(planOpts, planservice.WithLogger(o.logger))
	}
	if o.metrics != nil {
		certOpts = append(certOpts, certservice.WithMetrics(o.metrics.Certificates))
		planOpts = append(planOpts, planservice.WithMetrics(o.metrics.Plans))
		readinessOpts = append(readinessOpts, readiness.WithMetrics(o.metrics.Platform))
		dispatcherOpts = append(dispatcherOpts, notification.WithDepthGauge(o.metrics.Platform.NotificationQueueDepth))
	}

	roles := role.NewCatalog(store.DemoRoles()...)
	if cfg.SeedDemoData {
		store.SeedDemoData(ctx, o.seedAt, certificates, plans, auditLog)
	}

	return &App{
		Certificates:     certservice.NewService(certificates, auditor, certOpts...),
		TreatmentPlans:   planservice.NewService(plans, auditor, planOpts...),
		Auditor:          auditor,
		AuditLog:         auditLog,
		Roles:            roles,
		Notifications:    queue,
		Dispatcher:       notification.NewDispatcher(queue, dispatcherOpts...),
		Readiness:        readiness.NewService(certificates, plans, auditLog, readinessOpts...),
		CertificateStore: certificates,
		PlanStore:        plans,
	}
}
