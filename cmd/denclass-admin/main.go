// Command denclass-admin is a small review console over the in-memory
// core: it seeds the demo collections, applies one admin action, and
// prints the resulting queues. Business logic lives in internal services
// packages; this binary is presentation only.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"denclass/internal/app"
	"denclass/internal/certificate/models"
	"denclass/internal/platform/config"
	"denclass/internal/platform/logger"
	planmodels "denclass/internal/treatmentplan/models"
	id "denclass/pkg/domain"
	"denclass/pkg/requestcontext"
)

func main() {
	actor := flag.String("actor", "", "acting reviewer/approver identity (required for mutations)")
	notes := flag.String("notes", "", "rationale notes (mandatory when rejecting a certificate)")
	status := flag.String("status", "", "status filter for list commands")
	limit := flag.Int("limit", 0, "limit for audit listing (default from config)")
	flag.Usage = usage
	flag.Parse()

	cfg := config.FromEnv()
	cfg.SeedDemoData = true
	log := logger.New()

	ctx := requestcontext.WithActor(context.Background(), *actor)
	a := app.New(ctx, cfg, app.WithLogger(log))

	if *limit <= 0 {
		*limit = cfg.AuditRecentLimit
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "queues":
		err = printQueues(ctx, a)
	case "certs":
		err = printCertificates(ctx, a, models.Status(*status))
	case "plans":
		err = printPlans(ctx, a, planmodels.Status(*status))
	case "audit":
		err = printAudit(ctx, a, *limit)
	case "roles":
		err = printRoles(ctx, a)
	case "approve-cert":
		err = reviewCertificate(ctx, a, args[1:], models.StatusApproved, *actor, *notes)
	case "reject-cert":
		err = reviewCertificate(ctx, a, args[1:], models.StatusRejected, *actor, *notes)
	case "approve-plan":
		err = reviewPlan(ctx, a, args[1:], planmodels.DecisionApproved, *actor, *notes)
	case "return-plan":
		err = reviewPlan(ctx, a, args[1:], planmodels.DecisionReturned, *actor, *notes)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: denclass-admin [flags] <command> [id]

commands:
  queues                 readiness queue counts
  certs                  list certificates (-status pending|updated|expired|approved|rejected)
  plans                  list treatment plans (-status awaiting-approval|in-review|approved|returned)
  audit                  recent audit trail (-limit N)
  roles                  role definition catalog
  approve-cert <id>      approve a certificate (-actor required, -notes optional)
  reject-cert <id>       reject a certificate (-actor and -notes required)
  approve-plan <id>      approve a treatment plan change (-actor required)
  return-plan <id>       return a treatment plan to the provider (-actor required)`)
	flag.PrintDefaults()
}

func reviewCertificate(ctx context.Context, a *app.App, args []string, status models.Status, actor, notes string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one certificate id")
	}
	cert, err := a.Certificates.UpdateStatus(ctx, id.CertificateID(args[0]), status, actor, notes)
	if err != nil {
		return err
	}
	fmt.Printf("certificate %s is now %s (reviewer %s)\n", cert.ID, cert.Status, cert.Reviewer)
	printNotifications(a)
	return nil
}

func reviewPlan(ctx context.Context, a *app.App, args []string, decision planmodels.Decision, actor, notes string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one treatment plan id")
	}
	plan, err := a.TreatmentPlans.Review(ctx, id.TreatmentPlanID(args[0]), decision, actor, notes)
	if err != nil {
		return err
	}
	fmt.Printf("treatment plan %s is now %s\n", plan.ID, plan.Status)
	printNotifications(a)
	return nil
}

func printNotifications(a *app.App) {
	for _, n := range a.Notifications.List() {
		fmt.Printf("[%s] %s\n", n.Severity, n.Message)
	}
}

func printQueues(ctx context.Context, a *app.App) error {
	snap, err := a.Readiness.Snapshot(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "pending registrations\t%d\n", snap.PendingCertificates)
	fmt.Fprintf(w, "updated certificates\t%d\n", snap.UpdatedCertificates)
	fmt.Fprintf(w, "expired certificates\t%d\n", snap.ExpiredCertificates)
	fmt.Fprintf(w, "plans awaiting approval\t%d\n", snap.PlansAwaitingApproval)
	fmt.Fprintf(w, "high-risk alerts\t%d\n", snap.HighRiskAlerts)
	return w.Flush()
}

func printCertificates(ctx context.Context, a *app.App, status models.Status) error {
	certs, err := a.Certificates.List(ctx, status)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSER\tROLE REQUESTED\tSTATUS\tEXPIRES")
	for _, cert := range certs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			cert.ID, cert.UserName, cert.RoleRequested, cert.Status, cert.ExpiresAt.Format("02 Jan 2006"))
	}
	return w.Flush()
}

func printPlans(ctx context.Context, a *app.App, status planmodels.Status) error {
	plans, err := a.TreatmentPlans.List(ctx, status)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSOLDIER\tCATEGORY\tSTATUS\tREAPPROVAL\tPROVIDER")
	for _, plan := range plans {
		fmt.Fprintf(w, "%s\t%s\tDRC %s\t%s\t%t\t%s\n",
			plan.ID, plan.SoldierName, plan.CurrentCategory, plan.Status, plan.RequiresReapproval, plan.Provider)
	}
	return w.Flush()
}

func printAudit(ctx context.Context, a *app.App, limit int) error {
	events, err := a.AuditLog.ListRecent(ctx, limit)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tACTION\tOBJECT\tACTOR\tRISK")
	for _, event := range events {
		fmt.Fprintf(w, "%s\t%s\t%s %s\t%s\t%s\n",
			event.Timestamp.Format("02 Jan 15:04"), event.Action, event.ObjectType, event.ObjectID, event.Actor, event.RiskLevel)
	}
	return w.Flush()
}

func printRoles(ctx context.Context, a *app.App) error {
	defs, err := a.Roles.List(ctx)
	if err != nil {
		return err
	}
	for _, def := range defs {
		fmt.Printf("%s: %s\n", def.ID, def.Name)
		for _, p := range def.Permissions {
			fmt.Printf("  %s: %s\n", p.ID, p.Label)
		}
	}
	return nil
}
