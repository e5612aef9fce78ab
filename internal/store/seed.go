// Package store seeds the demo collections the dashboard starts from.
package store

import (
	"context"
	"time"

	"denclass/internal/audit"
	certmodels "denclass/internal/certificate/models"
	certstore "denclass/internal/certificate/store"
	"denclass/internal/role"
	planmodels "denclass/internal/treatmentplan/models"
	planstore "denclass/internal/treatmentplan/store"
)

func days(n int) time.Duration { return time.Duration(n) * 24 * time.Hour }

// SeedDemoData loads the demo certificate, treatment-plan, and audit
// collections, with record ages anchored to now.
func SeedDemoData(ctx context.Context, now time.Time, certs *certstore.InMemory, plans *planstore.InMemory, log *audit.Log) {
	for _, cert := range DemoCertificates(now) {
		_ = certs.Create(ctx, cert)
	}
	for _, plan := range DemoTreatmentPlans(now) {
		_ = plans.Create(ctx, plan)
	}
	// Oldest first so prepending leaves the log most-recent-first.
	events := DemoAuditEvents(now)
	for i := len(events) - 1; i >= 0; i-- {
		_ = log.Prepend(ctx, events[i])
	}
}

// DemoCertificates returns the certificate review queue fixtures.
func DemoCertificates(now time.Time) []*certmodels.Certificate {
	return []*certmodels.Certificate{
		{
			ID:                 "CERT-001",
			UserName:           "CPT Maria Lopez",
			Rank:               "CPT",
			Unit:               "807th MED BDE",
			RoleRequested:      "Medical Readiness Coordinator",
			Type:               certmodels.TypeHIPAA,
			Status:             certmodels.StatusPending,
			UploadedAt:         now.Add(-days(1)),
			ExpiresAt:          now.Add(days(330)),
			OCRExtractedExpiry: now.Add(days(330)),
			OCRConfidence:      0.92,
			FileName:           "Lopez_MRC_HIPAA.pdf",
		},
		{
			ID:                 "CERT-002",
			UserName:           "MSG Daniel Richards",
			Rank:               "MSG",
			Unit:               "63rd RD",
			RoleRequested:      "Dental Tech",
			Type:               certmodels.TypeHIPAA,
			Status:             certmodels.StatusUpdated,
			UploadedAt:         now.Add(-days(4)),
			ExpiresAt:          now.Add(days(150)),
			OCRExtractedExpiry: now.Add(days(150)),
			OCRConfidence:      0.88,
			FileName:           "Richards_DentalTech_HIPAA.pdf",
			Notes:              "Previously expired; awaiting reinstatement approval.",
		},
		{
			ID:            "CERT-003",
			UserName:      "Dr. Rebecca Imam",
			Rank:          "CIV",
			Unit:          "Contract Dentist - QTC",
			RoleRequested: "Dentist",
			Type:          certmodels.TypeLicense,
			Status:        certmodels.StatusExpired,
			UploadedAt:    now.Add(-days(380)),
			ExpiresAt:     now.Add(-days(15)),
			OCRConfidence: 0.67,
			FileName:      "Imam_License.pdf",
			Notes:         "OCR detected mismatch between expiration and provided date.",
		},
		{
			ID:                 "CERT-004",
			UserName:           "1LT Avery Chen",
			Rank:               "1LT",
			Unit:               "420th MMB",
			RoleRequested:      "Dentist",
			Type:               certmodels.TypeHIPAA,
			Status:             certmodels.StatusPending,
			UploadedAt:         now.Add(-days(2)),
			ExpiresAt:          now.Add(days(365)),
			OCRExtractedExpiry: now.Add(days(365)),
			OCRConfidence:      0.97,
			FileName:           "Chen_Dentist_HIPAA.pdf",
			Notes:              "Requires dental license verification.",
		},
		{
			ID:                 "CERT-005",
			UserName:           "SGT Elijah Ward",
			Rank:               "SGT",
			Unit:               "Army Reserve Medical Command",
			RoleRequested:      "Treatment Plan Coordinator",
			Type:               certmodels.TypeHIPAA,
			Status:             certmodels.StatusApproved,
			UploadedAt:         now.Add(-days(20)),
			ExpiresAt:          now.Add(days(310)),
			OCRExtractedExpiry: now.Add(days(310)),
			OCRConfidence:      0.93,
			Reviewer:           "COL Oates",
			LastReviewedAt:     now.Add(-days(18)),
			FileName:           "Ward_TPC_HIPAA.pdf",
		},
	}
}

// DemoTreatmentPlans returns the 3C re-approval queue fixtures.
func DemoTreatmentPlans(now time.Time) []*planmodels.TreatmentPlan {
	return []*planmodels.TreatmentPlan{
		{
			ID:                 "TP-10234",
			SoldierName:        "SSG Howard Mills",
			DODID:              "128-44-9312",
			Unit:               "807th MED BDE",
			Provider:           "Dr. Selena Park",
			Status:             planmodels.StatusAwaitingApproval,
			CurrentCategory:    planmodels.Category3C,
			PreviousCategory:   planmodels.Category3B,
			OriginalApprover:   "MAJ Trenton Reid",
			SubmittedAt:        now.Add(-days(1)),
			LastUpdatedAt:      now.Add(-days(1)),
			RequiresReapproval: true,
			ChangeSummary:      "Added three crown procedures (ADA 2750) during soldier consult on 26 Oct.",
			Delta: planmodels.Delta{
				ID:              "DELTA-9001",
				Description:     "Upgrade to 3C due to additional restorative work.",
				AddedProcedures: []string{"ADA 2750 x3", "ADA D2950"},
				FinancialImpact: "$3,450 estimated contract increase",
			},
			RiskNotes: "Billing reconciliation required; ensure previously approved 3B items remain in scope.",
		},
		{
			ID:                 "TP-10251",
			SoldierName:        "SPC Lindsay Moore",
			DODID:              "159-82-3401",
			Unit:               "81st RD",
			Provider:           "Dr. Ahmed Farouk",
			Status:             planmodels.StatusInReview,
			CurrentCategory:    planmodels.Category3C,
			PreviousCategory:   planmodels.Category3A,
			OriginalApprover:   "CPT Ernest Baird",
			SubmittedAt:        now.Add(-days(2)),
			LastUpdatedAt:      now.Add(-days(1)),
			RequiresReapproval: true,
			ChangeSummary:      "Added surgical extraction due to infection; flagged urgent follow-up.",
			Delta: planmodels.Delta{
				ID:              "DELTA-9002",
				Description:     "Category escalation due to urgent extraction.",
				AddedProcedures: []string{"ADA D7210", "ADA D9610 (anesthesia)"},
				FinancialImpact: "$1,250 estimated contract increase",
			},
			RiskNotes: "Notify billing contractor of urgent classification change.",
		},
		{
			ID:                 "TP-10087",
			SoldierName:        "CPL Sydney Patel",
			DODID:              "112-55-1876",
			Unit:               "3rd MED CMD",
			Provider:           "Dr. Liam Rogers",
			Status:             planmodels.StatusAwaitingApproval,
			CurrentCategory:    planmodels.Category3C,
			PreviousCategory:   planmodels.Category3C,
			OriginalApprover:   "COL Oates",
			SubmittedAt:        now.Add(-days(5)),
			LastUpdatedAt:      now.Add(-days(2)),
			RequiresReapproval: true,
			ChangeSummary:      "Provider removed periodontal maintenance that was already billed; needs reconciliation.",
			Delta: planmodels.Delta{
				ID:                "DELTA-9003",
				Description:       "Plan modified post-billing; remove duplicate maintenance.",
				RemovedProcedures: []string{"ADA D4910"},
				FinancialImpact:   "$450 credit pending confirmation",
			},
			RiskNotes: "Ensure contractor reverses previous billing; audit log should capture removal.",
		},
	}
}

// DemoAuditEvents returns the pre-existing trail entries, oldest last.
func DemoAuditEvents(now time.Time) []audit.Event {
	return []audit.Event{
		{
			ID:         "AUD-5002",
			ObjectType: audit.ObjectTreatmentPlan,
			ObjectID:   "TP-10234",
			Action:     "CATEGORY_ESCALATION",
			Timestamp:  now.Add(-days(1)),
			Actor:      "Dr. Selena Park",
			Details:    "Escalated treatment plan from 3B to 3C after additional findings.",
			Diff: map[string]audit.FieldDiff{
				"category":   {Previous: "3B", Current: "3C"},
				"procedures": {Previous: "4 total", Current: "7 total"},
			},
			RiskLevel: audit.RiskHigh,
		},
		{
			ID:         "AUD-5003",
			ObjectType: audit.ObjectRole,
			ObjectID:   "ROLE-DENTIST",
			Action:     "PERMISSION_UPDATE",
			Timestamp:  now.Add(-days(3)),
			Actor:      "COL Oates",
			Details:    "Enabled billing reconciliation view for Dentist role.",
			Diff: map[string]audit.FieldDiff{
				"permissions": {Previous: "VIEW_BILLING=disabled", Current: "VIEW_BILLING=enabled"},
			},
			RiskLevel: audit.RiskMedium,
		},
		{
			ID:         "AUD-5001",
			ObjectType: audit.ObjectCertificate,
			ObjectID:   "CERT-002",
			Action:     "UPLOAD_REPLACEMENT",
			Timestamp:  now.Add(-days(4)),
			Actor:      "MSG Daniel Richards",
			Details:    "Uploaded new HIPAA certificate after expiry lockout.",
			Diff: map[string]audit.FieldDiff{
				"status": {Previous: "expired", Current: "updated"},
				"expiresAt": {
					Previous: now.Add(-days(30)).Format(time.RFC3339),
					Current:  now.Add(days(150)).Format(time.RFC3339),
				},
			},
		},
	}
}

// DemoRoles returns the role-definition reference catalog.
func DemoRoles() []role.Definition {
	return []role.Definition{
		{
			ID:                  "ROLE-MRC",
			Name:                "Medical Readiness Coordinator",
			Description:         "Manages soldier medical readiness artifacts, uploads 2813s, and views readiness reports.",
			RequiredCredentials: []string{"HIPAA certificate"},
			Permissions: []role.PermissionItem{
				{
					ID:          "VIEW_DASHBOARD",
					Label:       "View readiness dashboard",
					Description: "Allows access to medical readiness overview and export readiness summaries.",
				},
				{
					ID:          "UPLOAD_2813",
					Label:       "Upload DD Form 2813",
					Description: "Authorizes upload and management of soldier dental readiness forms.",
				},
				{
					ID:          "RUN_REPORTS",
					Label:       "Run readiness reports",
					Description: "Allows execution of DenClass Reports module queries.",
				},
			},
			DefaultReports: []string{
				"DenClass Reports - ESR - Event Summary",
				"DenClass Reports - PTP Report",
			},
			SensitiveActions: []string{"None"},
		},
		{
			ID:                  "ROLE-DENTIST",
			Name:                "Dentist",
			Description:         "Clinical provider with authority to create and modify treatment plans up to 3B.",
			RequiredCredentials: []string{"HIPAA certificate", "Active dental license"},
			Permissions: []role.PermissionItem{
				{
					ID:          "CREATE_TREATMENT_PLAN",
					Label:       "Create / update treatment plans",
					Description: "Allows entry and modification of dental treatment plans.",
				},
				{
					ID:          "UPLOAD_DOCUMENTS",
					Label:       "Upload SF 603 / documentation",
					Description: "Allows providers to upload soldier treatment documents.",
				},
				{
					ID:          "VIEW_BILLING",
					Label:       "View billing reconciliation",
					Description: "Grants insight into contractor billing tied to treatment plans.",
				},
			},
			DefaultReports: []string{
				"DenClass Reports - SF 603 Report",
				"DenClass Reports - DWS Report",
			},
			SensitiveActions:   []string{"Modify treatment plan post-approval"},
			ImpersonationNotes: "Impersonation mode should disable edits and log access for audit.",
		},
		{
			ID:                  "ROLE-DRC3C",
			Name:                "DRC 3C Approver",
			Description:         "Senior authority responsible for approving or rejecting the highest-cost (3C) treatment plans.",
			RequiredCredentials: []string{"HIPAA certificate", "DRC 3C approval appointment memo"},
			Permissions: []role.PermissionItem{
				{
					ID:          "APPROVE_3C",
					Label:       "Approve DRC 3C treatment plans",
					Description: "Allows approval/return of 3C plans and requires audit confirmation.",
				},
				{
					ID:          "VIEW_AUDIT_LOG",
					Label:       "View audit trail",
					Description: "Provides direct access to full audit history for treatment plans.",
				},
				{
					ID:          "MANAGE_ROLES",
					Label:       "Manage role assignments",
					Description: "Allows assignment of permissions to users.",
				},
			},
			DefaultReports:   []string{"DenClass Reports - ESR - Event Summary - Soldier Exam"},
			SensitiveActions: []string{"Approve 3C", "Delegate approval authority"},
		},
	}
}
