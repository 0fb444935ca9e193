package store

import (
	"context"
	"strings"

	"pharmhub/internal/entity"
	"pharmhub/internal/usecase"
)

// StaticContent is the demo fallback used when no provider credentials
// are configured and demo mode is on. Same pipeline semantics as the
// Airtable store, fixed dataset.
type StaticContent struct{}

func NewStaticContent() *StaticContent { return &StaticContent{} }

func (s *StaticContent) Mode() string { return usecase.ModeStatic }

func (s *StaticContent) ListPrograms(ctx context.Context) ([]entity.ClinicalProgram, error) {
	out := make([]entity.ClinicalProgram, len(staticPrograms))
	copy(out, staticPrograms)
	return out, nil
}

func (s *StaticContent) ListResources(ctx context.Context, f usecase.ResourceFilters) ([]entity.ResourceItem, error) {
	all := make([]entity.ResourceItem, len(staticResources))
	copy(all, staticResources)
	return applyResourceFilters(all, f), nil
}

func (s *StaticContent) GetResource(ctx context.Context, id string) (entity.ResourceItem, error) {
	for _, item := range staticResources {
		if item.ID == id {
			return item, nil
		}
	}
	return entity.ResourceItem{}, usecase.ErrNotFound
}

func (s *StaticContent) ListAnnouncements(ctx context.Context) ([]entity.Announcement, error) {
	out := make([]entity.Announcement, len(staticAnnouncements))
	copy(out, staticAnnouncements)
	return out, nil
}

func (s *StaticContent) ListQuickAccess(ctx context.Context) ([]entity.QuickAccessItem, error) {
	out := make([]entity.QuickAccessItem, len(staticQuickAccess))
	copy(out, staticQuickAccess)
	return out, nil
}

// StaticMembers backs demo-mode logins with a single seeded account.
type StaticMembers struct{}

func NewStaticMembers() *StaticMembers { return &StaticMembers{} }

func (s *StaticMembers) FindByEmail(ctx context.Context, email string) (usecase.MemberCredentials, error) {
	if strings.EqualFold(strings.TrimSpace(email), demoMember.Account.Email) {
		return demoMember, nil
	}
	return usecase.MemberCredentials{}, usecase.ErrNotFound
}

var staticPrograms = []entity.ClinicalProgram{
	{Slug: entity.SlugMTM, Name: "Medication Therapy Management", Description: "Comprehensive medication reviews and targeted interventions.", Icon: "pill", ResourceCount: 4, LastUpdated: "2026-07-14", DownloadCount: 182},
	{Slug: entity.SlugImmunization, Name: "Immunization Services", Description: "Vaccine administration protocols, screening forms and billing guides.", Icon: "syringe", ResourceCount: 3, LastUpdated: "2026-08-02", DownloadCount: 240},
	{Slug: entity.SlugDiabetes, Name: "Diabetes Management", Description: "CGM onboarding, education handouts and collaborative practice tools.", Icon: "activity", ResourceCount: 2, LastUpdated: "2026-06-30", DownloadCount: 97},
	{Slug: entity.SlugHypertension, Name: "Hypertension Management", Description: "Blood pressure monitoring workflows and referral templates.", Icon: "heart-pulse", ResourceCount: 1, LastUpdated: "2026-05-21", DownloadCount: 64},
	{Slug: entity.SlugPOCT, Name: "Point-of-Care Testing", Description: "CLIA-waived testing procedures and result documentation.", Icon: "test-tube", ResourceCount: 2, LastUpdated: "2026-07-28", DownloadCount: 73},
}

var staticResources = []entity.ResourceItem{
	{ID: "recStatic001", Name: "CMR Worksheet", Program: entity.SlugMTM, Type: entity.TypeForms, Category: "Documentation", Tags: []string{"mtm", "medication review"}, SizeMB: 0.42, LastUpdated: "2026-07-14", DownloadCount: 58},
	{ID: "recStatic002", Name: "Immunization Screening Questionnaire", Program: entity.SlugImmunization, Type: entity.TypeForms, Category: "Screening", Tags: []string{"vaccines"}, SizeMB: 0.31, LastUpdated: "2026-08-02", DownloadCount: 112},
	{ID: "recStatic003", Name: "Vaccine Storage and Handling Protocol", Program: entity.SlugImmunization, Type: entity.TypeProtocols, Category: "Operations", Tags: []string{"vaccines", "cold chain"}, SizeMB: 1.18, LastUpdated: "2026-07-19", DownloadCount: 87},
	{ID: "recStatic004", Name: "CGM Patient Onboarding Guide", Program: entity.SlugDiabetes, Type: entity.TypeHandouts, Category: "Patient Education", Tags: []string{"diabetes", "cgm"}, SizeMB: 2.05, LastUpdated: "2026-06-30", DownloadCount: 45},
	{ID: "recStatic005", Name: "Pharmacist CE: Injection Technique", Program: entity.SlugImmunization, Type: entity.TypeTraining, Category: "Continuing Education", Tags: []string{"vaccines", "training"}, SizeMB: 8.4, LastUpdated: "2026-05-11", DownloadCount: 41},
	{ID: "recStatic006", Name: "Medicare Part D Billing Quick Reference", Program: entity.ProgramGeneral, Type: entity.TypeBilling, Category: "Billing", Tags: []string{"billing", "medicare"}, SizeMB: 0.27, LastUpdated: "2026-07-05", DownloadCount: 133},
	{ID: "recStatic007", Name: "Hypertension Referral Template", Program: entity.SlugHypertension, Type: entity.TypeForms, Category: "Documentation", Tags: []string{"hypertension"}, SizeMB: 0.19, LastUpdated: "2026-05-21", DownloadCount: 29},
	{ID: "recStatic008", Name: "A1c Point-of-Care Testing Procedure", Program: entity.SlugPOCT, Type: entity.TypeProtocols, Category: "Operations", Tags: []string{"poct", "diabetes"}, SizeMB: 0.88, LastUpdated: "2026-07-28", DownloadCount: 52},
	{ID: "recStatic009", Name: "JNC Guideline Summary", Program: entity.SlugHypertension, Type: entity.TypeGuidelines, Category: "Clinical Reference", Tags: []string{"hypertension"}, SizeMB: 1.6, LastUpdated: "2026-04-16", DownloadCount: 38},
	{ID: "recStatic010", Name: "State Collaborative Practice Agreement FAQ", Program: entity.ProgramGeneral, Type: entity.TypeAdditional, Category: "Regulatory", Tags: []string{"cpa"}, SizeMB: 0.35, LastUpdated: "2026-06-02", DownloadCount: 23},
}

var staticAnnouncements = []entity.Announcement{
	{ID: "annStatic001", Title: "2026-27 Flu Vaccine Pre-Book Now Open", Body: "Pre-booking for the upcoming influenza season closes August 31.", Category: "Immunizations", Priority: "High", PublishedAt: "2026-08-10"},
	{ID: "annStatic002", Title: "Updated CMR Documentation Forms", Body: "The comprehensive medication review worksheet was revised for the new plan year.", Category: "MTM", Priority: "Normal", PublishedAt: "2026-07-14"},
	{ID: "annStatic003", Title: "New CE Module: Pediatric Immunizations", Body: "A one-hour accredited module is now available in the training library.", Category: "Training", Priority: "Normal", PublishedAt: "2026-06-27"},
}

var staticQuickAccess = []entity.QuickAccessItem{
	{ID: "qaStatic001", Title: "Submit an MTM Claim", Description: "Jump straight to the claim submission portal.", Icon: "file-text", Link: "https://portal.example.com/claims", Category: "MTM"},
	{ID: "qaStatic002", Title: "Vaccine Finder", Description: "Check regional vaccine inventory.", Icon: "search", Link: "https://portal.example.com/vaccines", Category: "Immunizations"},
	{ID: "qaStatic003", Title: "Help Desk", Description: "Open a support ticket with the clinical team.", Icon: "life-buoy", Link: "https://portal.example.com/support", Category: "Support"},
}

// demoMember deliberately uses the legacy temp-password field so the
// migration fallback stays covered by the demo flow.
var demoMember = usecase.MemberCredentials{
	Account: entity.MemberAccount{
		ID:                 "recStaticMember01",
		PharmacyName:       "Demo Community Pharmacy",
		Email:              "demo@pharmhub.example.com",
		SubscriptionStatus: entity.SubscriptionTrial,
	},
	TempPassword: "demo-password",
}
