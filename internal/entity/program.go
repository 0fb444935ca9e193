package entity

import "strings"

// ProgramGeneral is the catch-all slug for resources not tied to a single
// clinical program.
const ProgramGeneral = "general"

// The five clinical program offerings.
const (
	SlugMTM          = "mtm"
	SlugImmunization = "immunizations"
	SlugDiabetes     = "diabetes-management"
	SlugHypertension = "hypertension"
	SlugPOCT         = "point-of-care-testing"
)

// ProgramSlugs lists the known program slugs.
func ProgramSlugs() []string {
	return []string{SlugMTM, SlugImmunization, SlugDiabetes, SlugHypertension, SlugPOCT}
}

// SlugifyProgram derives a fallback slug for a program name that is not one
// of the known offerings.
func SlugifyProgram(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}

type ClinicalProgram struct {
	Slug          string `json:"slug"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Icon          string `json:"icon,omitempty"`
	ResourceCount int    `json:"resource_count"`
	LastUpdated   string `json:"last_updated,omitempty"`
	DownloadCount int    `json:"download_count"`
}
