package usecase

import (
	"context"

	"pharmhub/internal/entity"
)

// Data-source modes reported by /api/health.
const (
	ModeAirtable     = "airtable"
	ModeStatic       = "static"
	ModeUnconfigured = "unconfigured"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Logical sort keys accepted from the UI. Anything else falls back to
// name ascending.
const (
	SortByName          = "name"
	SortByLastUpdated   = "lastUpdated"
	SortByDownloadCount = "downloadCount"
	SortByCategory      = "category"
)

// ResourceFilters describes one resource query. Every field is optional;
// the zero value means "no constraint".
type ResourceFilters struct {
	Programs  []string
	Types     []entity.ResourceType
	Category  string
	Tags      []string
	Search    string
	Limit     int
	Offset    int
	SortBy    string
	SortOrder SortOrder

	// Bookmarks is the caller's bookmark ID set, merged onto results at
	// read time. BookmarkedOnly drops everything outside that set.
	Bookmarks      []string
	BookmarkedOnly bool
}

// ContentSource is the single content entry point consumed by the HTTP
// layer. Implemented by the Airtable-backed store, the static fixture
// store, and an unconfigured stub that fails every call.
type ContentSource interface {
	ListPrograms(ctx context.Context) ([]entity.ClinicalProgram, error)
	ListResources(ctx context.Context, f ResourceFilters) ([]entity.ResourceItem, error)
	GetResource(ctx context.Context, id string) (entity.ResourceItem, error)
	ListAnnouncements(ctx context.Context) ([]entity.Announcement, error)
	ListQuickAccess(ctx context.Context) ([]entity.QuickAccessItem, error)

	// Mode identifies which implementation is serving content.
	Mode() string
}
