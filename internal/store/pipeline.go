package store

import (
	"sort"
	"strings"

	"pharmhub/internal/entity"
	"pharmhub/internal/usecase"
)

// applyResourceFilters runs the client-side pipeline over an already
// fetched resource set: program filter, type filter, category, tags,
// free-text name match, bookmark merge, stable sort, then the
// offset/limit window. Input order is the tie-breaker for equal sort keys.
func applyResourceFilters(items []entity.ResourceItem, f usecase.ResourceFilters) []entity.ResourceItem {
	out := make([]entity.ResourceItem, 0, len(items))

	programs := lowerSet(f.Programs)
	types := typeSet(f.Types)
	tags := lowerSet(f.Tags)
	search := strings.ToLower(strings.TrimSpace(f.Search))
	category := strings.ToLower(strings.TrimSpace(f.Category))
	bookmarks := make(map[string]bool, len(f.Bookmarks))
	for _, id := range f.Bookmarks {
		bookmarks[id] = true
	}

	for _, item := range items {
		if len(programs) > 0 && !programs[strings.ToLower(item.Program)] {
			continue
		}
		if len(types) > 0 && !types[item.Type] {
			continue
		}
		if category != "" && strings.ToLower(item.Category) != category {
			continue
		}
		if len(tags) > 0 && !hasAnyTag(item.Tags, tags) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		item.Bookmarked = bookmarks[item.ID]
		if f.BookmarkedOnly && !item.Bookmarked {
			continue
		}
		out = append(out, item)
	}

	sortResources(out, f.SortBy, f.SortOrder)

	return window(out, f.Offset, f.Limit)
}

// sortResources orders by the whitelisted key; unknown or absent keys
// fall back to name ascending. SliceStable keeps input order for ties.
func sortResources(items []entity.ResourceItem, key string, order usecase.SortOrder) {
	desc := order == usecase.SortDesc

	var less func(a, b entity.ResourceItem) bool
	switch key {
	case usecase.SortByLastUpdated:
		less = func(a, b entity.ResourceItem) bool { return a.LastUpdated < b.LastUpdated }
	case usecase.SortByDownloadCount:
		less = func(a, b entity.ResourceItem) bool { return a.DownloadCount < b.DownloadCount }
	case usecase.SortByCategory:
		less = func(a, b entity.ResourceItem) bool { return a.Category < b.Category }
	case usecase.SortByName:
		less = func(a, b entity.ResourceItem) bool { return a.Name < b.Name }
	default:
		less = func(a, b entity.ResourceItem) bool { return a.Name < b.Name }
		desc = false
	}

	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

func window(items []entity.ResourceItem, offset, limit int) []entity.ResourceItem {
	if offset > 0 {
		if offset >= len(items) {
			return []entity.ResourceItem{}
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func lowerSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			set[v] = true
		}
	}
	return set
}

func typeSet(types []entity.ResourceType) map[entity.ResourceType]bool {
	set := make(map[entity.ResourceType]bool, len(types))
	for _, t := range types {
		if t != "" {
			set[t] = true
		}
	}
	return set
}

func hasAnyTag(tags []string, wanted map[string]bool) bool {
	for _, tag := range tags {
		if wanted[strings.ToLower(tag)] {
			return true
		}
	}
	return false
}
