package http

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"pharmhub/internal/entity"
	"pharmhub/internal/httpx"
	"pharmhub/internal/usecase"
)

type ResourceHandler struct {
	content usecase.ContentSource
	state   usecase.LocalStore
	logger  *zap.Logger
}

func NewResourceHandler(content usecase.ContentSource, state usecase.LocalStore, logger *zap.Logger) *ResourceHandler {
	return &ResourceHandler{content: content, state: state, logger: logger}
}

// @Summary List resources
// @Description Unified resource library with filters and sorting
// @Tags resources
// @Produce json
// @Param program query string false "Program slug filter (repeatable or comma-separated)"
// @Param type query string false "Resource type filter (repeatable)"
// @Param category query string false "Category filter"
// @Param tag query string false "Tag filter (repeatable)"
// @Param search query string false "Case-insensitive name search"
// @Param bookmarked query bool false "Only bookmarked resources"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Param sortBy query string false "name|lastUpdated|downloadCount|category"
// @Param sortOrder query string false "asc|desc"
// @Success 200 {object} map[string]interface{}
// @Router /api/resources [get]
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := parseResourceFilters(r)
	filters.Bookmarks = h.bookmarkIDs(r)

	items, err := h.content.ListResources(r.Context(), filters)
	if err != nil {
		WriteError(w, err)
		return
	}
	JSONDataMeta(w, items, map[string]any{
		"count":  len(items),
		"limit":  filters.Limit,
		"offset": filters.Offset,
	})
}

// @Summary Get one resource
// @Tags resources
// @Produce json
// @Param id path string true "Resource record ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errorResponse
// @Router /api/resources/{id} [get]
func (h *ResourceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		JSONError(w, http.StatusNotFound, "NOT_FOUND", "Missing resource id", nil)
		return
	}

	item, err := h.content.GetResource(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	item.Bookmarked = slices.Contains(h.bookmarkIDs(r), item.ID)
	JSONData(w, item)
}

// @Summary Toggle a bookmark
// @Tags bookmarks
// @Produce json
// @Security Bearer
// @Param id path string true "Resource record ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/resources/{id}/bookmark [post]
func (h *ResourceHandler) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	memberID := httpx.MemberIDFrom(r)
	if memberID == "" {
		JSONError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Login required", nil)
		return
	}
	id := r.PathValue("id")
	if id == "" {
		JSONError(w, http.StatusNotFound, "NOT_FOUND", "Missing resource id", nil)
		return
	}

	key := usecase.KeyBookmarks + memberID
	current, err := h.state.SetMembers(r.Context(), key)
	if err != nil {
		WriteError(w, err)
		return
	}

	bookmarked := !slices.Contains(current, id)
	if bookmarked {
		err = h.state.SetAdd(r.Context(), key, id)
	} else {
		err = h.state.SetRemove(r.Context(), key, id)
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	JSONData(w, map[string]any{
		"id":         id,
		"bookmarked": bookmarked,
	})
}

// @Summary List bookmarked resource IDs
// @Tags bookmarks
// @Produce json
// @Security Bearer
// @Success 200 {object} map[string]interface{}
// @Router /api/bookmarks [get]
func (h *ResourceHandler) Bookmarks(w http.ResponseWriter, r *http.Request) {
	memberID := httpx.MemberIDFrom(r)
	if memberID == "" {
		JSONError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Login required", nil)
		return
	}
	ids, err := h.state.SetMembers(r.Context(), usecase.KeyBookmarks+memberID)
	if err != nil {
		WriteError(w, err)
		return
	}
	slices.Sort(ids)
	JSONData(w, ids)
}

// bookmarkIDs loads the caller's bookmark set; anonymous callers get
// none. A LocalStore read failure only loses the merged flags, so it is
// logged rather than failing the whole request.
func (h *ResourceHandler) bookmarkIDs(r *http.Request) []string {
	memberID := httpx.MemberIDFrom(r)
	if memberID == "" {
		return nil
	}
	ids, err := h.state.SetMembers(r.Context(), usecase.KeyBookmarks+memberID)
	if err != nil {
		h.logger.Warn("failed to load bookmarks", zap.String("member_id", memberID), zap.Error(err))
		return nil
	}
	return ids
}

func parseResourceFilters(r *http.Request) usecase.ResourceFilters {
	q := r.URL.Query()

	f := usecase.ResourceFilters{
		Category:       q.Get("category"),
		Search:         q.Get("search"),
		SortBy:         q.Get("sortBy"),
		BookmarkedOnly: q.Get("bookmarked") == "true",
	}

	for _, raw := range q["program"] {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				f.Programs = append(f.Programs, p)
			}
		}
	}
	for _, t := range q["type"] {
		if t = strings.TrimSpace(t); t != "" {
			f.Types = append(f.Types, entity.ResourceType(t))
		}
	}
	for _, tag := range q["tag"] {
		if tag = strings.TrimSpace(tag); tag != "" {
			f.Tags = append(f.Tags, tag)
		}
	}

	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		if limit > 100 {
			limit = 100
		}
		f.Limit = limit
	}
	if offset, err := strconv.Atoi(q.Get("offset")); err == nil && offset > 0 {
		f.Offset = offset
	}
	if q.Get("sortOrder") == "desc" {
		f.SortOrder = usecase.SortDesc
	} else if q.Get("sortOrder") == "asc" {
		f.SortOrder = usecase.SortAsc
	}

	return f
}
