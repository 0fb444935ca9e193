package http

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"pharmhub/internal/entity"
	"pharmhub/internal/usecase"
)

type ContentHandler struct {
	content usecase.ContentSource
}

func NewContentHandler(content usecase.ContentSource) *ContentHandler {
	return &ContentHandler{content: content}
}

// @Summary Health check
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func (h *ContentHandler) Health(w http.ResponseWriter, r *http.Request) {
	JSONData(w, map[string]string{
		"status": "ok",
		"mode":   h.content.Mode(),
	})
}

// @Summary List clinical programs
// @Tags programs
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/programs [get]
func (h *ContentHandler) Programs(w http.ResponseWriter, r *http.Request) {
	programs, err := h.content.ListPrograms(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	JSONData(w, programs)
}

// @Summary List announcements
// @Tags announcements
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/announcements [get]
func (h *ContentHandler) Announcements(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.content.ListAnnouncements(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	JSONData(w, announcements)
}

// @Summary List quick access links
// @Tags quick-access
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/quick-access [get]
func (h *ContentHandler) QuickAccess(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.ListQuickAccess(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	JSONData(w, items)
}

type dashboardPayload struct {
	Programs      []entity.ClinicalProgram `json:"programs"`
	Announcements []entity.Announcement    `json:"announcements"`
	QuickAccess   []entity.QuickAccessItem `json:"quick_access"`
}

// @Summary Dashboard aggregate
// @Description Programs, announcements and quick access in one response
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/dashboard [get]
func (h *ContentHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	var payload dashboardPayload

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		payload.Programs, err = h.content.ListPrograms(ctx)
		return err
	})
	g.Go(func() (err error) {
		payload.Announcements, err = h.content.ListAnnouncements(ctx)
		return err
	})
	g.Go(func() (err error) {
		payload.QuickAccess, err = h.content.ListQuickAccess(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		WriteError(w, err)
		return
	}
	JSONData(w, payload)
}
