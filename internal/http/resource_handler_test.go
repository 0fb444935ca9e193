package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pharmhub/internal/entity"
	"pharmhub/internal/store"
	"pharmhub/internal/testutil"
	"pharmhub/internal/usecase"
)

const testSecret = "test-secret"

// newResourceMux wires the resource routes the way cmd/api does, with the
// auth middlewares in front, so PathValue and the member context work.
func newResourceMux(content *fakeContent, state usecase.LocalStore) *http.ServeMux {
	h := NewResourceHandler(content, state, zap.NewNop())
	optional := OptionalAuth(testSecret)
	required := RequireAuth(testSecret)

	mux := http.NewServeMux()
	mux.Handle("GET /api/resources", optional(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/resources/{id}", optional(http.HandlerFunc(h.GetByID)))
	mux.Handle("POST /api/resources/{id}/bookmark", required(http.HandlerFunc(h.ToggleBookmark)))
	mux.Handle("GET /api/bookmarks", required(http.HandlerFunc(h.Bookmarks)))
	return mux
}

func TestListResources_ParsesQueryIntoFilters(t *testing.T) {
	content := &fakeContent{resources: []entity.ResourceItem{{ID: "r1", Name: "CMR Worksheet"}}}
	mux := newResourceMux(content, store.NewMemoryLocalStore())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.NewRequest(http.MethodGet,
		"/api/resources?program=mtm,immunizations&type=Forms&tag=vaccines&search=worksheet&limit=500&offset=3&sortBy=downloadCount&sortOrder=desc", nil))

	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, resp.Code)

	f := content.lastFilters
	assert.Equal(t, []string{"mtm", "immunizations"}, f.Programs)
	assert.Equal(t, []entity.ResourceType{entity.TypeForms}, f.Types)
	assert.Equal(t, []string{"vaccines"}, f.Tags)
	assert.Equal(t, "worksheet", f.Search)
	assert.Equal(t, 100, f.Limit, "page size is capped")
	assert.Equal(t, 3, f.Offset)
	assert.Equal(t, usecase.SortByDownloadCount, f.SortBy)
	assert.Equal(t, usecase.SortDesc, f.SortOrder)

	meta := resp.Body["meta"].(map[string]any)
	assert.Equal(t, float64(1), meta["count"])
}

func TestListResources_AuthedCallerGetsBookmarkSet(t *testing.T) {
	content := &fakeContent{}
	state := store.NewMemoryLocalStore()
	require.NoError(t, state.SetAdd(context.Background(), usecase.KeyBookmarks+"recM1", "r2", "r3"))
	mux := newResourceMux(content, state)

	token := testutil.GenerateTestToken(testSecret, "recM1", "owner@hilltop.example.com")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodGet, "/api/resources?bookmarked=true", nil, token))

	require.Equal(t, http.StatusOK, w.Code)
	assert.ElementsMatch(t, []string{"r2", "r3"}, content.lastFilters.Bookmarks)
	assert.True(t, content.lastFilters.BookmarkedOnly)
}

func TestListResources_AnonymousCallerHasNoBookmarks(t *testing.T) {
	content := &fakeContent{}
	mux := newResourceMux(content, store.NewMemoryLocalStore())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.NewRequest(http.MethodGet, "/api/resources", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, content.lastFilters.Bookmarks)
}

func TestGetResource(t *testing.T) {
	content := &fakeContent{resources: []entity.ResourceItem{
		{ID: "r1", Name: "Cold Chain Protocol", Type: entity.TypeProtocols},
	}}
	state := store.NewMemoryLocalStore()
	require.NoError(t, state.SetAdd(context.Background(), usecase.KeyBookmarks+"recM1", "r1"))
	mux := newResourceMux(content, state)

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.NewRequest(http.MethodGet, "/api/resources/r1", nil))

		resp := testutil.RecordHTTPResponse(w)
		require.Equal(t, http.StatusOK, resp.Code)
		data := resp.Body["data"].(map[string]any)
		assert.Equal(t, "Cold Chain Protocol", data["name"])
		assert.Equal(t, false, data["bookmarked"])
	})

	t.Run("bookmark flag merged for the caller", func(t *testing.T) {
		token := testutil.GenerateTestToken(testSecret, "recM1", "owner@hilltop.example.com")
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodGet, "/api/resources/r1", nil, token))

		resp := testutil.RecordHTTPResponse(w)
		data := resp.Body["data"].(map[string]any)
		assert.Equal(t, true, data["bookmarked"])
	})

	t.Run("missing id is 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.NewRequest(http.MethodGet, "/api/resources/nope", nil))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Equal(t, "NOT_FOUND", resp.Body["code"])
	})
}

func TestToggleBookmark(t *testing.T) {
	content := &fakeContent{}
	state := store.NewMemoryLocalStore()
	mux := newResourceMux(content, state)
	token := testutil.GenerateTestToken(testSecret, "recM1", "owner@hilltop.example.com")

	toggle := func() testutil.RecordResponse {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/api/resources/r1/bookmark", nil, token))
		return testutil.RecordHTTPResponse(w)
	}

	resp := toggle()
	require.Equal(t, http.StatusOK, resp.Code)
	data := resp.Body["data"].(map[string]any)
	assert.Equal(t, true, data["bookmarked"], "first toggle adds the bookmark")

	ids, err := state.SetMembers(context.Background(), usecase.KeyBookmarks+"recM1")
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, ids)

	resp = toggle()
	data = resp.Body["data"].(map[string]any)
	assert.Equal(t, false, data["bookmarked"], "second toggle removes it")

	ids, _ = state.SetMembers(context.Background(), usecase.KeyBookmarks+"recM1")
	assert.Empty(t, ids)
}

func TestToggleBookmark_RequiresAuth(t *testing.T) {
	mux := newResourceMux(&fakeContent{}, store.NewMemoryLocalStore())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/api/resources/r1/bookmark", nil))

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", resp.Body["code"])
}

func TestBookmarks_SortedForTheCaller(t *testing.T) {
	state := store.NewMemoryLocalStore()
	require.NoError(t, state.SetAdd(context.Background(), usecase.KeyBookmarks+"recM1", "r3", "r1", "r2"))
	mux := newResourceMux(&fakeContent{}, state)

	token := testutil.GenerateTestToken(testSecret, "recM1", "owner@hilltop.example.com")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodGet, "/api/bookmarks", nil, token))

	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []any{"r1", "r2", "r3"}, resp.Body["data"].([]any))
}

func TestBookmarks_InvalidTokenRejected(t *testing.T) {
	mux := newResourceMux(&fakeContent{}, store.NewMemoryLocalStore())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodGet, "/api/bookmarks", nil, "garbage"))

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", resp.Body["code"])
}
