package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"pharmhub/internal/auth"
	"pharmhub/internal/entity"
)

// TestMember is a canned member account for handler tests.
var TestMember = entity.MemberAccount{
	ID:                 "recTestMember1",
	PharmacyName:       "Hilltop Pharmacy",
	Email:              "owner@hilltop.example.com",
	SubscriptionStatus: entity.SubscriptionActive,
}

// GenerateTestToken issues a short-lived session token for TestMember-like
// identities.
func GenerateTestToken(secret, memberID, email string) string {
	token, _ := auth.GenerateToken(secret, memberID, email, time.Hour)
	return token
}

// NewRequest creates a JSON HTTP request for testing.
func NewRequest(method, path string, body any) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	bodyBytes, _ := json.Marshal(body)
	r := httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// NewRequestWithAuth creates a request carrying a bearer token.
func NewRequestWithAuth(method, path string, body any, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// RecordResponse is a decoded recorder result.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]any
}

// RecordHTTPResponse drains and decodes the recorder.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]any
	if len(bodyBytes) > 0 {
		json.Unmarshal(bodyBytes, &bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
