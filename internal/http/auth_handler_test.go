package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pharmhub/internal/auth"
	"pharmhub/internal/entity"
	"pharmhub/internal/store"
	"pharmhub/internal/testutil"
	"pharmhub/internal/usecase"
)

type fakeDirectory struct {
	members map[string]usecase.MemberCredentials
}

func (d *fakeDirectory) FindByEmail(ctx context.Context, email string) (usecase.MemberCredentials, error) {
	creds, ok := d.members[strings.ToLower(email)]
	if !ok {
		return usecase.MemberCredentials{}, usecase.ErrNotFound
	}
	return creds, nil
}

func newAuthMux(t *testing.T) *http.ServeMux {
	t.Helper()

	hash, err := auth.HashPassword("pw123456")
	require.NoError(t, err)

	dir := &fakeDirectory{members: map[string]usecase.MemberCredentials{
		testutil.TestMember.Email: {Account: testutil.TestMember, PasswordHash: hash},
	}}
	service := auth.NewService(dir, store.NewMemoryLocalStore(), testSecret, zap.NewNop())
	h := NewAuthHandler(service)

	mux := http.NewServeMux()
	mux.Handle("POST /api/auth/login", http.HandlerFunc(h.Login))
	mux.Handle("POST /api/auth/logout", RequireAuth(testSecret)(http.HandlerFunc(h.Logout)))
	return mux
}

func TestLoginHandler_Success(t *testing.T) {
	mux := newAuthMux(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "Owner@Hilltop.Example.COM",
		"password": "pw123456",
	}))

	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, resp.Code)

	data := resp.Body["data"].(map[string]any)
	assert.NotEmpty(t, data["token"])

	member := data["member"].(map[string]any)
	assert.Equal(t, testutil.TestMember.ID, member["id"])
	assert.Equal(t, string(entity.SubscriptionActive), member["subscription_status"])
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	mux := newAuthMux(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    testutil.TestMember.Email,
		"password": "wrong-password",
	}))

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", resp.Body["code"])
}

func TestLoginHandler_UnknownEmailLooksTheSame(t *testing.T) {
	mux := newAuthMux(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "pw123456",
	}))

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", resp.Body["code"])
}

func TestLoginHandler_Lockout(t *testing.T) {
	mux := newAuthMux(t)

	attempt := func(password string) testutil.RecordResponse {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/api/auth/login", map[string]string{
			"email":    testutil.TestMember.Email,
			"password": password,
		}))
		return testutil.RecordHTTPResponse(w)
	}

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusUnauthorized, attempt("wrong-password").Code)
	}

	resp := attempt("pw123456")
	assert.Equal(t, http.StatusTooManyRequests, resp.Code)
	assert.Equal(t, "RATE_LIMIT", resp.Body["code"])
}

func TestLoginHandler_Validation(t *testing.T) {
	mux := newAuthMux(t)

	t.Run("malformed body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{not json"))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "BAD_REQUEST", resp.Body["code"])
	})

	t.Run("missing fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/api/auth/login", map[string]string{}))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "VALIDATION_ERROR", resp.Body["code"])
		assert.NotEmpty(t, resp.Body["details"])
	})

	t.Run("not an email", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "not-an-email",
			"password": "pw123456",
		}))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "VALIDATION_ERROR", resp.Body["code"])
	})
}

func TestLogoutHandler(t *testing.T) {
	mux := newAuthMux(t)

	t.Run("authed logout is no content", func(t *testing.T) {
		token := testutil.GenerateTestToken(testSecret, testutil.TestMember.ID, testutil.TestMember.Email)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/api/auth/logout", nil, token))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("anonymous logout rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/api/auth/logout", nil))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", resp.Body["code"])
	})
}
