package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"pharmhub/internal/auth"
	"pharmhub/internal/httpx"
)

type AuthHandler struct {
	service *auth.Service
}

func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// @Summary Member login
// @Description Verify credentials and issue a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param login body loginReq true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	member, token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	JSONData(w, map[string]any{
		"member": member,
		"token":  token,
	})
}

// @Summary Member logout
// @Tags auth
// @Security Bearer
// @Success 204
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	memberID := httpx.MemberIDFrom(r)
	if memberID == "" {
		JSONError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Login required", nil)
		return
	}
	if err := h.service.Logout(r.Context(), memberID); err != nil {
		WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
