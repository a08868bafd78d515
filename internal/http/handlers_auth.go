package httpx

import (
	"net/http"

	"github.com/joblydev/jobly-api/internal/domain/model"
	"github.com/joblydev/jobly-api/internal/service"
)

// AuthHandlers provides HTTP handlers for login.
type AuthHandlers struct {
	Svc *service.AuthService
}

// Login handles POST /auth/login and returns a signed token.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req *model.LoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.Login(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"token": result.Token})
}
