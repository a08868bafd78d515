package httpx

import (
	"net/http"

	"github.com/joblydev/jobly-api/internal/domain/model"
	"github.com/joblydev/jobly-api/internal/service"
)

// UserHandlers provides HTTP handlers for user operations. Registration goes
// through the auth service so it can mint a token.
type UserHandlers struct {
	Svc  *service.UserService
	Auth *service.AuthService
}

// List handles GET /users.
func (h *UserHandlers) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.List(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"users": users})
}

// Register handles POST /users: open registration that returns the created
// user and a signed token.
func (h *UserHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req *model.RegisterUserRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Auth.Register(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]any{"user": result.User, "token": result.Token})
}

// Get handles GET /users/{username}.
func (h *UserHandlers) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.Svc.Get(r.Context(), r.PathValue("username"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"user": user})
}

// Update handles PATCH /users/{username}.
func (h *UserHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateUserRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.Svc.Update(r.Context(), r.PathValue("username"), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"user": user})
}

// Delete handles DELETE /users/{username}.
func (h *UserHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("username")); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "User deleted"})
}
