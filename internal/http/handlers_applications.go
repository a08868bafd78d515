package httpx

import (
	"net/http"

	"github.com/joblydev/jobly-api/internal/domain/model"
	apperrors "github.com/joblydev/jobly-api/internal/errors"
	"github.com/joblydev/jobly-api/internal/service"
)

// ApplicationHandlers provides HTTP handlers for the job application
// lifecycle endpoints under /jobs/{id}.
type ApplicationHandlers struct {
	Svc *service.ApplicationService
}

// Interest handles POST /jobs/{id}/interest for the acting principal.
func (h *ApplicationHandlers) Interest(w http.ResponseWriter, r *http.Request) {
	h.createForPrincipal(w, r, model.StateInterested)
}

// Apply handles POST /jobs/{id}/apply for the acting principal.
func (h *ApplicationHandlers) Apply(w http.ResponseWriter, r *http.Request) {
	h.createForPrincipal(w, r, model.StateApplied)
}

// createForPrincipal submits an application with a fixed state on behalf of
// the authenticated caller. The username always comes from the principal,
// never from the request body.
func (h *ApplicationHandlers) createForPrincipal(w http.ResponseWriter, r *http.Request, state model.ApplicationState) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteUnauthorized(w)
		return
	}

	id, ok := jobIDFromPath(w, r)
	if !ok {
		return
	}

	app, err := h.Svc.Create(r.Context(), principal.Username, id, string(state))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]any{"application": app})
}

// Respond handles POST /jobs/{id}/respond: an admin accepting or rejecting a
// named user's application. Other states never reach the service.
func (h *ApplicationHandlers) Respond(w http.ResponseWriter, r *http.Request) {
	id, ok := jobIDFromPath(w, r)
	if !ok {
		return
	}

	var req model.RespondRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Username == "" {
		WriteAppError(w, apperrors.Validation("username is required"))
		return
	}

	state, parsed := model.ParseApplicationState(req.State)
	if !parsed || (state != model.StateAccepted && state != model.StateRejected) {
		WriteAppError(w, apperrors.InvalidState("state must be accepted or rejected"))
		return
	}

	app, err := h.Svc.Update(r.Context(), req.Username, id, string(state))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"application": app})
}
