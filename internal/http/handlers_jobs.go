package httpx

import (
	"net/http"
	"strconv"

	"github.com/joblydev/jobly-api/internal/domain/model"
	apperrors "github.com/joblydev/jobly-api/internal/errors"
	"github.com/joblydev/jobly-api/internal/service"
)

// JobHandlers provides HTTP handlers for job posting operations.
type JobHandlers struct {
	Svc *service.JobService
}

func jobIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		WriteAppError(w, apperrors.Validation("job id must be an integer"))
		return 0, false
	}
	return id, true
}

// List handles GET /jobs with optional search filters.
func (h *JobHandlers) List(w http.ResponseWriter, r *http.Request) {
	opts := model.JobSearchOptions{Search: optionalSearch(r)}

	var ok bool
	if opts.MinSalary, ok = parseOptionalFloat(w, r, "min_salary"); !ok {
		return
	}
	if opts.MinEquity, ok = parseOptionalFloat(w, r, "min_equity"); !ok {
		return
	}

	jobs, err := h.Svc.Search(r.Context(), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
}

// Create handles POST /jobs.
func (h *JobHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]any{"job": job})
}

// Get handles GET /jobs/{id}.
func (h *JobHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := jobIDFromPath(w, r)
	if !ok {
		return
	}

	job, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"job": job})
}

// Update handles PATCH /jobs/{id}.
func (h *JobHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := jobIDFromPath(w, r)
	if !ok {
		return
	}

	var req model.UpdateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"job": job})
}

// Delete handles DELETE /jobs/{id}.
func (h *JobHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := jobIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Job deleted"})
}
