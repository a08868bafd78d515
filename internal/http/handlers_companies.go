package httpx

import (
	"net/http"
	"strconv"

	"github.com/joblydev/jobly-api/internal/domain/model"
	apperrors "github.com/joblydev/jobly-api/internal/errors"
	"github.com/joblydev/jobly-api/internal/service"
)

// CompanyHandlers provides HTTP handlers for company operations.
type CompanyHandlers struct {
	Svc *service.CompanyService
}

func parseOptionalInt(w http.ResponseWriter, r *http.Request, name string) (*int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		WriteAppError(w, apperrors.Validationf("%s must be an integer", name))
		return nil, false
	}
	return &v, true
}

func parseOptionalFloat(w http.ResponseWriter, r *http.Request, name string) (*float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		WriteAppError(w, apperrors.Validationf("%s must be a number", name))
		return nil, false
	}
	return &v, true
}

func optionalSearch(r *http.Request) *string {
	if s := r.URL.Query().Get("search"); s != "" {
		return &s
	}
	return nil
}

// List handles GET /companies with optional search filters.
func (h *CompanyHandlers) List(w http.ResponseWriter, r *http.Request) {
	opts := model.CompanySearchOptions{Search: optionalSearch(r)}

	var ok bool
	if opts.MinEmployees, ok = parseOptionalInt(w, r, "min_employees"); !ok {
		return
	}
	if opts.MaxEmployees, ok = parseOptionalInt(w, r, "max_employees"); !ok {
		return
	}

	companies, err := h.Svc.Search(r.Context(), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"companies": companies})
}

// Create handles POST /companies.
func (h *CompanyHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateCompanyRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	company, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]any{"company": company})
}

// Get handles GET /companies/{handle}, embedding the company's jobs.
func (h *CompanyHandlers) Get(w http.ResponseWriter, r *http.Request) {
	company, err := h.Svc.Get(r.Context(), r.PathValue("handle"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"company": company})
}

// Update handles PATCH /companies/{handle}.
func (h *CompanyHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateCompanyRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	company, err := h.Svc.Update(r.Context(), r.PathValue("handle"), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"company": company})
}

// Delete handles DELETE /companies/{handle}.
func (h *CompanyHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("handle")); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Company deleted"})
}
