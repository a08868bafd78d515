package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/joblydev/jobly-api/internal/errors"
)

func TestWriteAppError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "not found",
			err:        apperrors.NotFound("There exists no company 'nope'"),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"status":404,"message":"There exists no company 'nope'"}`,
		},
		{
			name:       "validation",
			err:        apperrors.Validation("name is required"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"status":400,"message":"name is required"}`,
		},
		{
			name:       "validation list",
			err:        apperrors.ValidationList([]string{"name is required", "handle is required"}),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"status":400,"message":["name is required","handle is required"]}`,
		},
		{
			name:       "invalid state maps to 400",
			err:        apperrors.InvalidState("an application cannot start as accepted"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"status":400,"message":"an application cannot start as accepted"}`,
		},
		{
			name:       "conflict",
			err:        apperrors.Conflict("There already exists a user with username 'whiskey'"),
			wantStatus: http.StatusConflict,
			wantBody:   `{"status":409,"message":"There already exists a user with username 'whiskey'"}`,
		},
		{
			name:       "internal message is masked",
			err:        apperrors.Internal("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"status":500,"message":"Internal Server Error"}`,
		},
		{
			name:       "unknown error maps to 500 and is masked",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"status":500,"message":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteAppError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWriteAppError_UnauthorizedOmitsStatusField(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteAppError(rec, apperrors.Unauthorized())

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// Clients match on this exact shape, with no status field.
	assert.Equal(t, `{"message":"Unauthorized"}`+"\n", rec.Body.String())
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusCreated, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"hello":"world"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("valid body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"acme"}`))

		var dst payload
		require.True(t, DecodeJSON(rec, req, &dst))
		assert.Equal(t, "acme", dst.Name)
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"acme","bogus":1}`))

		var dst payload
		require.False(t, DecodeJSON(rec, req, &dst))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body struct {
			Status  int    `json:"status"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, http.StatusBadRequest, body.Status)
		assert.Contains(t, body.Message, "bogus")
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))

		var dst payload
		require.False(t, DecodeJSON(rec, req, &dst))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
