package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/estimate"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/repository"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/service"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, resp errorResponse) {
	writeJSON(w, status, resp)
}

// decodeAndValidate reads a JSON body into dst and runs its validate tags.
// It writes the 400 response itself and reports whether decoding succeeded.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, errorResponse{Error: "invalid_json", Message: err.Error()})
		return false
	}
	if err := validate.Struct(dst); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			writeError(w, http.StatusBadRequest, errorResponse{Error: "validation_failed", Fields: validationFields(ve)})
			return false
		}
		writeError(w, http.StatusBadRequest, errorResponse{Error: "validation_failed", Message: err.Error()})
		return false
	}
	return true
}

// pathID returns the UUID path parameter name. A malformed id is reported as 404.
func pathID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	id := r.PathValue(name)
	if uuid.Validate(id) != nil {
		writeError(w, http.StatusNotFound, errorResponse{Error: "not_found"})
		return "", false
	}
	return id, true
}

// writeServiceError maps service, repository and estimate errors onto HTTP responses.
// op names the failed operation in the 500 error code and the log line.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error, attrs ...any) {
	var (
		vErr  *estimate.ValidationError
		nfErr *estimate.NotFoundError
	)
	switch {
	case errors.As(err, &vErr):
		writeError(w, http.StatusBadRequest, errorResponse{
			Error:  "validation_failed",
			Fields: map[string]string{vErr.Field: vErr.Message},
		})
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, errorResponse{Error: "validation_failed", Message: err.Error()})
	case errors.As(err, &nfErr):
		writeError(w, http.StatusNotFound, errorResponse{Error: "not_found", Message: nfErr.Error()})
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, errorResponse{Error: "not_found"})
	case errors.Is(err, repository.ErrConflict):
		writeError(w, http.StatusConflict, errorResponse{Error: "conflict", Message: err.Error()})
	default:
		slog.ErrorContext(r.Context(), op+" failed", append([]any{"error", err, "path", r.URL.Path}, attrs...)...)
		writeError(w, http.StatusInternalServerError, errorResponse{Error: op + "_failed"})
	}
}
