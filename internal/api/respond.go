package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"vitacoach/internal/catalog"
	"vitacoach/internal/engine"
	"vitacoach/internal/storage"
)

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var (
		validation engine.ValidationError
		role       engine.RoleError
		notFound   catalog.NotFoundError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, engine.ErrNotAuthenticated), errors.Is(err, engine.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.As(err, &role):
		return http.StatusForbidden
	case errors.Is(err, engine.ErrNotFound), errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrAlreadyCheckedIn), errors.Is(err, storage.ErrDuplicateEmail),
		errors.Is(err, engine.ErrAlreadyJoined), errors.Is(err, engine.ErrNotJoined),
		errors.Is(err, engine.ErrOnboardingComplete):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	body := errorBody{Error: err.Error()}
	if status == http.StatusInternalServerError {
		body.Error = "internal error"
	}
	var validation engine.ValidationError
	if errors.As(err, &validation) {
		body.Field = validation.Field
	}
	writeJSON(w, status, body)
}

func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return engine.ValidationError{Field: "body", Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	return nil
}
