package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/fieldforms-backend/internal/domain"
)

// errorResponse is the JSON body of every non-2xx response.
type errorResponse struct {
	Error   string       `json:"error"`
	Fields  []fieldError `json:"fields,omitempty"`
	Details string       `json:"details,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps a service error to its HTTP status and body.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		maxBytes *http.MaxBytesError
		verr     *domain.ValidationError
		encErr   *domain.EncodingError
		storeErr *domain.StoreError
		notFound *domain.NotFoundError
	)

	switch {
	case errors.As(err, &maxBytes):
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
	case errors.As(err, &verr):
		resp := errorResponse{Error: "validation failed", Fields: make([]fieldError, 0, len(verr.Errors))}
		for _, fe := range verr.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrMalformedAttachment):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, notFound.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.As(err, &encErr):
		writeError(w, encodingStatus(encErr), encErr.Error())
	case errors.As(err, &storeErr):
		log.ErrorContext(r.Context(), "store error",
			slog.String("op", storeErr.Op),
			slog.String("table", storeErr.Table),
			slog.Int("status", storeErr.Status),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "store request failed",
			Details: storeErr.Message,
		})
	case errors.Is(err, context.Canceled):
		log.InfoContext(r.Context(), "request canceled", slog.String("path", r.URL.Path))
		writeError(w, http.StatusServiceUnavailable, "request canceled")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func encodingStatus(err *domain.EncodingError) int {
	switch {
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrUnsupportedMedia):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, domain.ErrCorruptImage), errors.Is(err, domain.ErrEncodeTimeout):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
