package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/fieldforms-backend/internal/service/support"
	"github.com/heartmarshall/fieldforms-backend/internal/wizard"
)

// supportService defines the minimal interface needed by SupportHandler.
type supportService interface {
	Get(ctx context.Context, l support.Lookup) (support.Record, error)
	Update(ctx context.Context, l support.Lookup, patch wizard.Submission) (support.UpdateResult, error)
	Submit(ctx context.Context, l support.Lookup, sub wizard.Submission) (support.UpdateResult, error)
}

// SupportHandler serves the support record addressed by ?record= or
// ?expediente=.
type SupportHandler struct {
	svc supportService
	def *wizard.Definition
	log *slog.Logger
}

// NewSupportHandler creates a SupportHandler.
func NewSupportHandler(svc supportService, def *wizard.Definition, logger *slog.Logger) *SupportHandler {
	return &SupportHandler{svc: svc, def: def, log: logger.With("handler", "support")}
}

func lookupFrom(r *http.Request) support.Lookup {
	q := r.URL.Query()
	return support.Lookup{RecordID: q.Get("record"), Expediente: q.Get("expediente")}
}

// Get handles GET /api/expediente.
func (h *SupportHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.Get(r.Context(), lookupFrom(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Update handles PUT /api/expediente.
func (h *SupportHandler) Update(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, h.svc.Update)
}

// Submit handles POST /api/expediente/support.
func (h *SupportHandler) Submit(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, h.svc.Submit)
}

func (h *SupportHandler) write(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, support.Lookup, wizard.Submission) (support.UpdateResult, error),
) {
	sub, err := decodeSubmission(r, h.def)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := op(r.Context(), lookupFrom(r), sub)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
