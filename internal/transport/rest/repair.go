package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/fieldforms-backend/internal/domain"
	"github.com/heartmarshall/fieldforms-backend/internal/service/repair"
	"github.com/heartmarshall/fieldforms-backend/internal/wizard"
)

// repairService defines the minimal interface needed by RepairHandler.
type repairService interface {
	Create(ctx context.Context, sub wizard.Submission) (repair.CreateResult, error)
	FindByExpediente(ctx context.Context, expediente string) (repair.Repair, error)
	UpdateByExpediente(ctx context.Context, expediente string, sub wizard.Submission) (repair.UpdateResult, error)
	List(ctx context.Context, limit int) ([]repair.Repair, error)
}

// RepairHandler serves the work-order form.
type RepairHandler struct {
	svc repairService
	def *wizard.Definition
	log *slog.Logger
}

// NewRepairHandler creates a RepairHandler.
func NewRepairHandler(svc repairService, def *wizard.Definition, logger *slog.Logger) *RepairHandler {
	return &RepairHandler{svc: svc, def: def, log: logger.With("handler", "repair")}
}

// Create handles POST /api/repairs.
func (h *RepairHandler) Create(w http.ResponseWriter, r *http.Request) {
	sub, err := decodeSubmission(r, h.def)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.Create(r.Context(), sub)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// Get handles GET /api/repairs?expediente=.
func (h *RepairHandler) Get(w http.ResponseWriter, r *http.Request) {
	rep, err := h.svc.FindByExpediente(r.Context(), r.URL.Query().Get("expediente"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// Update handles PUT /api/repairs?expediente=.
func (h *RepairHandler) Update(w http.ResponseWriter, r *http.Request) {
	sub, err := decodeSubmission(r, h.def)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.UpdateByExpediente(r.Context(), r.URL.Query().Get("expediente"), sub)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Recent handles GET /api/repairs/recent?limit=.
func (h *RepairHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("limit", "must be a number"))
			return
		}
		limit = n
	}

	repairs, err := h.svc.List(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"records": repairs, "count": len(repairs)})
}
