package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/fieldforms-backend/internal/service/onboarding"
	"github.com/heartmarshall/fieldforms-backend/internal/wizard"
)

// onboardingService defines the minimal interface needed by OnboardingHandler.
type onboardingService interface {
	Submit(ctx context.Context, sub wizard.Submission) (onboarding.Result, error)
}

// OnboardingHandler serves the client onboarding form.
type OnboardingHandler struct {
	svc onboardingService
	def *wizard.Definition
	log *slog.Logger
}

// NewOnboardingHandler creates an OnboardingHandler.
func NewOnboardingHandler(svc onboardingService, def *wizard.Definition, logger *slog.Logger) *OnboardingHandler {
	return &OnboardingHandler{svc: svc, def: def, log: logger.With("handler", "onboarding")}
}

// Submit handles POST /api/clientes.
func (h *OnboardingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sub, err := decodeSubmission(r, h.def)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.Submit(r.Context(), sub)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}
