package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/fieldforms-backend/internal/domain"
	"github.com/heartmarshall/fieldforms-backend/internal/service/booking"
	"github.com/heartmarshall/fieldforms-backend/internal/wizard"
)

// bookingService defines the minimal interface needed by BookingHandler.
type bookingService interface {
	Slots(date string, now time.Time) ([]string, error)
	Book(ctx context.Context, sub wizard.Submission) (booking.Booking, error)
}

// BookingHandler serves appointment slots and bookings.
type BookingHandler struct {
	svc bookingService
	def *wizard.Definition
	now func() time.Time
	log *slog.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc bookingService, def *wizard.Definition, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, def: def, now: time.Now, log: logger.With("handler", "booking")}
}

type slotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// Slots handles GET /api/bookings/slots?date=YYYY-MM-DD.
func (h *BookingHandler) Slots(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		handleError(h.log, w, r, domain.NewValidationError("date", "required"))
		return
	}

	slots, err := h.svc.Slots(date, h.now())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if slots == nil {
		slots = []string{}
	}
	writeJSON(w, http.StatusOK, slotsResponse{Date: date, Slots: slots})
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	sub, err := decodeSubmission(r, h.def)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	b, err := h.svc.Book(r.Context(), sub)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}
