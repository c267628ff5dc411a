package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/fieldforms-backend/internal/service/links"
)

// linkService defines the minimal interface needed by LinksHandler.
type linkService interface {
	Expediente(code string) (links.ExpedienteLink, error)
	Records(ids []string) ([]links.RecordLink, error)
	Booking(p links.BookingParams) string
}

// LinksHandler generates shareable form URLs.
type LinksHandler struct {
	svc linkService
	log *slog.Logger
}

// NewLinksHandler creates a LinksHandler.
func NewLinksHandler(svc linkService, logger *slog.Logger) *LinksHandler {
	return &LinksHandler{svc: svc, log: logger.With("handler", "links")}
}

type expedienteRequest struct {
	Expediente string `json:"expediente"`
}

type recordsRequest struct {
	RecordIDs []string `json:"recordIds"`
}

// Expediente handles GET /api/links/expediente?expediente= and
// POST /api/links/expediente with {"expediente": "..."}.
func (h *LinksHandler) Expediente(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("expediente")
	if r.Method == http.MethodPost {
		var req expedienteRequest
		if err := decodeJSON(r, &req); err != nil {
			handleError(h.log, w, r, err)
			return
		}
		code = req.Expediente
	}

	link, err := h.svc.Expediente(code)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, link)
}

// Records handles POST /api/links/records.
func (h *LinksHandler) Records(w http.ResponseWriter, r *http.Request) {
	var req recordsRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out, err := h.svc.Records(req.RecordIDs)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"links": out, "count": len(out)})
}

// Booking handles GET /api/links/booking?name=&email=&date=&time=.
func (h *LinksHandler) Booking(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	url := h.svc.Booking(links.BookingParams{
		Name:  q.Get("name"),
		Email: q.Get("email"),
		Date:  q.Get("date"),
		Time:  q.Get("time"),
	})
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
