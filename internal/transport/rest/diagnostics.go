package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/fieldforms-backend/internal/domain"
)

// DiagnosticsHandler reports whether every configured table is reachable
// with the configured credentials.
type DiagnosticsHandler struct {
	store  storePinger
	tables []string
	log    *slog.Logger
}

// NewDiagnosticsHandler creates a DiagnosticsHandler probing tables.
func NewDiagnosticsHandler(store storePinger, tables []string, logger *slog.Logger) *DiagnosticsHandler {
	return &DiagnosticsHandler{store: store, tables: tables, log: logger.With("handler", "diagnostics")}
}

type tableStatus struct {
	Table   string `json:"table"`
	OK      bool   `json:"ok"`
	Records int    `json:"records"`
	Status  int    `json:"status,omitempty"`
	Latency string `json:"latency"`
	Error   string `json:"error,omitempty"`
}

type diagnosticsResponse struct {
	OK     bool          `json:"ok"`
	Tables []tableStatus `json:"tables"`
}

// Store handles GET /api/diagnostics/store. Tables are probed one after
// another so the report reflects a quiet store.
func (h *DiagnosticsHandler) Store(w http.ResponseWriter, r *http.Request) {
	resp := diagnosticsResponse{OK: true, Tables: make([]tableStatus, 0, len(h.tables))}

	for _, table := range h.tables {
		ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
		start := time.Now()
		n, err := h.store.Ping(ctx, table)
		cancel()

		ts := tableStatus{Table: table, OK: err == nil, Records: n, Latency: time.Since(start).String()}
		if err != nil {
			resp.OK = false
			ts.Error = err.Error()
			var storeErr *domain.StoreError
			if errors.As(err, &storeErr) {
				ts.Status = storeErr.Status
			}
			h.log.WarnContext(r.Context(), "store table unreachable",
				slog.String("table", table),
				slog.String("error", err.Error()),
			)
		}
		resp.Tables = append(resp.Tables, ts)
	}

	status := http.StatusOK
	if !resp.OK {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, resp)
}
