package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/heartmarshall/fieldforms-backend/internal/adapter/airtable"
	"github.com/heartmarshall/fieldforms-backend/internal/attachment"
	"github.com/heartmarshall/fieldforms-backend/internal/config"
	"github.com/heartmarshall/fieldforms-backend/internal/service/attach"
	"github.com/heartmarshall/fieldforms-backend/internal/service/booking"
	"github.com/heartmarshall/fieldforms-backend/internal/service/links"
	"github.com/heartmarshall/fieldforms-backend/internal/service/onboarding"
	"github.com/heartmarshall/fieldforms-backend/internal/service/repair"
	"github.com/heartmarshall/fieldforms-backend/internal/service/support"
	"github.com/heartmarshall/fieldforms-backend/internal/transport/middleware"
	"github.com/heartmarshall/fieldforms-backend/internal/transport/rest"
	"github.com/heartmarshall/fieldforms-backend/internal/wizard"
)

// NewHandler wires the store client, services and REST handlers into one
// http.Handler. The returned cleanup stops background work owned by the
// handler and must be called once the server is shut down.
func NewHandler(cfg *config.Config, logger *slog.Logger) (http.Handler, func(), error) {
	store := airtable.NewClient(cfg.Store, cfg.Retry, logger)

	bookingSvc, err := booking.NewService(logger, store, cfg.Tables, cfg.Booking)
	if err != nil {
		return nil, nil, fmt.Errorf("booking service: %w", err)
	}
	registry, err := wizard.DefaultRegistry(bookingSvc.IsSlot)
	if err != nil {
		return nil, nil, fmt.Errorf("wizard registry: %w", err)
	}
	defs := make(map[string]*wizard.Definition)
	for _, name := range registry.Names() {
		if defs[name], err = registry.Get(name); err != nil {
			return nil, nil, err
		}
	}

	attachSvc := attach.NewService(logger, store, cfg.Upload)
	onboardingSvc := onboarding.NewService(logger, store, attachSvc, cfg.Tables, cfg.Security)
	repairSvc := repair.NewService(logger, store, attachSvc, cfg.Tables)
	supportSvc := support.NewService(logger, store, attachSvc, cfg.Tables)
	linkSvc := links.NewService(cfg.Links)
	encoder := attachment.NewEncoder(cfg.Upload, logger)

	health := rest.NewHealthHandler(store, cfg.Tables.Repairs, BuildVersion(), logger)
	diagnostics := rest.NewDiagnosticsHandler(store, []string{
		cfg.Tables.Clients, cfg.Tables.Repairs, cfg.Tables.Support, cfg.Tables.Bookings,
	}, logger)
	wizards := rest.NewWizardHandler(registry, logger)
	attachments := rest.NewAttachmentHandler(encoder, logger)
	clients := rest.NewOnboardingHandler(onboardingSvc, defs[wizard.Onboarding], logger)
	repairs := rest.NewRepairHandler(repairSvc, defs[wizard.WorkOrder], logger)
	expedientes := rest.NewSupportHandler(supportSvc, defs[wizard.Support], logger)
	bookings := rest.NewBookingHandler(bookingSvc, defs[wizard.Booking], logger)
	linkHandler := rest.NewLinksHandler(linkSvc, logger)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /api/diagnostics/store", diagnostics.Store)

	mux.HandleFunc("GET /api/wizards", wizards.List)
	mux.HandleFunc("GET /api/wizards/{form}", wizards.Definition)
	mux.HandleFunc("POST /api/wizards/{form}/steps/{step}/validate", wizards.ValidateStep)

	mux.HandleFunc("POST /api/attachments", attachments.Encode)

	mux.HandleFunc("POST /api/clientes", clients.Submit)

	mux.HandleFunc("POST /api/repairs", repairs.Create)
	mux.HandleFunc("GET /api/repairs", repairs.Get)
	mux.HandleFunc("PUT /api/repairs", repairs.Update)
	mux.HandleFunc("GET /api/repairs/recent", repairs.Recent)

	mux.HandleFunc("GET /api/expediente", expedientes.Get)
	mux.HandleFunc("PUT /api/expediente", expedientes.Update)
	mux.HandleFunc("POST /api/expediente/support", expedientes.Submit)

	mux.HandleFunc("GET /api/bookings/slots", bookings.Slots)
	mux.HandleFunc("POST /api/bookings", bookings.Create)

	mux.HandleFunc("GET /api/links/expediente", linkHandler.Expediente)
	mux.HandleFunc("POST /api/links/expediente", linkHandler.Expediente)
	mux.HandleFunc("POST /api/links/records", linkHandler.Records)
	mux.HandleFunc("GET /api/links/booking", linkHandler.Booking)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	var tracing middleware.Middleware
	if cfg.Tracing.Enabled {
		tracing = func(next http.Handler) http.Handler {
			return otelhttp.NewHandler(next, "http.server")
		}
	}

	handler := middleware.Chain(
		tracing,
		middleware.RequestID(),
		middleware.Device(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.RateLimit.PerMinute),
		middleware.BodyLimit(cfg.Upload.MaxRequestBytes),
	)(mux)

	return handler, limiter.Stop, nil
}
