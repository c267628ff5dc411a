package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/fieldforms-backend/internal/config"
	"github.com/heartmarshall/fieldforms-backend/internal/domain"
	"github.com/heartmarshall/fieldforms-backend/internal/wizard"
)

type recordStore interface {
	Create(ctx context.Context, table string, fields domain.Fields) (string, error)
	FindOne(ctx context.Context, table, filter string) (domain.Record, error)
}

// Service generates appointment slots and books them.
type Service struct {
	store   recordStore
	def     *wizard.Definition
	table   string
	loc     *time.Location
	step    time.Duration
	windows []config.Window
	now     func() time.Time
	log     *slog.Logger
}

// NewService creates a new booking service. cfg must have passed
// config.Validate so that Windows is populated.
func NewService(logger *slog.Logger, store recordStore, tables config.TablesConfig, cfg config.BookingConfig) (*Service, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("booking timezone: %w", err)
	}
	s := &Service{
		store:   store,
		table:   tables.Bookings,
		loc:     loc,
		step:    time.Duration(cfg.SlotMinutes) * time.Minute,
		windows: cfg.Windows,
		now:     time.Now,
		log:     logger.With("service", "booking"),
	}
	s.def = wizard.BookingDefinition(s.IsSlot)
	return s, nil
}

// Booking is a row of the bookings table.
type Booking struct {
	ID       string    `json:"id"       airtable:"-"`
	Nombre   string    `json:"nombre"   airtable:"Nombre"`
	Email    string    `json:"email"    airtable:"Email"`
	Fecha    string    `json:"fecha"    airtable:"Fecha"`
	Hora     string    `json:"hora"     airtable:"Hora"`
	StartsAt time.Time `json:"startsAt" airtable:"-"`
	// FechaHora is StartsAt in UTC, RFC 3339.
	FechaHora string `json:"-" airtable:"Fecha y hora"`
}
