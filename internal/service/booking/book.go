package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/fieldforms-backend/internal/adapter/airtable"
	"github.com/heartmarshall/fieldforms-backend/internal/domain"
	"github.com/heartmarshall/fieldforms-backend/internal/wizard"
)

// Book validates the booking answers and stores the appointment. A booking
// that already exists for the same date and time fails with
// domain.ErrConflict.
func (s *Service) Book(ctx context.Context, sub wizard.Submission) (Booking, error) {
	if err := sub.Validate(s.def); err != nil {
		return Booking{}, err
	}

	b := Booking{
		Nombre: sub.Text("Nombre"),
		Email:  sub.Text("Email"),
		Fecha:  sub.Text("Fecha"),
		Hora:   sub.Text("Hora"),
	}
	startsAt, err := s.startsAt(b.Fecha, b.Hora)
	if err != nil {
		return Booking{}, domain.NewValidationError("Hora", "must be a time (HH:MM)")
	}
	b.StartsAt = startsAt
	b.FechaHora = startsAt.UTC().Format(time.RFC3339)

	filter := airtable.And(airtable.Eq("Fecha", b.Fecha), airtable.Eq("Hora", b.Hora))
	_, err = s.store.FindOne(ctx, s.table, filter)
	switch {
	case err == nil:
		return Booking{}, fmt.Errorf("slot %s %s: %w", b.Fecha, b.Hora, domain.ErrConflict)
	case !errors.Is(err, domain.ErrNotFound):
		return Booking{}, fmt.Errorf("check slot: %w", err)
	}

	fields, err := domain.EncodeFields(b)
	if err != nil {
		return Booking{}, err
	}
	id, err := s.store.Create(ctx, s.table, fields)
	if err != nil {
		return Booking{}, fmt.Errorf("create booking: %w", err)
	}
	b.ID = id

	s.log.InfoContext(ctx, "booking created",
		slog.String("record_id", id),
		slog.String("fecha", b.Fecha),
		slog.String("hora", b.Hora),
	)

	return b, nil
}
