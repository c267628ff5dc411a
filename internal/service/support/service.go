package support

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/fieldforms-backend/internal/adapter/airtable"
	"github.com/heartmarshall/fieldforms-backend/internal/config"
	"github.com/heartmarshall/fieldforms-backend/internal/domain"
	"github.com/heartmarshall/fieldforms-backend/internal/service/attach"
	"github.com/heartmarshall/fieldforms-backend/internal/wizard"
)

type recordStore interface {
	Get(ctx context.Context, table, id string) (domain.Record, error)
	FindOne(ctx context.Context, table, filter string) (domain.Record, error)
	Update(ctx context.Context, table, id string, fields domain.Fields) (string, error)
}

type attacher interface {
	Apply(ctx context.Context, table, recordID string, files map[string][]domain.Attachment, opts attach.Options) (attach.Report, error)
}

// Service reads and completes technical support records.
type Service struct {
	store  recordStore
	attach attacher
	def    *wizard.Definition
	table  string
	log    *slog.Logger
}

// NewService creates a new support service.
func NewService(logger *slog.Logger, store recordStore, attach attacher, tables config.TablesConfig) *Service {
	return &Service{
		store:  store,
		attach: attach,
		def:    wizard.SupportDefinition(),
		table:  tables.Support,
		log:    logger.With("service", "support"),
	}
}

// Lookup identifies a support record by id or, failing that, by work-order
// code.
type Lookup struct {
	RecordID   string
	Expediente string
}

// Validate checks that at least one key is present.
func (l Lookup) Validate() error {
	if domain.IsBlank(l.RecordID) && domain.IsBlank(l.Expediente) {
		return domain.NewValidationError("record", "record or expediente is required")
	}
	return nil
}

func (s *Service) resolve(ctx context.Context, l Lookup) (domain.Record, error) {
	if err := l.Validate(); err != nil {
		return domain.Record{}, err
	}
	if id := domain.NormalizeAnswer(l.RecordID); id != "" {
		rec, err := s.store.Get(ctx, s.table, id)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Record{}, domain.NewNotFoundError("record", id)
		}
		if err != nil {
			return domain.Record{}, fmt.Errorf("get support record %q: %w", id, err)
		}
		return rec, nil
	}
	code := domain.NormalizeAnswer(l.Expediente)
	rec, err := s.store.FindOne(ctx, s.table, airtable.Eq("Expediente", code))
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Record{}, domain.NewNotFoundError("expediente", code)
	}
	if err != nil {
		return domain.Record{}, fmt.Errorf("find support record %q: %w", code, err)
	}
	return rec, nil
}
