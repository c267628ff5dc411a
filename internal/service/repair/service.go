package repair

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/fieldforms-backend/internal/adapter/airtable"
	"github.com/heartmarshall/fieldforms-backend/internal/config"
	"github.com/heartmarshall/fieldforms-backend/internal/domain"
	"github.com/heartmarshall/fieldforms-backend/internal/service/attach"
	"github.com/heartmarshall/fieldforms-backend/internal/wizard"
)

type recordStore interface {
	Create(ctx context.Context, table string, fields domain.Fields) (string, error)
	Update(ctx context.Context, table, id string, fields domain.Fields) (string, error)
	FindOne(ctx context.Context, table, filter string) (domain.Record, error)
	List(ctx context.Context, table string, q airtable.Query) ([]domain.Record, error)
}

type attacher interface {
	Apply(ctx context.Context, table, recordID string, files map[string][]domain.Attachment, opts attach.Options) (attach.Report, error)
}

const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

// Service captures repair work orders.
type Service struct {
	store        recordStore
	attach       attacher
	def          *wizard.Definition
	table        string
	createdField string
	log          *slog.Logger
}

// NewService creates a new repair service.
func NewService(logger *slog.Logger, store recordStore, attach attacher, tables config.TablesConfig) *Service {
	return &Service{
		store:        store,
		attach:       attach,
		def:          wizard.WorkOrderDefinition(),
		table:        tables.Repairs,
		createdField: tables.RepairsCreatedField,
		log:          logger.With("service", "repair"),
	}
}
