package onboarding

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/fieldforms-backend/internal/config"
	"github.com/heartmarshall/fieldforms-backend/internal/domain"
	"github.com/heartmarshall/fieldforms-backend/internal/service/attach"
	"github.com/heartmarshall/fieldforms-backend/internal/wizard"
)

type recordStore interface {
	Create(ctx context.Context, table string, fields domain.Fields) (string, error)
}

type attacher interface {
	Apply(ctx context.Context, table, recordID string, files map[string][]domain.Attachment, opts attach.Options) (attach.Report, error)
}

// Service registers new clients from the onboarding form.
type Service struct {
	store    recordStore
	attach   attacher
	def      *wizard.Definition
	table    string
	security config.SecurityConfig
	log      *slog.Logger
}

// NewService creates a new onboarding service.
func NewService(
	logger *slog.Logger,
	store recordStore,
	attach attacher,
	tables config.TablesConfig,
	security config.SecurityConfig,
) *Service {
	return &Service{
		store:    store,
		attach:   attach,
		def:      wizard.OnboardingDefinition(),
		table:    tables.Clients,
		security: security,
		log:      logger.With("service", "onboarding"),
	}
}

// Result is the outcome of a submission.
type Result struct {
	ID          string        `json:"id"`
	Attachments attach.Report `json:"attachments"`
}
