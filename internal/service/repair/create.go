package repair

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/fieldforms-backend/internal/domain"
	"github.com/heartmarshall/fieldforms-backend/internal/service/attach"
	"github.com/heartmarshall/fieldforms-backend/internal/wizard"
)

// CreateResult is the outcome of Create.
type CreateResult struct {
	ID          string        `json:"id"`
	Attachments attach.Report `json:"attachments"`
}

// Create validates a work order along the path its answers select and
// stores it with its photos and invoice.
func (s *Service) Create(ctx context.Context, sub wizard.Submission) (CreateResult, error) {
	if err := sub.Validate(s.def); err != nil {
		return CreateResult{}, err
	}
	files := attachmentsOf(sub)
	if err := attach.Check(files); err != nil {
		return CreateResult{}, err
	}

	fields, err := domain.EncodeFields(repairFromSubmission(sub))
	if err != nil {
		return CreateResult{}, err
	}

	id, err := s.store.Create(ctx, s.table, fields)
	if err != nil {
		return CreateResult{}, fmt.Errorf("create repair: %w", err)
	}

	report, err := s.attach.Apply(ctx, s.table, id, files, attach.Options{})
	if err != nil {
		return CreateResult{ID: id}, fmt.Errorf("attach repair files: %w", err)
	}

	s.log.InfoContext(ctx, "repair created",
		slog.String("record_id", id),
		slog.String("resultado", fields.String("Resultado")),
		slog.Int("attachments_failed", len(report.Failed)),
	)

	return CreateResult{ID: id, Attachments: report}, nil
}

// attachmentsOf keeps the non-empty attachment columns of a submission.
func attachmentsOf(sub wizard.Submission) map[string][]domain.Attachment {
	files := make(map[string][]domain.Attachment)
	for _, field := range []string{FieldFoto, FieldFactura} {
		if atts := sub.Attachments[field]; len(atts) > 0 {
			files[field] = atts
		}
	}
	return files
}
