package repair

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/fieldforms-backend/internal/adapter/airtable"
	"github.com/heartmarshall/fieldforms-backend/internal/domain"
	"github.com/heartmarshall/fieldforms-backend/internal/service/attach"
	"github.com/heartmarshall/fieldforms-backend/internal/wizard"
)

// UpdateResult is the outcome of UpdateByExpediente.
type UpdateResult struct {
	Expediente  string        `json:"expediente"`
	RecordID    string        `json:"recordId"`
	Attachments attach.Report `json:"attachments"`
}

// FindByExpediente returns the repair with the given work-order code.
func (s *Service) FindByExpediente(ctx context.Context, expediente string) (Repair, error) {
	rec, err := s.findRecord(ctx, expediente)
	if err != nil {
		return Repair{}, err
	}
	return repairFromRecord(rec)
}

// UpdateByExpediente overwrites the non-blank text columns of the repair and
// replaces its Foto and Factura attachments with the given ones. Columns
// with no new value are left untouched.
func (s *Service) UpdateByExpediente(ctx context.Context, expediente string, sub wizard.Submission) (UpdateResult, error) {
	files := attachmentsOf(sub)
	if err := attach.Check(files); err != nil {
		return UpdateResult{}, err
	}

	rec, err := s.findRecord(ctx, expediente)
	if err != nil {
		return UpdateResult{}, err
	}

	fields := domain.Fields{}
	for _, col := range textColumns {
		if v := sub.Text(col); v != "" {
			fields[col] = v
		}
	}
	if len(fields) > 0 {
		if _, err := s.store.Update(ctx, s.table, rec.ID, fields); err != nil {
			return UpdateResult{}, fmt.Errorf("update repair: %w", err)
		}
	}

	report, err := s.attach.Apply(ctx, s.table, rec.ID, files, attach.Options{Replace: true})
	if err != nil {
		return UpdateResult{}, fmt.Errorf("replace repair files: %w", err)
	}

	s.log.InfoContext(ctx, "repair updated",
		slog.String("expediente", expediente),
		slog.String("record_id", rec.ID),
		slog.Int("columns", len(fields)),
		slog.Int("attachments", len(report.Uploaded)),
	)

	return UpdateResult{Expediente: expediente, RecordID: rec.ID, Attachments: report}, nil
}

// List returns the most recent repairs, newest first, up to limit.
func (s *Service) List(ctx context.Context, limit int) ([]Repair, error) {
	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit < 0 || limit > MaxListLimit {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", MaxListLimit))
	}

	q := airtable.Query{MaxRecords: limit}
	if s.createdField != "" {
		q.Sort = []airtable.Sort{{Field: s.createdField, Desc: true}}
	}
	recs, err := s.store.List(ctx, s.table, q)
	if err != nil {
		return nil, fmt.Errorf("list repairs: %w", err)
	}
	slices.SortStableFunc(recs, func(a, b domain.Record) int {
		return b.CreatedTime.Compare(a.CreatedTime)
	})

	out := make([]Repair, 0, len(recs))
	for _, rec := range recs {
		r, err := repairFromRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *Service) findRecord(ctx context.Context, expediente string) (domain.Record, error) {
	code := domain.NormalizeAnswer(expediente)
	if code == "" {
		return domain.Record{}, domain.NewValidationError("expediente", "required")
	}
	rec, err := s.store.FindOne(ctx, s.table, airtable.Eq("Expediente", code))
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Record{}, domain.NewNotFoundError("expediente", code)
	}
	if err != nil {
		return domain.Record{}, fmt.Errorf("find repair %q: %w", code, err)
	}
	return rec, nil
}
