package support

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/fieldforms-backend/internal/domain"
	"github.com/heartmarshall/fieldforms-backend/internal/service/attach"
	"github.com/heartmarshall/fieldforms-backend/internal/wizard"
)

// UpdateResult is the outcome of Update and Submit.
type UpdateResult struct {
	RecordID    string        `json:"recordId"`
	Attachments attach.Report `json:"attachments"`
}

// Get returns the support record.
func (s *Service) Get(ctx context.Context, l Lookup) (Record, error) {
	rec, err := s.resolve(ctx, l)
	if err != nil {
		return Record{}, err
	}
	return recordFrom(rec)
}

// Update writes the non-blank text columns of patch and adds its photos to
// the record. Photos are appended to what the record already holds.
func (s *Service) Update(ctx context.Context, l Lookup, patch wizard.Submission) (UpdateResult, error) {
	files := photosOf(patch)
	if err := attach.Check(files); err != nil {
		return UpdateResult{}, err
	}

	rec, err := s.resolve(ctx, l)
	if err != nil {
		return UpdateResult{}, err
	}

	fields := domain.Fields{}
	for _, col := range textColumns {
		if v := patch.Text(col); v != "" {
			fields[col] = v
		}
	}
	if len(fields) > 0 {
		if _, err := s.store.Update(ctx, s.table, rec.ID, fields); err != nil {
			return UpdateResult{}, fmt.Errorf("update support record: %w", err)
		}
	}

	report, err := s.attach.Apply(ctx, s.table, rec.ID, files, attach.Options{Existing: rec.Fields})
	if err != nil {
		return UpdateResult{}, fmt.Errorf("attach support photos: %w", err)
	}

	s.log.InfoContext(ctx, "support record updated",
		slog.String("record_id", rec.ID),
		slog.Int("columns", len(fields)),
		slog.Int("photos", len(report.Uploaded)),
		slog.Int("photos_failed", len(report.Failed)),
	)

	return UpdateResult{RecordID: rec.ID, Attachments: report}, nil
}

// Submit validates a completed support wizard and writes it to the record.
func (s *Service) Submit(ctx context.Context, l Lookup, sub wizard.Submission) (UpdateResult, error) {
	if err := l.Validate(); err != nil {
		return UpdateResult{}, err
	}
	if err := sub.Validate(s.def); err != nil {
		return UpdateResult{}, err
	}
	return s.Update(ctx, l, sub)
}

func photosOf(sub wizard.Submission) map[string][]domain.Attachment {
	files := make(map[string][]domain.Attachment)
	for _, col := range photoColumns {
		if atts := sub.Attachments[col]; len(atts) > 0 {
			files[col] = atts
		}
	}
	return files
}
