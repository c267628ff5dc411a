package attach

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/fieldforms-backend/internal/attachment"
	"github.com/heartmarshall/fieldforms-backend/internal/domain"
	"github.com/heartmarshall/fieldforms-backend/pkg/ctxutil"
)

// Check validates every descriptor without writing anything.
func Check(files map[string][]domain.Attachment) error {
	for _, field := range sortedFields(files) {
		for i, a := range files[field] {
			if err := attachment.Validate(a); err != nil {
				return fmt.Errorf("%s[%d]: %w", field, i, err)
			}
		}
	}
	return nil
}

// Apply writes files onto the record. Hosted URLs are written inline with a
// single update; data URIs are uploaded one call per file. With
// opts.Replace the update sets every named field to its hosted subset (or
// empty) first. Otherwise the update lists opts.Existing ahead of the new
// hosted URLs, since an update sets the whole column. A malformed descriptor fails the whole call before any
// write. The returned error is non-nil only when nothing could be
// attempted; individual upload failures are listed in the report.
func (s *Service) Apply(ctx context.Context, table, recordID string, files map[string][]domain.Attachment, opts Options) (Report, error) {
	var report Report
	if len(files) == 0 {
		return report, nil
	}
	if err := Check(files); err != nil {
		return report, err
	}

	fields := sortedFields(files)
	inline := domain.Fields{}
	var uploads []upload
	for _, field := range fields {
		hosted := domain.Hosted(files[field])
		switch {
		case opts.Replace:
			inline[field] = hosted
		case len(hosted) > 0:
			inline[field] = appendHosted(opts.Existing.Attachments(field), hosted)
		}
		for _, a := range files[field] {
			if a.IsHosted() {
				report.Uploaded = append(report.Uploaded, Item{Field: field, Filename: a.Filename})
				continue
			}
			uploads = append(uploads, upload{field: field, att: a})
		}
	}

	if len(inline) > 0 {
		if _, err := s.store.Update(ctx, table, recordID, inline); err != nil {
			return Report{}, fmt.Errorf("write hosted attachments: %w", err)
		}
	}

	errs := s.upload(ctx, recordID, uploads)
	for i, u := range uploads {
		item := Item{Field: u.field, Filename: u.att.Filename}
		if errs[i] != nil {
			report.Failed = append(report.Failed, Failure{Item: item, Error: errs[i].Error(), err: errs[i]})
			continue
		}
		report.Uploaded = append(report.Uploaded, item)
	}

	if !report.OK() {
		s.log.WarnContext(ctx, "attachments partially written",
			slog.String("table", table),
			slog.String("record_id", recordID),
			slog.Int("uploaded", len(report.Uploaded)),
			slog.Int("failed", len(report.Failed)),
		)
	}
	return report, nil
}

// appendHosted lists the attachments a record already holds by id, followed
// by the new hosted ones.
func appendHosted(existing, hosted []domain.Attachment) any {
	if len(existing) == 0 {
		return hosted
	}
	out := make([]any, 0, len(existing)+len(hosted))
	for _, a := range existing {
		switch {
		case a.ID != "":
			out = append(out, domain.AttachmentRef{ID: a.ID})
		case a.IsHosted():
			out = append(out, domain.Attachment{URL: a.URL, Filename: a.Filename})
		}
	}
	for _, a := range hosted {
		out = append(out, a)
	}
	return out
}

type upload struct {
	field string
	att   domain.Attachment
}

// upload sends every data URI and returns one error slot per upload. Mobile
// clients upload sequentially.
func (s *Service) upload(ctx context.Context, recordID string, uploads []upload) []error {
	errs := make([]error, len(uploads))
	if len(uploads) == 0 {
		return errs
	}

	var g errgroup.Group
	g.SetLimit(s.parallelism(ctx))
	for i, u := range uploads {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			errs[i] = s.store.UploadAttachment(ctx, recordID, u.field, u.att)
			return nil
		})
	}
	_ = g.Wait()
	return errs
}

func (s *Service) parallelism(ctx context.Context) int {
	if device, ok := ctxutil.DeviceFromCtx(ctx); ok && domain.Device(device).IsMobile() {
		return 1
	}
	if s.maxParallel > 0 {
		return s.maxParallel
	}
	return -1
}

func sortedFields(files map[string][]domain.Attachment) []string {
	fields := make([]string, 0, len(files))
	for f := range files {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}
