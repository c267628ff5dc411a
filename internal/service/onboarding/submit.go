package onboarding

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/fieldforms-backend/internal/domain"
	"github.com/heartmarshall/fieldforms-backend/internal/service/attach"
	"github.com/heartmarshall/fieldforms-backend/internal/wizard"
)

// Submit validates the onboarding answers, creates the client record and
// attaches the logo and catalogue files.
func (s *Service) Submit(ctx context.Context, sub wizard.Submission) (Result, error) {
	if err := sub.Validate(s.def); err != nil {
		return Result{}, err
	}
	files := map[string][]domain.Attachment{
		FieldLogo:    sub.Attachments[FieldLogo],
		FieldCatalog: sub.Attachments[FieldCatalog],
	}
	if err := attach.Check(files); err != nil {
		return Result{}, err
	}

	client := clientFromSubmission(sub)
	if s.security.HashPasswords {
		hash, err := bcrypt.GenerateFromPassword([]byte(client.Password), s.security.BcryptCost)
		if err != nil {
			return Result{}, fmt.Errorf("hash password: %w", err)
		}
		client.Password = string(hash)
	}

	fields, err := domain.EncodeFields(client)
	if err != nil {
		return Result{}, err
	}

	id, err := s.store.Create(ctx, s.table, fields)
	if err != nil {
		return Result{}, fmt.Errorf("create client: %w", err)
	}

	report, err := s.attach.Apply(ctx, s.table, id, files, attach.Options{})
	if err != nil {
		return Result{ID: id}, fmt.Errorf("attach client files: %w", err)
	}

	s.log.InfoContext(ctx, "client registered",
		slog.String("record_id", id),
		slog.Int("attachments", len(report.Uploaded)),
		slog.Int("attachments_failed", len(report.Failed)),
	)

	return Result{ID: id, Attachments: report}, nil
}
