package wizard

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/fieldforms-backend/internal/domain"
)

var validate = validator.New()

// ValidateStep checks the fields of one step against the collected answers
// and files. It returns every field error found; an empty result means the
// step may be left.
func (d *Definition) ValidateStep(stepID int, answers Answers, files Files) ([]domain.FieldError, error) {
	step, ok := d.Step(stepID)
	if !ok {
		return nil, fmt.Errorf("wizard %s: step %d: %w: %w", d.Name, stepID, ErrUnknownStep, domain.ErrNotFound)
	}

	var errs []domain.FieldError
	for _, f := range step.Fields {
		if msg := validateField(f, answers, files); msg != "" {
			errs = append(errs, domain.FieldError{Field: f.Name, Message: msg})
		}
	}
	return errs, nil
}

// ValidateAll validates every step on the path the answers select. It returns
// a *domain.ValidationError listing all failures, or nil.
func (d *Definition) ValidateAll(answers Answers, files Files) error {
	var errs []domain.FieldError
	for _, id := range d.Path(answers) {
		stepErrs, err := d.ValidateStep(id, answers, files)
		if err != nil {
			return err
		}
		errs = append(errs, stepErrs...)
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateField(f Field, answers Answers, files Files) string {
	required := f.IsRequired(answers)

	if f.Kind == KindFiles {
		if required && len(files[f.Name]) == 0 {
			return requiredMessage(f, "at least one file is required")
		}
		return ""
	}

	if f.Kind == KindMultiEnum {
		values := answers.Strings(f.Name)
		if len(values) == 0 {
			if required {
				return requiredMessage(f, "select at least one option")
			}
			return ""
		}
		for _, v := range values {
			if !slices.Contains(f.Options, v) {
				return fmt.Sprintf("invalid option %q", v)
			}
		}
		return ""
	}

	value := strings.TrimSpace(answers.String(f.Name))
	if value == "" {
		if required {
			return requiredMessage(f, "required")
		}
		return ""
	}

	switch f.Kind {
	case KindEnum:
		if !slices.Contains(f.Options, value) {
			return "must be one of: " + strings.Join(f.Options, ", ")
		}
	case KindEmail:
		if err := validate.Var(value, "email"); err != nil {
			return "invalid email"
		}
	case KindURL:
		if err := validate.Var(value, "url"); err != nil {
			return "invalid URL"
		}
	case KindNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return "must be a number"
		}
	case KindDate:
		if _, err := time.Parse(time.DateOnly, value); err != nil {
			return "must be a date (YYYY-MM-DD)"
		}
	case KindTime:
		if _, err := time.Parse("15:04", value); err != nil {
			return "must be a time (HH:MM)"
		}
	}

	if f.MinLength > 0 && utf8.RuneCountInString(value) < f.MinLength {
		return fmt.Sprintf("must be at least %d characters", f.MinLength)
	}
	if f.Check != nil {
		return f.Check(value, answers)
	}
	return ""
}

func requiredMessage(f Field, fallback string) string {
	if f.Message != "" {
		return f.Message
	}
	return fallback
}
