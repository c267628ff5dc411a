package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/heartmarshall/fieldforms-backend/internal/domain"
	"github.com/heartmarshall/fieldforms-backend/internal/wizard"
)

func invalidBody() error {
	return domain.NewValidationError("body", "invalid request body")
}

// decodeJSON reads one JSON value from the request body. Body size errors
// pass through untouched so they can be reported as 413.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			return err
		}
		return invalidBody()
	}
	return nil
}

// decodeSubmission reads a flat JSON object of answers keyed by field name.
// Values of the wizard's file fields are decoded as attachment descriptors;
// everything else becomes an answer.
func decodeSubmission(r *http.Request, def *wizard.Definition) (wizard.Submission, error) {
	var raw map[string]json.RawMessage
	if err := decodeJSON(r, &raw); err != nil {
		return wizard.Submission{}, err
	}
	if raw == nil {
		return wizard.Submission{}, invalidBody()
	}

	sub := wizard.Submission{
		Answers:     make(wizard.Answers, len(raw)),
		Attachments: make(map[string][]domain.Attachment),
	}

	var errs []domain.FieldError
	for name, value := range raw {
		if f, ok := def.Field(name); ok && f.Kind == wizard.KindFiles {
			var atts []domain.Attachment
			if err := json.Unmarshal(value, &atts); err != nil {
				errs = append(errs, domain.FieldError{Field: name, Message: "expected a list of attachments"})
				continue
			}
			sub.Attachments[name] = atts
			continue
		}

		var v any
		if err := json.Unmarshal(value, &v); err != nil {
			errs = append(errs, domain.FieldError{Field: name, Message: "invalid value"})
			continue
		}
		sub.Answers[name] = v
	}
	if len(errs) > 0 {
		return wizard.Submission{}, domain.NewValidationErrors(errs)
	}
	return sub, nil
}
