package links

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/heartmarshall/fieldforms-backend/internal/config"
	"github.com/heartmarshall/fieldforms-backend/internal/domain"
)

// MaxRecordLinks caps the number of record ids per request.
const MaxRecordLinks = 200

// Service builds shareable form URLs.
type Service struct {
	publicBase  string
	bookingBase string
}

// NewService creates a new link builder.
func NewService(cfg config.LinksConfig) *Service {
	return &Service{
		publicBase:  strings.TrimRight(cfg.PublicBaseURL, "/"),
		bookingBase: strings.TrimRight(cfg.BookingBaseURL, "/"),
	}
}

// ExpedienteLink opens the support form for one work-order code.
type ExpedienteLink struct {
	URL        string `json:"url"`
	Expediente string `json:"expediente"`
}

// RecordLink opens the work-order form for one record.
type RecordLink struct {
	RecordID string `json:"recordId"`
	URL      string `json:"url"`
}

// BookingParams preload the booking form.
type BookingParams struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// Expediente returns the unique link for a work-order code.
func (s *Service) Expediente(code string) (ExpedienteLink, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return ExpedienteLink{}, domain.NewValidationError("expediente", "required")
	}
	q := url.Values{"expediente": {code}}
	return ExpedienteLink{URL: s.publicBase + "/?" + q.Encode(), Expediente: code}, nil
}

// Records returns a work-order link per record id, in order.
func (s *Service) Records(ids []string) ([]RecordLink, error) {
	if len(ids) == 0 {
		return nil, domain.NewValidationError("recordIds", "at least one record id is required")
	}
	if len(ids) > MaxRecordLinks {
		return nil, domain.NewValidationError("recordIds", fmt.Sprintf("max %d record ids", MaxRecordLinks))
	}

	var errs []domain.FieldError
	out := make([]RecordLink, 0, len(ids))
	for i, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("recordIds[%d]", i), Message: "required"})
			continue
		}
		q := url.Values{"record": {id}}
		out = append(out, RecordLink{RecordID: id, URL: s.publicBase + "/parte-de-trabajo?" + q.Encode()})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return out, nil
}

// Booking returns the booking form URL with the given values preloaded.
// Empty values are left out.
func (s *Service) Booking(p BookingParams) string {
	q := url.Values{}
	for k, v := range map[string]string{"name": p.Name, "email": p.Email, "date": p.Date, "time": p.Time} {
		if v = strings.TrimSpace(v); v != "" {
			q.Set(k, v)
		}
	}
	q.Set("preload", "true")
	return s.bookingBase + "?" + q.Encode()
}
