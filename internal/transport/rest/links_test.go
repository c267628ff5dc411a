package rest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/heartmarshall/fieldforms-backend/internal/config"
	"github.com/heartmarshall/fieldforms-backend/internal/service/links"
)

func newLinksHandler() *LinksHandler {
	svc := links.NewService(config.LinksConfig{
		PublicBaseURL:  "https://forms.example.com/",
		BookingBaseURL: "https://book.example.com",
	})
	return NewLinksHandler(svc, discardLogger())
}

func TestLinks_Expediente(t *testing.T) {
	t.Parallel()

	h := newLinksHandler()

	rec := httptest.NewRecorder()
	h.Expediente(rec, httptest.NewRequest(http.MethodGet, "/api/links/expediente?expediente=EXP%201", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	got := decodeBody[links.ExpedienteLink](t, rec)
	if got.URL != "https://forms.example.com/?expediente=EXP+1" {
		t.Errorf("unexpected url %q", got.URL)
	}

	rec = httptest.NewRecorder()
	h.Expediente(rec, httptest.NewRequest(http.MethodPost, "/api/links/expediente", strings.NewReader(`{"expediente":"EXP-2"}`)))
	if got := decodeBody[links.ExpedienteLink](t, rec); got.Expediente != "EXP-2" {
		t.Errorf("unexpected link %+v", got)
	}

	rec = httptest.NewRecorder()
	h.Expediente(rec, httptest.NewRequest(http.MethodPost, "/api/links/expediente", strings.NewReader(`{}`)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for missing code, got %d", rec.Code)
	}
}

func TestLinks_Records(t *testing.T) {
	t.Parallel()

	h := newLinksHandler()

	rec := httptest.NewRecorder()
	h.Records(rec, httptest.NewRequest(http.MethodPost, "/api/links/records", strings.NewReader(`{"recordIds":["rec1","rec2"]}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	resp := decodeBody[struct {
		Links []links.RecordLink `json:"links"`
		Count int                `json:"count"`
	}](t, rec)
	if resp.Count != 2 || resp.Links[1].URL != "https://forms.example.com/parte-de-trabajo?record=rec2" {
		t.Errorf("unexpected response %+v", resp)
	}

	rec = httptest.NewRecorder()
	h.Records(rec, httptest.NewRequest(http.MethodPost, "/api/links/records", strings.NewReader(`{"recordIds":["rec1",""]}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if resp := decodeBody[errorResponse](t, rec); resp.Fields[0].Field != "recordIds[1]" {
		t.Errorf("unexpected field errors %+v", resp.Fields)
	}
}

func TestLinks_Booking(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	newLinksHandler().Booking(rec, httptest.NewRequest(http.MethodGet, "/api/links/booking?name=Ana&date=2030-01-07", nil))

	got := decodeBody[map[string]string](t, rec)["url"]
	if got != "https://book.example.com?date=2030-01-07&name=Ana&preload=true" {
		t.Errorf("unexpected url %q", got)
	}
}
