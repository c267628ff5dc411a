package rest

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/fieldforms-backend/internal/domain"
	"github.com/heartmarshall/fieldforms-backend/internal/wizard"
)

// wizardRegistry defines the minimal interface needed by WizardHandler.
type wizardRegistry interface {
	Get(name string) (*wizard.Definition, error)
	Names() []string
}

// WizardHandler exposes wizard definitions and per-step validation so
// frontends can drive the step flow.
type WizardHandler struct {
	reg wizardRegistry
	log *slog.Logger
}

// NewWizardHandler creates a WizardHandler.
func NewWizardHandler(reg wizardRegistry, logger *slog.Logger) *WizardHandler {
	return &WizardHandler{reg: reg, log: logger.With("handler", "wizard")}
}

type wizardSummary struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Steps int    `json:"steps"`
}

type wizardResponse struct {
	Name  string         `json:"name"`
	Title string         `json:"title"`
	Steps []stepResponse `json:"steps"`
}

type stepResponse struct {
	ID     int             `json:"id"`
	Title  string          `json:"title"`
	Fields []fieldResponse `json:"fields"`
}

type fieldResponse struct {
	Name    string   `json:"name"`
	Label   string   `json:"label,omitempty"`
	Kind    string   `json:"kind"`
	Options []string `json:"options,omitempty"`
	// Required is false for conditionally required fields; Conditional
	// tells the client the server decides from the other answers.
	Required    bool `json:"required"`
	Conditional bool `json:"conditional,omitempty"`
	MinLength   int  `json:"minLength,omitempty"`
}

type validateStepRequest struct {
	Answers wizard.Answers `json:"answers"`
	Files   wizard.Files   `json:"files"`
}

type validateStepResponse struct {
	Valid  bool         `json:"valid"`
	Errors []fieldError `json:"errors,omitempty"`
	Next   int          `json:"next,omitempty"`
	Submit bool         `json:"submit,omitempty"`
}

// List handles GET /api/wizards.
func (h *WizardHandler) List(w http.ResponseWriter, r *http.Request) {
	names := h.reg.Names()
	out := make([]wizardSummary, 0, len(names))
	for _, name := range names {
		def, err := h.reg.Get(name)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		out = append(out, wizardSummary{Name: def.Name, Title: def.Title, Steps: def.Last()})
	}
	writeJSON(w, http.StatusOK, map[string]any{"wizards": out})
}

// Definition handles GET /api/wizards/{form}.
func (h *WizardHandler) Definition(w http.ResponseWriter, r *http.Request) {
	def, err := h.reg.Get(r.PathValue("form"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWizardResponse(def))
}

// ValidateStep handles POST /api/wizards/{form}/steps/{step}/validate. A
// step with field errors is a normal outcome and answers 200 with
// valid=false.
func (h *WizardHandler) ValidateStep(w http.ResponseWriter, r *http.Request) {
	def, err := h.reg.Get(r.PathValue("form"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	step, err := strconv.Atoi(r.PathValue("step"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("step", "must be a number"))
		return
	}

	var req validateStepRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	errs, err := def.ValidateStep(step, req.Answers, req.Files)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if len(errs) > 0 {
		resp := validateStepResponse{Errors: make([]fieldError, 0, len(errs))}
		for _, fe := range errs {
			resp.Errors = append(resp.Errors, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}

	next, submit, err := def.Next(step, req.Answers)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, validateStepResponse{Valid: true, Next: next, Submit: submit})
}

func toWizardResponse(def *wizard.Definition) wizardResponse {
	resp := wizardResponse{Name: def.Name, Title: def.Title, Steps: make([]stepResponse, 0, len(def.Steps))}
	for _, s := range def.Steps {
		step := stepResponse{ID: s.ID, Title: s.Title, Fields: make([]fieldResponse, 0, len(s.Fields))}
		for _, f := range s.Fields {
			step.Fields = append(step.Fields, fieldResponse{
				Name:        f.Name,
				Label:       f.Label,
				Kind:        string(f.Kind),
				Options:     f.Options,
				Required:    f.Required,
				Conditional: f.RequiredWhen != nil,
				MinLength:   f.MinLength,
			})
		}
		resp.Steps = append(resp.Steps, step)
	}
	return resp
}
