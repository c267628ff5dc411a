package wizard

import (
	"github.com/heartmarshall/fieldforms-backend/internal/domain"
)

// Wizard names.
const (
	Onboarding = "onboarding"
	WorkOrder  = "work-order"
	Support    = "support"
	Booking    = "booking"
)

var yesNo = []string{domain.Yes.String(), domain.No.String()}

// OnboardingDefinition is the four-step client onboarding form.
func OnboardingDefinition() *Definition {
	return &Definition{
		Name:  Onboarding,
		Title: "Alta de cliente",
		Steps: []Step{
			{ID: 1, Title: "Datos generales", Fields: []Field{
				{Name: "Nombre de la clínica", Kind: KindText, Required: true, Message: "El nombre de la clínica es requerido"},
				{Name: "Email", Kind: KindEmail, Required: true},
				{Name: "Teléfono", Kind: KindText, Required: true, Message: "El teléfono es requerido"},
				{Name: "Dirección", Kind: KindText, Required: true, Message: "La dirección es requerida"},
				{Name: "Horario de atención", Kind: KindText, Required: true, Message: "El horario de atención es requerido"},
			}},
			{ID: 2, Title: "Presencia digital", Fields: []Field{
				{Name: "¿Tienen más de una sede?", Kind: KindEnum, Options: yesNo, Required: true, Message: "Selecciona una opción"},
				{Name: "¿Tienen ficha en Google Business?", Kind: KindEnum, Options: yesNo, Required: true, Message: "Selecciona una opción"},
				{
					Name:         "Enlace a ficha de Google Business",
					Kind:         KindURL,
					RequiredWhen: Equals("¿Tienen ficha en Google Business?", domain.Yes.String()),
					Message:      "El enlace a Google Business es requerido cuando tienen ficha en Google Business",
				},
				{Name: "Enlace a su web", Kind: KindURL, Required: true},
				{Name: "¿Qué calendario usan?", Kind: KindText, Required: true, Message: "Este campo es requerido"},
				{Name: "¿Cuántos calendario tienen?", Kind: KindNumber, Required: true, Message: "Este campo es requerido"},
			}},
			{ID: 3, Title: "Archivos", Fields: []Field{
				{Name: "Logo", Kind: KindFiles, Required: true, Message: "Adjunta el logo de la clínica"},
				{Name: "Catálogo", Kind: KindFiles, Required: true, Message: "Adjunta el catálogo de servicios"},
			}},
			{ID: 4, Title: "Seguridad", Fields: []Field{
				{Name: "Password", Kind: KindPassword, Required: true, MinLength: 8},
			}},
		},
	}
}

// WorkOrderDefinition is the five-step repair work order. A repaired charger
// goes 2 -> 3 -> 5; an unrepaired one goes 2 -> 4 -> 5.
func WorkOrderDefinition() *Definition {
	repaired := Equals("Resultado", domain.OutcomeRepaired.String())
	notRepaired := Equals("Resultado", domain.OutcomeNotRepaired.String())

	actions := make([]string, len(domain.RepairActions))
	for i, a := range domain.RepairActions {
		actions[i] = a.String()
	}

	return &Definition{
		Name:  WorkOrder,
		Title: "Parte de trabajo",
		Steps: []Step{
			{ID: 1, Title: "Datos generales", Fields: []Field{
				{Name: "Expediente", Kind: KindText},
				{Name: "Cliente", Kind: KindText, Required: true, Message: "El cliente es requerido"},
				{Name: "Dirección", Kind: KindText, Required: true, Message: "La dirección es requerida"},
				{Name: "Técnico", Kind: KindText, Required: true, Message: "El técnico es requerido"},
			}},
			{ID: 2, Title: "Resultado", Fields: []Field{
				{
					Name:     "Resultado",
					Kind:     KindEnum,
					Options:  []string{domain.OutcomeRepaired.String(), domain.OutcomeNotRepaired.String()},
					Required: true,
					Message:  "Selecciona una opción",
				},
			}},
			{ID: 3, Title: "Reparación", Fields: []Field{
				{
					Name:         "Reparación",
					Kind:         KindEnum,
					Options:      actions,
					RequiredWhen: repaired,
					Message:      "Debes seleccionar qué has tenido que hacer",
				},
				{
					Name:         "Cuadro eléctrico",
					Kind:         KindEnum,
					Options:      domain.PanelComponents,
					RequiredWhen: And(repaired, Equals("Reparación", domain.ActionElectricalPanel.String())),
					Message:      "Debes especificar qué reparaste del cuadro eléctrico",
				},
			}},
			{ID: 4, Title: "Problema", Fields: []Field{
				{
					Name:         "Problema",
					Kind:         KindText,
					RequiredWhen: notRepaired,
					Message:      "Debes explicar qué problema has tenido",
				},
			}},
			{ID: 5, Title: "Fotos y factura", Fields: []Field{
				{Name: "Foto", Kind: KindFiles},
				{Name: "Factura", Kind: KindFiles, RequiredWhen: repaired, Message: "Adjunta la factura"},
			}},
		},
		Edges: []Edge{
			{From: 2, When: repaired, To: 3},
			{From: 2, When: notRepaired, To: 4},
			{From: 3, To: 5},
		},
	}
}

// SupportDefinition is the five-step technical support intake. The damage
// photo step is only visited for physical damage.
func SupportDefinition() *Definition {
	problems := make([]string, len(domain.SupportProblems))
	var damage []string
	for i, p := range domain.SupportProblems {
		problems[i] = p.String()
		if p.IsPhysicalDamage() {
			damage = append(damage, p.String())
		}
	}
	physical := In("Problema", damage...)

	return &Definition{
		Name:  Support,
		Title: "Soporte técnico",
		Steps: []Step{
			{ID: 1, Title: "Foto general", Fields: []Field{
				{Name: "Foto general", Kind: KindFiles, Required: true, Message: "Por favor, adjunta una foto general del punto de recarga"},
			}},
			{ID: 2, Title: "Foto de la etiqueta", Fields: []Field{
				{Name: "Foto etiqueta", Kind: KindFiles, Required: true, Message: "Por favor, adjunta una foto de la etiqueta del punto de recarga"},
			}},
			{ID: 3, Title: "Problema", Fields: []Field{
				{Name: "Problema", Kind: KindEnum, Options: problems, Required: true, Message: "Selecciona el tipo de problema"},
			}},
			{ID: 4, Title: "Detalles", Fields: []Field{
				{Name: "Detalles", Kind: KindText, Required: true, Message: "Por favor, proporciona más detalles sobre el problema"},
			}},
			{ID: 5, Title: "Foto del daño", Fields: []Field{
				{Name: "Foto roto", Kind: KindFiles, RequiredWhen: physical, Message: "Por favor, adjunta una foto de lo que está roto"},
			}},
		},
		Edges: []Edge{
			{From: 4, When: Not(physical), To: Submit},
		},
	}
}

// SlotCheck reports whether hhmm is a bookable slot on date (YYYY-MM-DD).
type SlotCheck func(date, hhmm string) bool

// BookingDefinition is the three-step appointment form. isSlot validates the
// chosen time against generated availability; nil accepts any time.
func BookingDefinition(isSlot SlotCheck) *Definition {
	hora := Field{Name: "Hora", Kind: KindTime, Required: true, Message: "Selecciona una hora"}
	if isSlot != nil {
		hora.Check = func(value string, answers Answers) string {
			if !isSlot(answers.String("Fecha"), value) {
				return "La hora seleccionada no está disponible"
			}
			return ""
		}
	}

	return &Definition{
		Name:  Booking,
		Title: "Reserva de cita",
		Steps: []Step{
			{ID: 1, Title: "Fecha", Fields: []Field{
				{Name: "Fecha", Kind: KindDate, Required: true, Message: "Selecciona una fecha"},
			}},
			{ID: 2, Title: "Hora", Fields: []Field{hora}},
			{ID: 3, Title: "Datos de contacto", Fields: []Field{
				{Name: "Nombre", Kind: KindText, Required: true, Message: "El nombre es requerido"},
				{Name: "Email", Kind: KindEmail, Required: true, Message: "El email es requerido"},
			}},
		},
	}
}
