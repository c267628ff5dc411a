package domain

// Device is the client class derived from the User-Agent. It drives
// attachment size and quality limits and upload fan-out.
type Device string

const (
	DeviceDesktop Device = "desktop"
	DeviceMobile  Device = "mobile"
)

func (d Device) String() string { return string(d) }

func (d Device) IsValid() bool {
	switch d {
	case DeviceDesktop, DeviceMobile:
		return true
	}
	return false
}

func (d Device) IsMobile() bool { return d == DeviceMobile }

// YesNo is the answer to a binary onboarding question.
type YesNo string

const (
	Yes YesNo = "Sí"
	No  YesNo = "No"
)

func (v YesNo) String() string { return string(v) }

func (v YesNo) IsValid() bool {
	switch v {
	case Yes, No:
		return true
	}
	return false
}

// RepairOutcome is the result a technician reports on a work order.
type RepairOutcome string

const (
	OutcomeRepaired    RepairOutcome = "Reparado"
	OutcomeNotRepaired RepairOutcome = "No reparado"
)

func (o RepairOutcome) String() string { return string(o) }

func (o RepairOutcome) IsValid() bool {
	switch o {
	case OutcomeRepaired, OutcomeNotRepaired:
		return true
	}
	return false
}

// RepairAction is the work performed when a charger was repaired.
type RepairAction string

const (
	ActionElectricalPanel RepairAction = "Repara el cuadro eléctrico"
	ActionResetBoard      RepairAction = "Resetear la placa electrónica"
	ActionReplaceCharger  RepairAction = "Sustituir el punto de recarga"
	ActionCheckWiring     RepairAction = "Revisar la instalación"
)

// RepairActions lists the options in display order.
var RepairActions = []RepairAction{
	ActionElectricalPanel, ActionResetBoard, ActionReplaceCharger, ActionCheckWiring,
}

func (a RepairAction) String() string { return string(a) }

// PanelComponents are the electrical panel parts a technician may have fixed.
var PanelComponents = []string{
	"Diferencial",
	"Sobretensiones",
	"Magneto termico",
	"Cableado interno",
	"Gestor dinámico de pontecia",
	"Medidor de consumo",
}

// SupportProblem is the fault category chosen in the support intake form.
type SupportProblem string

const (
	ProblemNotCharging   SupportProblem = "Cargador no carga"
	ProblemNoPower       SupportProblem = "Cargador no enciende"
	ProblemBrokenMount   SupportProblem = "Soporte roto físicamente"
	ProblemBrokenHose    SupportProblem = "Manguera roto físicamente"
	ProblemBrokenCharger SupportProblem = "Cargador roto físicamente"
	ProblemOther         SupportProblem = "Otro"
)

// SupportProblems lists the options in display order.
var SupportProblems = []SupportProblem{
	ProblemNotCharging, ProblemNoPower, ProblemBrokenMount,
	ProblemBrokenHose, ProblemBrokenCharger, ProblemOther,
}

func (p SupportProblem) String() string { return string(p) }

func (p SupportProblem) IsValid() bool {
	switch p {
	case ProblemNotCharging, ProblemNoPower, ProblemBrokenMount,
		ProblemBrokenHose, ProblemBrokenCharger, ProblemOther:
		return true
	}
	return false
}

// IsPhysicalDamage reports whether the problem requires a photo of the damage.
func (p SupportProblem) IsPhysicalDamage() bool {
	switch p {
	case ProblemBrokenMount, ProblemBrokenHose, ProblemBrokenCharger:
		return true
	}
	return false
}
