package repair

import (
	"github.com/heartmarshall/fieldforms-backend/internal/domain"
	"github.com/heartmarshall/fieldforms-backend/internal/wizard"
)

// Repair is a row of the repairs table.
type Repair struct {
	ID              string              `json:"id"              airtable:"-"`
	Expediente      string              `json:"expediente"      airtable:"Expediente,omitempty"`
	Cliente         string              `json:"cliente"         airtable:"Cliente,omitempty"`
	Direccion       string              `json:"direccion"       airtable:"Dirección,omitempty"`
	Tecnico         string              `json:"tecnico"         airtable:"Técnico,omitempty"`
	Resultado       string              `json:"resultado"       airtable:"Resultado,omitempty"`
	Reparacion      string              `json:"reparacion"      airtable:"Reparación,omitempty"`
	CuadroElectrico string              `json:"cuadroElectrico" airtable:"Cuadro eléctrico,omitempty"`
	Problema        string              `json:"problema"        airtable:"Problema,omitempty"`
	Foto            []domain.Attachment `json:"foto"            airtable:"Foto,omitempty"`
	Factura         []domain.Attachment `json:"factura"         airtable:"Factura,omitempty"`
}

// Attachment columns.
const (
	FieldFoto    = "Foto"
	FieldFactura = "Factura"
)

// textColumns are the columns an update may overwrite.
var textColumns = []string{"Reparación", "Cuadro eléctrico", "Técnico", "Cliente", "Dirección"}

func repairFromSubmission(sub wizard.Submission) Repair {
	return Repair{
		Expediente:      sub.Text("Expediente"),
		Cliente:         sub.Text("Cliente"),
		Direccion:       sub.Text("Dirección"),
		Tecnico:         sub.Text("Técnico"),
		Resultado:       sub.Text("Resultado"),
		Reparacion:      sub.Text("Reparación"),
		CuadroElectrico: sub.Text("Cuadro eléctrico"),
		Problema:        sub.Text("Problema"),
	}
}

func repairFromRecord(rec domain.Record) (Repair, error) {
	var r Repair
	if err := domain.DecodeFields(rec.Fields, &r); err != nil {
		return Repair{}, err
	}
	r.ID = rec.ID
	if r.Foto == nil {
		r.Foto = []domain.Attachment{}
	}
	if r.Factura == nil {
		r.Factura = []domain.Attachment{}
	}
	return r, nil
}
