package support

import (
	"github.com/heartmarshall/fieldforms-backend/internal/domain"
)

// Record is a row of the support table.
type Record struct {
	ID           string              `json:"id"           airtable:"-"`
	Expediente   string              `json:"expediente"   airtable:"Expediente"`
	Cliente      string              `json:"cliente"      airtable:"Cliente"`
	Telefono     string              `json:"telefono"     airtable:"Teléfono"`
	Direccion    string              `json:"direccion"    airtable:"Dirección"`
	Problema     string              `json:"problema"     airtable:"Problema"`
	Detalles     string              `json:"detalles"     airtable:"Detalles"`
	FotoGeneral  []domain.Attachment `json:"fotoGeneral"  airtable:"Foto general"`
	FotoEtiqueta []domain.Attachment `json:"fotoEtiqueta" airtable:"Foto etiqueta"`
	FotoRoto     []domain.Attachment `json:"fotoRoto"     airtable:"Foto roto"`
}

// Columns a patch may write.
var (
	textColumns  = []string{"Cliente", "Teléfono", "Dirección", "Problema", "Detalles"}
	photoColumns = []string{"Foto general", "Foto etiqueta", "Foto roto"}
)

func recordFrom(rec domain.Record) (Record, error) {
	var r Record
	if err := domain.DecodeFields(rec.Fields, &r); err != nil {
		return Record{}, err
	}
	r.ID = rec.ID
	return r, nil
}
