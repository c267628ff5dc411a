package onboarding

import (
	"github.com/heartmarshall/fieldforms-backend/internal/wizard"
)

// Client is a row of the clients table.
type Client struct {
	Name              string `airtable:"Name"`
	Email             string `airtable:"Email"`
	Phone             string `airtable:"Phone"`
	Address           string `airtable:"Dirección"`
	OpeningHours      string `airtable:"Horario de atención"`
	MultipleSites     string `airtable:"¿Tienen más de una sede?"`
	GoogleBusiness    string `airtable:"¿Tienen ficha en Google Business?"`
	GoogleBusinessURL string `airtable:"Enlace a ficha de Google Business"`
	Website           string `airtable:"Enlace a su web"`
	CalendarTool      string `airtable:"¿Qué calendario usan?"`
	CalendarCount     string `airtable:"¿Cuántos calendario tienen?"`
	Password          string `airtable:"Password"`
}

// Attachment columns.
const (
	FieldLogo    = "Logo"
	FieldCatalog = "Catálogo"
)

// clientFromSubmission maps form answers onto store columns. The form asks
// for the clinic name and phone under Spanish labels that the table stores
// as Name and Phone.
func clientFromSubmission(sub wizard.Submission) Client {
	return Client{
		Name:              sub.Text("Nombre de la clínica"),
		Email:             sub.Text("Email"),
		Phone:             sub.Text("Teléfono"),
		Address:           sub.Text("Dirección"),
		OpeningHours:      sub.Text("Horario de atención"),
		MultipleSites:     sub.Text("¿Tienen más de una sede?"),
		GoogleBusiness:    sub.Text("¿Tienen ficha en Google Business?"),
		GoogleBusinessURL: sub.Text("Enlace a ficha de Google Business"),
		Website:           sub.Text("Enlace a su web"),
		CalendarTool:      sub.Text("¿Qué calendario usan?"),
		CalendarCount:     sub.Text("¿Cuántos calendario tienen?"),
		Password:          sub.Answers.String("Password"),
	}
}
