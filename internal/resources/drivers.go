package resources

import (
	"github.com/translogica/tms-console/internal/model"
	"github.com/translogica/tms-console/internal/screen"
	"github.com/translogica/tms-console/internal/view"
)

var Drivers = Resource[model.Driver]{
	Name:         "drivers",
	Path:         "/drivers",
	Title:        "Conducteurs",
	NotFoundMsg:  "Conducteur introuvable",
	DeletePrompt: "Supprimer ce conducteur ?",
	Filters:      []string{"status"},
	ID:           func(d model.Driver) int64 { return d.ID },
	ListHeader:   []string{"ID", "Nom", "Prénom", "Permis", "Expiration", "Statut"},
	ListRow: func(d model.Driver) []string {
		return []string{
			formatID(d.ID),
			d.LastName,
			d.FirstName,
			d.LicenseNumber,
			view.Date(d.LicenseExpiry),
			view.DriverStatusLabels.Label(string(d.Status)),
		}
	},
	DetailRows: func(d model.Driver) []Row {
		return []Row{
			{"Prénom", d.FirstName},
			{"Nom", d.LastName},
			{"Numéro de permis", d.LicenseNumber},
			{"Type de permis", d.LicenseType},
			{"Expiration du permis", view.Date(d.LicenseExpiry)},
			{"Statut", view.DriverStatusLabels.Label(string(d.Status))},
			{"Partenaire", view.Text(d.PartnerName, view.PlaceholderNA)},
		}
	},
	FormFields: []screen.Field{
		{Name: "first_name", Kind: screen.FieldText, Required: true},
		{Name: "last_name", Kind: screen.FieldText, Required: true},
		{Name: "license_number", Kind: screen.FieldText, Required: true},
		{Name: "license_type", Kind: screen.FieldText, Required: true},
		{Name: "license_expiry", Kind: screen.FieldDate, Required: true},
		{Name: "status", Kind: screen.FieldSelect, Required: true, Default: "active",
			Options: []string{"active", "on_leave", "suspended", "inactive"}},
		{Name: "partner_id", Kind: screen.FieldNumber},
		{Name: "partner_name", Kind: screen.FieldText},
	},
}
