package resources

import (
	"github.com/translogica/tms-console/internal/model"
	"github.com/translogica/tms-console/internal/screen"
	"github.com/translogica/tms-console/internal/view"
)

var Contracts = Resource[model.Contract]{
	Name:         "contracts",
	Path:         "/contracts",
	Title:        "Contrats",
	NotFoundMsg:  "Contrat introuvable",
	DeletePrompt: "Supprimer ce contrat ?",
	Filters:      []string{"type", "status"},
	ID:           func(c model.Contract) int64 { return c.ID },
	ListHeader:   []string{"ID", "Référence", "Titre", "Type", "Statut", "Valeur"},
	ListRow: func(c model.Contract) []string {
		return []string{
			formatID(c.ID),
			c.Reference,
			c.Title,
			view.ContractTypeLabels.Label(string(c.Type)),
			view.ContractStatusLabels.Label(string(c.Status)),
			view.Currency(c.Value, c.Currency),
		}
	},
	DetailRows: func(c model.Contract) []Row {
		return []Row{
			{"Référence", c.Reference},
			{"Titre", c.Title},
			{"Type", view.ContractTypeLabels.Label(string(c.Type))},
			{"Date de début", view.Date(c.StartDate)},
			{"Date de fin", view.Date(c.EndDate)},
			{"Statut", view.ContractStatusLabels.Label(string(c.Status))},
			{"Partenaire", c.PartnerName},
			{"Valeur", view.Currency(c.Value, c.Currency)},
			{"Notes", view.Text(c.Notes, view.PlaceholderNone)},
		}
	},
	FormFields: []screen.Field{
		{Name: "reference", Kind: screen.FieldText, Required: true},
		{Name: "title", Kind: screen.FieldText, Required: true},
		{Name: "type", Kind: screen.FieldSelect, Required: true, Default: "transport",
			Options: []string{"transport", "warehousing", "maintenance", "framework"}},
		{Name: "start_date", Kind: screen.FieldDate, Required: true},
		{Name: "end_date", Kind: screen.FieldDate, Required: true},
		{Name: "status", Kind: screen.FieldSelect, Required: true, Default: "draft",
			Options: []string{"draft", "active", "suspended", "expired", "terminated"}},
		{Name: "partner_id", Kind: screen.FieldNumber, Required: true},
		{Name: "partner_name", Kind: screen.FieldText},
		{Name: "value", Kind: screen.FieldNumber, Default: float64(0)},
		{Name: "currency", Kind: screen.FieldText, Required: true, Default: "EUR"},
		{Name: "notes", Kind: screen.FieldText},
	},
}
