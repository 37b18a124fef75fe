package resources

import (
	"github.com/translogica/tms-console/internal/model"
	"github.com/translogica/tms-console/internal/screen"
	"github.com/translogica/tms-console/internal/view"
)

var Surcharges = Resource[model.Surcharge]{
	Name:         "surcharges",
	Path:         "/surcharges",
	Title:        "Surcharges",
	NotFoundMsg:  "Surcharge introuvable",
	DeletePrompt: "Supprimer cette surcharge ?",
	Filters:      []string{"type", "applies_to"},
	ID:           func(s model.Surcharge) int64 { return s.ID },
	ListHeader:   []string{"ID", "Nom", "Type", "Méthode", "Valeur", "S'applique à"},
	ListRow: func(s model.Surcharge) []string {
		return []string{
			formatID(s.ID),
			s.Name,
			view.SurchargeTypeLabels.Label(string(s.Type)),
			view.CalculationMethodLabels.Label(string(s.CalculationMethod)),
			view.SurchargeValue(string(s.CalculationMethod), s.Value, s.Currency),
			view.SurchargeAppliesToLabels.Label(string(s.AppliesTo)),
		}
	},
	DetailRows: func(s model.Surcharge) []Row {
		return []Row{
			{"Nom", s.Name},
			{"Type", view.SurchargeTypeLabels.Label(string(s.Type))},
			{"Méthode de calcul", view.CalculationMethodLabels.Label(string(s.CalculationMethod))},
			{"Valeur", view.SurchargeValue(string(s.CalculationMethod), s.Value, s.Currency)},
			{"S'applique à", view.SurchargeAppliesToLabels.Label(string(s.AppliesTo))},
			{"Valide du", view.OptionalDate(s.ValidFrom, view.PlaceholderNA)},
			{"Valide au", view.OptionalDate(s.ValidTo, view.PlaceholderNA)},
			{"Notes", view.Text(s.Notes, view.PlaceholderNone)},
		}
	},
	FormFields: []screen.Field{
		{Name: "name", Kind: screen.FieldText, Required: true},
		{Name: "type", Kind: screen.FieldSelect, Required: true, Default: "fuel",
			Options: []string{"fuel", "toll", "handling", "security", "customs"}},
		{Name: "calculation_method", Kind: screen.FieldSelect, Required: true, Default: "percentage",
			Options: []string{"percentage", "fixed_amount", "per_unit"}},
		{Name: "value", Kind: screen.FieldNumber, Required: true},
		{Name: "currency", Kind: screen.FieldText, Required: true, Default: "EUR"},
		{Name: "applies_to", Kind: screen.FieldSelect, Required: true, Default: "shipment",
			Options: []string{"order", "shipment", "invoice"}},
		{Name: "valid_from", Kind: screen.FieldDate},
		{Name: "valid_to", Kind: screen.FieldDate},
		{Name: "notes", Kind: screen.FieldText},
	},
}
