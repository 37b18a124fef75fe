package resources

import (
	"github.com/translogica/tms-console/internal/model"
	"github.com/translogica/tms-console/internal/screen"
	"github.com/translogica/tms-console/internal/view"
)

var CostCalculations = Resource[model.CostCalculation]{
	Name:         "cost-calculations",
	Path:         "/cost-calculations",
	Title:        "Calculs de coûts",
	NotFoundMsg:  "Calcul de coûts introuvable",
	DeletePrompt: "Supprimer ce calcul de coûts ?",
	Filters:      []string{"type", "status"},
	ID:           func(c model.CostCalculation) int64 { return c.ID },
	ListHeader:   []string{"ID", "Nom", "Type", "Coût total", "Date", "Statut"},
	ListRow: func(c model.CostCalculation) []string {
		return []string{
			formatID(c.ID),
			c.Name,
			view.CostCalculationTypeLabels.Label(string(c.Type)),
			view.Currency(c.TotalCost, c.Currency),
			view.Date(c.CalculationDate),
			view.CostCalculationStatusLabels.Label(string(c.Status)),
		}
	},
	DetailRows: func(c model.CostCalculation) []Row {
		rows := []Row{
			{"Nom", c.Name},
			{"Type", view.CostCalculationTypeLabels.Label(string(c.Type))},
			{"Coût total", view.Currency(c.TotalCost, c.Currency)},
			{"Date de calcul", view.Date(c.CalculationDate)},
			{"Statut", view.CostCalculationStatusLabels.Label(string(c.Status))},
			{"Notes", view.Text(c.Notes, view.PlaceholderNone)},
		}
		if c.Details != nil {
			rows = append(rows,
				Row{"Coût de base", view.Currency(c.Details.BaseCost, c.Currency)},
				Row{"Total surcharges", view.Currency(c.Details.SurchargesTotal, c.Currency)},
				Row{"Total taxes", view.Currency(c.Details.TaxesTotal, c.Currency)},
			)
		}
		return rows
	},
	FormFields: []screen.Field{
		{Name: "name", Kind: screen.FieldText, Required: true},
		{Name: "type", Kind: screen.FieldSelect, Required: true, Default: "order",
			Options: []string{"order", "shipment", "segment"}},
		{Name: "total_cost", Kind: screen.FieldNumber, Default: float64(0)},
		{Name: "currency", Kind: screen.FieldText, Required: true, Default: "EUR"},
		{Name: "calculation_date", Kind: screen.FieldDate, Required: true},
		{Name: "status", Kind: screen.FieldSelect, Required: true, Default: "draft",
			Options: []string{"draft", "validated", "invoiced"}},
		{Name: "notes", Kind: screen.FieldText},
	},
}
