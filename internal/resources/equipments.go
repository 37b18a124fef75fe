package resources

import (
	"github.com/translogica/tms-console/internal/model"
	"github.com/translogica/tms-console/internal/screen"
	"github.com/translogica/tms-console/internal/view"
)

var Equipments = Resource[model.Equipment]{
	Name:         "equipments",
	Path:         "/equipments",
	Title:        "Équipements",
	NotFoundMsg:  "Équipement introuvable",
	DeletePrompt: "Supprimer cet équipement ?",
	Filters:      []string{"type", "status"},
	ID:           func(e model.Equipment) int64 { return e.ID },
	ListHeader:   []string{"ID", "Identification", "Type", "Statut", "Localisation", "Prochaine maintenance"},
	ListRow: func(e model.Equipment) []string {
		return []string{
			formatID(e.ID),
			e.Identification,
			e.Type,
			view.EquipmentStatusLabels.Label(string(e.Status)),
			view.Text(e.Location, view.PlaceholderDash),
			view.OptionalDate(e.NextMaintenanceDate, view.PlaceholderDash),
		}
	},
	DetailRows: func(e model.Equipment) []Row {
		rows := []Row{
			{"Identification", e.Identification},
			{"Type", e.Type},
			{"Statut", view.EquipmentStatusLabels.Label(string(e.Status))},
			{"Localisation", view.Text(e.Location, view.PlaceholderNA)},
			{"Dernière maintenance", view.OptionalDate(e.LastMaintenanceDate, view.PlaceholderNA)},
			{"Prochaine maintenance", view.OptionalDate(e.NextMaintenanceDate, view.PlaceholderNA)},
			{"Caractéristiques", view.Text(e.Characteristics, view.PlaceholderNA)},
		}
		if e.FinancialInfo != nil {
			rows = append(rows,
				Row{"Date d'achat", view.OptionalDate(e.FinancialInfo.PurchaseDate, view.PlaceholderNA)},
				Row{"Prix d'achat", view.Amount(e.FinancialInfo.PurchasePrice, "EUR", view.PlaceholderNA)},
				Row{"Valeur actuelle", view.Amount(e.FinancialInfo.CurrentValue, "EUR", view.PlaceholderNA)},
			)
		}
		rows = append(rows,
			Row{"Créé le", view.DateTime(e.CreatedAt)},
			Row{"Mis à jour le", view.DateTime(e.UpdatedAt)},
		)
		return rows
	},
	FormFields: []screen.Field{
		{Name: "identification", Kind: screen.FieldText, Required: true},
		{Name: "type", Kind: screen.FieldText, Required: true},
		{Name: "status", Kind: screen.FieldSelect, Required: true, Default: "available",
			Options: []string{"available", "in_use", "maintenance", "retired"}},
		{Name: "location", Kind: screen.FieldText},
		{Name: "lastMaintenanceDate", Kind: screen.FieldDate},
		{Name: "nextMaintenanceDate", Kind: screen.FieldDate},
		{Name: "characteristics", Kind: screen.FieldText},
	},
}
