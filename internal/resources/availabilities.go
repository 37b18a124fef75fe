package resources

import (
	"github.com/translogica/tms-console/internal/model"
	"github.com/translogica/tms-console/internal/screen"
	"github.com/translogica/tms-console/internal/view"
)

var Availabilities = Resource[model.ResourceAvailability]{
	Name:         "availabilities",
	Path:         "/availabilities",
	Title:        "Disponibilités des ressources",
	NotFoundMsg:  "Disponibilité introuvable",
	DeletePrompt: "Supprimer cette disponibilité ?",
	Filters:      []string{"resource_type", "status"},
	ID:           func(a model.ResourceAvailability) int64 { return a.ID },
	ListHeader:   []string{"ID", "Ressource", "N°", "Début", "Fin", "Statut"},
	ListRow: func(a model.ResourceAvailability) []string {
		return []string{
			formatID(a.ID),
			view.ResourceTypeLabels.Label(string(a.ResourceType)),
			formatID(a.ResourceID),
			view.DateTime(a.StartTime),
			view.DateTime(a.EndTime),
			view.AvailabilityStatusLabels.Label(string(a.Status)),
		}
	},
	DetailRows: func(a model.ResourceAvailability) []Row {
		return []Row{
			{"Type de ressource", view.ResourceTypeLabels.Label(string(a.ResourceType))},
			{"Ressource", formatID(a.ResourceID)},
			{"Début", view.DateTime(a.StartTime)},
			{"Fin", view.DateTime(a.EndTime)},
			{"Statut", view.AvailabilityStatusLabels.Label(string(a.Status))},
			{"Notes", view.Text(a.Notes, view.PlaceholderNone)},
		}
	},
	FormFields: []screen.Field{
		{Name: "resource_type", Kind: screen.FieldSelect, Required: true, Default: "vehicle",
			Options: []string{"vehicle", "driver"}},
		{Name: "resource_id", Kind: screen.FieldNumber, Required: true},
		{Name: "start_time", Kind: screen.FieldDate, Required: true},
		{Name: "end_time", Kind: screen.FieldDate, Required: true},
		{Name: "status", Kind: screen.FieldSelect, Required: true, Default: "available",
			Options: []string{"available", "unavailable", "planned"}},
		{Name: "notes", Kind: screen.FieldText},
	},
}
