package resources

import (
	"github.com/translogica/tms-console/internal/model"
	"github.com/translogica/tms-console/internal/screen"
	"github.com/translogica/tms-console/internal/view"
)

var Vehicles = Resource[model.Vehicle]{
	Name:         "vehicles",
	Path:         "/vehicles",
	Title:        "Véhicules",
	NotFoundMsg:  "Véhicule introuvable",
	DeletePrompt: "Supprimer ce véhicule ?",
	Filters:      []string{"type", "status"},
	ID:           func(v model.Vehicle) int64 { return v.ID },
	ListHeader:   []string{"ID", "Immatriculation", "Type", "Marque", "Statut", "Localisation"},
	ListRow: func(v model.Vehicle) []string {
		return []string{
			formatID(v.ID),
			v.RegistrationNumber,
			v.Type,
			view.Text(v.Brand, view.PlaceholderDash),
			view.VehicleStatusLabels.Label(string(v.Status)),
			view.Text(v.Location, view.PlaceholderDash),
		}
	},
	DetailRows: func(v model.Vehicle) []Row {
		return []Row{
			{"Immatriculation", v.RegistrationNumber},
			{"Type", v.Type},
			{"Marque", view.Text(v.Brand, view.PlaceholderNA)},
			{"Modèle", view.Text(v.Model, view.PlaceholderNA)},
			{"Année", view.Integer(v.Year, view.PlaceholderNA)},
			{"Statut", view.VehicleStatusLabels.Label(string(v.Status))},
			{"Capacité (volume)", view.Quantity(v.CapacityVolume, "m³", view.PlaceholderNA)},
			{"Capacité (poids)", view.Quantity(v.CapacityWeight, "kg", view.PlaceholderNA)},
			{"Dimensions", view.Text(v.Dimensions, view.PlaceholderNA)},
			{"Carburant", view.Text(v.FuelType, view.PlaceholderNA)},
			{"Classe d'émissions", view.Text(v.EmissionsClass, view.PlaceholderNA)},
			{"État", view.Text(v.Health, view.PlaceholderNA)},
			{"Prochaine maintenance", view.OptionalDate(v.NextMaintenance, view.PlaceholderNA)},
			{"Alertes", view.Joined(v.Alerts, view.PlaceholderNone)},
			{"Partenaire", view.Text(v.Partner, view.PlaceholderNA)},
			{"Localisation", view.Text(v.Location, view.PlaceholderNA)},
			{"Localisation GPS", view.Coordinates(v.Latitude, v.Longitude, view.PlaceholderNA)},
		}
	},
	FormFields: []screen.Field{
		{Name: "registration_number", Kind: screen.FieldText, Required: true},
		{Name: "type", Kind: screen.FieldText, Required: true},
		{Name: "brand", Kind: screen.FieldText},
		{Name: "model", Kind: screen.FieldText},
		{Name: "year", Kind: screen.FieldNumber},
		{Name: "status", Kind: screen.FieldSelect, Required: true, Default: "available",
			Options: []string{"available", "in_transit", "maintenance", "out_of_order"}},
		{Name: "capacity_volume", Kind: screen.FieldNumber},
		{Name: "capacity_weight", Kind: screen.FieldNumber},
		{Name: "dimensions", Kind: screen.FieldText},
		{Name: "fuel_type", Kind: screen.FieldText},
		{Name: "emissions_class", Kind: screen.FieldText},
		{Name: "partner", Kind: screen.FieldText},
		{Name: "location", Kind: screen.FieldText},
		{Name: "latitude", Kind: screen.FieldNumber},
		{Name: "longitude", Kind: screen.FieldNumber},
	},
}
