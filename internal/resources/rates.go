package resources

import (
	"github.com/translogica/tms-console/internal/model"
	"github.com/translogica/tms-console/internal/screen"
	"github.com/translogica/tms-console/internal/view"
)

var Rates = Resource[model.Rate]{
	Name:         "rates",
	Path:         "/rates",
	Title:        "Tarifs",
	NotFoundMsg:  "Tarif introuvable",
	DeletePrompt: "Supprimer ce tarif ?",
	Filters:      []string{"rate_type", "mode_of_transport"},
	ID:           func(r model.Rate) int64 { return r.ID },
	ListHeader:   []string{"ID", "Nom", "Type", "Tarif de base", "Mode", "Validité"},
	ListRow: func(r model.Rate) []string {
		return []string{
			formatID(r.ID),
			r.RateName,
			r.RateType,
			view.Currency(r.BaseRate, r.Currency),
			view.ModeOfTransportLabels.Label(r.ModeOfTransport),
			view.OptionalDate(r.ValidTo, view.PlaceholderDash),
		}
	},
	DetailRows: func(r model.Rate) []Row {
		return []Row{
			{"Nom du tarif", r.RateName},
			{"Type de tarif", r.RateType},
			{"Tarif de base", view.Currency(r.BaseRate, r.Currency)},
			{"Poids min", view.Quantity(r.MinWeight, "kg", view.PlaceholderNA)},
			{"Poids max", view.Quantity(r.MaxWeight, "kg", view.PlaceholderNA)},
			{"Volume min", view.Quantity(r.MinVolume, "m³", view.PlaceholderNA)},
			{"Volume max", view.Quantity(r.MaxVolume, "m³", view.PlaceholderNA)},
			{"Distance min", view.Quantity(r.MinDistance, "km", view.PlaceholderNA)},
			{"Distance max", view.Quantity(r.MaxDistance, "km", view.PlaceholderNA)},
			{"Pays d'origine", view.Text(r.OriginCountry, view.PlaceholderNA)},
			{"Pays de destination", view.Text(r.DestinationCountry, view.PlaceholderNA)},
			{"Mode de transport", view.ModeOfTransportLabels.Label(r.ModeOfTransport)},
			{"Valide du", view.OptionalDate(r.ValidFrom, view.PlaceholderNA)},
			{"Valide au", view.OptionalDate(r.ValidTo, view.PlaceholderNA)},
			{"Notes", view.Text(r.Notes, view.PlaceholderNone)},
		}
	},
	FormFields: []screen.Field{
		{Name: "rate_name", Kind: screen.FieldText, Required: true},
		{Name: "rate_type", Kind: screen.FieldText, Required: true},
		{Name: "base_rate", Kind: screen.FieldNumber, Required: true},
		{Name: "currency", Kind: screen.FieldText, Required: true, Default: "EUR"},
		{Name: "min_weight", Kind: screen.FieldNumber},
		{Name: "max_weight", Kind: screen.FieldNumber},
		{Name: "min_volume", Kind: screen.FieldNumber},
		{Name: "max_volume", Kind: screen.FieldNumber},
		{Name: "min_distance", Kind: screen.FieldNumber},
		{Name: "max_distance", Kind: screen.FieldNumber},
		{Name: "origin_country", Kind: screen.FieldText},
		{Name: "destination_country", Kind: screen.FieldText},
		{Name: "mode_of_transport", Kind: screen.FieldSelect, Required: true, Default: "road",
			Options: []string{"road", "rail", "sea", "air"}},
		{Name: "valid_from", Kind: screen.FieldDate},
		{Name: "valid_to", Kind: screen.FieldDate},
		{Name: "notes", Kind: screen.FieldText},
	},
}
