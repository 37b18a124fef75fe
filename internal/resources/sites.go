package resources

import (
	"github.com/translogica/tms-console/internal/model"
	"github.com/translogica/tms-console/internal/screen"
	"github.com/translogica/tms-console/internal/view"
)

var Sites = Resource[model.Site]{
	Name:         "sites",
	Path:         "/sites",
	Title:        "Sites",
	NotFoundMsg:  "Site introuvable",
	DeletePrompt: "Supprimer ce site ?",
	Filters:      []string{"type", "country"},
	ID:           func(s model.Site) int64 { return s.ID },
	ListHeader:   []string{"ID", "Nom", "Type", "Ville", "Pays", "Partenaire"},
	ListRow: func(s model.Site) []string {
		return []string{
			formatID(s.ID),
			s.Name,
			view.SiteTypeLabels.Label(string(s.Type)),
			s.City,
			s.Country,
			s.PartnerName,
		}
	},
	DetailRows: func(s model.Site) []Row {
		return []Row{
			{"Nom", s.Name},
			{"Type", view.SiteTypeLabels.Label(string(s.Type))},
			{"Adresse", s.Address},
			{"Ville", s.City},
			{"Pays", s.Country},
			{"Partenaire", s.PartnerName},
		}
	},
	FormFields: []screen.Field{
		{Name: "name", Kind: screen.FieldText, Required: true},
		{Name: "type", Kind: screen.FieldSelect, Required: true, Default: "warehouse",
			Options: []string{"warehouse", "depot", "cross_dock", "client_site", "distribution_center"}},
		{Name: "address", Kind: screen.FieldText, Required: true},
		{Name: "city", Kind: screen.FieldText, Required: true},
		{Name: "country", Kind: screen.FieldText, Required: true, Default: "France"},
		{Name: "partner_id", Kind: screen.FieldNumber, Required: true},
		{Name: "partner_name", Kind: screen.FieldText},
	},
}
