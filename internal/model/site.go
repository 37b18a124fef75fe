package model

type SiteType string

const (
	SiteTypeWarehouse    SiteType = "warehouse"
	SiteTypeDepot        SiteType = "depot"
	SiteTypeCrossDock    SiteType = "cross_dock"
	SiteTypeClientSite   SiteType = "client_site"
	SiteTypeDistribution SiteType = "distribution_center"
)

type Site struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Type        SiteType `json:"type"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	PartnerID   int64    `json:"partner_id"`
	PartnerName string   `json:"partner_name"`
}
