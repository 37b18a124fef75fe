package model

type Rate struct {
	ID                 int64    `json:"id"`
	RateName           string   `json:"rate_name"`
	RateType           string   `json:"rate_type"`
	BaseRate           float64  `json:"base_rate"`
	Currency           string   `json:"currency"`
	MinWeight          *float64 `json:"min_weight,omitempty"`
	MaxWeight          *float64 `json:"max_weight,omitempty"`
	MinVolume          *float64 `json:"min_volume,omitempty"`
	MaxVolume          *float64 `json:"max_volume,omitempty"`
	MinDistance        *float64 `json:"min_distance,omitempty"`
	MaxDistance        *float64 `json:"max_distance,omitempty"`
	OriginCountry      *string  `json:"origin_country,omitempty"`
	DestinationCountry *string  `json:"destination_country,omitempty"`
	ModeOfTransport    string   `json:"mode_of_transport"`
	ValidFrom          *string  `json:"valid_from,omitempty"`
	ValidTo            *string  `json:"valid_to,omitempty"`
	Notes              *string  `json:"notes,omitempty"`
}
