package model

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "available"
	VehicleStatusInTransit   VehicleStatus = "in_transit"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
	VehicleStatusOutOfOrder  VehicleStatus = "out_of_order"
)

type Vehicle struct {
	ID                 int64         `json:"id"`
	RegistrationNumber string        `json:"registration_number"`
	Type               string        `json:"type"`
	Brand              *string       `json:"brand,omitempty"`
	Model              *string       `json:"model,omitempty"`
	Year               *int          `json:"year,omitempty"`
	Status             VehicleStatus `json:"status"`
	CapacityVolume     *float64      `json:"capacity_volume,omitempty"`
	CapacityWeight     *float64      `json:"capacity_weight,omitempty"`
	Dimensions         *string       `json:"dimensions,omitempty"`
	FuelType           *string       `json:"fuel_type,omitempty"`
	EmissionsClass     *string       `json:"emissions_class,omitempty"`
	Health             *string       `json:"health,omitempty"`
	NextMaintenance    *string       `json:"nextMaintenance,omitempty"`
	Alerts             []string      `json:"alerts,omitempty"`
	Partner            *string       `json:"partner,omitempty"`
	Location           *string       `json:"location,omitempty"`
	Latitude           *float64      `json:"latitude,omitempty"`
	Longitude          *float64      `json:"longitude,omitempty"`
}
