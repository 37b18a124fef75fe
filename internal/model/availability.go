package model

type ResourceType string

const (
	ResourceTypeVehicle ResourceType = "vehicle"
	ResourceTypeDriver  ResourceType = "driver"
)

type AvailabilityStatus string

const (
	AvailabilityStatusAvailable   AvailabilityStatus = "available"
	AvailabilityStatusUnavailable AvailabilityStatus = "unavailable"
	AvailabilityStatusPlanned     AvailabilityStatus = "planned"
)

// ResourceAvailability blocks a vehicle or a driver over a time window.
// ResourceID is resolved against the list matching ResourceType.
type ResourceAvailability struct {
	ID           int64              `json:"id"`
	ResourceType ResourceType       `json:"resource_type"`
	ResourceID   int64              `json:"resource_id"`
	StartTime    string             `json:"start_time"`
	EndTime      string             `json:"end_time"`
	Status       AvailabilityStatus `json:"status"`
	Notes        *string            `json:"notes,omitempty"`
}
