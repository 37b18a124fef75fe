package model

type DriverStatus string

const (
	DriverStatusActive    DriverStatus = "active"
	DriverStatusOnLeave   DriverStatus = "on_leave"
	DriverStatusSuspended DriverStatus = "suspended"
	DriverStatusInactive  DriverStatus = "inactive"
)

type Driver struct {
	ID            int64        `json:"id"`
	FirstName     string       `json:"first_name"`
	LastName      string       `json:"last_name"`
	LicenseNumber string       `json:"license_number"`
	LicenseType   string       `json:"license_type"`
	LicenseExpiry string       `json:"license_expiry"`
	Status        DriverStatus `json:"status"`
	PartnerID     int64        `json:"partner_id"`
	PartnerName   *string      `json:"partner_name,omitempty"`
}
