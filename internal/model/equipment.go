package model

type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "available"
	EquipmentStatusInUse       EquipmentStatus = "in_use"
	EquipmentStatusMaintenance EquipmentStatus = "maintenance"
	EquipmentStatusRetired     EquipmentStatus = "retired"
)

// EquipmentFinancialInfo is display-only acquisition data.
type EquipmentFinancialInfo struct {
	PurchaseDate  *string  `json:"purchaseDate,omitempty"`
	PurchasePrice *float64 `json:"purchasePrice,omitempty"`
	CurrentValue  *float64 `json:"currentValue,omitempty"`
}

type EquipmentDocument struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Equipment keeps the backend's camelCase wire names.
type Equipment struct {
	ID                  int64                   `json:"id"`
	Identification      string                  `json:"identification"`
	Type                string                  `json:"type"`
	Status              EquipmentStatus         `json:"status"`
	Location            *string                 `json:"location,omitempty"`
	LastMaintenanceDate *string                 `json:"lastMaintenanceDate,omitempty"`
	NextMaintenanceDate *string                 `json:"nextMaintenanceDate,omitempty"`
	Characteristics     *string                 `json:"characteristics,omitempty"`
	FinancialInfo       *EquipmentFinancialInfo `json:"financialInfo,omitempty"`
	Documents           []EquipmentDocument     `json:"documents,omitempty"`
	CreatedAt           string                  `json:"createdAt"`
	UpdatedAt           string                  `json:"updatedAt"`
}
