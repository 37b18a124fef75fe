package model

type CostCalculationType string

const (
	CostCalculationTypeOrder    CostCalculationType = "order"
	CostCalculationTypeShipment CostCalculationType = "shipment"
	CostCalculationTypeSegment  CostCalculationType = "segment"
)

type CostCalculationStatus string

const (
	CostCalculationStatusDraft     CostCalculationStatus = "draft"
	CostCalculationStatusValidated CostCalculationStatus = "validated"
	CostCalculationStatusInvoiced  CostCalculationStatus = "invoiced"
)

// CostDetails is the optional nested cost breakdown carried by a calculation.
type CostDetails struct {
	BaseCost        float64 `json:"base_cost"`
	SurchargesTotal float64 `json:"surcharges_total"`
	TaxesTotal      float64 `json:"taxes_total"`
}

type CostCalculation struct {
	ID              int64                 `json:"id"`
	Name            string                `json:"name"`
	Type            CostCalculationType   `json:"type"`
	TotalCost       float64               `json:"total_cost"`
	Currency        string                `json:"currency"`
	CalculationDate string                `json:"calculation_date"`
	Status          CostCalculationStatus `json:"status"`
	Notes           *string               `json:"notes,omitempty"`
	Details         *CostDetails          `json:"details,omitempty"`
}
