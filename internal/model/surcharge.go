package model

type SurchargeType string

const (
	SurchargeTypeFuel     SurchargeType = "fuel"
	SurchargeTypeToll     SurchargeType = "toll"
	SurchargeTypeHandling SurchargeType = "handling"
	SurchargeTypeSecurity SurchargeType = "security"
	SurchargeTypeCustoms  SurchargeType = "customs"
)

type CalculationMethod string

const (
	CalculationMethodPercentage  CalculationMethod = "percentage"
	CalculationMethodFixedAmount CalculationMethod = "fixed_amount"
	CalculationMethodPerUnit     CalculationMethod = "per_unit"
)

type SurchargeAppliesTo string

const (
	SurchargeAppliesToOrder    SurchargeAppliesTo = "order"
	SurchargeAppliesToShipment SurchargeAppliesTo = "shipment"
	SurchargeAppliesToInvoice  SurchargeAppliesTo = "invoice"
)

// Surcharge value interpretation depends on CalculationMethod:
// percentage values render as "15 %", fixed amounts as "10 EUR".
type Surcharge struct {
	ID                int64              `json:"id"`
	Name              string             `json:"name"`
	Type              SurchargeType      `json:"type"`
	CalculationMethod CalculationMethod  `json:"calculation_method"`
	Value             float64            `json:"value"`
	Currency          string             `json:"currency"`
	AppliesTo         SurchargeAppliesTo `json:"applies_to"`
	ValidFrom         *string            `json:"valid_from,omitempty"`
	ValidTo           *string            `json:"valid_to,omitempty"`
	Notes             *string            `json:"notes,omitempty"`
}
