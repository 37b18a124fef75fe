package model

type ContractType string

const (
	ContractTypeTransport   ContractType = "transport"
	ContractTypeWarehousing ContractType = "warehousing"
	ContractTypeMaintenance ContractType = "maintenance"
	ContractTypeFramework   ContractType = "framework"
)

type ContractStatus string

const (
	ContractStatusDraft      ContractStatus = "draft"
	ContractStatusActive     ContractStatus = "active"
	ContractStatusSuspended  ContractStatus = "suspended"
	ContractStatusExpired    ContractStatus = "expired"
	ContractStatusTerminated ContractStatus = "terminated"
)

type Contract struct {
	ID          int64          `json:"id"`
	Reference   string         `json:"reference"`
	Title       string         `json:"title"`
	Type        ContractType   `json:"type"`
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date"`
	Status      ContractStatus `json:"status"`
	PartnerID   int64          `json:"partner_id"`
	PartnerName string         `json:"partner_name"`
	Value       float64        `json:"value"`
	Currency    string         `json:"currency"`
	Notes       *string        `json:"notes,omitempty"`
}
