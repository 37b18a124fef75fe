package model

type BankAccountType string

const (
	BankAccountTypeChecking BankAccountType = "checking"
	BankAccountTypeSavings  BankAccountType = "savings"
	BankAccountTypeEscrow   BankAccountType = "escrow"
)

type BankAccount struct {
	ID             int64           `json:"id"`
	AccountName    string          `json:"account_name"`
	BankName       string          `json:"bank_name"`
	AccountNumber  string          `json:"account_number"`
	IBAN           *string         `json:"iban,omitempty"`
	SwiftBIC       *string         `json:"swift_bic,omitempty"`
	Currency       string          `json:"currency"`
	AccountType    BankAccountType `json:"account_type"`
	CurrentBalance float64         `json:"current_balance"`
	Notes          *string         `json:"notes,omitempty"`
}
