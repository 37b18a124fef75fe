package resources

import (
	"github.com/translogica/tms-console/internal/model"
	"github.com/translogica/tms-console/internal/screen"
	"github.com/translogica/tms-console/internal/view"
)

var BankAccounts = Resource[model.BankAccount]{
	Name:         "bank-accounts",
	Path:         "/bank-accounts",
	Title:        "Comptes bancaires",
	NotFoundMsg:  "Compte bancaire introuvable",
	DeletePrompt: "Supprimer ce compte bancaire ?",
	Filters:      []string{"account_type", "currency"},
	ID:           func(a model.BankAccount) int64 { return a.ID },
	ListHeader:   []string{"ID", "Nom du compte", "Banque", "Type", "Solde"},
	ListRow: func(a model.BankAccount) []string {
		return []string{
			formatID(a.ID),
			a.AccountName,
			a.BankName,
			view.BankAccountTypeLabels.Label(string(a.AccountType)),
			view.Currency(a.CurrentBalance, a.Currency),
		}
	},
	DetailRows: func(a model.BankAccount) []Row {
		return []Row{
			{"Nom du compte", a.AccountName},
			{"Banque", a.BankName},
			{"Numéro de compte", a.AccountNumber},
			{"IBAN", view.Text(a.IBAN, view.PlaceholderNA)},
			{"SWIFT/BIC", view.Text(a.SwiftBIC, view.PlaceholderNA)},
			{"Type de compte", view.BankAccountTypeLabels.Label(string(a.AccountType))},
			{"Solde actuel", view.Currency(a.CurrentBalance, a.Currency)},
			{"Notes", view.Text(a.Notes, view.PlaceholderNone)},
		}
	},
	FormFields: []screen.Field{
		{Name: "account_name", Kind: screen.FieldText, Required: true},
		{Name: "bank_name", Kind: screen.FieldText, Required: true},
		{Name: "account_number", Kind: screen.FieldText, Required: true},
		{Name: "iban", Kind: screen.FieldText},
		{Name: "swift_bic", Kind: screen.FieldText},
		{Name: "currency", Kind: screen.FieldText, Required: true, Default: "EUR"},
		{Name: "account_type", Kind: screen.FieldSelect, Required: true, Default: "checking",
			Options: []string{"checking", "savings", "escrow"}},
		{Name: "current_balance", Kind: screen.FieldNumber, Default: float64(0)},
		{Name: "notes", Kind: screen.FieldText},
	},
}
