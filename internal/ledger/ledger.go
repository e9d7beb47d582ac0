package ledger

import (
	"slices"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const (
	AccountIDPrefix     = "acc"
	TransactionIDPrefix = "tx"
)

// Ledger is the aggregate of all accounts, transactions and settings.
type Ledger struct {
	Accounts     []Account
	Transactions []Transaction
	Settings     Settings
}

// Clone returns a deep copy of l.
func (l *Ledger) Clone() *Ledger {
	return &Ledger{
		Accounts:     append(make([]Account, 0, len(l.Accounts)), l.Accounts...),
		Transactions: append(make([]Transaction, 0, len(l.Transactions)), l.Transactions...),
		Settings:     l.Settings.Clone(),
	}
}

// AccountIndex returns the position of the account with id, or -1.
func (l *Ledger) AccountIndex(id string) int {
	return slices.IndexFunc(l.Accounts, func(a Account) bool { return a.ID == id })
}

// TransactionIndex returns the position of the transaction with id, or -1.
func (l *Ledger) TransactionIndex(id string) int {
	return slices.IndexFunc(l.Transactions, func(t Transaction) bool { return t.ID == id })
}

// NewID returns a fresh identifier such as "acc-6f1c...".
func NewID(prefix string) string {
	return prefix + "-" + uuid.Must(uuid.NewV4()).String()
}

// Default is the ledger a new installation starts from.
func Default(now time.Time) *Ledger {
	return &Ledger{
		Accounts: []Account{
			{ID: "acc-1", Name: "Cash", Balance: decimal.Zero, Type: "cash", CreatedAt: now},
			{ID: "acc-2", Name: "Bank Account", Balance: decimal.Zero, Type: "bank", CreatedAt: now},
			{ID: "acc-3", Name: "Credit Card", Balance: decimal.Zero, Type: AccountTypeCredit, CreatedAt: now},
		},
		Transactions: []Transaction{},
		Settings: Settings{
			Currency:               "USD",
			DateFormat:             "MM/DD/YYYY",
			IncomeCategories:       []string{"Salary", "Other Income"},
			ExpenseCategories:      []string{"Food", "Transportation", "Housing", "Utilities", "Entertainment", "Other"},
			AccountTypes:           []string{"Cash", "Bank", "Credit Card", "Investment", "Digital Wallet"},
			DefaultIncomeCategory:  "Salary",
			DefaultExpenseCategory: "Food",
		},
	}
}
