package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountTypeCredit is the account type whose balance is owed money rather than an asset.
const AccountTypeCredit = "credit"

// Account is a money container with a running balance.
type Account struct {
	ID        string
	Name      string
	Balance   decimal.Decimal
	Type      string
	CreatedAt time.Time
}

// AccountInput is the caller supplied part of an account. ID and CreatedAt are
// assigned by the store.
type AccountInput struct {
	Name    string
	Balance decimal.Decimal
	Type    string
}

// IsCredit reports whether the account holds debt.
func (a Account) IsCredit() bool {
	return a.Type == AccountTypeCredit
}

// SignedBalance is the account's contribution to the total balance.
func (a Account) SignedBalance() decimal.Decimal {
	if a.IsCredit() {
		return a.Balance.Neg()
	}
	return a.Balance
}

// Validate checks the fields a caller controls.
func (in AccountInput) Validate() error {
	return validateName(in.Name)
}

// Validate checks an account before it replaces a stored one.
func (a Account) Validate() error {
	return validateName(a.Name)
}
