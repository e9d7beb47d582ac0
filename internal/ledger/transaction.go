package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the kind of a transaction. The direction of money is
// implied by the type, never by the sign of the amount.
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
)

// TransferCategory is the category every transfer carries.
const TransferCategory = "Transfer"

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	}
	return false
}

// TransactionInput holds everything about a transaction except the fields the
// store assigns. Build it with Income, Expense or Transfer.
type TransactionInput struct {
	Type          TransactionType
	Amount        decimal.Decimal
	AccountID     string
	FromAccountID string
	ToAccountID   string
	Category      string
	Description   string
}

// Transaction is a recorded movement of money.
type Transaction struct {
	ID string
	TransactionInput
	Date time.Time
}

// Income credits amount to accountID.
func Income(accountID string, amount decimal.Decimal, category string) TransactionInput {
	return TransactionInput{
		Type:      TransactionTypeIncome,
		Amount:    amount,
		AccountID: accountID,
		Category:  category,
	}
}

// Expense debits amount from accountID.
func Expense(accountID string, amount decimal.Decimal, category string) TransactionInput {
	return TransactionInput{
		Type:      TransactionTypeExpense,
		Amount:    amount,
		AccountID: accountID,
		Category:  category,
	}
}

// Transfer moves amount from fromID to toID.
func Transfer(fromID, toID string, amount decimal.Decimal) TransactionInput {
	return TransactionInput{
		Type:          TransactionTypeTransfer,
		Amount:        amount,
		AccountID:     fromID,
		FromAccountID: fromID,
		ToAccountID:   toID,
		Category:      TransferCategory,
	}
}

// WithDescription returns a copy of in with the description set.
func (in TransactionInput) WithDescription(description string) TransactionInput {
	in.Description = description
	return in
}

// Normalize drops the fields that do not belong to the transaction's type.
// Transfers are listed under their source account and always use TransferCategory.
func (in TransactionInput) Normalize() TransactionInput {
	switch in.Type {
	case TransactionTypeTransfer:
		in.AccountID = in.FromAccountID
		in.Category = TransferCategory
	case TransactionTypeIncome, TransactionTypeExpense:
		in.FromAccountID = ""
		in.ToAccountID = ""
	}
	return in
}

// Validate reports the first problem that makes in impossible to apply.
func (in TransactionInput) Validate() error {
	if !in.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownType, in.Type)
	}
	if !in.Amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrNonPositiveAmount, in.Amount)
	}

	if in.Type == TransactionTypeTransfer {
		if in.FromAccountID == "" {
			return fmt.Errorf("%w: fromAccountId", ErrMissingAccount)
		}
		if in.ToAccountID == "" {
			return fmt.Errorf("%w: toAccountId", ErrMissingAccount)
		}
		if in.FromAccountID == in.ToAccountID {
			return fmt.Errorf("%w: %s", ErrSameAccount, in.FromAccountID)
		}
		return nil
	}

	if in.AccountID == "" {
		return fmt.Errorf("%w: accountId", ErrMissingAccount)
	}
	if in.Category == "" {
		return ErrMissingCategory
	}
	return nil
}

// Leg is one account side of a transaction's effect.
type Leg struct {
	AccountID string
	Delta     decimal.Decimal
}

// Legs returns the balance deltas the transaction causes when applied.
func (in TransactionInput) Legs() []Leg {
	switch in.Type {
	case TransactionTypeIncome:
		return []Leg{{AccountID: in.AccountID, Delta: in.Amount}}
	case TransactionTypeExpense:
		return []Leg{{AccountID: in.AccountID, Delta: in.Amount.Neg()}}
	case TransactionTypeTransfer:
		return []Leg{
			{AccountID: in.FromAccountID, Delta: in.Amount.Neg()},
			{AccountID: in.ToAccountID, Delta: in.Amount},
		}
	}
	return nil
}

// References reports whether the transaction touches accountID on any side.
func (in TransactionInput) References(accountID string) bool {
	return in.AccountID == accountID ||
		in.FromAccountID == accountID ||
		in.ToAccountID == accountID
}
