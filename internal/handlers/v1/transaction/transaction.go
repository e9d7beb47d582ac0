package transaction

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/money-tracker/internal/ledger"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID            string `json:"id" doc:"Transaction id"`
	Type          string `json:"type" doc:"income, expense or transfer"`
	Amount        string `json:"amount" doc:"Positive decimal amount"`
	AccountID     string `json:"accountId" doc:"Account the transaction is listed under; the source for transfers"`
	FromAccountID string `json:"fromAccountId,omitempty" doc:"Transfer source account"`
	ToAccountID   string `json:"toAccountId,omitempty" doc:"Transfer destination account"`
	Category      string `json:"category" doc:"Category label"`
	Description   string `json:"description,omitempty" doc:"Free text"`
	Date          string `json:"date" doc:"RFC3339 time the transaction was recorded"`
}

// TransactionBody is the request body for creating or editing a transaction.
// Income and expense use accountId and category; transfers use fromAccountId
// and toAccountId and always get the Transfer category.
type TransactionBody struct {
	Type          string `json:"type" enum:"income,expense,transfer" doc:"Transaction type"`
	Amount        string `json:"amount" doc:"Positive decimal amount"`
	AccountID     string `json:"accountId,omitempty" doc:"Account for income and expense"`
	FromAccountID string `json:"fromAccountId,omitempty" doc:"Transfer source account"`
	ToAccountID   string `json:"toAccountId,omitempty" doc:"Transfer destination account"`
	Category      string `json:"category,omitempty" doc:"Category label, ignored for transfers"`
	Description   string `json:"description,omitempty" doc:"Free text"`
}

func parseTransactionBody(body TransactionBody) (ledger.TransactionInput, error) {
	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return ledger.TransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	var in ledger.TransactionInput
	switch ledger.TransactionType(body.Type) {
	case ledger.TransactionTypeIncome:
		in = ledger.Income(body.AccountID, amount, body.Category)
	case ledger.TransactionTypeExpense:
		in = ledger.Expense(body.AccountID, amount, body.Category)
	case ledger.TransactionTypeTransfer:
		in = ledger.Transfer(body.FromAccountID, body.ToAccountID, amount)
	default:
		return ledger.TransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid type "+body.Type)
	}
	return in.WithDescription(body.Description), nil
}

func fromLedger(tx ledger.Transaction) Transaction {
	return Transaction{
		ID:            tx.ID,
		Type:          string(tx.Type),
		Amount:        tx.Amount.String(),
		AccountID:     tx.AccountID,
		FromAccountID: tx.FromAccountID,
		ToAccountID:   tx.ToAccountID,
		Category:      tx.Category,
		Description:   tx.Description,
		Date:          tx.Date.Format(time.RFC3339),
	}
}

// FromLedger converts a slice for other handler packages that embed transactions.
func FromLedger(transactions []ledger.Transaction) []Transaction {
	out := make([]Transaction, len(transactions))
	for i, tx := range transactions {
		out[i] = fromLedger(tx)
	}
	return out
}
