package ledger

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// The persisted document keeps amounts as JSON numbers so files written by
// earlier versions of the app load unchanged.

type documentAccount struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Balance   json.Number `json:"balance"`
	Type      string      `json:"type"`
	CreatedAt time.Time   `json:"createdAt"`
}

type documentTransaction struct {
	ID            string          `json:"id"`
	Type          TransactionType `json:"type"`
	Amount        json.Number     `json:"amount"`
	AccountID     string          `json:"accountId"`
	FromAccountID string          `json:"fromAccountId,omitempty"`
	ToAccountID   string          `json:"toAccountId,omitempty"`
	Category      string          `json:"category"`
	Description   string          `json:"description,omitempty"`
	Date          time.Time       `json:"date"`
}

type documentSettings struct {
	Currency               string   `json:"currency"`
	DateFormat             string   `json:"dateFormat,omitempty"`
	IncomeCategories       []string `json:"incomeCategories"`
	ExpenseCategories      []string `json:"expenseCategories"`
	AccountTypes           []string `json:"accountTypes"`
	DefaultIncomeCategory  string   `json:"defaultIncomeCategory,omitempty"`
	DefaultExpenseCategory string   `json:"defaultExpenseCategory,omitempty"`
}

type document struct {
	Accounts     []documentAccount     `json:"accounts"`
	Transactions []documentTransaction `json:"transactions"`
	Settings     documentSettings      `json:"settings"`
}

// EncodeDocument serialises l as the durable JSON document.
func EncodeDocument(l *Ledger) ([]byte, error) {
	doc := document{
		Accounts:     make([]documentAccount, len(l.Accounts)),
		Transactions: make([]documentTransaction, len(l.Transactions)),
		Settings: documentSettings{
			Currency:               l.Settings.Currency,
			DateFormat:             l.Settings.DateFormat,
			IncomeCategories:       cloneLabels(l.Settings.IncomeCategories),
			ExpenseCategories:      cloneLabels(l.Settings.ExpenseCategories),
			AccountTypes:           cloneLabels(l.Settings.AccountTypes),
			DefaultIncomeCategory:  l.Settings.DefaultIncomeCategory,
			DefaultExpenseCategory: l.Settings.DefaultExpenseCategory,
		},
	}

	for i, a := range l.Accounts {
		doc.Accounts[i] = documentAccount{
			ID:        a.ID,
			Name:      a.Name,
			Balance:   json.Number(a.Balance.String()),
			Type:      a.Type,
			CreatedAt: a.CreatedAt,
		}
	}

	for i, t := range l.Transactions {
		doc.Transactions[i] = documentTransaction{
			ID:            t.ID,
			Type:          t.Type,
			Amount:        json.Number(t.Amount.String()),
			AccountID:     t.AccountID,
			FromAccountID: t.FromAccountID,
			ToAccountID:   t.ToAccountID,
			Category:      t.Category,
			Description:   t.Description,
			Date:          t.Date,
		}
	}

	return json.Marshal(doc)
}

// DecodeDocument parses a document written by EncodeDocument.
func DecodeDocument(data []byte) (*Ledger, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	l := &Ledger{
		Accounts:     make([]Account, len(doc.Accounts)),
		Transactions: make([]Transaction, len(doc.Transactions)),
		Settings: Settings{
			Currency:               doc.Settings.Currency,
			DateFormat:             doc.Settings.DateFormat,
			IncomeCategories:       cloneLabels(doc.Settings.IncomeCategories),
			ExpenseCategories:      cloneLabels(doc.Settings.ExpenseCategories),
			AccountTypes:           cloneLabels(doc.Settings.AccountTypes),
			DefaultIncomeCategory:  doc.Settings.DefaultIncomeCategory,
			DefaultExpenseCategory: doc.Settings.DefaultExpenseCategory,
		},
	}

	for i, a := range doc.Accounts {
		balance, err := decodeAmount(a.Balance)
		if err != nil {
			return nil, fmt.Errorf("account %s balance: %w", a.ID, err)
		}
		l.Accounts[i] = Account{
			ID:        a.ID,
			Name:      a.Name,
			Balance:   balance,
			Type:      a.Type,
			CreatedAt: a.CreatedAt,
		}
	}

	for i, t := range doc.Transactions {
		amount, err := decodeAmount(t.Amount)
		if err != nil {
			return nil, fmt.Errorf("transaction %s amount: %w", t.ID, err)
		}
		l.Transactions[i] = Transaction{
			ID: t.ID,
			TransactionInput: TransactionInput{
				Type:          t.Type,
				Amount:        amount,
				AccountID:     t.AccountID,
				FromAccountID: t.FromAccountID,
				ToAccountID:   t.ToAccountID,
				Category:      t.Category,
				Description:   t.Description,
			},
			Date: t.Date,
		}
	}

	return l, nil
}

func decodeAmount(n json.Number) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(n.String())
}
