package account

import (
	"time"

	"github.com/carson-networks/money-tracker/internal/ledger"
)

// Account is the API response model for an account.
type Account struct {
	ID        string `json:"id" doc:"Account id"`
	Name      string `json:"name" doc:"Account name"`
	Balance   string `json:"balance" doc:"Decimal balance"`
	Type      string `json:"type" doc:"Account type label; 'credit' balances count negated in totals"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

// AccountBody is the request body for creating or editing an account.
type AccountBody struct {
	Name    string `json:"name" minLength:"1" doc:"Account name"`
	Balance string `json:"balance,omitempty" doc:"Decimal balance (e.g. '0' or '1234.56'), defaults to 0"`
	Type    string `json:"type" doc:"Account type label"`
}

func fromLedger(a ledger.Account) Account {
	return Account{
		ID:        a.ID,
		Name:      a.Name,
		Balance:   a.Balance.String(),
		Type:      a.Type,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

// FromLedger converts a slice for other handler packages that embed accounts.
func FromLedger(accounts []ledger.Account) []Account {
	out := make([]Account, len(accounts))
	for i, a := range accounts {
		out[i] = fromLedger(a)
	}
	return out
}
