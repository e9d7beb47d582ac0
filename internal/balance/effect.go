// Package balance computes how transactions move account balances.
//
// Every function is pure: the input slice is never modified and a new slice
// is returned. A leg whose account is not in the slice is skipped.
package balance

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/money-tracker/internal/ledger"
)

// ApplyEffect returns accounts with tx's effect applied once.
func ApplyEffect(accounts []ledger.Account, tx ledger.TransactionInput) []ledger.Account {
	return shift(accounts, tx.Legs(), false)
}

// RevertEffect is the exact inverse of ApplyEffect.
func RevertEffect(accounts []ledger.Account, tx ledger.TransactionInput) []ledger.Account {
	return shift(accounts, tx.Legs(), true)
}

// ReplaceEffect reverts oldTx and applies newTx, so an edit behaves like a
// delete followed by a create even when the transaction type changes.
func ReplaceEffect(accounts []ledger.Account, oldTx, newTx ledger.TransactionInput) []ledger.Account {
	return ApplyEffect(RevertEffect(accounts, oldTx), newTx)
}

// Missing returns the ids tx references that are absent from accounts.
func Missing(accounts []ledger.Account, tx ledger.TransactionInput) []string {
	var missing []string
	for _, leg := range tx.Legs() {
		if indexOf(accounts, leg.AccountID) < 0 {
			missing = append(missing, leg.AccountID)
		}
	}
	return missing
}

func shift(accounts []ledger.Account, legs []ledger.Leg, negate bool) []ledger.Account {
	out := make([]ledger.Account, len(accounts))
	copy(out, accounts)

	for _, leg := range legs {
		i := indexOf(out, leg.AccountID)
		if i < 0 {
			continue
		}
		delta := leg.Delta
		if negate {
			delta = delta.Neg()
		}
		out[i].Balance = out[i].Balance.Add(delta)
	}
	return out
}

func indexOf(accounts []ledger.Account, id string) int {
	if id == "" {
		return -1
	}
	for i := range accounts {
		if accounts[i].ID == id {
			return i
		}
	}
	return -1
}

// Net sums the signed effect of every transaction on accountID.
func Net(transactions []ledger.Transaction, accountID string) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		for _, leg := range tx.Legs() {
			if leg.AccountID == accountID {
				total = total.Add(leg.Delta)
			}
		}
	}
	return total
}
