// Package query derives read-only views from a ledger snapshot. Nothing is
// cached; every call walks the snapshot it was built from.
package query

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/money-tracker/internal/ledger"
)

type View struct {
	l *ledger.Ledger
}

func NewView(l *ledger.Ledger) View {
	return View{l: l}
}

func (v View) Accounts() []ledger.Account {
	return v.l.Accounts
}

func (v View) Transactions() []ledger.Transaction {
	return v.l.Transactions
}

func (v View) Settings() ledger.Settings {
	return v.l.Settings
}

// TotalBalance sums all account balances, counting credit accounts negated.
func (v View) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, a := range v.l.Accounts {
		total = total.Add(a.SignedBalance())
	}
	return total
}

func (v View) AccountByID(id string) (ledger.Account, bool) {
	i := v.l.AccountIndex(id)
	if i < 0 {
		return ledger.Account{}, false
	}
	return v.l.Accounts[i], true
}

func (v View) TransactionByID(id string) (ledger.Transaction, bool) {
	i := v.l.TransactionIndex(id)
	if i < 0 {
		return ledger.Transaction{}, false
	}
	return v.l.Transactions[i], true
}

// TransactionsInRange returns transactions dated within [start, end].
func (v View) TransactionsInRange(start, end time.Time) []ledger.Transaction {
	return v.filter(func(t ledger.Transaction) bool {
		return !t.Date.Before(start) && !t.Date.After(end)
	})
}

// TransactionsForAccount returns transactions touching id on any side.
func (v View) TransactionsForAccount(id string) []ledger.Transaction {
	return v.filter(func(t ledger.Transaction) bool {
		return t.References(id)
	})
}

func (v View) TransactionsByType(kind ledger.TransactionType) []ledger.Transaction {
	return v.filter(func(t ledger.Transaction) bool {
		return t.Type == kind
	})
}

// TransactionsOnDay returns transactions whose calendar day, read in the
// offset the date was stored with, equals day's. GroupByDay keys the same way.
func (v View) TransactionsOnDay(day time.Time) []ledger.Transaction {
	key := day.Format(DayLayout)
	return v.filter(func(t ledger.Transaction) bool {
		return t.Date.Format(DayLayout) == key
	})
}

func (v View) filter(keep func(ledger.Transaction) bool) []ledger.Transaction {
	out := []ledger.Transaction{}
	for _, t := range v.l.Transactions {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
