package query

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/money-tracker/internal/ledger"
)

// DayLayout is the calendar day key of DayGroup.
const DayLayout = "2006-01-02"

type DayGroup struct {
	Day          string
	Transactions []ledger.Transaction
}

type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

type DailySummary struct {
	Day               string
	IncomeTotal       decimal.Decimal
	ExpenseTotal      decimal.Decimal
	NetChange         decimal.Decimal
	IncomeByCategory  []CategoryTotal
	ExpenseByCategory []CategoryTotal
	Transactions      []ledger.Transaction
}

// GroupByDay groups transactions by the calendar day of their date as
// encoded, newest day first and newest transaction first within a day.
func GroupByDay(transactions []ledger.Transaction) []DayGroup {
	index := map[string]int{}
	var groups []DayGroup
	for _, t := range transactions {
		day := t.Date.Format(DayLayout)
		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i
			groups = append(groups, DayGroup{Day: day})
		}
		groups[i].Transactions = append(groups[i].Transactions, t)
	}

	slices.SortFunc(groups, func(a, b DayGroup) int {
		return cmp.Compare(b.Day, a.Day)
	})
	for _, g := range groups {
		slices.SortStableFunc(g.Transactions, func(a, b ledger.Transaction) int {
			return b.Date.Compare(a.Date)
		})
	}
	return groups
}

// GroupByCategory totals the amounts of transactions of the given type per
// category, ordered by category label.
func GroupByCategory(transactions []ledger.Transaction, kind ledger.TransactionType) []CategoryTotal {
	totals := map[string]decimal.Decimal{}
	for _, t := range transactions {
		if t.Type != kind {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}

	out := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		out = append(out, CategoryTotal{Category: category, Total: total})
	}
	slices.SortFunc(out, func(a, b CategoryTotal) int {
		return cmp.Compare(a.Category, b.Category)
	})
	return out
}

// DailySummary totals income and expense for day's calendar day. Transfers
// are listed but count towards neither total.
func (v View) DailySummary(day time.Time) DailySummary {
	transactions := v.TransactionsOnDay(day)

	summary := DailySummary{
		Day:               day.Format(DayLayout),
		IncomeTotal:       decimal.Zero,
		ExpenseTotal:      decimal.Zero,
		IncomeByCategory:  GroupByCategory(transactions, ledger.TransactionTypeIncome),
		ExpenseByCategory: GroupByCategory(transactions, ledger.TransactionTypeExpense),
		Transactions:      transactions,
	}
	for _, t := range transactions {
		switch t.Type {
		case ledger.TransactionTypeIncome:
			summary.IncomeTotal = summary.IncomeTotal.Add(t.Amount)
		case ledger.TransactionTypeExpense:
			summary.ExpenseTotal = summary.ExpenseTotal.Add(t.Amount)
		}
	}
	summary.NetChange = summary.IncomeTotal.Sub(summary.ExpenseTotal)
	return summary
}
