package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/query"
)

// Total is the net worth across all accounts.
type Total struct {
	Amount    decimal.Decimal
	Currency  string
	Formatted string
}

// SummaryService answers derived read-only questions about the ledger.
type SummaryService struct {
	reader snapshotter
}

func NewSummaryService(reader snapshotter) *SummaryService {
	return &SummaryService{reader: reader}
}

// Ledger returns the whole current snapshot.
func (s *SummaryService) Ledger(_ context.Context) *ledger.Ledger {
	return s.reader.Snapshot()
}

func (s *SummaryService) TotalBalance(_ context.Context) Total {
	v := query.NewView(s.reader.Snapshot())
	currency := v.Settings().Currency
	amount := v.TotalBalance()
	return Total{
		Amount:    amount,
		Currency:  currency,
		Formatted: ledger.FormatAmount(amount, currency),
	}
}

func (s *SummaryService) DailySummary(_ context.Context, day time.Time) query.DailySummary {
	return query.NewView(s.reader.Snapshot()).DailySummary(day)
}

// Days groups transactions by calendar day, newest first. A nil bound is open.
func (s *SummaryService) Days(_ context.Context, start, end *time.Time) []query.DayGroup {
	v := query.NewView(s.reader.Snapshot())
	rows := filterTransactions(v, TransactionFilter{Start: start, End: end})
	return query.GroupByDay(rows)
}
