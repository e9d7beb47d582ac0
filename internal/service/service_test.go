package service

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/operator"
	"github.com/carson-networks/money-tracker/internal/storage"
	"github.com/carson-networks/money-tracker/internal/store"
)

var day1 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// newTestService returns a service whose clock advances one hour per call.
func newTestService(t *testing.T) *Service {
	t.Helper()
	logger := logrus.New()
	logger.Out = io.Discard

	tick := 0
	clock := func() time.Time {
		tick++
		return day1.Add(time.Duration(tick) * time.Hour)
	}
	seq := 0
	ids := func(prefix string) string {
		seq++
		return fmt.Sprintf("%s-t%d", prefix, seq)
	}

	s := store.New(storage.NewMemoryStore(), "test", logger, store.WithClock(clock), store.WithIDGenerator(ids))
	d := operator.NewOperatorDelegator(s, 1)
	d.Start()
	t.Cleanup(func() {
		d.Stop()
		_ = s.Close()
	})
	return NewService(s, d)
}

// -- AccountService tests --

func TestAccountService_Lifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Account.CreateAccount(ctx, ledger.AccountInput{Name: "Savings", Balance: decimal.NewFromInt(5), Type: "bank"})
	require.NoError(t, err)

	got, err := svc.Account.GetAccount(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Len(t, svc.Account.ListAccounts(ctx), 4)

	created.Name = "Rainy Day"
	edited, err := svc.Account.EditAccount(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Rainy Day", edited.Name)

	require.NoError(t, svc.Account.DeleteAccount(ctx, created.ID))
	_, err = svc.Account.GetAccount(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccountService_NotFound(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Account.EditAccount(ctx, ledger.Account{ID: "acc-nope", Name: "X"})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Account.DeleteAccount(ctx, "acc-nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccountService_Validation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Account.CreateAccount(context.Background(), ledger.AccountInput{Type: "cash"})

	assert.True(t, ledger.IsValidation(err))
	assert.Len(t, svc.Account.ListAccounts(context.Background()), 3)
}

// -- TransactionService tests --

func seedTransactions(t *testing.T, svc *Service) []ledger.Transaction {
	t.Helper()
	ctx := context.Background()
	inputs := []ledger.TransactionInput{
		ledger.Income("acc-1", decimal.NewFromInt(100), "Salary"),
		ledger.Expense("acc-2", decimal.NewFromInt(30), "Food"),
		ledger.Transfer("acc-1", "acc-2", decimal.NewFromInt(20)),
		ledger.Expense("acc-1", decimal.NewFromInt(5), "Other"),
	}
	out := make([]ledger.Transaction, 0, len(inputs))
	for _, in := range inputs {
		tx, err := svc.Transaction.CreateTransaction(ctx, in)
		require.NoError(t, err)
		out = append(out, tx)
	}
	return out
}

func TestListTransactions_Filters(t *testing.T) {
	svc := newTestService(t)
	txs := seedTransactions(t, svc)
	ctx := context.Background()

	rows, next := svc.Transaction.ListTransactions(ctx, TransactionFilter{AccountID: "acc-2"}, nil)
	assert.Nil(t, next)
	assert.Equal(t, []ledger.Transaction{txs[1], txs[2]}, rows)

	rows, _ = svc.Transaction.ListTransactions(ctx, TransactionFilter{Type: ledger.TransactionTypeExpense}, nil)
	assert.Equal(t, []ledger.Transaction{txs[1], txs[3]}, rows)

	rows, _ = svc.Transaction.ListTransactions(ctx, TransactionFilter{AccountID: "acc-1", Type: ledger.TransactionTypeExpense}, nil)
	assert.Equal(t, []ledger.Transaction{txs[3]}, rows)

	start, end := txs[1].Date, txs[2].Date
	rows, _ = svc.Transaction.ListTransactions(ctx, TransactionFilter{Start: &start, End: &end}, nil)
	assert.Equal(t, []ledger.Transaction{txs[1], txs[2]}, rows)
}

func TestListTransactions_Pagination(t *testing.T) {
	svc := newTestService(t)
	txs := seedTransactions(t, svc)
	ctx := context.Background()

	rows, next := svc.Transaction.ListTransactions(ctx, TransactionFilter{}, &TransactionCursor{Limit: 3})
	assert.Equal(t, txs[:3], rows)
	require.NotNil(t, next)
	assert.Equal(t, TransactionCursor{Position: 3, Limit: 3}, *next)

	rows, next = svc.Transaction.ListTransactions(ctx, TransactionFilter{}, next)
	assert.Equal(t, txs[3:], rows)
	assert.Nil(t, next)

	rows, next = svc.Transaction.ListTransactions(ctx, TransactionFilter{}, &TransactionCursor{Position: 10, Limit: 3})
	assert.Empty(t, rows)
	assert.Nil(t, next)
}

func TestTransactionService_EditDelete(t *testing.T) {
	svc := newTestService(t)
	txs := seedTransactions(t, svc)
	ctx := context.Background()

	edited, err := svc.Transaction.EditTransaction(ctx, txs[1].ID, ledger.Expense("acc-2", decimal.NewFromInt(10), "Food"))
	require.NoError(t, err)
	assert.Equal(t, txs[1].Date, edited.Date)

	account, err := svc.Account.GetAccount(ctx, "acc-2")
	require.NoError(t, err)
	assert.Equal(t, "10", account.Balance.String(), "-10 expense +20 transfer")

	_, err = svc.Transaction.EditTransaction(ctx, "tx-nope", ledger.Expense("acc-2", decimal.NewFromInt(10), "Food"))
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Transaction.DeleteTransaction(ctx, txs[1].ID))
	assert.ErrorIs(t, svc.Transaction.DeleteTransaction(ctx, txs[1].ID), ErrNotFound)

	_, err = svc.Transaction.GetTransaction(ctx, txs[1].ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

// -- SettingsService tests --

func TestSettingsService(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	format := "DD/MM/YYYY"

	settings, err := svc.Settings.UpdateSettings(ctx, ledger.SettingsPatch{DateFormat: &format})
	require.NoError(t, err)
	assert.Equal(t, format, settings.DateFormat)
	assert.Equal(t, settings, svc.Settings.GetSettings(ctx))

	types, err := svc.Settings.AddAccountType(ctx, "Loan")
	require.NoError(t, err)
	assert.Contains(t, types, "Loan")

	types, err = svc.Settings.RenameAccountType(ctx, "Loan", "Mortgage")
	require.NoError(t, err)
	assert.Contains(t, types, "Mortgage")

	types, err = svc.Settings.RemoveAccountType(ctx, "Mortgage")
	require.NoError(t, err)
	assert.NotContains(t, types, "Mortgage")

	cats, err := svc.Settings.AddCategory(ctx, ledger.TransactionTypeIncome, "Gifts")
	require.NoError(t, err)
	assert.Contains(t, cats, "Gifts")

	cats, err = svc.Settings.RemoveCategory(ctx, ledger.TransactionTypeIncome, "Gifts")
	require.NoError(t, err)
	assert.NotContains(t, cats, "Gifts")

	_, err = svc.Settings.RemoveCategory(ctx, ledger.TransactionTypeIncome, "Gifts")
	assert.ErrorIs(t, err, ledger.ErrUnknownLabel)
}

// -- SummaryService tests --

func TestSummaryService(t *testing.T) {
	svc := newTestService(t)
	txs := seedTransactions(t, svc)
	ctx := context.Background()

	// acc-1: +100 -20 -5 = 75; acc-2: -30 +20 = -10; acc-3 credit 0
	total := svc.Summary.TotalBalance(ctx)
	assert.Equal(t, "65", total.Amount.String())
	assert.Equal(t, "USD", total.Currency)
	assert.Equal(t, "$65.00", total.Formatted)

	daily := svc.Summary.DailySummary(ctx, day1)
	assert.Equal(t, "100", daily.IncomeTotal.String())
	assert.Equal(t, "35", daily.ExpenseTotal.String())
	assert.Len(t, daily.Transactions, 4)

	days := svc.Summary.Days(ctx, nil, nil)
	require.Len(t, days, 1)
	assert.Equal(t, txs[3].ID, days[0].Transactions[0].ID)

	assert.Len(t, svc.Summary.Ledger(ctx).Transactions, 4)
}
