package service

import (
	"context"
	"fmt"
	"time"

	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/operator/actions"
	"github.com/carson-networks/money-tracker/internal/query"
)

const defaultLimit = 20

// TransactionFilter narrows a listing. Zero fields do not filter.
type TransactionFilter struct {
	AccountID string
	Type      ledger.TransactionType
	Start     *time.Time
	End       *time.Time
}

// TransactionCursor identifies a position in a paginated result set.
type TransactionCursor struct {
	Position int
	Limit    int
}

// TransactionService handles transaction business logic.
type TransactionService struct {
	reader snapshotter
	writer processor
}

func NewTransactionService(reader snapshotter, writer processor) *TransactionService {
	return &TransactionService{reader: reader, writer: writer}
}

// CreateTransaction records in and applies it to the account balances.
func (s *TransactionService) CreateTransaction(ctx context.Context, in ledger.TransactionInput) (ledger.Transaction, error) {
	action := &actions.CreateTransaction{Input: in}
	if err := s.writer.Process(ctx, action); err != nil {
		return ledger.Transaction{}, err
	}
	return action.Result, nil
}

func (s *TransactionService) GetTransaction(_ context.Context, id string) (ledger.Transaction, error) {
	tx, ok := query.NewView(s.reader.Snapshot()).TransactionByID(id)
	if !ok {
		return ledger.Transaction{}, fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}
	return tx, nil
}

// ListTransactions returns a page of transactions in stored order. All filter
// fields must match.
func (s *TransactionService) ListTransactions(_ context.Context, filter TransactionFilter, cursor *TransactionCursor) ([]ledger.Transaction, *TransactionCursor) {
	limit := defaultLimit
	offset := 0
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
	}

	rows := filterTransactions(query.NewView(s.reader.Snapshot()), filter)
	if offset >= len(rows) {
		return []ledger.Transaction{}, nil
	}
	rows = rows[offset:]

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &TransactionCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}
	return rows, nextCursor
}

func filterTransactions(v query.View, filter TransactionFilter) []ledger.Transaction {
	rows := v.Transactions()
	switch {
	case filter.AccountID != "":
		rows = v.TransactionsForAccount(filter.AccountID)
	case filter.Type != "":
		rows = v.TransactionsByType(filter.Type)
	}

	out := make([]ledger.Transaction, 0, len(rows))
	for _, tx := range rows {
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		if filter.Start != nil && tx.Date.Before(*filter.Start) {
			continue
		}
		if filter.End != nil && tx.Date.After(*filter.End) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// EditTransaction replaces the transaction with id, keeping its date.
func (s *TransactionService) EditTransaction(ctx context.Context, id string, in ledger.TransactionInput) (ledger.Transaction, error) {
	action := &actions.EditTransaction{ID: id, Input: in}
	if err := s.writer.Process(ctx, action); err != nil {
		return ledger.Transaction{}, err
	}
	if !action.Found {
		return ledger.Transaction{}, fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}
	return action.Result, nil
}

// DeleteTransaction reverts the transaction's effect and removes it.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id string) error {
	action := &actions.DeleteTransaction{TransactionID: id}
	if err := s.writer.Process(ctx, action); err != nil {
		return err
	}
	if !action.Found {
		return fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}
	return nil
}
