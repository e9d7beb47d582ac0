package service

import (
	"context"
	"errors"

	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/operator/actions"
)

// ErrNotFound is returned when an id does not name a stored entity.
var ErrNotFound = errors.New("not found")

// processor runs mutations one at a time; satisfied by operator.OperatorDelegator.
type processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// snapshotter hands out the current ledger; satisfied by store.Store.
type snapshotter interface {
	Snapshot() *ledger.Ledger
}

// Service holds all business logic services.
type Service struct {
	Account     *AccountService
	Transaction *TransactionService
	Settings    *SettingsService
	Summary     *SummaryService
}

// NewService wires every service to the same read snapshots and write queue.
func NewService(reader snapshotter, writer processor) *Service {
	return &Service{
		Account:     NewAccountService(reader, writer),
		Transaction: NewTransactionService(reader, writer),
		Settings:    NewSettingsService(reader, writer),
		Summary:     NewSummaryService(reader),
	}
}
