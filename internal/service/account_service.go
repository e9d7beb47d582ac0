package service

import (
	"context"
	"fmt"

	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/operator/actions"
	"github.com/carson-networks/money-tracker/internal/query"
)

// AccountService handles account business logic.
type AccountService struct {
	reader snapshotter
	writer processor
}

func NewAccountService(reader snapshotter, writer processor) *AccountService {
	return &AccountService{reader: reader, writer: writer}
}

// CreateAccount stores a new account and returns it with its generated id.
func (s *AccountService) CreateAccount(ctx context.Context, in ledger.AccountInput) (ledger.Account, error) {
	action := &actions.CreateAccount{Input: in}
	if err := s.writer.Process(ctx, action); err != nil {
		return ledger.Account{}, err
	}
	return action.Result, nil
}

func (s *AccountService) GetAccount(_ context.Context, id string) (ledger.Account, error) {
	account, ok := query.NewView(s.reader.Snapshot()).AccountByID(id)
	if !ok {
		return ledger.Account{}, fmt.Errorf("account %s: %w", id, ErrNotFound)
	}
	return account, nil
}

func (s *AccountService) ListAccounts(_ context.Context) []ledger.Account {
	return query.NewView(s.reader.Snapshot()).Accounts()
}

// EditAccount overwrites name, type and balance of the account with account.ID.
func (s *AccountService) EditAccount(ctx context.Context, account ledger.Account) (ledger.Account, error) {
	action := &actions.EditAccount{Account: account}
	if err := s.writer.Process(ctx, action); err != nil {
		return ledger.Account{}, err
	}
	if !action.Found {
		return ledger.Account{}, fmt.Errorf("account %s: %w", account.ID, ErrNotFound)
	}
	return action.Result, nil
}

// DeleteAccount removes the account together with its transactions.
func (s *AccountService) DeleteAccount(ctx context.Context, id string) error {
	action := &actions.DeleteAccount{AccountID: id}
	if err := s.writer.Process(ctx, action); err != nil {
		return err
	}
	if !action.Found {
		return fmt.Errorf("account %s: %w", id, ErrNotFound)
	}
	return nil
}
