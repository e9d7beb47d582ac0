package actions

import (
	"context"

	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/store"
)

type CreateAccount struct {
	Input ledger.AccountInput

	Result ledger.Account
}

func (c *CreateAccount) Perform(_ context.Context, writer *store.Writer) error {
	account, err := writer.CreateAccount(c.Input)
	if err != nil {
		return err
	}

	c.Result = account
	return nil
}

type EditAccount struct {
	Account ledger.Account

	Found  bool
	Result ledger.Account
}

func (e *EditAccount) Perform(_ context.Context, writer *store.Writer) error {
	found, err := writer.EditAccount(e.Account)
	if err != nil {
		return err
	}

	e.Found = found
	if found {
		l := writer.Ledger()
		e.Result = l.Accounts[l.AccountIndex(e.Account.ID)]
	}
	return nil
}

type DeleteAccount struct {
	AccountID string

	Found bool
}

func (d *DeleteAccount) Perform(_ context.Context, writer *store.Writer) error {
	found, err := writer.DeleteAccount(d.AccountID)
	d.Found = found
	return err
}
