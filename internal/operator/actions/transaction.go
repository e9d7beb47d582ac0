package actions

import (
	"context"

	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/store"
)

type CreateTransaction struct {
	Input ledger.TransactionInput

	Result ledger.Transaction
}

func (c *CreateTransaction) Perform(_ context.Context, writer *store.Writer) error {
	tx, err := writer.CreateTransaction(c.Input)
	if err != nil {
		return err
	}

	c.Result = tx
	return nil
}

// EditTransaction replaces the transaction with ID. Date and ID are kept by
// the store.
type EditTransaction struct {
	ID    string
	Input ledger.TransactionInput

	Found  bool
	Result ledger.Transaction
}

func (e *EditTransaction) Perform(_ context.Context, writer *store.Writer) error {
	found, err := writer.EditTransaction(ledger.Transaction{ID: e.ID, TransactionInput: e.Input})
	if err != nil {
		return err
	}

	e.Found = found
	if found {
		l := writer.Ledger()
		e.Result = l.Transactions[l.TransactionIndex(e.ID)]
	}
	return nil
}

type DeleteTransaction struct {
	TransactionID string

	Found bool
}

func (d *DeleteTransaction) Perform(_ context.Context, writer *store.Writer) error {
	found, err := writer.DeleteTransaction(d.TransactionID)
	d.Found = found
	return err
}
