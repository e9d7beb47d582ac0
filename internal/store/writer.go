package store

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/money-tracker/internal/balance"
	"github.com/carson-networks/money-tracker/internal/ledger"
)

// Writer is an open mutation scope. Each operation validates its input before
// touching the working copy, so a failed operation changes nothing. Operations
// on an unknown id are no-ops and report false.
type Writer struct {
	store *Store
	state *ledger.Ledger
	done  bool
}

// Ledger is the working copy, including changes not yet committed.
func (w *Writer) Ledger() *ledger.Ledger {
	return w.state
}

func (w *Writer) Commit() error {
	if w.done {
		return ErrWriterClosed
	}
	w.done = true
	w.store.publish(w.state)
	w.store.schedule(w.state)
	w.store.writeMu.Unlock()
	return nil
}

func (w *Writer) Rollback() error {
	if w.done {
		return ErrWriterClosed
	}
	w.done = true
	w.state = nil
	w.store.writeMu.Unlock()
	return nil
}

func (w *Writer) check() error {
	if w.done {
		return ErrWriterClosed
	}
	return nil
}

// -- accounts --

// CreateAccount appends a new account with a generated id and creation time.
func (w *Writer) CreateAccount(in ledger.AccountInput) (ledger.Account, error) {
	if err := w.check(); err != nil {
		return ledger.Account{}, err
	}
	if err := in.Validate(); err != nil {
		return ledger.Account{}, err
	}

	account := ledger.Account{
		ID:        w.store.newID(ledger.AccountIDPrefix),
		Name:      in.Name,
		Balance:   in.Balance,
		Type:      in.Type,
		CreatedAt: w.store.now().UTC(),
	}
	w.state.Accounts = append(w.state.Accounts, account)
	return account, nil
}

// EditAccount replaces the stored account with the same id. The id and
// creation time are kept; the balance is taken as given and not recomputed
// from history.
func (w *Writer) EditAccount(account ledger.Account) (bool, error) {
	if err := w.check(); err != nil {
		return false, err
	}
	i := w.state.AccountIndex(account.ID)
	if i < 0 {
		return false, nil
	}
	if err := account.Validate(); err != nil {
		return false, err
	}

	account.CreatedAt = w.state.Accounts[i].CreatedAt
	w.state.Accounts[i] = account
	return true, nil
}

// DeleteAccount removes the account and every transaction that references
// it. No balances are reverted since the history goes away with the account.
func (w *Writer) DeleteAccount(id string) (bool, error) {
	if err := w.check(); err != nil {
		return false, err
	}
	i := w.state.AccountIndex(id)
	if i < 0 {
		return false, nil
	}

	w.state.Accounts = slices.Delete(w.state.Accounts, i, i+1)
	before := len(w.state.Transactions)
	w.state.Transactions = slices.DeleteFunc(w.state.Transactions, func(t ledger.Transaction) bool {
		return t.References(id)
	})

	w.store.logger.WithFields(logrus.Fields{
		"accountID":           id,
		"removedTransactions": before - len(w.state.Transactions),
	}).Info("Store.DeleteAccount.Cascade")
	return true, nil
}

// -- transactions --

// CreateTransaction records in with a generated id and the current time and
// applies its effect.
func (w *Writer) CreateTransaction(in ledger.TransactionInput) (ledger.Transaction, error) {
	if err := w.check(); err != nil {
		return ledger.Transaction{}, err
	}
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return ledger.Transaction{}, err
	}

	tx := ledger.Transaction{
		ID:               w.store.newID(ledger.TransactionIDPrefix),
		TransactionInput: in,
		Date:             w.store.now().UTC(),
	}
	w.warnMissing(tx.ID, in)
	w.state.Accounts = balance.ApplyEffect(w.state.Accounts, in)
	w.state.Transactions = append(w.state.Transactions, tx)
	return tx, nil
}

// EditTransaction replaces the transaction with the same id, reverting the
// old effect and applying the new one. The id and date are kept.
func (w *Writer) EditTransaction(tx ledger.Transaction) (bool, error) {
	if err := w.check(); err != nil {
		return false, err
	}
	i := w.state.TransactionIndex(tx.ID)
	if i < 0 {
		return false, nil
	}
	in := tx.TransactionInput.Normalize()
	if err := in.Validate(); err != nil {
		return false, err
	}

	old := w.state.Transactions[i]
	w.warnMissing(tx.ID, in)
	w.state.Accounts = balance.ReplaceEffect(w.state.Accounts, old.TransactionInput, in)
	w.state.Transactions[i] = ledger.Transaction{
		ID:               old.ID,
		TransactionInput: in,
		Date:             old.Date,
	}
	return true, nil
}

// DeleteTransaction reverts the transaction's effect and removes it.
func (w *Writer) DeleteTransaction(id string) (bool, error) {
	if err := w.check(); err != nil {
		return false, err
	}
	i := w.state.TransactionIndex(id)
	if i < 0 {
		return false, nil
	}

	old := w.state.Transactions[i]
	w.state.Accounts = balance.RevertEffect(w.state.Accounts, old.TransactionInput)
	w.state.Transactions = slices.Delete(w.state.Transactions, i, i+1)
	return true, nil
}

// Effects on accounts that do not exist are skipped by the balance engine.
func (w *Writer) warnMissing(txID string, in ledger.TransactionInput) {
	if missing := balance.Missing(w.state.Accounts, in); len(missing) > 0 {
		w.store.logger.WithFields(logrus.Fields{
			"transactionID": txID,
			"missing":       missing,
		}).Warn("Store.Transaction.MissingAccount")
	}
}

// -- settings --

// UpdateSettings shallow-merges patch into the settings.
func (w *Writer) UpdateSettings(patch ledger.SettingsPatch) error {
	if err := w.check(); err != nil {
		return err
	}
	w.state.Settings = w.state.Settings.Merge(patch)
	return nil
}

func (w *Writer) AddAccountType(label string) error {
	if err := w.check(); err != nil {
		return err
	}
	types, err := ledger.AddLabel(w.state.Settings.AccountTypes, label)
	if err != nil {
		return err
	}
	w.state.Settings.AccountTypes = types
	return nil
}

// RemoveAccountType refuses to drop a type that accounts still use.
func (w *Writer) RemoveAccountType(label string) error {
	if err := w.check(); err != nil {
		return err
	}
	inUse := 0
	for _, a := range w.state.Accounts {
		if a.Type == label {
			inUse++
		}
	}
	if inUse > 0 {
		return fmt.Errorf("%w: %q used by %d account(s)", ledger.ErrAccountTypeInUse, label, inUse)
	}

	types, err := ledger.RemoveLabel(w.state.Settings.AccountTypes, label)
	if err != nil {
		return err
	}
	w.state.Settings.AccountTypes = types
	return nil
}

// RenameAccountType renames the type and retags every account that used it.
func (w *Writer) RenameAccountType(from, to string) error {
	if err := w.check(); err != nil {
		return err
	}
	types, err := ledger.RenameLabel(w.state.Settings.AccountTypes, from, to)
	if err != nil {
		return err
	}
	w.state.Settings.AccountTypes = types
	for i := range w.state.Accounts {
		if w.state.Accounts[i].Type == from {
			w.state.Accounts[i].Type = types[slices.Index(types, to)]
		}
	}
	return nil
}

func (w *Writer) AddCategory(kind ledger.TransactionType, label string) error {
	if err := w.check(); err != nil {
		return err
	}
	labels, err := w.categories(kind)
	if err != nil {
		return err
	}
	out, err := ledger.AddLabel(*labels, label)
	if err != nil {
		return err
	}
	*labels = out
	return nil
}

// RemoveCategory drops the label from the settings only. Transactions keep
// whatever category they were recorded with.
func (w *Writer) RemoveCategory(kind ledger.TransactionType, label string) error {
	if err := w.check(); err != nil {
		return err
	}
	labels, err := w.categories(kind)
	if err != nil {
		return err
	}
	out, err := ledger.RemoveLabel(*labels, label)
	if err != nil {
		return err
	}
	*labels = out
	return nil
}

func (w *Writer) categories(kind ledger.TransactionType) (*[]string, error) {
	switch kind {
	case ledger.TransactionTypeIncome:
		return &w.state.Settings.IncomeCategories, nil
	case ledger.TransactionTypeExpense:
		return &w.state.Settings.ExpenseCategories, nil
	}
	return nil, fmt.Errorf("%w: %q has no category list", ledger.ErrUnknownType, kind)
}
