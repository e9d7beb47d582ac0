package actions

import (
	"context"
	"fmt"

	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/store"
)

type UpdateSettings struct {
	Patch ledger.SettingsPatch

	Result ledger.Settings
}

func (u *UpdateSettings) Perform(_ context.Context, writer *store.Writer) error {
	if err := writer.UpdateSettings(u.Patch); err != nil {
		return err
	}

	u.Result = writer.Ledger().Settings
	return nil
}

type LabelOp string

const (
	LabelAdd    LabelOp = "add"
	LabelRemove LabelOp = "remove"
	LabelRename LabelOp = "rename"
)

// ManageAccountTypes adds, removes or renames one account type label. To
// is only read by LabelRename.
type ManageAccountTypes struct {
	Op    LabelOp
	Label string
	To    string

	Result []string
}

func (m *ManageAccountTypes) Perform(_ context.Context, writer *store.Writer) error {
	var err error
	switch m.Op {
	case LabelAdd:
		err = writer.AddAccountType(m.Label)
	case LabelRemove:
		err = writer.RemoveAccountType(m.Label)
	case LabelRename:
		err = writer.RenameAccountType(m.Label, m.To)
	default:
		err = fmt.Errorf("unsupported account type operation %q", m.Op)
	}
	if err != nil {
		return err
	}

	m.Result = writer.Ledger().Settings.AccountTypes
	return nil
}

// ManageCategories adds or removes a category label for income or expense.
type ManageCategories struct {
	Op    LabelOp
	Kind  ledger.TransactionType
	Label string

	Result []string
}

func (m *ManageCategories) Perform(_ context.Context, writer *store.Writer) error {
	var err error
	switch m.Op {
	case LabelAdd:
		err = writer.AddCategory(m.Kind, m.Label)
	case LabelRemove:
		err = writer.RemoveCategory(m.Kind, m.Label)
	default:
		err = fmt.Errorf("unsupported category operation %q", m.Op)
	}
	if err != nil {
		return err
	}

	m.Result = writer.Ledger().Settings.Categories(m.Kind)
	return nil
}
