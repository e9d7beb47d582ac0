package ledger

import (
	"fmt"
	"slices"
	"strings"
)

// Settings are user preferences. None of them take part in balance arithmetic.
type Settings struct {
	Currency               string
	DateFormat             string
	IncomeCategories       []string
	ExpenseCategories      []string
	AccountTypes           []string
	DefaultIncomeCategory  string
	DefaultExpenseCategory string
}

// SettingsPatch is a partial update of Settings. Nil fields are left unchanged;
// a non-nil empty slice clears the list.
type SettingsPatch struct {
	Currency               *string
	DateFormat             *string
	IncomeCategories       []string
	ExpenseCategories      []string
	AccountTypes           []string
	DefaultIncomeCategory  *string
	DefaultExpenseCategory *string
}

// Merge returns s with every field present in p replaced. Lists are replaced
// wholesale, not merged element-wise.
func (s Settings) Merge(p SettingsPatch) Settings {
	out := s.Clone()
	if p.Currency != nil {
		out.Currency = *p.Currency
	}
	if p.DateFormat != nil {
		out.DateFormat = *p.DateFormat
	}
	if p.IncomeCategories != nil {
		out.IncomeCategories = slices.Clone(p.IncomeCategories)
	}
	if p.ExpenseCategories != nil {
		out.ExpenseCategories = slices.Clone(p.ExpenseCategories)
	}
	if p.AccountTypes != nil {
		out.AccountTypes = slices.Clone(p.AccountTypes)
	}
	if p.DefaultIncomeCategory != nil {
		out.DefaultIncomeCategory = *p.DefaultIncomeCategory
	}
	if p.DefaultExpenseCategory != nil {
		out.DefaultExpenseCategory = *p.DefaultExpenseCategory
	}
	return out
}

// Clone returns a copy that shares no slices with s.
func (s Settings) Clone() Settings {
	s.IncomeCategories = cloneLabels(s.IncomeCategories)
	s.ExpenseCategories = cloneLabels(s.ExpenseCategories)
	s.AccountTypes = cloneLabels(s.AccountTypes)
	return s
}

// Categories returns the category list used by transactions of type t.
func (s Settings) Categories(t TransactionType) []string {
	switch t {
	case TransactionTypeIncome:
		return s.IncomeCategories
	case TransactionTypeExpense:
		return s.ExpenseCategories
	case TransactionTypeTransfer:
		return []string{TransferCategory}
	}
	return nil
}

// AddLabel appends label to labels, rejecting blanks and duplicates.
func AddLabel(labels []string, label string) ([]string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrEmptyLabel
	}
	if slices.Contains(labels, label) {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
	}
	return append(slices.Clone(labels), label), nil
}

// RemoveLabel returns labels without label.
func RemoveLabel(labels []string, label string) ([]string, error) {
	i := slices.Index(labels, label)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	return slices.Delete(slices.Clone(labels), i, i+1), nil
}

// RenameLabel replaces from with to, keeping its position.
func RenameLabel(labels []string, from, to string) ([]string, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return nil, ErrEmptyLabel
	}
	i := slices.Index(labels, from)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, from)
	}
	if from != to && slices.Contains(labels, to) {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, to)
	}
	out := slices.Clone(labels)
	out[i] = to
	return out, nil
}

func cloneLabels(labels []string) []string {
	if labels == nil {
		return []string{}
	}
	return slices.Clone(labels)
}
