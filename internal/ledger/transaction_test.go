package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// -- Validate tests --

func TestValidate_Valid(t *testing.T) {
	amount := decimal.RequireFromString("12.50")

	assert.NoError(t, Income("acc-1", amount, "Salary").Validate())
	assert.NoError(t, Expense("acc-1", amount, "Food").Validate())
	assert.NoError(t, Transfer("acc-1", "acc-2", amount).Validate())
}

func TestValidate_Rejections(t *testing.T) {
	amount := decimal.RequireFromString("10")

	cases := []struct {
		name  string
		input TransactionInput
		want  error
	}{
		{"zero amount", Income("acc-1", decimal.Zero, "Salary"), ErrNonPositiveAmount},
		{"negative amount", Expense("acc-1", decimal.RequireFromString("-1"), "Food"), ErrNonPositiveAmount},
		{"missing account", Expense("", amount, "Food"), ErrMissingAccount},
		{"missing category", Income("acc-1", amount, ""), ErrMissingCategory},
		{"missing source", Transfer("", "acc-2", amount), ErrMissingAccount},
		{"missing destination", Transfer("acc-1", "", amount), ErrMissingAccount},
		{"same accounts", Transfer("acc-1", "acc-1", amount), ErrSameAccount},
		{"unknown type", TransactionInput{Type: "refund", Amount: amount, AccountID: "acc-1"}, ErrUnknownType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.input.Validate()
			assert.ErrorIs(t, err, tc.want)
			assert.True(t, IsValidation(err))
		})
	}
}

// -- Normalize tests --

func TestNormalize_Transfer(t *testing.T) {
	in := TransactionInput{
		Type:          TransactionTypeTransfer,
		Amount:        decimal.RequireFromString("5"),
		AccountID:     "acc-9",
		FromAccountID: "acc-1",
		ToAccountID:   "acc-2",
		Category:      "Food",
	}.Normalize()

	assert.Equal(t, "acc-1", in.AccountID)
	assert.Equal(t, TransferCategory, in.Category)
}

func TestNormalize_ExpenseDropsTransferFields(t *testing.T) {
	in := TransactionInput{
		Type:          TransactionTypeExpense,
		Amount:        decimal.RequireFromString("5"),
		AccountID:     "acc-1",
		FromAccountID: "acc-1",
		ToAccountID:   "acc-2",
		Category:      "Food",
	}.Normalize()

	assert.Empty(t, in.FromAccountID)
	assert.Empty(t, in.ToAccountID)
	assert.Equal(t, "Food", in.Category)
}

// -- Legs tests --

func TestLegs(t *testing.T) {
	amount := decimal.RequireFromString("30")

	income := Income("a", amount, "Salary").Legs()
	assert.Len(t, income, 1)
	assert.Equal(t, "a", income[0].AccountID)
	assert.True(t, income[0].Delta.Equal(amount))

	expense := Expense("a", amount, "Food").Legs()
	assert.Len(t, expense, 1)
	assert.True(t, expense[0].Delta.Equal(amount.Neg()))

	transfer := Transfer("a", "b", amount).Legs()
	assert.Len(t, transfer, 2)
	assert.Equal(t, "a", transfer[0].AccountID)
	assert.True(t, transfer[0].Delta.Equal(amount.Neg()))
	assert.Equal(t, "b", transfer[1].AccountID)
	assert.True(t, transfer[1].Delta.Equal(amount))

	assert.Nil(t, TransactionInput{Type: "bogus", Amount: amount}.Legs())
}

func TestReferences(t *testing.T) {
	tx := Transfer("a", "b", decimal.RequireFromString("1"))

	assert.True(t, tx.References("a"))
	assert.True(t, tx.References("b"))
	assert.False(t, tx.References("c"))
}

func TestSignedBalance(t *testing.T) {
	owed := Account{Type: AccountTypeCredit, Balance: decimal.RequireFromString("-200")}
	cash := Account{Type: "cash", Balance: decimal.RequireFromString("500")}

	assert.True(t, owed.SignedBalance().Equal(decimal.RequireFromString("200")))
	assert.True(t, cash.SignedBalance().Equal(decimal.RequireFromString("500")))
}

func TestAccountValidate(t *testing.T) {
	assert.ErrorIs(t, AccountInput{Name: "  "}.Validate(), ErrEmptyName)
	assert.NoError(t, AccountInput{Name: "Wallet"}.Validate())
	assert.ErrorIs(t, Account{ID: "acc-1"}.Validate(), ErrEmptyName)
}
