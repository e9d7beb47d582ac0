package balance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/money-tracker/internal/ledger"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func makeAccounts() []ledger.Account {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []ledger.Account{
		{ID: "a", Name: "Cash", Balance: d("100"), Type: "cash", CreatedAt: created},
		{ID: "b", Name: "Bank", Balance: d("50"), Type: "bank", CreatedAt: created},
		{ID: "c", Name: "Card", Balance: d("-20"), Type: ledger.AccountTypeCredit, CreatedAt: created},
	}
}

func balances(accounts []ledger.Account) map[string]string {
	out := make(map[string]string, len(accounts))
	for _, a := range accounts {
		out[a.ID] = a.Balance.String()
	}
	return out
}

// -- ApplyEffect tests --

func TestApplyEffect_Income(t *testing.T) {
	out := ApplyEffect(makeAccounts(), ledger.Income("a", d("50"), "Salary"))

	assert.Equal(t, map[string]string{"a": "150", "b": "50", "c": "-20"}, balances(out))
}

func TestApplyEffect_Expense(t *testing.T) {
	out := ApplyEffect(makeAccounts(), ledger.Expense("b", d("12.34"), "Food"))

	assert.Equal(t, map[string]string{"a": "100", "b": "37.66", "c": "-20"}, balances(out))
}

func TestApplyEffect_Transfer(t *testing.T) {
	out := ApplyEffect(makeAccounts(), ledger.Transfer("a", "b", d("30")))

	assert.Equal(t, map[string]string{"a": "70", "b": "80", "c": "-20"}, balances(out))
}

func TestApplyEffect_DoesNotModifyInput(t *testing.T) {
	accounts := makeAccounts()
	_ = ApplyEffect(accounts, ledger.Income("a", d("1"), "Salary"))

	assert.Equal(t, "100", accounts[0].Balance.String())
}

func TestApplyEffect_UnreferencedAccountsUnchanged(t *testing.T) {
	accounts := makeAccounts()
	out := ApplyEffect(accounts, ledger.Expense("a", d("5"), "Food"))

	assert.Equal(t, accounts[1], out[1])
	assert.Equal(t, accounts[2], out[2])
}

func TestApplyEffect_MissingAccountSkipped(t *testing.T) {
	out := ApplyEffect(makeAccounts(), ledger.Income("zzz", d("50"), "Salary"))
	assert.Equal(t, balances(makeAccounts()), balances(out))

	out = ApplyEffect(makeAccounts(), ledger.Transfer("zzz", "b", d("10")))
	assert.Equal(t, map[string]string{"a": "100", "b": "60", "c": "-20"}, balances(out), "present side still applied")
}

// -- RevertEffect tests --

func TestRevertEffect_RoundTrip(t *testing.T) {
	cases := []ledger.TransactionInput{
		ledger.Income("a", d("50"), "Salary"),
		ledger.Expense("c", d("99.99"), "Food"),
		ledger.Transfer("b", "c", d("0.01")),
	}

	for _, tx := range cases {
		t.Run(string(tx.Type), func(t *testing.T) {
			accounts := makeAccounts()
			out := RevertEffect(ApplyEffect(accounts, tx), tx)
			assert.Equal(t, balances(accounts), balances(out))
		})
	}
}

func TestRevertEffect_Transfer(t *testing.T) {
	out := RevertEffect(makeAccounts(), ledger.Transfer("a", "b", d("30")))

	assert.Equal(t, map[string]string{"a": "130", "b": "20", "c": "-20"}, balances(out))
}

// -- ReplaceEffect tests --

func TestReplaceEffect_ExpenseToIncome(t *testing.T) {
	oldTx := ledger.Expense("a", d("50"), "Food")
	accounts := ApplyEffect(makeAccounts(), oldTx)
	assert.Equal(t, "50", accounts[0].Balance.String())

	out := ReplaceEffect(accounts, oldTx, ledger.Income("a", d("30"), "Salary"))

	// 50 left by the expense, +50 reverted, +30 applied
	assert.Equal(t, "130", out[0].Balance.String())
}

func TestReplaceEffect_ExpenseToTransfer(t *testing.T) {
	oldTx := ledger.Expense("a", d("10"), "Food")
	accounts := ApplyEffect(makeAccounts(), oldTx)

	out := ReplaceEffect(accounts, oldTx, ledger.Transfer("b", "a", d("25")))

	assert.Equal(t, map[string]string{"a": "125", "b": "25", "c": "-20"}, balances(out))
}

func TestReplaceEffect_SameTransactionIsIdentity(t *testing.T) {
	tx := ledger.Transfer("a", "c", d("7"))
	accounts := ApplyEffect(makeAccounts(), tx)

	assert.Equal(t, balances(accounts), balances(ReplaceEffect(accounts, tx, tx)))
}

// -- helper tests --

func TestMissing(t *testing.T) {
	assert.Empty(t, Missing(makeAccounts(), ledger.Transfer("a", "b", d("1"))))
	assert.Equal(t, []string{"x"}, Missing(makeAccounts(), ledger.Transfer("x", "b", d("1"))))
}

func TestNet(t *testing.T) {
	txs := []ledger.Transaction{
		{ID: "1", TransactionInput: ledger.Income("a", d("50"), "Salary")},
		{ID: "2", TransactionInput: ledger.Expense("a", d("20"), "Food")},
		{ID: "3", TransactionInput: ledger.Transfer("b", "a", d("5"))},
	}

	assert.Equal(t, "35", Net(txs, "a").String())
	assert.Equal(t, "-5", Net(txs, "b").String())
	assert.Equal(t, "0", Net(txs, "c").String())
}
