package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/money-tracker/internal/ledger"
)

type mockSettingsService struct {
	mock.Mock
}

func (m *mockSettingsService) GetSettings(ctx context.Context) ledger.Settings {
	return m.Called(ctx).Get(0).(ledger.Settings)
}

func (m *mockSettingsService) UpdateSettings(ctx context.Context, patch ledger.SettingsPatch) (ledger.Settings, error) {
	args := m.Called(ctx, patch)
	return args.Get(0).(ledger.Settings), args.Error(1)
}

func (m *mockSettingsService) labels(args mock.Arguments) ([]string, error) {
	out, _ := args.Get(0).([]string)
	return out, args.Error(1)
}

func (m *mockSettingsService) AddAccountType(ctx context.Context, label string) ([]string, error) {
	return m.labels(m.Called(ctx, label))
}

func (m *mockSettingsService) RemoveAccountType(ctx context.Context, label string) ([]string, error) {
	return m.labels(m.Called(ctx, label))
}

func (m *mockSettingsService) RenameAccountType(ctx context.Context, from, to string) ([]string, error) {
	return m.labels(m.Called(ctx, from, to))
}

func (m *mockSettingsService) AddCategory(ctx context.Context, kind ledger.TransactionType, label string) ([]string, error) {
	return m.labels(m.Called(ctx, kind, label))
}

func (m *mockSettingsService) RemoveCategory(ctx context.Context, kind ledger.TransactionType, label string) ([]string, error) {
	return m.labels(m.Called(ctx, kind, label))
}

func newTestAPI(t *testing.T, svc *mockSettingsService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewSettingsHandler(svc).Register(api)
	NewLabelsHandler(svc).Register(api)
	return api
}

func decodeLabels(t *testing.T, raw []byte) []string {
	t.Helper()
	var body struct {
		Labels []string `json:"labels"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body.Labels
}

// -- settings tests --

func TestHTTP_GetSettings(t *testing.T) {
	svc := new(mockSettingsService)
	svc.On("GetSettings", mock.Anything).Return(ledger.Settings{Currency: "USD", DateFormat: "MM/DD/YYYY"})

	resp := newTestAPI(t, svc).Get("/v1/settings")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Settings
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "USD", body.Currency)
	assert.Equal(t, []string{}, body.AccountTypes)
}

func TestHTTP_UpdateSettings_OnlyGivenFields(t *testing.T) {
	svc := new(mockSettingsService)
	svc.On("UpdateSettings", mock.Anything, mock.MatchedBy(func(p ledger.SettingsPatch) bool {
		return p.Currency != nil && *p.Currency == "EUR" &&
			p.DateFormat == nil &&
			p.IncomeCategories == nil &&
			p.ExpenseCategories != nil && len(p.ExpenseCategories) == 0
	})).Return(ledger.Settings{Currency: "EUR"}, nil)

	resp := newTestAPI(t, svc).Patch("/v1/settings", map[string]any{
		"currency":          "EUR",
		"expenseCategories": []string{},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	svc.AssertExpectations(t)
}

// -- label tests --

func TestHTTP_AccountTypes(t *testing.T) {
	svc := new(mockSettingsService)
	svc.On("AddAccountType", mock.Anything, "Loan").Return([]string{"Cash", "Loan"}, nil)
	svc.On("RenameAccountType", mock.Anything, "Loan", "Mortgage").Return([]string{"Cash", "Mortgage"}, nil)
	svc.On("RemoveAccountType", mock.Anything, "Cash").
		Return(nil, fmt.Errorf("%w: %q used by 1 account(s)", ledger.ErrAccountTypeInUse, "Cash"))
	api := newTestAPI(t, svc)

	resp := api.Post("/v1/settings/account-types", LabelBody{Label: "Loan"})
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []string{"Cash", "Loan"}, decodeLabels(t, resp.Body.Bytes()))

	resp = api.Put("/v1/settings/account-types/Loan", RenameBody{To: "Mortgage"})
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []string{"Cash", "Mortgage"}, decodeLabels(t, resp.Body.Bytes()))

	resp = api.Delete("/v1/settings/account-types/Cash")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_Categories(t *testing.T) {
	svc := new(mockSettingsService)
	svc.On("AddCategory", mock.Anything, ledger.TransactionTypeExpense, "Travel").Return([]string{"Food", "Travel"}, nil)
	svc.On("RemoveCategory", mock.Anything, ledger.TransactionTypeIncome, "Gifts").
		Return(nil, fmt.Errorf("%w: %q", ledger.ErrUnknownLabel, "Gifts"))
	api := newTestAPI(t, svc)

	resp := api.Post("/v1/settings/categories/expense", LabelBody{Label: "Travel"})
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []string{"Food", "Travel"}, decodeLabels(t, resp.Body.Bytes()))

	resp = api.Delete("/v1/settings/categories/income/Gifts")
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = api.Post("/v1/settings/categories/transfer", LabelBody{Label: "Moves"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertExpectations(t)
}
