package settings

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/money-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/logging"
)

// Settings is the API model for user preferences.
type Settings struct {
	Currency               string   `json:"currency" doc:"ISO 4217 display currency"`
	DateFormat             string   `json:"dateFormat" doc:"Display date format"`
	IncomeCategories       []string `json:"incomeCategories" doc:"Income category labels"`
	ExpenseCategories      []string `json:"expenseCategories" doc:"Expense category labels"`
	AccountTypes           []string `json:"accountTypes" doc:"Account type labels"`
	DefaultIncomeCategory  string   `json:"defaultIncomeCategory,omitempty" doc:"Preselected income category"`
	DefaultExpenseCategory string   `json:"defaultExpenseCategory,omitempty" doc:"Preselected expense category"`
}

// SettingsPatchBody lists the fields to replace. Absent fields are kept; a
// list is replaced wholesale.
type SettingsPatchBody struct {
	Currency               *string  `json:"currency,omitempty"`
	DateFormat             *string  `json:"dateFormat,omitempty"`
	IncomeCategories       []string `json:"incomeCategories,omitempty"`
	ExpenseCategories      []string `json:"expenseCategories,omitempty"`
	AccountTypes           []string `json:"accountTypes,omitempty"`
	DefaultIncomeCategory  *string  `json:"defaultIncomeCategory,omitempty"`
	DefaultExpenseCategory *string  `json:"defaultExpenseCategory,omitempty"`
}

type SettingsOutput struct {
	Body Settings
}

type UpdateSettingsInput struct {
	Body SettingsPatchBody
}

type settingsService interface {
	GetSettings(ctx context.Context) ledger.Settings
	UpdateSettings(ctx context.Context, patch ledger.SettingsPatch) (ledger.Settings, error)
}

// SettingsHandler handles GET and PATCH /v1/settings.
type SettingsHandler struct {
	SettingsService settingsService
}

func NewSettingsHandler(svc settingsService) *SettingsHandler {
	return &SettingsHandler{SettingsService: svc}
}

func (h *SettingsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-settings",
		Method:      http.MethodGet,
		Path:        "/v1/settings",
		Summary:     "Get settings",
		Tags:        []string{"Settings"},
	}, h.get)

	huma.Register(api, huma.Operation{
		OperationID: "update-settings",
		Method:      http.MethodPatch,
		Path:        "/v1/settings",
		Summary:     "Update settings",
		Description: "Shallow-merges the given fields into the settings.",
		Tags:        []string{"Settings"},
	}, h.update)
}

func (h *SettingsHandler) get(ctx context.Context, _ *struct{}) (*SettingsOutput, error) {
	return &SettingsOutput{Body: FromLedger(h.SettingsService.GetSettings(ctx))}, nil
}

func (h *SettingsHandler) update(ctx context.Context, input *UpdateSettingsInput) (*SettingsOutput, error) {
	patch := ledger.SettingsPatch{
		Currency:               input.Body.Currency,
		DateFormat:             input.Body.DateFormat,
		IncomeCategories:       input.Body.IncomeCategories,
		ExpenseCategories:      input.Body.ExpenseCategories,
		AccountTypes:           input.Body.AccountTypes,
		DefaultIncomeCategory:  input.Body.DefaultIncomeCategory,
		DefaultExpenseCategory: input.Body.DefaultExpenseCategory,
	}

	if logData := logging.GetLogData(ctx); logData != nil && patch.Currency != nil {
		logData.AddData("currency", *patch.Currency)
	}

	settings, err := h.SettingsService.UpdateSettings(ctx, patch)
	if err != nil {
		return nil, apierror.From(err, "failed to update settings")
	}
	return &SettingsOutput{Body: FromLedger(settings)}, nil
}

// FromLedger converts settings to the API model, with nil lists as empty.
func FromLedger(s ledger.Settings) Settings {
	return Settings{
		Currency:               s.Currency,
		DateFormat:             s.DateFormat,
		IncomeCategories:       nonNil(s.IncomeCategories),
		ExpenseCategories:      nonNil(s.ExpenseCategories),
		AccountTypes:           nonNil(s.AccountTypes),
		DefaultIncomeCategory:  s.DefaultIncomeCategory,
		DefaultExpenseCategory: s.DefaultExpenseCategory,
	}
}

func nonNil(labels []string) []string {
	if labels == nil {
		return []string{}
	}
	return labels
}
