package settings

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/money-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/money-tracker/internal/ledger"
)

type LabelBody struct {
	Label string `json:"label" minLength:"1" doc:"Label to add"`
}

type RenameBody struct {
	To string `json:"to" minLength:"1" doc:"New label"`
}

type LabelsOutput struct {
	Body struct {
		Labels []string `json:"labels" doc:"Resulting label list"`
	}
}

type AddAccountTypeInput struct {
	Body LabelBody
}

type AccountTypePathInput struct {
	Label string `path:"label" doc:"Account type label"`
}

type RenameAccountTypeInput struct {
	Label string `path:"label" doc:"Account type label"`
	Body  RenameBody
}

type AddCategoryInput struct {
	Kind string `path:"kind" enum:"income,expense" doc:"Category list"`
	Body LabelBody
}

type CategoryPathInput struct {
	Kind  string `path:"kind" enum:"income,expense" doc:"Category list"`
	Label string `path:"label" doc:"Category label"`
}

type labelService interface {
	AddAccountType(ctx context.Context, label string) ([]string, error)
	RemoveAccountType(ctx context.Context, label string) ([]string, error)
	RenameAccountType(ctx context.Context, from, to string) ([]string, error)
	AddCategory(ctx context.Context, kind ledger.TransactionType, label string) ([]string, error)
	RemoveCategory(ctx context.Context, kind ledger.TransactionType, label string) ([]string, error)
}

// LabelsHandler manages the account type and category label lists.
type LabelsHandler struct {
	SettingsService labelService
}

func NewLabelsHandler(svc labelService) *LabelsHandler {
	return &LabelsHandler{SettingsService: svc}
}

func (h *LabelsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "add-account-type",
		Method:      http.MethodPost,
		Path:        "/v1/settings/account-types",
		Summary:     "Add an account type",
		Tags:        []string{"Settings"},
	}, h.addAccountType)

	huma.Register(api, huma.Operation{
		OperationID: "rename-account-type",
		Method:      http.MethodPut,
		Path:        "/v1/settings/account-types/{label}",
		Summary:     "Rename an account type",
		Description: "Renames the label and retags every account that uses it.",
		Tags:        []string{"Settings"},
	}, h.renameAccountType)

	huma.Register(api, huma.Operation{
		OperationID: "remove-account-type",
		Method:      http.MethodDelete,
		Path:        "/v1/settings/account-types/{label}",
		Summary:     "Remove an account type",
		Description: "Fails while any account still uses the type.",
		Tags:        []string{"Settings"},
	}, h.removeAccountType)

	huma.Register(api, huma.Operation{
		OperationID: "add-category",
		Method:      http.MethodPost,
		Path:        "/v1/settings/categories/{kind}",
		Summary:     "Add a category",
		Tags:        []string{"Settings"},
	}, h.addCategory)

	huma.Register(api, huma.Operation{
		OperationID: "remove-category",
		Method:      http.MethodDelete,
		Path:        "/v1/settings/categories/{kind}/{label}",
		Summary:     "Remove a category",
		Description: "Existing transactions keep the removed label.",
		Tags:        []string{"Settings"},
	}, h.removeCategory)
}

func labels(values []string, err error) (*LabelsOutput, error) {
	if err != nil {
		return nil, apierror.From(err, "failed to update labels")
	}
	out := &LabelsOutput{}
	out.Body.Labels = nonNil(values)
	return out, nil
}

func (h *LabelsHandler) addAccountType(ctx context.Context, input *AddAccountTypeInput) (*LabelsOutput, error) {
	return labels(h.SettingsService.AddAccountType(ctx, input.Body.Label))
}

func (h *LabelsHandler) renameAccountType(ctx context.Context, input *RenameAccountTypeInput) (*LabelsOutput, error) {
	return labels(h.SettingsService.RenameAccountType(ctx, input.Label, input.Body.To))
}

func (h *LabelsHandler) removeAccountType(ctx context.Context, input *AccountTypePathInput) (*LabelsOutput, error) {
	return labels(h.SettingsService.RemoveAccountType(ctx, input.Label))
}

func (h *LabelsHandler) addCategory(ctx context.Context, input *AddCategoryInput) (*LabelsOutput, error) {
	return labels(h.SettingsService.AddCategory(ctx, ledger.TransactionType(input.Kind), input.Body.Label))
}

func (h *LabelsHandler) removeCategory(ctx context.Context, input *CategoryPathInput) (*LabelsOutput, error) {
	return labels(h.SettingsService.RemoveCategory(ctx, ledger.TransactionType(input.Kind), input.Label))
}
