package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/money-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/money-tracker/internal/logging"
)

type DeleteAccountOutput struct{}

type accountDeleter interface {
	DeleteAccount(ctx context.Context, id string) error
}

// DeleteAccountHandler handles DELETE /v1/account/{id}.
type DeleteAccountHandler struct {
	AccountService accountDeleter
}

func NewDeleteAccountHandler(svc accountDeleter) *DeleteAccountHandler {
	return &DeleteAccountHandler{AccountService: svc}
}

func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-account",
		Method:        http.MethodDelete,
		Path:          "/v1/account/{id}",
		Summary:       "Delete an account",
		Description:   "Deletes the account and every transaction that references it.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *AccountPathInput) (*DeleteAccountOutput, error) {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("accountID", input.ID)
	}

	if err := h.AccountService.DeleteAccount(ctx, input.ID); err != nil {
		return nil, apierror.From(err, "failed to delete account")
	}
	return &DeleteAccountOutput{}, nil
}
