package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/money-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/logging"
)

type EditAccountInput struct {
	ID   string `path:"id" doc:"Account id"`
	Body AccountBody
}

type EditAccountOutput struct {
	Body Account
}

type accountEditor interface {
	EditAccount(ctx context.Context, account ledger.Account) (ledger.Account, error)
}

// EditAccountHandler handles PUT /v1/account/{id}.
type EditAccountHandler struct {
	AccountService accountEditor
}

func NewEditAccountHandler(svc accountEditor) *EditAccountHandler {
	return &EditAccountHandler{AccountService: svc}
}

func (h *EditAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "edit-account",
		Method:      http.MethodPut,
		Path:        "/v1/account/{id}",
		Summary:     "Edit an account",
		Description: "Replaces name, type and balance. The balance is stored as given and not recomputed from transactions.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *EditAccountHandler) handle(ctx context.Context, input *EditAccountInput) (*EditAccountOutput, error) {
	in, err := parseAccountBody(input.Body)
	if err != nil {
		return nil, err
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("accountID", input.ID)
	}

	account, err := h.AccountService.EditAccount(ctx, ledger.Account{
		ID:      input.ID,
		Name:    in.Name,
		Balance: in.Balance,
		Type:    in.Type,
	})
	if err != nil {
		return nil, apierror.From(err, "failed to edit account")
	}
	return &EditAccountOutput{Body: fromLedger(account)}, nil
}
