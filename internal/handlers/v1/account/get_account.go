package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/money-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/money-tracker/internal/ledger"
)

type AccountPathInput struct {
	ID string `path:"id" doc:"Account id"`
}

type GetAccountOutput struct {
	Body Account
}

type accountGetter interface {
	GetAccount(ctx context.Context, id string) (ledger.Account, error)
}

// GetAccountHandler handles GET /v1/account/{id}.
type GetAccountHandler struct {
	AccountService accountGetter
}

func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/account/{id}",
		Summary:     "Get an account",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *AccountPathInput) (*GetAccountOutput, error) {
	account, err := h.AccountService.GetAccount(ctx, input.ID)
	if err != nil {
		return nil, apierror.From(err, "failed to get account")
	}
	return &GetAccountOutput{Body: fromLedger(account)}, nil
}
