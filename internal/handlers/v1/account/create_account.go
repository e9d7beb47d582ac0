package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/money-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/logging"
)

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body AccountBody
}

// CreateAccountOutput is the response for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   Account
}

// accountCreator is the interface for creating accounts.
type accountCreator interface {
	CreateAccount(ctx context.Context, in ledger.AccountInput) (ledger.Account, error)
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	AccountService accountCreator
}

func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/account",
		Summary:     "Create an account",
		Description: "Creates a new account with the given name, type and opening balance.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func parseAccountBody(body AccountBody) (ledger.AccountInput, error) {
	balanceStr := body.Balance
	if balanceStr == "" {
		balanceStr = "0"
	}
	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return ledger.AccountInput{}, huma.NewError(http.StatusBadRequest, "invalid balance", err)
	}

	return ledger.AccountInput{
		Name:    body.Name,
		Balance: balance,
		Type:    body.Type,
	}, nil
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	in, err := parseAccountBody(input.Body)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createAccountMs")
	}
	account, err := h.AccountService.CreateAccount(ctx, in)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.From(err, "failed to create account")
	}

	if logData != nil {
		logData.AddData("accountID", account.ID)
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   fromLedger(account),
	}, nil
}
