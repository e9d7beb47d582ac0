package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/money-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/logging"
)

type EditTransactionInput struct {
	ID   string `path:"id" doc:"Transaction id"`
	Body TransactionBody
}

type EditTransactionOutput struct {
	Body Transaction
}

type transactionEditor interface {
	EditTransaction(ctx context.Context, id string, in ledger.TransactionInput) (ledger.Transaction, error)
}

// EditTransactionHandler handles PUT /v1/transaction/{id}.
type EditTransactionHandler struct {
	TransactionService transactionEditor
}

func NewEditTransactionHandler(svc transactionEditor) *EditTransactionHandler {
	return &EditTransactionHandler{TransactionService: svc}
}

func (h *EditTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "edit-transaction",
		Method:      http.MethodPut,
		Path:        "/v1/transaction/{id}",
		Summary:     "Edit a transaction",
		Description: "Replaces the transaction, reverting its old effect and applying the new one. The date is kept.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *EditTransactionHandler) handle(ctx context.Context, input *EditTransactionInput) (*EditTransactionOutput, error) {
	in, err := parseTransactionBody(input.Body)
	if err != nil {
		return nil, err
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionID", input.ID)
	}

	tx, err := h.TransactionService.EditTransaction(ctx, input.ID, in)
	if err != nil {
		return nil, apierror.From(err, "failed to edit transaction")
	}
	return &EditTransactionOutput{Body: fromLedger(tx)}, nil
}
