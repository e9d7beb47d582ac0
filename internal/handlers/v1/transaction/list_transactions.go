package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/logging"
	"github.com/carson-networks/money-tracker/internal/service"
)

// ListTransactionsCursor is the pagination cursor returned with a page.
type ListTransactionsCursor struct {
	Position int `json:"position" doc:"Offset for the next page"`
	Limit    int `json:"limit" doc:"Page size"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	AccountID string `query:"accountID" doc:"Only transactions touching this account on any side"`
	Type      string `query:"type" enum:"income,expense,transfer" doc:"Only transactions of this type"`
	Start     string `query:"start" doc:"Inclusive lower bound, RFC3339 or YYYY-MM-DD (start of day)"`
	End       string `query:"end" doc:"Inclusive upper bound, RFC3339 or YYYY-MM-DD (end of day)"`
	Position  int    `query:"position" minimum:"0" doc:"Offset for pagination"`
	Limit     int    `query:"limit" minimum:"0" maximum:"100" doc:"Page size, default 20"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction           `json:"transactions" doc:"Page of transactions"`
	NextCursor   *ListTransactionsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, filter service.TransactionFilter, cursor *service.TransactionCursor) ([]ledger.Transaction, *service.TransactionCursor)
}

// ListTransactionsHandler handles GET /v1/transaction.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transaction",
		Summary:     "List transactions",
		Description: "Returns a page of transactions in recorded order, optionally filtered by account, type and date range.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput turns query parameters into a filter and cursor.
// Without position or limit the service uses its default page.
func parseListTransactionsInput(input *ListTransactionsInput) (service.TransactionFilter, *service.TransactionCursor, error) {
	filter := service.TransactionFilter{
		AccountID: input.AccountID,
		Type:      ledger.TransactionType(input.Type),
	}

	if input.Start != "" {
		start, err := ParseBound(input.Start, false)
		if err != nil {
			return filter, nil, huma.NewError(http.StatusBadRequest, "invalid start", err)
		}
		filter.Start = &start
	}
	if input.End != "" {
		end, err := ParseBound(input.End, true)
		if err != nil {
			return filter, nil, huma.NewError(http.StatusBadRequest, "invalid end", err)
		}
		filter.End = &end
	}
	if filter.Start != nil && filter.End != nil && filter.End.Before(*filter.Start) {
		return filter, nil, huma.NewError(http.StatusBadRequest, "end must not be before start")
	}

	if input.Position == 0 && input.Limit == 0 {
		return filter, nil, nil
	}
	limit := input.Limit
	if limit == 0 {
		limit = 20
	}
	return filter, &service.TransactionCursor{Position: input.Position, Limit: limit}, nil
}

// ParseBound reads an RFC3339 time or a YYYY-MM-DD day. A bare day is the
// first instant of the day in UTC, or its last instant when end is set.
func ParseBound(value string, end bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	day, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, err
	}
	if end {
		return day.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
	}
	return day, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	filter, cursor, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, nextCursor := h.TransactionService.ListTransactions(ctx, filter, cursor)
	if stopTimer != nil {
		stopTimer()
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: FromLedger(transactions),
	}
	if nextCursor != nil {
		resp.NextCursor = &ListTransactionsCursor{
			Position: nextCursor.Position,
			Limit:    nextCursor.Limit,
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
