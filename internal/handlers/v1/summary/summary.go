package summary

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/money-tracker/internal/handlers/v1/account"
	"github.com/carson-networks/money-tracker/internal/handlers/v1/settings"
	"github.com/carson-networks/money-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/logging"
	"github.com/carson-networks/money-tracker/internal/query"
	"github.com/carson-networks/money-tracker/internal/service"
)

type TotalBody struct {
	Total     string `json:"total" doc:"Net worth; credit account balances count negated"`
	Currency  string `json:"currency" doc:"Display currency"`
	Formatted string `json:"formatted" doc:"Total formatted for the display currency"`
}

type CategoryTotal struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

type DailyBody struct {
	Date              string                    `json:"date" doc:"YYYY-MM-DD"`
	IncomeTotal       string                    `json:"incomeTotal"`
	ExpenseTotal      string                    `json:"expenseTotal"`
	NetChange         string                    `json:"netChange" doc:"Income minus expense; transfers are excluded"`
	IncomeByCategory  []CategoryTotal           `json:"incomeByCategory"`
	ExpenseByCategory []CategoryTotal           `json:"expenseByCategory"`
	Transactions      []transaction.Transaction `json:"transactions"`
}

type DayGroup struct {
	Date         string                    `json:"date" doc:"YYYY-MM-DD"`
	Transactions []transaction.Transaction `json:"transactions" doc:"Newest first"`
}

type LedgerBody struct {
	Accounts     []account.Account         `json:"accounts"`
	Transactions []transaction.Transaction `json:"transactions"`
	Settings     settings.Settings         `json:"settings"`
}

type TotalOutput struct {
	Body TotalBody
}

type DailyInput struct {
	Date string `query:"date" required:"true" doc:"Calendar day, YYYY-MM-DD (UTC)"`
}

type DailyOutput struct {
	Body DailyBody
}

type DaysInput struct {
	Start string `query:"start" doc:"Inclusive lower bound, RFC3339 or YYYY-MM-DD"`
	End   string `query:"end" doc:"Inclusive upper bound, RFC3339 or YYYY-MM-DD"`
}

type DaysOutput struct {
	Body struct {
		Days []DayGroup `json:"days" doc:"Newest day first"`
	}
}

type LedgerOutput struct {
	Body LedgerBody
}

type summaryService interface {
	Ledger(ctx context.Context) *ledger.Ledger
	TotalBalance(ctx context.Context) service.Total
	DailySummary(ctx context.Context, day time.Time) query.DailySummary
	Days(ctx context.Context, start, end *time.Time) []query.DayGroup
}

// SummaryHandler serves the derived read-only views.
type SummaryHandler struct {
	SummaryService summaryService
}

func NewSummaryHandler(svc summaryService) *SummaryHandler {
	return &SummaryHandler{SummaryService: svc}
}

func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-ledger",
		Method:      http.MethodGet,
		Path:        "/v1/ledger",
		Summary:     "Full ledger snapshot",
		Tags:        []string{"Summary"},
	}, h.snapshot)

	huma.Register(api, huma.Operation{
		OperationID: "get-total-balance",
		Method:      http.MethodGet,
		Path:        "/v1/summary/total",
		Summary:     "Total balance",
		Tags:        []string{"Summary"},
	}, h.total)

	huma.Register(api, huma.Operation{
		OperationID: "get-daily-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary/daily",
		Summary:     "Daily summary",
		Description: "Income and expense totals with per-category breakdown for one day.",
		Tags:        []string{"Summary"},
	}, h.daily)

	huma.Register(api, huma.Operation{
		OperationID: "list-days",
		Method:      http.MethodGet,
		Path:        "/v1/summary/days",
		Summary:     "Transactions grouped by day",
		Tags:        []string{"Summary"},
	}, h.days)
}

func (h *SummaryHandler) snapshot(ctx context.Context, _ *struct{}) (*LedgerOutput, error) {
	l := h.SummaryService.Ledger(ctx)
	return &LedgerOutput{Body: LedgerBody{
		Accounts:     account.FromLedger(l.Accounts),
		Transactions: transaction.FromLedger(l.Transactions),
		Settings:     settings.FromLedger(l.Settings),
	}}, nil
}

func (h *SummaryHandler) total(ctx context.Context, _ *struct{}) (*TotalOutput, error) {
	total := h.SummaryService.TotalBalance(ctx)
	return &TotalOutput{Body: TotalBody{
		Total:     total.Amount.String(),
		Currency:  total.Currency,
		Formatted: total.Formatted,
	}}, nil
}

func (h *SummaryHandler) daily(ctx context.Context, input *DailyInput) (*DailyOutput, error) {
	day, err := time.Parse(time.DateOnly, input.Date)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
	}

	s := h.SummaryService.DailySummary(ctx, day)
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionCount", len(s.Transactions))
	}

	return &DailyOutput{Body: DailyBody{
		Date:              s.Day,
		IncomeTotal:       s.IncomeTotal.String(),
		ExpenseTotal:      s.ExpenseTotal.String(),
		NetChange:         s.NetChange.String(),
		IncomeByCategory:  categoryTotals(s.IncomeByCategory),
		ExpenseByCategory: categoryTotals(s.ExpenseByCategory),
		Transactions:      transaction.FromLedger(s.Transactions),
	}}, nil
}

func (h *SummaryHandler) days(ctx context.Context, input *DaysInput) (*DaysOutput, error) {
	var start, end *time.Time
	if input.Start != "" {
		t, err := transaction.ParseBound(input.Start, false)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid start", err)
		}
		start = &t
	}
	if input.End != "" {
		t, err := transaction.ParseBound(input.End, true)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid end", err)
		}
		end = &t
	}

	groups := h.SummaryService.Days(ctx, start, end)
	out := &DaysOutput{}
	out.Body.Days = make([]DayGroup, len(groups))
	for i, g := range groups {
		out.Body.Days[i] = DayGroup{
			Date:         g.Day,
			Transactions: transaction.FromLedger(g.Transactions),
		}
	}
	return out, nil
}

func categoryTotals(totals []query.CategoryTotal) []CategoryTotal {
	out := make([]CategoryTotal, len(totals))
	for i, c := range totals {
		out[i] = CategoryTotal{Category: c.Category, Total: c.Total.String()}
	}
	return out
}
