package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/money-tracker/internal/handlers/v1/account"
	"github.com/carson-networks/money-tracker/internal/handlers/v1/settings"
	"github.com/carson-networks/money-tracker/internal/handlers/v1/status"
	"github.com/carson-networks/money-tracker/internal/handlers/v1/summary"
	"github.com/carson-networks/money-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/money-tracker/internal/logging"
	"github.com/carson-networks/money-tracker/internal/service"
)

var errNotBuilt = errors.New("api: Rest must be built with NewRest")

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service

	server *http.Server
}

// NewRest builds the http.Server up front so Shutdown and Serve may run on
// different goroutines in either order.
func NewRest(logger *logrus.Logger, port string, svc *service.Service) *Rest {
	r := &Rest{Logger: logger, Port: port, Service: svc}
	r.server = &http.Server{
		Addr:              ":" + port,
		Handler:           r.Routes(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}
	return r
}

// Routes builds the mux with the status route and every v1 operation.
func (r *Rest) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Money Tracker API", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	svc := r.Service
	account.NewCreateAccountHandler(svc.Account).Register(api)
	account.NewListAccountsHandler(svc.Account).Register(api)
	account.NewGetAccountHandler(svc.Account).Register(api)
	account.NewEditAccountHandler(svc.Account).Register(api)
	account.NewDeleteAccountHandler(svc.Account).Register(api)

	transaction.NewCreateTransactionHandler(svc.Transaction).Register(api)
	transaction.NewListTransactionsHandler(svc.Transaction).Register(api)
	transaction.NewGetTransactionHandler(svc.Transaction).Register(api)
	transaction.NewEditTransactionHandler(svc.Transaction).Register(api)
	transaction.NewDeleteTransactionHandler(svc.Transaction).Register(api)

	settings.NewSettingsHandler(svc.Settings).Register(api)
	settings.NewLabelsHandler(svc.Settings).Register(api)

	summary.NewSummaryHandler(svc.Summary).Register(api)

	return mux
}

// Serve blocks until the server stops. It returns nil after Shutdown, also
// when Shutdown ran first.
func (r *Rest) Serve() error {
	if r.server == nil {
		return errNotBuilt
	}

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := r.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
	return nil
}

func (r *Rest) Shutdown(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	return r.server.Shutdown(ctx)
}
