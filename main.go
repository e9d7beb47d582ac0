package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/money-tracker/api"
	"github.com/carson-networks/money-tracker/internal/config"
	"github.com/carson-networks/money-tracker/internal/logging"
	"github.com/carson-networks/money-tracker/internal/operator"
	"github.com/carson-networks/money-tracker/internal/service"
	"github.com/carson-networks/money-tracker/internal/storage"
	"github.com/carson-networks/money-tracker/internal/store"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.WithField("backend", envConfig.StorageBackend).Info("money-tracker starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	docs, err := storage.NewStorage(ctx, envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer func() {
		if err := docs.Close(); err != nil {
			logger.WithError(err).Error("storage.Close")
		}
	}()

	ledgerStore := store.New(docs, envConfig.LedgerKey, logger)
	if err = ledgerStore.Load(ctx); err != nil {
		logger.WithError(err).Fatal("store.Load")
		return
	}

	delegator := operator.NewOperatorDelegator(ledgerStore, envConfig.OperatorWorkers)
	delegator.Start()

	httpRest := api.NewRest(logger, envConfig.HTTPPort, service.NewService(ledgerStore, delegator))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpRest.Serve()
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
		if err != nil {
			logger.WithError(err).Error("api.Serve")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = httpRest.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("api.Shutdown")
	}

	// queued mutations finish before the last snapshot is flushed
	delegator.Stop()
	if err = ledgerStore.Close(); err != nil {
		logger.WithError(err).Error("store.Close")
	}
	logger.Info("money-tracker stopped")
}
