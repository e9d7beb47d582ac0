package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/operator"
	"github.com/carson-networks/money-tracker/internal/service"
	"github.com/carson-networks/money-tracker/internal/storage"
	"github.com/carson-networks/money-tracker/internal/store"
)

func newTestServer(t *testing.T) (*httptest.Server, storage.IDocumentStore, *store.Store) {
	t.Helper()
	logger := logrus.New()
	logger.Out = io.Discard

	docs := storage.NewMemoryStore()
	s := store.New(docs, "moneySaverData", logger)
	require.NoError(t, s.Load(context.Background()))
	d := operator.NewOperatorDelegator(s, 1)
	d.Start()

	rest := NewRest(logger, "0", service.NewService(s, d))
	server := httptest.NewServer(rest.Routes())
	t.Cleanup(func() {
		server.Close()
		d.Stop()
		_ = s.Close()
	})
	return server, docs, s
}

func send(t *testing.T, method, url string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func TestRest_ShutdownBeforeServe(t *testing.T) {
	logger := logrus.New()
	logger.Out = io.Discard
	rest := NewRest(logger, "0", &service.Service{})

	require.NoError(t, rest.Shutdown(context.Background()))
	assert.NoError(t, rest.Serve(), "Serve must not start after Shutdown")
}

func TestRest_ShutdownStopsServe(t *testing.T) {
	logger := logrus.New()
	logger.Out = io.Discard
	rest := NewRest(logger, "0", &service.Service{})

	served := make(chan error, 1)
	go func() { served <- rest.Serve() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, rest.Shutdown(ctx))

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after Shutdown")
	}
}

func TestRest_ServeRequiresNewRest(t *testing.T) {
	rest := &Rest{Logger: logrus.New()}
	assert.ErrorIs(t, rest.Serve(), errNotBuilt)
}

func TestRoutes_Status(t *testing.T) {
	server, _, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRoutes_LedgerFlow(t *testing.T) {
	server, docs, s := newTestServer(t)

	code, account := send(t, http.MethodPost, server.URL+"/v1/account", map[string]any{
		"name": "Savings", "balance": "100", "type": "bank",
	})
	require.Equal(t, http.StatusCreated, code)
	accountID := account["id"].(string)

	code, income := send(t, http.MethodPost, server.URL+"/v1/transaction", map[string]any{
		"type": "income", "amount": "50", "accountId": accountID, "category": "Salary",
	})
	require.Equal(t, http.StatusCreated, code)

	code, _ = send(t, http.MethodPost, server.URL+"/v1/transaction", map[string]any{
		"type": "expense", "amount": "20", "accountId": accountID, "category": "Food",
	})
	require.Equal(t, http.StatusCreated, code)

	code, got := send(t, http.MethodGet, server.URL+"/v1/account/"+accountID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "130", got["balance"])

	code, _ = send(t, http.MethodDelete, server.URL+"/v1/transaction/"+income["id"].(string), nil)
	require.Equal(t, http.StatusNoContent, code)

	code, total := send(t, http.MethodGet, server.URL+"/v1/summary/total", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "80", total["total"])
	assert.Equal(t, "$80.00", total["formatted"])

	code, _ = send(t, http.MethodPost, server.URL+"/v1/transaction", map[string]any{
		"type": "income", "amount": "0", "accountId": accountID, "category": "Salary",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = send(t, http.MethodGet, server.URL+"/v1/account/acc-missing", nil)
	assert.Equal(t, http.StatusNotFound, code)

	// the persisted document follows the commits
	require.NoError(t, s.Close())
	data, err := docs.Get(context.Background(), "moneySaverData")
	require.NoError(t, err)
	persisted, err := ledger.DecodeDocument(data)
	require.NoError(t, err)
	assert.Len(t, persisted.Accounts, 4)
	assert.Len(t, persisted.Transactions, 1)
}
