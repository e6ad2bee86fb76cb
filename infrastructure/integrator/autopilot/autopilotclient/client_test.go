package autopilotclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/autopilot-sync/internal/config"
	"github.com/vfg2006/autopilot-sync/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Autopilot.BaseURL = srv.URL
	cfg.Autopilot.APIKey = "secret-key"
	return NewClient(cfg)
}

func TestListAutopilots(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/autopilots", r.URL.Path)
		assert.Equal(t, "secret-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"api_key_id": 1, "product_id": 10, "status": "working", "target_drr": [{"date": "2025-06-24", "drr": 12.5}],
			 "target_cost_override": null, "min_rem": [{"quantity": 3, "size": "M"}], "deposit_type": "net",
			 "min_daily_cost": 100, "max_daily_cost": 900, "extra": true},
			{"api_key_id": 1, "product_id": 11, "status": "stopped"}
		]`))
	})

	autopilots, err := client.ListAutopilots(context.Background())
	require.NoError(t, err)
	require.Len(t, autopilots, 2)

	first := autopilots[0]
	assert.Equal(t, int64(10), *first.ProductID)
	assert.Equal(t, domain.AutopilotStatus("working"), first.Status)
	require.Len(t, first.TargetDRR, 1)
	assert.Equal(t, 12.5, *first.TargetDRR[0].DRR)
	assert.Nil(t, first.TargetCostOverride)
	assert.Equal(t, "net", first.DepositType)
	assert.Equal(t, 900.0, *first.MaxDailyCost)
	assert.Equal(t, domain.AutopilotStatusStopped, autopilots[1].Status)
}

func TestListAutopilots_StatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"invalid key"}`))
	})

	_, err := client.ListAutopilots(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
}

func TestPostAutopilots_ReturnsAnyStatus(t *testing.T) {
	var received string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		received = string(body)

		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Product not found: 42"}`))
	})

	id := int64(42)
	active := false
	resp, err := client.PostAutopilots(context.Background(), domain.Batch{{ProductID: &id, Active: &active}})

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"detail":"Product not found: 42"}`, string(resp.Body))
	assert.JSONEq(t, `[{"api_key_id":null,"product_id":42,"active":false,"target_drr":null,
		"target_cost_override":null,"min_rem":null,"deposit_type":null,"min_daily_cost":null,"max_daily_cost":null}]`, received)
}

func TestPostAutopilots_EmptyBatchIsArray(t *testing.T) {
	var received string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received = string(body)
		w.WriteHeader(http.StatusOK)
	})

	_, err := client.PostAutopilots(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", received)
}

func TestPostAutopilots_TransportError(t *testing.T) {
	cfg := &config.Config{}
	cfg.Autopilot.BaseURL = "http://127.0.0.1:1"
	client := NewClient(cfg)

	resp, err := client.PostAutopilots(context.Background(), domain.Batch{})
	assert.Nil(t, resp)
	assert.Error(t, err)
}

func TestProbe(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	status, err := client.Probe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, status)
}
