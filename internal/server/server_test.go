package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/skyblock-rng/internal/catalog"
	"github.com/xtding233/skyblock-rng/internal/service"
)

type staticPrices map[string]int64

func (p staticPrices) LowestBINs(_ context.Context, ids []string) (map[string]int64, error) {
	out := map[string]int64{}
	for _, id := range ids {
		if v, ok := p[id]; ok {
			out[id] = v
		}
	}
	return out, nil
}

func newTestServer(t *testing.T) (*httptest.Server, *Metrics) {
	t.Helper()
	svc := service.New(catalog.NewLoader(""), 50_000, nil)
	metrics := NewMetrics("")
	svc.Recorder = metrics
	svc.Prices = staticPrices{"MASTER_SKULL_TIER_1": 100_000}
	srv := httptest.NewServer(New(svc, metrics, nil).Routes())
	t.Cleanup(srv.Close)
	return srv, metrics
}

func post(t *testing.T, url, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, body := get(t, srv.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestDrops(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, body := get(t, srv.URL+"/drops")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out service.DropsResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out.Catalog.Drops, 7)
	assert.Equal(t, "chimera", out.Catalog.Drops[0].ID)
	assert.Contains(t, string(body), `"source":"https://wiki.hypixel.net/Minos_Inquisitor#Loot"`)
}

func TestSimulate(t *testing.T) {
	srv, metrics := newTestServer(t)
	resp, body := post(t, srv.URL+"/simulate",
		`{"drop":"judgement_core","meter_percent":50,"magic_find":200,"rolls":3000,"seed":7}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var out service.SimulateResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, uint64(7), out.Seed)
	assert.Equal(t, "judgement_core", out.Profile.ID)
	assert.Equal(t, 3000, out.Summary.Rolls)
	assert.NotEmpty(t, out.RunID)

	_, metricsBody := get(t, srv.URL+"/metrics")
	text := string(metricsBody)
	assert.Contains(t, text, `skyblock_rng_simulations_total{drop="judgement_core"} 1`)
	assert.Contains(t, text, "skyblock_rng_rolls_total 3000")
	assert.NotNil(t, metrics.SimulationDuration)
}

func TestSimulateErrors(t *testing.T) {
	srv, _ := newTestServer(t)
	cases := []struct {
		name   string
		body   string
		status int
		err    string
	}{
		{"malformed", `{"drop":`, http.StatusBadRequest, "invalid body"},
		{"unknown field", `{"drop":"chimera","mf":3}`, http.StatusBadRequest, "invalid body"},
		{"unknown drop", `{"drop":"hyperion"}`, http.StatusNotFound, "unknown drop"},
		{"magic find", `{"drop":"chimera","magic_find":1000}`, http.StatusBadRequest, "invalid magic find"},
		{"too many rolls", `{"drop":"chimera","rolls":50001}`, http.StatusBadRequest, "exceeds"},
		{"meter percent missing", `{"drop":"judgement_core","rolls":10}`, http.StatusBadRequest, "rng meter percent is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := post(t, srv.URL+"/simulate", tc.body)
			assert.Equal(t, tc.status, resp.StatusCode)
			var e errResp
			require.NoError(t, json.Unmarshal(body, &e))
			assert.Contains(t, e.Err, tc.err)
		})
	}
}

func TestSkullPlan(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := get(t, srv.URL+"/skull/plan?current=1&target=2")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var out service.SkullPlanResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, 1, out.Plan.BuyTier)
	assert.Equal(t, int64(3), out.Plan.Qty)
	assert.Equal(t, int64(300_000), out.Plan.TotalCost)

	resp, _ = get(t, srv.URL+"/skull/plan?current=1")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = get(t, srv.URL+"/skull/plan?current=3&target=2")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
