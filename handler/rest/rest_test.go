package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"anchor/core"
	"anchor/pkg/fixed"
	"anchor/service/bank"
	"anchor/service/engine"
	"anchor/service/oracle"
	"anchor/store/journal"
	"anchor/store/ledger"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (http.Handler, core.IEngineService, *bank.Local) {
	registry, err := core.NewRegistry(
		[]*core.Asset{{Symbol: "WETH", AssetID: "weth", Decimals: 18}},
		[]string{"eth-usd"},
	)
	require.NoError(t, err)

	source := oracle.NewStaticSource()
	source.SetPrice("eth-usd", uint256.NewInt(2000_00000000), 8, time.Now())

	ledgerStore := ledger.New()
	bankSrv := bank.NewLocal("anchor-engine")
	engineSrv := engine.New(
		engine.Config{ID: "anchor-engine"},
		registry,
		ledgerStore,
		oracle.New(source, 3*time.Hour),
		bankSrv,
		bank.NewLocalToken("anchor-engine"),
		journal.NewMemory(),
	)

	return Handle(engineSrv, registry, ledgerStore, journal.NewMemory()), engineSrv, bankSrv
}

func get(t *testing.T, handler http.Handler, path string, v interface{}) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if v != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
	}

	return rec
}

func TestAssetsEndpoint(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	var assets []map[string]interface{}
	rec := get(t, handler, "/assets", &assets)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, assets, 1)
	assert.Equal(t, "weth", assets[0]["asset_id"])
}

func TestConstantsEndpoint(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	var constants map[string]interface{}
	rec := get(t, handler, "/constants", &constants)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(core.LiquidationThreshold), constants["liquidation_threshold"])
	assert.Equal(t, "1", constants["min_health_factor"])
}

func TestValueEndpoint(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	var conversion map[string]interface{}
	rec := get(t, handler, "/value?asset=weth&amount=1000000000000000000", &conversion)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2000", conversion["value"])

	rec = get(t, handler, "/value?asset=doge&amount=1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthFactorEndpoint(t *testing.T) {
	handler, engineSrv, bankSrv := newTestHandler(t)
	ctx := context.Background()

	bankSrv.SetBalance("weth", "alice", fixed.MustFromString("10000000000000000000"))
	require.NoError(t, engineSrv.DepositAndMint(ctx, "alice", "weth",
		fixed.MustFromString("10000000000000000000"),
		fixed.MustFromString("10000000000000000000000")))

	var body map[string]interface{}
	rec := get(t, handler, "/health-factor?user=alice", &body)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1000000000000000000", body["health_factor"])
	assert.Equal(t, false, body["liquidatable"])

	rec = get(t, handler, "/health-factor", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLiquidatableEndpoint(t *testing.T) {
	handler, engineSrv, bankSrv := newTestHandler(t)
	ctx := context.Background()

	bankSrv.SetBalance("weth", "alice", fixed.MustFromString("10000000000000000000"))
	require.NoError(t, engineSrv.DepositAndMint(ctx, "alice", "weth",
		fixed.MustFromString("10000000000000000000"),
		fixed.MustFromString("10000000000000000000000")))

	var accounts []map[string]interface{}
	rec := get(t, handler, "/liquidatable", &accounts)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, accounts, 0)
}
