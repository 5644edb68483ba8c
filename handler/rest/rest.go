package rest

import (
	"errors"
	"net/http"

	"anchor/core"
	"anchor/handler/render"

	"github.com/go-chi/chi"
)

// Handle handle rest api requests. The whole surface is read-only and
// stays callable regardless of protocol state; only oracle faults and
// malformed input produce errors.
func Handle(
	engine core.IEngineService,
	registry *core.Registry,
	ledger core.ILedgerStore,
	journal core.IJournalStore,
) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/assets", assetsHandler(registry))
	router.Get("/constants", constantsHandler())
	router.Get("/status", statusHandler(engine))
	router.Get("/accounts", accountHandler(engine))
	router.Get("/health-factor", healthFactorHandler(engine))
	router.Get("/collateral", collateralHandler(engine, registry))
	router.Get("/value", usdValueHandler(engine))
	router.Get("/token-amount", tokenAmountHandler(engine, registry))
	router.Get("/liquidatable", liquidatableHandler(engine, ledger))
	router.Get("/journal", journalHandler(journal))

	return router
}
