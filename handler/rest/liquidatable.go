package rest

import (
	"net/http"

	"anchor/core"
	"anchor/handler/render"
	"anchor/handler/views"
	"anchor/pkg/fixed"
)

func liquidatableHandler(engine core.IEngineService, ledger core.ILedgerStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		accounts := make([]*views.LiquidatableAccount, 0)
		for _, userID := range ledger.Users(ctx) {
			if ledger.Debt(ctx, userID).IsZero() {
				continue
			}

			hf, err := engine.HealthFactor(ctx, userID)
			if err != nil {
				render.Error(w, err)
				return
			}

			if hf.Lt(core.MinHealthFactor()) {
				accounts = append(accounts, &views.LiquidatableAccount{
					UserID:       userID,
					HealthFactor: fixed.ToDecimal(hf, core.DebtDecimals),
				})
			}
		}

		render.JSON(w, accounts)
	}
}
