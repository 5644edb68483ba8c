package rest

import (
	"net/http"

	"anchor/core"
	"anchor/handler/render"
	"anchor/handler/views"
	"anchor/pkg/fixed"
)

func assetsHandler(registry *core.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assetViews := make([]*views.Asset, 0)
		for _, asset := range registry.Assets() {
			assetViews = append(assetViews, views.NewAsset(asset))
		}

		render.JSON(w, assetViews)
	}
}

func constantsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, &views.Constants{
			LiquidationThreshold: core.LiquidationThreshold,
			LiquidationPrecision: core.LiquidationPrecision,
			LiquidationBonus:     core.LiquidationBonus,
			MinHealthFactor:      fixed.ToDecimal(core.MinHealthFactor(), core.DebtDecimals),
		})
	}
}

func statusHandler(engine core.IEngineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		totalValue, err := engine.TotalCollateralValue(ctx)
		if err != nil {
			render.Error(w, err)
			return
		}

		totalDebt := engine.TotalDebt(ctx)
		render.JSON(w, &views.Status{
			TotalDebt:            fixed.ToDecimal(totalDebt, core.DebtDecimals),
			TotalCollateralValue: fixed.ToDecimal(totalValue, core.DebtDecimals),
			Overcollateralized:   !totalValue.Lt(totalDebt),
		})
	}
}
