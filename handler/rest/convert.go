package rest

import (
	"errors"
	"net/http"

	"anchor/core"
	"anchor/handler/param"
	"anchor/handler/render"
	"anchor/handler/views"
	"anchor/pkg/fixed"

	"github.com/holiman/uint256"
)

func usdValueHandler(engine core.IEngineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			AssetID string `json:"asset"`
			Amount  string `json:"amount"`
		}

		if err := param.Binding(r, &params); err != nil || params.AssetID == "" {
			render.BadRequest(w, errors.New("asset and amount required"))
			return
		}

		amount, err := uint256.FromDecimal(params.Amount)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		value, err := engine.UsdValue(r.Context(), params.AssetID, amount)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, &views.Conversion{
			AssetID: params.AssetID,
			Value:   fixed.ToDecimal(value, core.DebtDecimals),
			Raw:     value.Dec(),
		})
	}
}

func tokenAmountHandler(engine core.IEngineService, registry *core.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			AssetID string `json:"asset"`
			Usd     string `json:"usd"`
		}

		if err := param.Binding(r, &params); err != nil || params.AssetID == "" {
			render.BadRequest(w, errors.New("asset and usd required"))
			return
		}

		usd, err := uint256.FromDecimal(params.Usd)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		amount, err := engine.TokenAmountFromUsd(r.Context(), params.AssetID, usd)
		if err != nil {
			render.Error(w, err)
			return
		}

		asset, _ := registry.Asset(params.AssetID)
		render.JSON(w, &views.Conversion{
			AssetID: params.AssetID,
			Value:   fixed.ToDecimal(amount, asset.Decimals),
			Raw:     amount.Dec(),
		})
	}
}
