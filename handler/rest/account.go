package rest

import (
	"errors"
	"net/http"

	"anchor/core"
	"anchor/handler/param"
	"anchor/handler/render"
	"anchor/handler/views"
	"anchor/pkg/fixed"
)

func accountHandler(engine core.IEngineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			UserID string `json:"user"`
		}

		if err := param.Binding(r, &params); err != nil || params.UserID == "" {
			render.BadRequest(w, errors.New("user required"))
			return
		}

		ctx := r.Context()
		debt, value, err := engine.AccountInformation(ctx, params.UserID)
		if err != nil {
			render.Error(w, err)
			return
		}

		hf, err := engine.HealthFactor(ctx, params.UserID)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.NewAccount(params.UserID, debt, value, hf))
	}
}

func healthFactorHandler(engine core.IEngineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			UserID string `json:"user"`
		}

		if err := param.Binding(r, &params); err != nil || params.UserID == "" {
			render.BadRequest(w, errors.New("user required"))
			return
		}

		hf, err := engine.HealthFactor(r.Context(), params.UserID)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{
			"user_id":       params.UserID,
			"health_factor": hf.Dec(),
			"liquidatable":  hf.Lt(core.MinHealthFactor()),
		})
	}
}

func collateralHandler(engine core.IEngineService, registry *core.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			UserID  string `json:"user"`
			AssetID string `json:"asset"`
		}

		if err := param.Binding(r, &params); err != nil || params.UserID == "" {
			render.BadRequest(w, errors.New("user and asset required"))
			return
		}

		asset, ok := registry.Asset(params.AssetID)
		if !ok {
			render.Error(w, core.ErrAssetNotApproved)
			return
		}

		balance := engine.CollateralBalance(r.Context(), params.UserID, params.AssetID)
		render.JSON(w, &views.Collateral{
			UserID:  params.UserID,
			AssetID: params.AssetID,
			Balance: fixed.ToDecimal(balance, asset.Decimals),
			Raw:     balance.Dec(),
		})
	}
}
