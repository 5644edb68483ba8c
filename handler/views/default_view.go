package views

import (
	"anchor/core"

	"github.com/shopspring/decimal"
)

// Asset registered collateral asset view
type Asset struct {
	Symbol      string `json:"symbol"`
	AssetID     string `json:"asset_id"`
	Decimals    int32  `json:"decimals"`
	PriceFeedID string `json:"price_feed_id"`
}

// NewAsset build an asset view
func NewAsset(asset *core.Asset) *Asset {
	return &Asset{
		Symbol:      asset.Symbol,
		AssetID:     asset.AssetID,
		Decimals:    asset.Decimals,
		PriceFeedID: asset.PriceFeedID,
	}
}

// Constants fixed protocol constants
type Constants struct {
	LiquidationThreshold uint64          `json:"liquidation_threshold"`
	LiquidationPrecision uint64          `json:"liquidation_precision"`
	LiquidationBonus     uint64          `json:"liquidation_bonus"`
	MinHealthFactor      decimal.Decimal `json:"min_health_factor"`
}

// Status global overcollateralization view
type Status struct {
	TotalDebt            decimal.Decimal `json:"total_debt"`
	TotalCollateralValue decimal.Decimal `json:"total_collateral_value"`
	Overcollateralized   bool            `json:"overcollateralized"`
}

// Conversion token amount <-> usd value conversion result
type Conversion struct {
	AssetID string          `json:"asset_id"`
	Value   decimal.Decimal `json:"value"`
	Raw     string          `json:"raw"`
}
