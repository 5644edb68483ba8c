package views

import (
	"anchor/core"
	"anchor/pkg/fixed"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// Account account view with human-readable 18-decimal values. An
// infinite health factor (zero debt) renders as null.
type Account struct {
	UserID          string           `json:"user_id"`
	Debt            decimal.Decimal  `json:"debt"`
	CollateralValue decimal.Decimal  `json:"collateral_value"`
	HealthFactor    *decimal.Decimal `json:"health_factor"`
	Liquidatable    bool             `json:"liquidatable"`
}

// NewAccount build an account view
func NewAccount(userID string, debt, collateralValue, healthFactor *uint256.Int) *Account {
	view := &Account{
		UserID:          userID,
		Debt:            fixed.ToDecimal(debt, core.DebtDecimals),
		CollateralValue: fixed.ToDecimal(collateralValue, core.DebtDecimals),
	}

	if !debt.IsZero() {
		hf := fixed.ToDecimal(healthFactor, core.DebtDecimals)
		view.HealthFactor = &hf
		view.Liquidatable = healthFactor.Lt(core.MinHealthFactor())
	}

	return view
}

// Collateral per-asset collateral balance
type Collateral struct {
	UserID  string          `json:"user_id"`
	AssetID string          `json:"asset_id"`
	Balance decimal.Decimal `json:"balance"`
	Raw     string          `json:"raw"`
}

// LiquidatableAccount an account currently below the solvency floor
type LiquidatableAccount struct {
	UserID       string          `json:"user_id"`
	HealthFactor decimal.Decimal `json:"health_factor"`
}
