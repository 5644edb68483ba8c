package core

import (
	"context"

	"anchor/pkg/fixed"

	"github.com/holiman/uint256"
)

const (
	// LiquidationThreshold percent of nominal collateral value counted toward solvency
	LiquidationThreshold uint64 = 50
	// LiquidationPrecision denominator of threshold and bonus percentages
	LiquidationPrecision uint64 = 100
	// LiquidationBonus percent of the seized base paid to the liquidator
	LiquidationBonus uint64 = 10
	// DebtDecimals fixed-point precision of the debt token
	DebtDecimals int32 = 18
)

// MinHealthFactor the solvency floor, exactly 1.0 in 18-decimal fixed point.
func MinHealthFactor() *uint256.Int {
	return fixed.Wad()
}

// IEngineService position operations, the liquidation protocol and the
// read surface. Mutating calls are atomic: on any failure the ledger is
// left exactly as it was before the call.
type IEngineService interface {
	DepositCollateral(ctx context.Context, userID, assetID string, amount *uint256.Int) error
	MintDebt(ctx context.Context, userID string, amount *uint256.Int) error
	DepositAndMint(ctx context.Context, userID, assetID string, depositAmount, mintAmount *uint256.Int) error
	RedeemCollateral(ctx context.Context, userID, assetID string, amount *uint256.Int) error
	BurnDebt(ctx context.Context, userID string, amount *uint256.Int) error
	RedeemForBurn(ctx context.Context, userID, assetID string, redeemAmount, burnAmount *uint256.Int) error
	Liquidate(ctx context.Context, callerID, assetID, targetID string, debtToCover *uint256.Int) error

	HealthFactor(ctx context.Context, userID string) (*uint256.Int, error)
	AccountInformation(ctx context.Context, userID string) (debt, collateralValue *uint256.Int, err error)
	CollateralValue(ctx context.Context, userID string) (*uint256.Int, error)
	CollateralBalance(ctx context.Context, userID, assetID string) *uint256.Int
	UsdValue(ctx context.Context, assetID string, amount *uint256.Int) (*uint256.Int, error)
	TokenAmountFromUsd(ctx context.Context, assetID string, usdAmount *uint256.Int) (*uint256.Int, error)
	TotalDebt(ctx context.Context) *uint256.Int
	TotalCollateralValue(ctx context.Context) (*uint256.Int, error)
}
