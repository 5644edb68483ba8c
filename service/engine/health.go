package engine

import (
	"context"
	"fmt"

	"anchor/core"
	"anchor/pkg/fixed"

	"github.com/holiman/uint256"
)

// healthFactorOf threshold-adjusted collateral value over debt, in
// 18-decimal fixed point. Zero debt is infinite solvency: the maximum
// representable value, not an error.
func (s *engineService) healthFactorOf(ctx context.Context, userID string) (*uint256.Int, error) {
	debt := s.ledger.Debt(ctx, userID)
	if debt.IsZero() {
		return fixed.Max(), nil
	}

	value, err := s.collateralValueOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	adjusted, err := fixed.MulDiv(value, uint256.NewInt(core.LiquidationThreshold), uint256.NewInt(core.LiquidationPrecision))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidAmount, err)
	}

	hf, err := fixed.MulDiv(adjusted, fixed.Wad(), debt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidAmount, err)
	}

	return hf, nil
}

// collateralValueOf sums the USD value of every registered asset the
// account holds, at live prices fetched for this evaluation.
func (s *engineService) collateralValueOf(ctx context.Context, userID string) (*uint256.Int, error) {
	total := new(uint256.Int)
	for _, asset := range s.registry.Assets() {
		balance := s.ledger.Collateral(ctx, userID, asset.AssetID)
		if balance.IsZero() {
			continue
		}

		value, err := s.usdValueOf(ctx, asset, balance)
		if err != nil {
			return nil, err
		}

		total.Add(total, value)
	}

	return total, nil
}

// usdValueOf balance * freshPrice / 10^assetDecimals, truncating
func (s *engineService) usdValueOf(ctx context.Context, asset *core.Asset, amount *uint256.Int) (*uint256.Int, error) {
	price, err := s.oracle.FreshPrice(ctx, asset)
	if err != nil {
		return nil, err
	}

	value, err := fixed.MulDiv(amount, price, fixed.Pow10(asset.Decimals))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidAmount, err)
	}

	return value, nil
}

// tokenAmountOf the quantity of asset worth usdAmount at the fresh price
func (s *engineService) tokenAmountOf(ctx context.Context, asset *core.Asset, usdAmount *uint256.Int) (*uint256.Int, error) {
	price, err := s.oracle.FreshPrice(ctx, asset)
	if err != nil {
		return nil, err
	}

	amount, err := fixed.MulDiv(usdAmount, fixed.Pow10(asset.Decimals), price)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidAmount, err)
	}

	return amount, nil
}

func (s *engineService) approvedAsset(assetID string) (*core.Asset, error) {
	asset, ok := s.registry.Asset(assetID)
	if !ok || asset.PriceFeedID == "" {
		return nil, core.ErrAssetNotApproved
	}

	return asset, nil
}

func (s *engineService) HealthFactor(ctx context.Context, userID string) (*uint256.Int, error) {
	return s.healthFactorOf(ctx, userID)
}

func (s *engineService) AccountInformation(ctx context.Context, userID string) (*uint256.Int, *uint256.Int, error) {
	value, err := s.collateralValueOf(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return s.ledger.Debt(ctx, userID), value, nil
}

func (s *engineService) CollateralValue(ctx context.Context, userID string) (*uint256.Int, error) {
	return s.collateralValueOf(ctx, userID)
}

func (s *engineService) CollateralBalance(ctx context.Context, userID, assetID string) *uint256.Int {
	return s.ledger.Collateral(ctx, userID, assetID)
}

func (s *engineService) UsdValue(ctx context.Context, assetID string, amount *uint256.Int) (*uint256.Int, error) {
	asset, err := s.approvedAsset(assetID)
	if err != nil {
		return nil, err
	}

	return s.usdValueOf(ctx, asset, amount)
}

func (s *engineService) TokenAmountFromUsd(ctx context.Context, assetID string, usdAmount *uint256.Int) (*uint256.Int, error) {
	asset, err := s.approvedAsset(assetID)
	if err != nil {
		return nil, err
	}

	return s.tokenAmountOf(ctx, asset, usdAmount)
}

func (s *engineService) TotalDebt(ctx context.Context) *uint256.Int {
	return s.ledger.TotalDebt(ctx)
}

// TotalCollateralValue USD value of the whole collateral pool at live prices
func (s *engineService) TotalCollateralValue(ctx context.Context) (*uint256.Int, error) {
	total := new(uint256.Int)
	for _, asset := range s.registry.Assets() {
		pooled := s.ledger.PooledCollateral(ctx, asset.AssetID)
		if pooled.IsZero() {
			continue
		}

		value, err := s.usdValueOf(ctx, asset, pooled)
		if err != nil {
			return nil, err
		}

		total.Add(total, value)
	}

	return total, nil
}
