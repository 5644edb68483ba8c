package core

import (
	"context"

	"github.com/holiman/uint256"
)

// ICollateralBank transferable balances of the collateral assets.
// A false return without an error must be treated the same as an error.
type ICollateralBank interface {
	TransferIn(ctx context.Context, assetID, from string, amount *uint256.Int) (bool, error)
	TransferOut(ctx context.Context, assetID, to string, amount *uint256.Int) (bool, error)
}

// IDebtToken mint/burn gate of the synthetic debt token. The engine holds
// the sole credential; token supply must stay bijective with ledger debt.
type IDebtToken interface {
	Mint(ctx context.Context, to string, amount *uint256.Int) (bool, error)
	Burn(ctx context.Context, amount *uint256.Int) error
	TransferFrom(ctx context.Context, from, to string, amount *uint256.Int) (bool, error)
}
