package core

import (
	"context"

	"github.com/holiman/uint256"
)

// Position per-user ledger entry: collateral balances by asset plus the
// minted debt. Created implicitly on first deposit; zero balances are a
// valid terminal state.
type Position struct {
	UserID      string                  `json:"user_id"`
	Collaterals map[string]*uint256.Int `json:"collaterals"`
	Debt        *uint256.Int            `json:"debt"`
}

// ILedgerStore the authoritative collateral & debt ledger
type ILedgerStore interface {
	Collateral(ctx context.Context, userID, assetID string) *uint256.Int
	AddCollateral(ctx context.Context, userID, assetID string, amount *uint256.Int)
	SubCollateral(ctx context.Context, userID, assetID string, amount *uint256.Int) error

	Debt(ctx context.Context, userID string) *uint256.Int
	AddDebt(ctx context.Context, userID string, amount *uint256.Int)
	SubDebt(ctx context.Context, userID string, amount *uint256.Int) error

	Position(ctx context.Context, userID string) *Position
	Users(ctx context.Context) []string
	TotalDebt(ctx context.Context) *uint256.Int
	PooledCollateral(ctx context.Context, assetID string) *uint256.Int
}
