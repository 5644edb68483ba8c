package bank

import (
	"context"
	"sync"

	"github.com/holiman/uint256"
)

// Local in-process transferable balances for the collateral assets.
// Stands in for the host environment's token contracts in single-process
// deployments and tests; the engine's collateral pool is held under the
// engine id.
type Local struct {
	mu       sync.Mutex
	engineID string
	balances map[string]map[string]*uint256.Int
}

// NewLocal new local collateral bank
func NewLocal(engineID string) *Local {
	return &Local{
		engineID: engineID,
		balances: make(map[string]map[string]*uint256.Int),
	}
}

func (b *Local) balance(assetID, holder string) *uint256.Int {
	holders, ok := b.balances[assetID]
	if !ok {
		holders = make(map[string]*uint256.Int)
		b.balances[assetID] = holders
	}

	bal, ok := holders[holder]
	if !ok {
		bal = new(uint256.Int)
		holders[holder] = bal
	}

	return bal
}

// SetBalance faucet for seeding holder balances
func (b *Local) SetBalance(assetID, holder string, amount *uint256.Int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.balance(assetID, holder).Set(amount)
}

// Balance current balance of a holder
func (b *Local) Balance(assetID, holder string) *uint256.Int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return new(uint256.Int).Set(b.balance(assetID, holder))
}

func (b *Local) move(assetID, from, to string, amount *uint256.Int) bool {
	src := b.balance(assetID, from)
	if src.Lt(amount) {
		return false
	}

	src.Sub(src, amount)
	dst := b.balance(assetID, to)
	dst.Add(dst, amount)
	return true
}

func (b *Local) TransferIn(ctx context.Context, assetID, from string, amount *uint256.Int) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.move(assetID, from, b.engineID, amount), nil
}

func (b *Local) TransferOut(ctx context.Context, assetID, to string, amount *uint256.Int) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.move(assetID, b.engineID, to, amount), nil
}
