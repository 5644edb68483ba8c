package bank

import (
	"context"
	"errors"
	"sync"

	"github.com/holiman/uint256"
)

// LocalToken the synthetic debt token with a single authorized minter.
type LocalToken struct {
	mu       sync.Mutex
	minter   string
	supply   *uint256.Int
	balances map[string]*uint256.Int
}

// NewLocalToken new local debt token; minter holds the sole mint/burn credential
func NewLocalToken(minter string) *LocalToken {
	return &LocalToken{
		minter:   minter,
		supply:   new(uint256.Int),
		balances: make(map[string]*uint256.Int),
	}
}

func (t *LocalToken) balance(holder string) *uint256.Int {
	bal, ok := t.balances[holder]
	if !ok {
		bal = new(uint256.Int)
		t.balances[holder] = bal
	}

	return bal
}

// Balance current balance of a holder
func (t *LocalToken) Balance(holder string) *uint256.Int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return new(uint256.Int).Set(t.balance(holder))
}

// TotalSupply outstanding supply
func (t *LocalToken) TotalSupply() *uint256.Int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return new(uint256.Int).Set(t.supply)
}

func (t *LocalToken) Mint(ctx context.Context, to string, amount *uint256.Int) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	bal := t.balance(to)
	bal.Add(bal, amount)
	t.supply.Add(t.supply, amount)
	return true, nil
}

// Burn destroy tokens held by the minter
func (t *LocalToken) Burn(ctx context.Context, amount *uint256.Int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	bal := t.balance(t.minter)
	if bal.Lt(amount) {
		return errors.New("burn exceeds minter balance")
	}

	bal.Sub(bal, amount)
	t.supply.Sub(t.supply, amount)
	return nil
}

func (t *LocalToken) TransferFrom(ctx context.Context, from, to string, amount *uint256.Int) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	src := t.balance(from)
	if src.Lt(amount) {
		return false, nil
	}

	src.Sub(src, amount)
	dst := t.balance(to)
	dst.Add(dst, amount)
	return true, nil
}
