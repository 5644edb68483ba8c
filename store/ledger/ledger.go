package ledger

import (
	"context"
	"sort"
	"sync"

	"anchor/core"

	"github.com/holiman/uint256"
)

type position struct {
	collaterals map[string]*uint256.Int
	debt        *uint256.Int
}

type ledgerStore struct {
	mu        sync.RWMutex
	positions map[string]*position
	pooled    map[string]*uint256.Int
	totalDebt *uint256.Int
}

// New new in-memory ledger store. The engine serializes every mutation;
// the lock here only protects the read surface against torn reads.
func New() core.ILedgerStore {
	return &ledgerStore{
		positions: make(map[string]*position),
		pooled:    make(map[string]*uint256.Int),
		totalDebt: new(uint256.Int),
	}
}

func (s *ledgerStore) position(userID string) *position {
	p, ok := s.positions[userID]
	if !ok {
		p = &position{
			collaterals: make(map[string]*uint256.Int),
			debt:        new(uint256.Int),
		}
		s.positions[userID] = p
	}

	return p
}

func (s *ledgerStore) Collateral(ctx context.Context, userID, assetID string) *uint256.Int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.positions[userID]; ok {
		if b, ok := p.collaterals[assetID]; ok {
			return new(uint256.Int).Set(b)
		}
	}

	return new(uint256.Int)
}

func (s *ledgerStore) AddCollateral(ctx context.Context, userID, assetID string, amount *uint256.Int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.position(userID)
	b, ok := p.collaterals[assetID]
	if !ok {
		b = new(uint256.Int)
		p.collaterals[assetID] = b
	}
	b.Add(b, amount)

	pool, ok := s.pooled[assetID]
	if !ok {
		pool = new(uint256.Int)
		s.pooled[assetID] = pool
	}
	pool.Add(pool, amount)
}

func (s *ledgerStore) SubCollateral(ctx context.Context, userID, assetID string, amount *uint256.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.positions[userID]
	if !ok {
		return core.ErrInsufficientBalance
	}

	b, ok := p.collaterals[assetID]
	if !ok || b.Lt(amount) {
		return core.ErrInsufficientBalance
	}

	b.Sub(b, amount)
	pool := s.pooled[assetID]
	pool.Sub(pool, amount)
	return nil
}

func (s *ledgerStore) Debt(ctx context.Context, userID string) *uint256.Int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.positions[userID]; ok {
		return new(uint256.Int).Set(p.debt)
	}

	return new(uint256.Int)
}

func (s *ledgerStore) AddDebt(ctx context.Context, userID string, amount *uint256.Int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.position(userID)
	p.debt.Add(p.debt, amount)
	s.totalDebt.Add(s.totalDebt, amount)
}

func (s *ledgerStore) SubDebt(ctx context.Context, userID string, amount *uint256.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.positions[userID]
	if !ok || p.debt.Lt(amount) {
		return core.ErrInsufficientBalance
	}

	p.debt.Sub(p.debt, amount)
	s.totalDebt.Sub(s.totalDebt, amount)
	return nil
}

func (s *ledgerStore) Position(ctx context.Context, userID string) *core.Position {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := &core.Position{
		UserID:      userID,
		Collaterals: make(map[string]*uint256.Int),
		Debt:        new(uint256.Int),
	}

	if p, ok := s.positions[userID]; ok {
		for assetID, b := range p.collaterals {
			out.Collaterals[assetID] = new(uint256.Int).Set(b)
		}
		out.Debt.Set(p.debt)
	}

	return out
}

func (s *ledgerStore) Users(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]string, 0, len(s.positions))
	for userID := range s.positions {
		users = append(users, userID)
	}
	sort.Strings(users)
	return users
}

func (s *ledgerStore) TotalDebt(ctx context.Context) *uint256.Int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return new(uint256.Int).Set(s.totalDebt)
}

func (s *ledgerStore) PooledCollateral(ctx context.Context, assetID string) *uint256.Int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if pool, ok := s.pooled[assetID]; ok {
		return new(uint256.Int).Set(pool)
	}

	return new(uint256.Int)
}
