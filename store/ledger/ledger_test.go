package ledger

import (
	"context"
	"testing"

	"anchor/core"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerCollateral(t *testing.T) {
	ctx := context.Background()
	s := New()

	assert.True(t, s.Collateral(ctx, "alice", "btc").IsZero())

	s.AddCollateral(ctx, "alice", "btc", uint256.NewInt(100))
	s.AddCollateral(ctx, "alice", "btc", uint256.NewInt(50))
	s.AddCollateral(ctx, "bob", "btc", uint256.NewInt(7))

	assert.Equal(t, "150", s.Collateral(ctx, "alice", "btc").Dec())
	assert.Equal(t, "157", s.PooledCollateral(ctx, "btc").Dec())

	require.NoError(t, s.SubCollateral(ctx, "alice", "btc", uint256.NewInt(150)))
	assert.True(t, s.Collateral(ctx, "alice", "btc").IsZero())
	assert.Equal(t, "7", s.PooledCollateral(ctx, "btc").Dec())

	err := s.SubCollateral(ctx, "alice", "btc", uint256.NewInt(1))
	assert.ErrorIs(t, err, core.ErrInsufficientBalance)
}

func TestLedgerDebt(t *testing.T) {
	ctx := context.Background()
	s := New()

	s.AddDebt(ctx, "alice", uint256.NewInt(1000))
	s.AddDebt(ctx, "bob", uint256.NewInt(200))

	assert.Equal(t, "1000", s.Debt(ctx, "alice").Dec())
	assert.Equal(t, "1200", s.TotalDebt(ctx).Dec())

	require.NoError(t, s.SubDebt(ctx, "alice", uint256.NewInt(400)))
	assert.Equal(t, "600", s.Debt(ctx, "alice").Dec())
	assert.Equal(t, "800", s.TotalDebt(ctx).Dec())

	err := s.SubDebt(ctx, "bob", uint256.NewInt(201))
	assert.ErrorIs(t, err, core.ErrInsufficientBalance)
	assert.Equal(t, "200", s.Debt(ctx, "bob").Dec())
}

func TestLedgerSnapshotsAreCopies(t *testing.T) {
	ctx := context.Background()
	s := New()

	s.AddCollateral(ctx, "alice", "btc", uint256.NewInt(10))
	b := s.Collateral(ctx, "alice", "btc")
	b.Add(b, uint256.NewInt(100))

	assert.Equal(t, "10", s.Collateral(ctx, "alice", "btc").Dec())

	p := s.Position(ctx, "alice")
	p.Collaterals["btc"].Add(p.Collaterals["btc"], uint256.NewInt(5))
	assert.Equal(t, "10", s.Collateral(ctx, "alice", "btc").Dec())
}

func TestLedgerUsers(t *testing.T) {
	ctx := context.Background()
	s := New()

	s.AddCollateral(ctx, "carol", "eth", uint256.NewInt(1))
	s.AddCollateral(ctx, "alice", "btc", uint256.NewInt(1))
	s.AddDebt(ctx, "bob", uint256.NewInt(1))

	assert.Equal(t, []string{"alice", "bob", "carol"}, s.Users(ctx))
}
