package oracle

import (
	"context"
	"testing"
	"time"

	"anchor/core"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var btc = &core.Asset{
	Symbol:      "BTC",
	AssetID:     "btc",
	Decimals:    18,
	PriceFeedID: "btc-usd",
}

func TestFreshPriceNormalizes(t *testing.T) {
	ctx := context.Background()
	source := NewStaticSource()
	srv := New(source, 3*time.Hour)

	// 2000 USD quoted with 8 feed decimals
	source.SetPrice("btc-usd", uint256.NewInt(2000_00000000), 8, time.Now())

	price, err := srv.FreshPrice(ctx, btc)
	require.NoError(t, err)
	assert.Equal(t, "2000000000000000000000", price.Dec())
}

func TestFreshPriceNormalizesDown(t *testing.T) {
	ctx := context.Background()
	source := NewStaticSource()
	srv := New(source, 3*time.Hour)

	// 20 decimals, truncating down to 18
	source.SetPrice("btc-usd", uint256.MustFromDecimal("200000000000000000000099"), 20, time.Now())

	price, err := srv.FreshPrice(ctx, btc)
	require.NoError(t, err)
	assert.Equal(t, "2000000000000000000000", price.Dec())
}

func TestFreshPriceStale(t *testing.T) {
	ctx := context.Background()
	source := NewStaticSource()
	srv := New(source, 3*time.Hour)

	source.SetPrice("btc-usd", uint256.NewInt(2000_00000000), 8, time.Now().Add(-4*time.Hour))

	_, err := srv.FreshPrice(ctx, btc)
	assert.ErrorIs(t, err, core.ErrStalePrice)
}

func TestFreshPriceZero(t *testing.T) {
	ctx := context.Background()
	source := NewStaticSource()
	srv := New(source, 3*time.Hour)

	source.SetPrice("btc-usd", uint256.NewInt(0), 8, time.Now())

	_, err := srv.FreshPrice(ctx, btc)
	assert.ErrorIs(t, err, core.ErrInvalidPrice)
}

func TestFreshPriceUnreachable(t *testing.T) {
	ctx := context.Background()
	srv := New(NewStaticSource(), 3*time.Hour)

	_, err := srv.FreshPrice(ctx, btc)
	assert.ErrorIs(t, err, core.ErrOracleUnreachable)
}

func TestStaticZeroTimestampAlwaysFresh(t *testing.T) {
	ctx := context.Background()
	source := NewStaticSource()
	srv := New(source, time.Minute)

	source.SetPrice("btc-usd", uint256.NewInt(2000_00000000), 8, time.Time{})

	_, err := srv.FreshPrice(ctx, btc)
	assert.NoError(t, err)
}
