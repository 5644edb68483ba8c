package core

import (
	"context"
	"time"

	"github.com/holiman/uint256"
)

// PriceQuote ephemeral price data pulled from a feed. Never persisted,
// never cached across operations.
type PriceQuote struct {
	FeedID    string       `json:"feed_id"`
	Price     *uint256.Int `json:"price"`
	Decimals  int32        `json:"decimals"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// IPriceSource raw access to one price feed per collateral asset
type IPriceSource interface {
	LatestPrice(ctx context.Context, feedID string) (*PriceQuote, error)
}

// IPriceOracleService staleness-checked prices for registered assets
type IPriceOracleService interface {
	// LatestPrice returns the feed-native quote for the asset
	LatestPrice(ctx context.Context, asset *Asset) (*PriceQuote, error)
	// FreshPrice returns the quote normalized to 18 decimals, failing
	// closed if the feed is stale or reports a zero price
	FreshPrice(ctx context.Context, asset *Asset) (*uint256.Int, error)
}
