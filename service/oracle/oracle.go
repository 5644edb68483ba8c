package oracle

import (
	"context"
	"fmt"
	"time"

	"anchor/core"
	"anchor/pkg/fixed"

	"github.com/holiman/uint256"
)

type oracleService struct {
	source core.IPriceSource
	maxAge time.Duration
}

// New new price oracle service. maxAge is the uniform staleness bound;
// a stalled feed makes every operation touching its asset fail closed.
func New(source core.IPriceSource, maxAge time.Duration) core.IPriceOracleService {
	return &oracleService{
		source: source,
		maxAge: maxAge,
	}
}

func (s *oracleService) LatestPrice(ctx context.Context, asset *core.Asset) (*core.PriceQuote, error) {
	quote, err := s.source.LatestPrice(ctx, asset.PriceFeedID)
	if err != nil {
		return nil, fmt.Errorf("%w: feed %s: %v", core.ErrOracleUnreachable, asset.PriceFeedID, err)
	}

	return quote, nil
}

func (s *oracleService) FreshPrice(ctx context.Context, asset *core.Asset) (*uint256.Int, error) {
	quote, err := s.LatestPrice(ctx, asset)
	if err != nil {
		return nil, err
	}

	if age := time.Since(quote.UpdatedAt); age > s.maxAge {
		return nil, fmt.Errorf("%w: feed %s updated %s ago", core.ErrStalePrice, asset.PriceFeedID, age.Truncate(time.Second))
	}

	if quote.Price == nil || quote.Price.IsZero() {
		return nil, fmt.Errorf("%w: feed %s", core.ErrInvalidPrice, asset.PriceFeedID)
	}

	price, err := normalize(quote.Price, quote.Decimals)
	if err != nil {
		return nil, fmt.Errorf("%w: feed %s: %v", core.ErrInvalidPrice, asset.PriceFeedID, err)
	}

	return price, nil
}

// normalize scale a feed-native price to 18 decimals, truncating
func normalize(price *uint256.Int, decimals int32) (*uint256.Int, error) {
	switch {
	case decimals == core.DebtDecimals:
		return new(uint256.Int).Set(price), nil
	case decimals < core.DebtDecimals:
		return fixed.MulDiv(price, fixed.Pow10(core.DebtDecimals-decimals), uint256.NewInt(1))
	default:
		return new(uint256.Int).Div(price, fixed.Pow10(decimals-core.DebtDecimals)), nil
	}
}
