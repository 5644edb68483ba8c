package oracle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"anchor/core"

	"github.com/holiman/uint256"
)

// StaticSource fixture price source for development and tests. Quotes
// with a zero timestamp are reported as freshly updated on every read.
type StaticSource struct {
	mu     sync.RWMutex
	quotes map[string]*core.PriceQuote
}

// NewStaticSource new static source
func NewStaticSource() *StaticSource {
	return &StaticSource{
		quotes: make(map[string]*core.PriceQuote),
	}
}

// SetPrice put a quote for a feed
func (s *StaticSource) SetPrice(feedID string, price *uint256.Int, decimals int32, updatedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.quotes[feedID] = &core.PriceQuote{
		FeedID:    feedID,
		Price:     new(uint256.Int).Set(price),
		Decimals:  decimals,
		UpdatedAt: updatedAt,
	}
}

func (s *StaticSource) LatestPrice(ctx context.Context, feedID string) (*core.PriceQuote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quote, ok := s.quotes[feedID]
	if !ok {
		return nil, fmt.Errorf("no quote for feed %s", feedID)
	}

	out := &core.PriceQuote{
		FeedID:    quote.FeedID,
		Price:     new(uint256.Int).Set(quote.Price),
		Decimals:  quote.Decimals,
		UpdatedAt: quote.UpdatedAt,
	}
	if out.UpdatedAt.IsZero() {
		out.UpdatedAt = time.Now()
	}

	return out, nil
}
