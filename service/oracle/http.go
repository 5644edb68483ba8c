package oracle

import (
	"context"
	"fmt"
	"time"

	"anchor/core"
	"anchor/pkg/resthttp"

	"github.com/fox-one/pkg/logger"
	"github.com/holiman/uint256"
)

type httpSource struct {
	endpoint string
}

// NewHTTPSource price source backed by an http feed service.
// GET {endpoint}/feeds/{feedID} -> {"price":"200000000000","decimals":8,"updated_at":1700000000}
func NewHTTPSource(endpoint string) core.IPriceSource {
	return &httpSource{endpoint: endpoint}
}

type feedPayload struct {
	Price     string `json:"price"`
	Decimals  int32  `json:"decimals"`
	UpdatedAt int64  `json:"updated_at"`
}

func (s *httpSource) LatestPrice(ctx context.Context, feedID string) (*core.PriceQuote, error) {
	url := fmt.Sprintf("%s/feeds/%s", s.endpoint, feedID)
	logger.FromContext(ctx).Debugln("pull price:", url)

	resp, err := resthttp.Request(ctx).Get(url)
	if err != nil {
		return nil, err
	}

	var payload feedPayload
	if err := resthttp.ParseResponse(resp, &payload); err != nil {
		return nil, err
	}

	price, err := uint256.FromDecimal(payload.Price)
	if err != nil {
		return nil, fmt.Errorf("feed %s: bad price %q: %v", feedID, payload.Price, err)
	}

	return &core.PriceQuote{
		FeedID:    feedID,
		Price:     price,
		Decimals:  payload.Decimals,
		UpdatedAt: time.Unix(payload.UpdatedAt, 0),
	}, nil
}
