package core

// Asset an approved collateral asset
type Asset struct {
	Symbol      string `json:"symbol"`
	AssetID     string `json:"asset_id"`
	Decimals    int32  `json:"decimals"`
	PriceFeedID string `json:"price_feed_id"`
}

// Registry the approved-asset list, built once at construction and
// never mutated afterward. Every asset maps to exactly one price feed.
type Registry struct {
	assets []*Asset
	index  map[string]*Asset
}

// NewRegistry build the registry from parallel asset and feed sequences.
func NewRegistry(assets []*Asset, feedIDs []string) (*Registry, error) {
	if len(assets) != len(feedIDs) {
		return nil, ErrLengthMismatch
	}

	r := &Registry{
		index: make(map[string]*Asset, len(assets)),
	}

	for i, asset := range assets {
		if asset == nil || asset.AssetID == "" || feedIDs[i] == "" {
			return nil, ErrInvalidAsset
		}

		if _, ok := r.index[asset.AssetID]; ok {
			return nil, ErrInvalidAsset
		}

		a := *asset
		a.PriceFeedID = feedIDs[i]
		r.assets = append(r.assets, &a)
		r.index[a.AssetID] = &a
	}

	return r, nil
}

// IsApproved reports whether the asset is registered with a price feed.
func (r *Registry) IsApproved(assetID string) bool {
	asset, ok := r.index[assetID]
	return ok && asset.PriceFeedID != ""
}

// Asset find an asset by id
func (r *Registry) Asset(assetID string) (*Asset, bool) {
	asset, ok := r.index[assetID]
	return asset, ok
}

// Assets registered assets in registration order
func (r *Registry) Assets() []*Asset {
	assets := make([]*Asset, len(r.assets))
	copy(assets, r.assets)
	return assets
}
