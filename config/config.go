package config

import (
	"time"

	"github.com/asaskevich/govalidator"
)

// DefaultMaxPriceAge staleness bound applied uniformly to every feed.
// If a feed stalls, every valuation touching its asset fails closed
// until fresh data resumes.
const DefaultMaxPriceAge = 3 * time.Hour

// Config anchor config
type Config struct {
	Engine Engine  `json:"engine"`
	Assets []Asset `json:"assets"`
	Oracle Oracle  `json:"oracle"`
	DB     DB      `json:"db"`
	API    API     `json:"api"`
}

// Engine engine identity config. ID is the credential under which the
// engine holds collateral and pulls debt tokens for burning.
type Engine struct {
	ID string `json:"id" valid:"required"`
}

// Asset one approved collateral asset
type Asset struct {
	Symbol      string `json:"symbol" valid:"required"`
	AssetID     string `json:"asset_id" valid:"required"`
	Decimals    int32  `json:"decimals"`
	PriceFeedID string `json:"price_feed_id" valid:"required"`
	// StaticPrice optional fixture price for the static oracle source,
	// human decimal, e.g. "2000.0"
	StaticPrice         string `json:"static_price" valid:"optional"`
	StaticPriceDecimals int32  `json:"static_price_decimals"`
}

// Oracle price oracle config
type Oracle struct {
	// EndPoint http feed endpoint; empty selects the static source
	EndPoint string `json:"end_point" valid:"url,optional"`
	// MaxPriceAgeSeconds overrides DefaultMaxPriceAge when positive
	MaxPriceAgeSeconds int64 `json:"max_price_age_seconds"`
}

// MaxPriceAge staleness bound as a duration
func (o Oracle) MaxPriceAge() time.Duration {
	if o.MaxPriceAgeSeconds > 0 {
		return time.Duration(o.MaxPriceAgeSeconds) * time.Second
	}

	return DefaultMaxPriceAge
}

// DB journal database config
type DB struct {
	// DSN postgres dsn; empty selects the in-memory journal
	DSN string `json:"dsn" valid:"optional"`
}

// API api server config
type API struct {
	Port int `json:"port"`
}

// Validate validate config
func (c *Config) Validate() error {
	if _, err := govalidator.ValidateStruct(c); err != nil {
		return err
	}

	for i := range c.Assets {
		if _, err := govalidator.ValidateStruct(&c.Assets[i]); err != nil {
			return err
		}
	}

	return nil
}
