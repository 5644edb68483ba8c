package cmd

import (
	"context"
	"time"

	"anchor/core"
	"anchor/pkg/fixed"
	"anchor/service/bank"
	"anchor/service/engine"
	"anchor/service/oracle"
	"anchor/store/journal"
	"anchor/store/ledger"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func provideRegistry() *core.Registry {
	assets := make([]*core.Asset, 0, len(cfg.Assets))
	feeds := make([]string, 0, len(cfg.Assets))
	for _, asset := range cfg.Assets {
		assets = append(assets, &core.Asset{
			Symbol:      asset.Symbol,
			AssetID:     asset.AssetID,
			Decimals:    asset.Decimals,
			PriceFeedID: asset.PriceFeedID,
		})
		feeds = append(feeds, asset.PriceFeedID)
	}

	registry, err := core.NewRegistry(assets, feeds)
	if err != nil {
		panic(err)
	}

	return registry
}

func providePriceSource() core.IPriceSource {
	if cfg.Oracle.EndPoint != "" {
		return oracle.NewHTTPSource(cfg.Oracle.EndPoint)
	}

	// no feed endpoint, serve fixture prices from the config
	source := oracle.NewStaticSource()
	for _, asset := range cfg.Assets {
		if asset.StaticPrice == "" {
			continue
		}

		d, err := decimal.NewFromString(asset.StaticPrice)
		if err != nil {
			panic(err)
		}

		price, err := fixed.FromDecimal(d, asset.StaticPriceDecimals)
		if err != nil {
			panic(err)
		}

		source.SetPrice(asset.PriceFeedID, price, asset.StaticPriceDecimals, time.Time{})
	}

	return source
}

func provideOracleService(source core.IPriceSource) core.IPriceOracleService {
	return oracle.New(source, cfg.Oracle.MaxPriceAge())
}

func provideLedgerStore() core.ILedgerStore {
	return ledger.New()
}

func provideJournalStore(ctx context.Context) core.IJournalStore {
	if cfg.DB.DSN == "" {
		return journal.NewMemory()
	}

	db, err := journal.Connect(cfg.DB.DSN)
	if err != nil {
		logrus.WithError(err).Panicln("connect journal db")
	}

	if err := journal.Migrate(ctx, db); err != nil {
		logrus.WithError(err).Panicln("migrate journal db")
	}

	return journal.New(db)
}

func provideBank() *bank.Local {
	return bank.NewLocal(cfg.Engine.ID)
}

func provideDebtToken() *bank.LocalToken {
	return bank.NewLocalToken(cfg.Engine.ID)
}

func provideEngineService(
	registry *core.Registry,
	ledgerStore core.ILedgerStore,
	oracleSrv core.IPriceOracleService,
	bankSrv core.ICollateralBank,
	debtToken core.IDebtToken,
	journalStore core.IJournalStore,
) core.IEngineService {
	return engine.New(
		engine.Config{ID: cfg.Engine.ID},
		registry,
		ledgerStore,
		oracleSrv,
		bankSrv,
		debtToken,
		journalStore,
	)
}
