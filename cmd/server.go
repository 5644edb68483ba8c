package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"anchor/handler"
	"anchor/handler/hc"
	"anchor/worker"
	"anchor/worker/sentinel"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "run anchor api server",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		registry := provideRegistry()
		ledgerStore := provideLedgerStore()
		journalStore := provideJournalStore(ctx)
		bankSrv := provideBank()
		debtToken := provideDebtToken()
		oracleSrv := provideOracleService(providePriceSource())
		engineSrv := provideEngineService(registry, ledgerStore, oracleSrv, bankSrv, debtToken, journalStore)

		mux := chi.NewMux()
		mux.Use(middleware.Recoverer)
		mux.Use(middleware.StripSlashes)
		mux.Use(cors.AllowAll().Handler)
		mux.Use(logger.WithRequestID)
		mux.Use(middleware.Logger)
		mux.Use(middleware.NewCompressor(5).Handler)

		{
			//hc
			mux.Mount("/hc", hc.Handle(rootCmd.Version))
		}

		{
			//restful api
			svr := handler.New(engineSrv, registry, ledgerStore, journalStore)
			mux.Mount("/api", svr.HandleRestAPI())
		}

		port, _ := cmd.Flags().GetInt("port")
		if !cmd.Flags().Changed("port") && cfg.API.Port > 0 {
			port = cfg.API.Port
		}

		addr := fmt.Sprintf(":%d", port)
		server := &http.Server{
			Addr:    addr,
			Handler: mux,
		}

		ctx, quit := context.WithCancel(ctx)
		signal.WithContextFunc(ctx, quit)

		workers := []worker.Worker{
			sentinel.New(engineSrv, ledgerStore),
		}

		g, ctx := errgroup.WithContext(ctx)
		for _, w := range workers {
			w := w
			g.Go(func() error {
				return w.Run(ctx)
			})
		}

		g.Go(func() error {
			logrus.Infoln("serve at", addr)
			return server.ListenAndServe()
		})

		g.Go(func() error {
			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		})

		if err := g.Wait(); err != nil && err != http.ErrServerClosed && err != context.Canceled {
			logrus.WithError(err).Fatal("server aborted")
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().IntP("port", "p", 9000, "server port")
}
