package sentinel

import (
	"context"

	"anchor/core"

	"github.com/fox-one/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Worker sentinel worker. Scans every account with outstanding debt
// and reports the ones below the solvency floor so an operator or bot
// can liquidate them.
type Worker struct {
	Engine core.IEngineService
	Ledger core.ILedgerStore
	Spec   string
}

// New new sentinel worker
func New(engine core.IEngineService, ledger core.ILedgerStore) *Worker {
	return &Worker{
		Engine: engine,
		Ledger: ledger,
		Spec:   "@every 1m",
	}
}

// Run run worker
func (w *Worker) Run(ctx context.Context) error {
	job := cron.New()
	if _, err := job.AddFunc(w.Spec, func() {
		w.onWork(ctx)
	}); err != nil {
		return err
	}

	job.Start()
	defer job.Stop()

	<-ctx.Done()
	return ctx.Err()
}

func (w *Worker) onWork(ctx context.Context) {
	log := logger.FromContext(ctx).WithField("worker", "sentinel")

	var unsafe int
	for _, userID := range w.Ledger.Users(ctx) {
		if w.Ledger.Debt(ctx, userID).IsZero() {
			continue
		}

		hf, err := w.Engine.HealthFactor(ctx, userID)
		if err != nil {
			log.WithError(err).Errorln("health factor of", userID)
			continue
		}

		if hf.Lt(core.MinHealthFactor()) {
			unsafe++
			log.WithFields(map[string]interface{}{
				"user":          userID,
				"health_factor": hf.Dec(),
			}).Infoln("account liquidatable")
		}
	}

	if unsafe > 0 {
		log.Infoln(unsafe, "accounts below the solvency floor")
	}
}
