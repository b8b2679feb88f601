package reconcile

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/config"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/notify"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/service/balanceservice"
)

type Aggregator interface {
	ReconcileAll(ctx context.Context) ([]balanceservice.ReconcileReport, error)
}

// Job sweeps every agent's stored balances against the ledgers on a
// cron schedule. Mismatches are reported, never repaired.
type Job struct {
	schedule   string
	aggregator Aggregator
	notifier   notify.Notifier
	cron       *cron.Cron
}

func New(cfg *config.Config, aggregator Aggregator, notifier notify.Notifier) *Job {
	return &Job{
		schedule:   cfg.ReconcileCron,
		aggregator: aggregator,
		notifier:   notifier,
		cron:       cron.New(),
	}
}

func (j *Job) Start(ctx context.Context) error {
	_, err := j.cron.AddFunc(j.schedule, func() { j.Sweep(ctx) })
	if err != nil {
		return fmt.Errorf("invalid reconcile schedule %q: %w", j.schedule, err)
	}
	j.cron.Start()
	zap.L().Info("Reconciliation job started", zap.String("schedule", j.schedule))

	go func() {
		<-ctx.Done()
		<-j.cron.Stop().Done()
		zap.L().Info("Reconciliation job stopped")
	}()
	return nil
}

// Sweep runs one full reconciliation pass and emits an event per
// drifted agent.
func (j *Job) Sweep(ctx context.Context) {
	mismatches, err := j.aggregator.ReconcileAll(ctx)
	if err != nil {
		zap.L().Error("Reconciliation sweep failed", zap.Error(err))
		return
	}
	if len(mismatches) == 0 {
		zap.L().Info("Reconciliation sweep clean")
		return
	}

	for _, report := range mismatches {
		drift := report.TotalActual.Sub(report.TotalExpected)
		j.notifier.Emit(ctx, notify.Event{
			Type:    notify.EventReconcileMismatch,
			AgentID: report.AgentID,
			Amount:  drift,
			Summary: fmt.Sprintf(
				"stored balances drifted from ledger: total %s vs %s, pending %s vs %s, available %s vs %s",
				report.TotalActual, report.TotalExpected,
				report.PendingActual, report.PendingExpected,
				report.AvailableActual, report.AvailableExpected,
			),
		})
	}
	zap.L().Warn("Reconciliation sweep found mismatches", zap.Int("count", len(mismatches)))
}
