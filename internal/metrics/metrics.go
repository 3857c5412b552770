package metrics

import (
	"context"
	"log/slog"
	"time"

	gometrics "github.com/rcrowley/go-metrics"
)

// Metrics bundles the counters the engine reports. All instruments are safe
// for concurrent use.
type Metrics struct {
	registry gometrics.Registry

	QuickPicks      gometrics.Meter
	DrawExecutions  gometrics.Timer
	WinnersSelected gometrics.Counter
	EntriesImported gometrics.Meter
}

// New creates a Metrics with a private registry
func New() *Metrics {
	registry := gometrics.NewRegistry()
	return &Metrics{
		registry:        registry,
		QuickPicks:      gometrics.GetOrRegisterMeter("picks.quick", registry),
		DrawExecutions:  gometrics.GetOrRegisterTimer("draws.execution", registry),
		WinnersSelected: gometrics.GetOrRegisterCounter("draws.winners", registry),
		EntriesImported: gometrics.GetOrRegisterMeter("entries.imported", registry),
	}
}

// Snapshot returns the current instrument values keyed by metric name
func (m *Metrics) Snapshot() map[string]interface{} {
	picks := m.QuickPicks.Snapshot()
	executions := m.DrawExecutions.Snapshot()
	imports := m.EntriesImported.Snapshot()

	return map[string]interface{}{
		"picks.quick.count":       picks.Count(),
		"picks.quick.rate1m":      picks.Rate1(),
		"draws.execution.count":   executions.Count(),
		"draws.execution.mean_ms": executions.Mean() / float64(time.Millisecond),
		"draws.execution.max_ms":  float64(executions.Max()) / float64(time.Millisecond),
		"draws.winners.count":     m.WinnersSelected.Count(),
		"entries.imported.count":  imports.Count(),
		"entries.imported.rate1m": imports.Rate1(),
	}
}

// LogPeriodically dumps a snapshot to the logger every interval until the
// context is cancelled. Run it in its own goroutine.
func (m *Metrics) LogPeriodically(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			picks := m.QuickPicks.Snapshot()
			executions := m.DrawExecutions.Snapshot()
			logger.Info("metrics snapshot",
				"quickPicks", picks.Count(),
				"quickPickRate1m", picks.Rate1(),
				"drawsExecuted", executions.Count(),
				"drawMeanMs", executions.Mean()/float64(time.Millisecond),
				"winnersSelected", m.WinnersSelected.Count(),
				"entriesImported", m.EntriesImported.Snapshot().Count(),
			)
		}
	}
}
