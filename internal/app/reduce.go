package app

import (
	"context"
	"io"
	"strings"

	"github.com/agbru/matreduce/internal/cli"
	apperrors "github.com/agbru/matreduce/internal/errors"
	"github.com/agbru/matreduce/internal/logging"
	"github.com/agbru/matreduce/internal/matrix"
	"github.com/agbru/matreduce/internal/metrics"
	"github.com/agbru/matreduce/internal/orchestration"
	"github.com/agbru/matreduce/internal/partition"
	"github.com/agbru/matreduce/internal/sysmon"
)

// runReduce builds the matrix, runs the selected strategies and reports.
func (a *Application) runReduce(ctx context.Context, out io.Writer) int {
	cfg := a.Config

	if !cfg.Quiet {
		cli.DisplayBanner(cfg.HardwareThreads, out)
	}
	if cfg.Verbose {
		cli.DisplaySystemStats(sysmon.Sample(), out)
	}

	// The matrix is fully populated here, before any worker is spawned.
	m, err := matrix.Generate(cfg.Rows, cfg.Cols, cfg.Seed)
	if err != nil {
		a.Logger.Error("matrix generation failed", err)
		return apperrors.HandleError(err, a.ErrWriter)
	}
	reference := partition.Totals{Rows: m.Rows(), GrossSum: m.Total()}

	strategies := orchestration.GetStrategiesToRun(cfg, a.Factory)
	if cfg.Verbose {
		names := make([]string, 0, len(strategies))
		for _, s := range strategies {
			names = append(names, s.Name())
		}
		cli.DisplayRunHeader(strings.Join(names, ", "), cfg.Workers, cfg.RequestedWorkers, m.Rows(), m.Cols(), out)
	}

	opts := orchestration.Options{Logger: a.Logger}
	if !cfg.Quiet {
		opts.Reporter = cli.NewCLIWorkerReporter(out, len(strategies) > 1)
		opts.Progress = cli.CLIProgressReporter{}
		opts.ProgressOut = a.ErrWriter
	}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()
	results := orchestration.ExecuteStrategies(ctx, m, strategies, cfg.Workers, opts)
	after := collector.Snapshot()

	recorder := metrics.NewRecorder()
	for _, r := range results {
		recorder.Observe(metrics.Run{
			Strategy: r.Strategy,
			Slots:    r.Slots,
			Totals:   r.Totals,
			Duration: r.Duration,
		})
	}

	presenter := cli.CLIResultPresenter{Quiet: cfg.Quiet, Verbose: cfg.Verbose, Reference: reference}
	code := orchestration.AnalyzeResults(results, reference, presenter, presenter, out)
	if code != apperrors.ExitSuccess {
		a.Logger.Error("reduction failed verification", nil,
			logging.Int("rows", reference.Rows),
			logging.Uint64("gross_sum", reference.GrossSum))
		return code
	}

	if cfg.Verbose {
		for _, r := range results {
			a.Logger.Info("reduction complete",
				logging.String("strategy", r.Strategy),
				logging.Int("workers", r.Workers),
				logging.Int("total_work", r.Totals.Rows),
				logging.Uint64("gross_sum", r.Totals.GrossSum),
				logging.Int("imbalance", partition.Imbalance(r.Slots)),
				logging.Duration("elapsed", r.Duration),
				logging.Float64("rows_per_second", rowsPerSecond(r)))
		}
		cli.DisplayMemoryStats(before.Delta(after), out)
	}
	if cfg.Metrics {
		if err := recorder.WriteText(out); err != nil {
			a.Logger.Error("writing metrics failed", err)
			return apperrors.HandleError(apperrors.WrapError(err, "write metrics"), a.ErrWriter)
		}
	}
	return apperrors.ExitSuccess
}

func rowsPerSecond(r orchestration.Result) float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Totals.Rows) / r.Duration.Seconds()
}
