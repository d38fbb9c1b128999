package orchestration

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/matreduce/internal/errors"
	"github.com/agbru/matreduce/internal/logging"
	"github.com/agbru/matreduce/internal/matrix"
	"github.com/agbru/matreduce/internal/partition"
)

var tracer = otel.Tracer("github.com/agbru/matreduce/internal/orchestration")

// Options wires the collaborators of a run. Every field is optional.
type Options struct {
	// Observer is notified of every visited row.
	Observer partition.RowObserver
	// Reporter receives worker start/finish events.
	Reporter WorkerReporter
	// Progress displays a live row count. Nil disables progress tracking.
	Progress    ProgressReporter
	ProgressOut io.Writer
	Logger      logging.Logger
}

func (o Options) withDefaults() Options {
	if o.Reporter == nil {
		o.Reporter = NullWorkerReporter{}
	}
	if o.ProgressOut == nil {
		o.ProgressOut = io.Discard
	}
	if o.Logger == nil {
		o.Logger = logging.Nop()
	}
	return o
}

// Execute reduces m with strategy over workers goroutines.
//
// The matrix must be fully built before the call. Every worker is joined
// before the slots are aggregated, on every return path.
func Execute(ctx context.Context, m *matrix.Matrix, strategy partition.Strategy, workers int, opts Options) Result {
	opts = opts.withDefaults()
	name := strategy.Name()

	ctx, span := tracer.Start(ctx, "matreduce.execute")
	defer span.End()
	span.SetAttributes(
		attribute.String("strategy", name),
		attribute.Int("workers", workers),
		attribute.Int("rows", m.Rows()),
		attribute.Int("cols", m.Cols()),
	)

	var observers partition.MultiObserver
	if opts.Observer != nil {
		observers = append(observers, opts.Observer)
	}
	var progress *ProgressCounter
	if opts.Progress != nil {
		progress = NewProgressCounter(m.Rows())
		observers = append(observers, progress)
	}
	var observer partition.RowObserver
	switch len(observers) {
	case 0:
	case 1:
		observer = observers[0]
	default:
		observer = observers
	}

	job := partition.NewJob(m, workers, observer)
	strategy.Prepare(job)

	var displayWg sync.WaitGroup
	stopProgress := func() {}
	if progress != nil {
		var progressCtx context.Context
		progressCtx, stopProgress = context.WithCancel(ctx)
		displayWg.Add(1)
		go opts.Progress.DisplayProgress(progressCtx, &displayWg, progress, opts.ProgressOut)
	}

	opts.Logger.Debug("spawning workers", logging.String("strategy", name), logging.Int("workers", workers))
	start := time.Now()
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		id := w
		g.Go(func() error {
			_, wspan := tracer.Start(ctx, "matreduce.worker")
			defer wspan.End()

			opts.Reporter.WorkerStarted(name, id)
			strategy.Work(job, id)
			slot := job.Slot(id)
			opts.Reporter.WorkerFinished(name, id, slot)

			wspan.SetAttributes(
				attribute.Int("worker", id),
				attribute.Int("rows_processed", slot.Rows),
				attribute.String("partial_sum", strconv.FormatUint(slot.Sum, 10)),
			)
			opts.Logger.Debug("worker finished",
				logging.String("strategy", name),
				logging.Int("worker", id),
				logging.Int("rows", slot.Rows),
				logging.Uint64("sum", slot.Sum))
			return nil
		})
	}
	_ = g.Wait()
	elapsed := time.Since(start)

	stopProgress()
	displayWg.Wait()

	slots := job.Slots()
	totals := partition.Aggregate(slots)
	span.SetAttributes(
		attribute.Int("total_rows_processed", totals.Rows),
		attribute.String("gross_sum", strconv.FormatUint(totals.GrossSum, 10)),
	)
	opts.Logger.Debug("workers joined",
		logging.String("strategy", name),
		logging.Int("total_work", totals.Rows),
		logging.Uint64("gross_sum", totals.GrossSum),
		logging.Duration("elapsed", elapsed))

	return Result{
		Strategy: name,
		Workers:  workers,
		Slots:    slots,
		Totals:   totals,
		Duration: elapsed,
	}
}

// ExecuteStrategies runs each strategy in turn over the same matrix.
func ExecuteStrategies(ctx context.Context, m *matrix.Matrix, strategies []partition.Strategy, workers int, opts Options) []Result {
	results := make([]Result, 0, len(strategies))
	for _, s := range strategies {
		results = append(results, Execute(ctx, m, s, workers, opts))
	}
	return results
}

// Verify checks that result visited every row exactly once in aggregate and
// reproduced the reference sum.
func Verify(result Result, reference partition.Totals) error {
	if result.Totals == reference {
		return nil
	}
	return apperrors.MismatchError{
		Strategy: result.Strategy,
		WantRows: reference.Rows,
		GotRows:  result.Totals.Rows,
		WantSum:  reference.GrossSum,
		GotSum:   result.Totals.GrossSum,
	}
}

// AnalyzeResults verifies every result against reference, presents them and
// returns the exit code.
func AnalyzeResults(results []Result, reference partition.Totals, presenter ResultPresenter, handler ErrorHandler, out io.Writer) int {
	if len(results) == 0 {
		return handler.HandleError(fmt.Errorf("no strategy was run"), out)
	}

	var firstErr error
	for _, r := range results {
		if err := Verify(r, reference); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if len(results) > 1 {
		presenter.PresentComparisonTable(results, out)
	}
	if firstErr != nil {
		return handler.HandleError(firstErr, out)
	}
	if len(results) > 1 {
		presenter.PresentAgreement(results, out)
	}
	presenter.PresentResult(results[0], out)
	return apperrors.ExitSuccess
}
