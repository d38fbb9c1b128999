//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/agbru/matreduce/internal/partition"
)

// Result is the outcome of one reduction run.
type Result struct {
	// Strategy is the name of the partition strategy used.
	Strategy string
	// Workers is the number of workers spawned.
	Workers int
	// Slots holds each worker's accumulator, indexed by worker id.
	Slots []partition.Slot
	// Totals is the aggregate of Slots.
	Totals partition.Totals
	// Duration is the wall time from first spawn to the last join.
	Duration time.Duration
}

// WorkerReporter is told when each worker starts and finishes. Calls arrive
// concurrently from the worker goroutines.
type WorkerReporter interface {
	WorkerStarted(strategy string, worker int)
	WorkerFinished(strategy string, worker int, slot partition.Slot)
}

// ProgressReporter displays progress while the workers run. DisplayProgress is
// started in its own goroutine and must return, calling wg.Done, once ctx is
// cancelled.
type ProgressReporter interface {
	DisplayProgress(ctx context.Context, wg *sync.WaitGroup, progress *ProgressCounter, out io.Writer)
}

// ResultPresenter renders finished runs.
type ResultPresenter interface {
	// PresentComparisonTable summarizes several runs over the same matrix.
	PresentComparisonTable(results []Result, out io.Writer)
	// PresentAgreement reports that every compared run matched the reference.
	PresentAgreement(results []Result, out io.Writer)
	// PresentResult prints the totals of a run.
	PresentResult(result Result, out io.Writer)
}

// ErrorHandler reports a failed verification and returns an exit code.
type ErrorHandler interface {
	HandleError(err error, out io.Writer) int
}

// NullWorkerReporter ignores lifecycle events.
type NullWorkerReporter struct{}

// WorkerStarted does nothing.
func (NullWorkerReporter) WorkerStarted(string, int) {}

// WorkerFinished does nothing.
func (NullWorkerReporter) WorkerFinished(string, int, partition.Slot) {}

// NullProgressReporter displays nothing and returns once ctx is done.
type NullProgressReporter struct{}

// DisplayProgress waits for ctx.
func (NullProgressReporter) DisplayProgress(ctx context.Context, wg *sync.WaitGroup, _ *ProgressCounter, _ io.Writer) {
	defer wg.Done()
	<-ctx.Done()
}
