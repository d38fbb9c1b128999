package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	apperrors "github.com/agbru/matreduce/internal/errors"
	"github.com/agbru/matreduce/internal/orchestration"
	"github.com/agbru/matreduce/internal/partition"
	"github.com/agbru/matreduce/internal/ui"
)

// CLIWorkerReporter prints a status line when each worker starts and ends.
// Lines from concurrent workers are serialized by a console lock.
type CLIWorkerReporter struct {
	mu  sync.Mutex
	out io.Writer
	// prefix adds the strategy name, for runs that execute several.
	prefix bool
}

var _ orchestration.WorkerReporter = (*CLIWorkerReporter)(nil)

// NewCLIWorkerReporter creates a reporter writing to out.
func NewCLIWorkerReporter(out io.Writer, withStrategy bool) *CLIWorkerReporter {
	return &CLIWorkerReporter{out: out, prefix: withStrategy}
}

func (r *CLIWorkerReporter) tag(strategy string) string {
	if r.prefix {
		return "[" + strategy + "] "
	}
	return ""
}

// WorkerStarted prints "Thread N starting".
func (r *CLIWorkerReporter) WorkerStarted(strategy string, worker int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "%sThread %d starting\n", r.tag(strategy), worker)
}

// WorkerFinished prints the worker's row count and partial sum.
func (r *CLIWorkerReporter) WorkerFinished(strategy string, worker int, slot partition.Slot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "%sThread %d ending tcount=%d sum=%d\n", r.tag(strategy), worker, slot.Rows, slot.Sum)
}

// CLIProgressReporter implements orchestration.ProgressReporter with a
// terminal spinner.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress delegates to DisplayProgress.
func (CLIProgressReporter) DisplayProgress(ctx context.Context, wg *sync.WaitGroup, progress *orchestration.ProgressCounter, out io.Writer) {
	DisplayProgress(ctx, wg, progress, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter and
// orchestration.ErrorHandler for terminal output.
type CLIResultPresenter struct {
	// Quiet prints only the gross sum.
	Quiet bool
	// Verbose adds the per-worker table.
	Verbose bool
	// Reference, when it has rows, adds a status column to comparisons.
	Reference partition.Totals
}

var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentComparisonTable prints a table comparing several strategies.
func (p CLIResultPresenter) PresentComparisonTable(results []orchestration.Result, out io.Writer) {
	if p.Quiet {
		return
	}
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")
	fmt.Fprintln(out, FormatComparisonTable(results, p.Reference))
}

// PresentAgreement prints the success line of a comparison. Quiet mode
// prints nothing.
func (p CLIResultPresenter) PresentAgreement(_ []orchestration.Result, out io.Writer) {
	if p.Quiet {
		return
	}
	fmt.Fprintf(out, "\nGlobal Status: %sSuccess. All strategies agree.%s\n", ui.ColorGreen(), ui.ColorReset())
}

// PresentResult prints the totals of a run.
func (p CLIResultPresenter) PresentResult(result orchestration.Result, out io.Writer) {
	if p.Quiet {
		DisplayQuietResult(result.Totals, out)
		return
	}
	if p.Verbose {
		DisplayWorkerTable(result, out)
	}
	DisplayResult(result.Totals, out)
}

// HandleError prints err in the error color and returns its exit code.
func (CLIResultPresenter) HandleError(err error, out io.Writer) int {
	var msg strings.Builder
	code := apperrors.HandleError(err, &msg)
	if msg.Len() > 0 {
		fmt.Fprintf(out, "%s%s%s\n", ui.ColorRed(), strings.TrimSuffix(msg.String(), "\n"), ui.ColorReset())
	}
	return code
}
