package cli

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	apperrors "github.com/agbru/matreduce/internal/errors"
	"github.com/agbru/matreduce/internal/orchestration"
	"github.com/agbru/matreduce/internal/partition"
	"github.com/agbru/matreduce/internal/ui"
)

func TestCLIWorkerReporter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := NewCLIWorkerReporter(&buf, false)
	r.WorkerStarted(partition.StaticName, 1)
	r.WorkerFinished(partition.StaticName, 1, partition.Slot{Rows: 2, Sum: 6})

	want := "Thread 1 starting\nThread 1 ending tcount=2 sum=6\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestCLIWorkerReporter_StrategyPrefix(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := NewCLIWorkerReporter(&buf, true)
	r.WorkerStarted(partition.DynamicName, 0)
	if got := buf.String(); got != "[dynamic] Thread 0 starting\n" {
		t.Errorf("output = %q", got)
	}
}

// TestCLIWorkerReporter_ConcurrentLines checks that lines from concurrent
// workers never interleave.
func TestCLIWorkerReporter_ConcurrentLines(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := NewCLIWorkerReporter(&buf, false)

	const workers = 16
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			r.WorkerStarted(partition.StaticName, id)
			r.WorkerFinished(partition.StaticName, id, partition.Slot{Rows: id, Sum: uint64(id)})
		}(w)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2*workers {
		t.Fatalf("got %d lines, want %d", len(lines), 2*workers)
	}
	for w := 0; w < workers; w++ {
		want := fmt.Sprintf("Thread %d ending tcount=%d sum=%d", w, w, w)
		if !strings.Contains(buf.String(), want+"\n") {
			t.Errorf("missing line %q", want)
		}
	}
}

func TestCLIResultPresenter_PresentResult(t *testing.T) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	result := orchestration.Result{
		Strategy: partition.StaticName,
		Workers:  2,
		Slots:    []partition.Slot{{Rows: 2, Sum: 4}, {Rows: 2, Sum: 6}},
		Totals:   partition.Totals{Rows: 4, GrossSum: 10},
	}

	tests := []struct {
		name      string
		presenter CLIResultPresenter
		contains  []string
		exact     string
	}{
		{name: "default", presenter: CLIResultPresenter{}, exact: "total_work=4 gross_sum=10\n"},
		{name: "quiet", presenter: CLIResultPresenter{Quiet: true}, exact: "10\n"},
		{
			name:      "verbose",
			presenter: CLIResultPresenter{Verbose: true},
			contains:  []string{"per-worker summary", "Partial sum", "50.0%", "Imbalance: 0 rows", "total_work=4 gross_sum=10"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.presenter.PresentResult(result, &buf)
			out := buf.String()
			if tt.exact != "" && out != tt.exact {
				t.Errorf("output = %q, want %q", out, tt.exact)
			}
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("expected output to contain %q, got:\n%s", s, out)
				}
			}
		})
	}
}

func TestCLIResultPresenter_PresentComparisonTable(t *testing.T) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	reference := partition.Totals{Rows: 4, GrossSum: 10}
	results := []orchestration.Result{
		{Strategy: partition.DynamicName, Workers: 2, Totals: reference},
		{Strategy: partition.StaticName, Workers: 2, Totals: partition.Totals{Rows: 3, GrossSum: 7}},
	}

	var buf bytes.Buffer
	CLIResultPresenter{Reference: reference}.PresentComparisonTable(results, &buf)
	out := buf.String()
	for _, s := range []string{"Comparison Summary", "Strategy", "Status", "dynamic", "static", "OK", "MISMATCH", "< 1µs"} {
		if !strings.Contains(out, s) {
			t.Errorf("expected table to contain %q, got:\n%s", s, out)
		}
	}

	buf.Reset()
	CLIResultPresenter{}.PresentComparisonTable(results, &buf)
	if strings.Contains(buf.String(), "Status") {
		t.Error("status column shown without a reference")
	}

	buf.Reset()
	CLIResultPresenter{Quiet: true}.PresentComparisonTable(results, &buf)
	if buf.Len() != 0 {
		t.Errorf("quiet mode printed a table: %q", buf.String())
	}
}

func TestCLIResultPresenter_HandleError(t *testing.T) {
	err := apperrors.MismatchError{Strategy: "static", WantRows: 4, GotRows: 3, WantSum: 10, GotSum: 7}

	ui.SetCurrentTheme(ui.NoColorTheme)
	var buf bytes.Buffer
	if code := (CLIResultPresenter{}).HandleError(err, &buf); code != apperrors.ExitErrorMismatch {
		t.Errorf("code = %d, want %d", code, apperrors.ExitErrorMismatch)
	}
	if !strings.Contains(buf.String(), "Reduction mismatch") {
		t.Errorf("output = %q", buf.String())
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("no-color output contains escapes: %q", buf.String())
	}

	ui.SetCurrentTheme(ui.DarkTheme)
	defer ui.SetCurrentTheme(ui.NoColorTheme)
	buf.Reset()
	CLIResultPresenter{}.HandleError(err, &buf)
	out := buf.String()
	if !strings.HasPrefix(out, ui.DarkTheme.Error) || !strings.HasSuffix(out, ui.DarkTheme.Reset+"\n") {
		t.Errorf("error not wrapped in the error color: %q", out)
	}
}

func TestCLIResultPresenter_PresentAgreement(t *testing.T) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	results := []orchestration.Result{{Strategy: partition.StaticName}, {Strategy: partition.DynamicName}}

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentAgreement(results, &buf)
	if want := "\nGlobal Status: Success. All strategies agree.\n"; buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	CLIResultPresenter{Quiet: true}.PresentAgreement(results, &buf)
	if buf.Len() != 0 {
		t.Errorf("quiet mode printed %q", buf.String())
	}
}

func TestFormatComparisonTable_StatusColors(t *testing.T) {
	ui.SetCurrentTheme(ui.DarkTheme)
	defer ui.SetCurrentTheme(ui.NoColorTheme)
	reference := partition.Totals{Rows: 4, GrossSum: 10}
	results := []orchestration.Result{
		{Strategy: partition.DynamicName, Workers: 2, Totals: reference},
		{Strategy: partition.StaticName, Workers: 2, Totals: partition.Totals{Rows: 3, GrossSum: 7}},
	}
	out := FormatComparisonTable(results, reference)
	if !strings.Contains(out, ui.DarkTheme.Success+"OK") {
		t.Errorf("OK not rendered in the success color:\n%q", out)
	}
	if !strings.Contains(out, ui.DarkTheme.Error+"MISMATCH") {
		t.Errorf("MISMATCH not rendered in the error color:\n%q", out)
	}
}
