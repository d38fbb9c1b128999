package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/agbru/matreduce/internal/format"
	"github.com/agbru/matreduce/internal/metrics"
	"github.com/agbru/matreduce/internal/orchestration"
	"github.com/agbru/matreduce/internal/partition"
	"github.com/agbru/matreduce/internal/sysmon"
	"github.com/agbru/matreduce/internal/ui"
)

// FormatResult returns the totals line printed after the join.
func FormatResult(totals partition.Totals) string {
	return fmt.Sprintf("total_work=%d gross_sum=%d", totals.Rows, totals.GrossSum)
}

// FormatQuietResult returns the gross sum alone, for scripting.
func FormatQuietResult(totals partition.Totals) string {
	return strconv.FormatUint(totals.GrossSum, 10)
}

// DisplayResult prints the totals line.
func DisplayResult(totals partition.Totals, out io.Writer) {
	fmt.Fprintln(out, FormatResult(totals))
}

// DisplayQuietResult prints the gross sum alone.
func DisplayQuietResult(totals partition.Totals, out io.Writer) {
	fmt.Fprintln(out, FormatQuietResult(totals))
}

// DisplayBanner prints the hardware thread count.
func DisplayBanner(hardwareThreads int, out io.Writer) {
	fmt.Fprintf(out, "%d concurrent threads supported.\n", hardwareThreads)
}

// DisplayRunHeader prints the verbose description of the run about to start.
func DisplayRunHeader(strategy string, workers, requested, rows, cols int, out io.Writer) {
	fmt.Fprintf(out, "%sStrategy:%s %s%s%s  %sWorkers:%s %d",
		ui.ColorBold(), ui.ColorReset(), ui.ColorBlue(), strategy, ui.ColorReset(),
		ui.ColorBold(), ui.ColorReset(), workers)
	if requested != workers {
		fmt.Fprintf(out, " %s(requested %d, clamped)%s", ui.ColorYellow(), requested, ui.ColorReset())
	}
	fmt.Fprintf(out, "  %sMatrix:%s %s%dx%d%s\n", ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), rows, cols, ui.ColorReset())
}

// DisplaySystemStats prints a host sample.
func DisplaySystemStats(s sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "%sSystem:%s %d logical CPUs", ui.ColorMagenta(), ui.ColorReset(), s.LogicalCPUs)
	if s.PhysicalCPUs > 0 {
		fmt.Fprintf(out, " (%d physical)", s.PhysicalCPUs)
	}
	fmt.Fprintf(out, ", CPU %.1f%%, memory %.1f%%\n", s.CPUPercent, s.MemPercent)
}

// DisplayMemoryStats prints allocation and GC activity for a run.
func DisplayMemoryStats(m metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(m.HeapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(m.TotalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", m.NumGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(m.PauseTotalNs)/1e6)
}

func newTable(headers ...string) (*table.Table, ui.TableStyles) {
	styles := ui.CurrentTableStyles()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Border).
		Headers(headers...)
	return t, styles
}

// FormatWorkerTable renders one row per worker slot followed by the totals.
func FormatWorkerTable(result orchestration.Result) string {
	t, styles := newTable("Worker", "Rows", "Partial sum", "Share")
	for i, slot := range result.Slots {
		share := 0.0
		if result.Totals.Rows > 0 {
			share = float64(slot.Rows) / float64(result.Totals.Rows) * 100
		}
		t.Row(strconv.Itoa(i), strconv.Itoa(slot.Rows), strconv.FormatUint(slot.Sum, 10), fmt.Sprintf("%.1f%%", share))
	}
	t.Row("total", strconv.Itoa(result.Totals.Rows), strconv.FormatUint(result.Totals.GrossSum, 10), "")
	t.StyleFunc(func(row, _ int) lipgloss.Style {
		if row == table.HeaderRow {
			return styles.Header
		}
		return styles.Cell
	})
	return t.String()
}

// DisplayWorkerTable prints the per-worker table of a run.
func DisplayWorkerTable(result orchestration.Result, out io.Writer) {
	fmt.Fprintf(out, "\n%s%s--- %s: per-worker summary ---%s\n", ui.ColorBold(), ui.ColorUnderline(), result.Strategy, ui.ColorReset())
	fmt.Fprintln(out, FormatWorkerTable(result))
	fmt.Fprintf(out, "Imbalance: %d rows  Duration: %s\n",
		partition.Imbalance(result.Slots), format.FormatExecutionDuration(result.Duration))
}

// FormatComparisonTable renders one row per strategy. When reference has
// rows, each run is marked as matching it or not.
func FormatComparisonTable(results []orchestration.Result, reference partition.Totals) string {
	headers := []string{"Strategy", "Workers", "Rows", "Gross sum", "Imbalance", "Duration"}
	check := reference.Rows > 0
	if check {
		headers = append(headers, "Status")
	}
	t, styles := newTable(headers...)
	for _, res := range results {
		duration := format.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		cells := []string{
			res.Strategy,
			strconv.Itoa(res.Workers),
			strconv.Itoa(res.Totals.Rows),
			strconv.FormatUint(res.Totals.GrossSum, 10),
			strconv.Itoa(partition.Imbalance(res.Slots)),
			duration,
		}
		if check {
			if orchestration.Verify(res, reference) == nil {
				cells = append(cells, ui.ColorGreen()+"OK"+ui.ColorReset())
			} else {
				cells = append(cells, ui.ColorRed()+"MISMATCH"+ui.ColorReset())
			}
		}
		t.Row(cells...)
	}
	t.StyleFunc(func(row, _ int) lipgloss.Style {
		if row == table.HeaderRow {
			return styles.Header
		}
		return styles.Cell
	})
	return t.String()
}
