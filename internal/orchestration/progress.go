package orchestration

import "sync/atomic"

// ProgressCounter counts visited rows across all workers. It is a
// partition.RowObserver.
type ProgressCounter struct {
	total int
	done  atomic.Int64
}

// NewProgressCounter creates a counter for a run over total rows.
func NewProgressCounter(total int) *ProgressCounter {
	return &ProgressCounter{total: total}
}

// RowVisited implements partition.RowObserver.
func (p *ProgressCounter) RowVisited(int, int) { p.done.Add(1) }

// Done returns the number of rows visited so far.
func (p *ProgressCounter) Done() int { return int(p.done.Load()) }

// Total returns the number of rows in the run.
func (p *ProgressCounter) Total() int { return p.total }

// Fraction returns progress in [0, 1].
func (p *ProgressCounter) Fraction() float64 {
	if p.total <= 0 {
		return 1
	}
	return min(float64(p.Done())/float64(p.total), 1)
}
