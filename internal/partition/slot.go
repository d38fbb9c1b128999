package partition

import "golang.org/x/sys/cpu"

// Slot is the accumulator owned by a single worker.
type Slot struct {
	// Rows counts the rows this worker visited.
	Rows int
	// Sum is the partial sum of every visited row.
	Sum uint64

	// Keeps adjacent slots on separate cache lines.
	_ cpu.CacheLinePad
}

// Totals is the grand result folded from every slot after the join.
type Totals struct {
	Rows     int
	GrossSum uint64
}

// Aggregate folds slots into Totals in a single pass. Callers must have joined
// every worker that writes into slots.
func Aggregate(slots []Slot) Totals {
	var t Totals
	for i := range slots {
		t.Rows += slots[i].Rows
		t.GrossSum += slots[i].Sum
	}
	return t
}

// Imbalance returns the spread between the busiest and the idlest worker.
func Imbalance(slots []Slot) int {
	if len(slots) == 0 {
		return 0
	}
	lo, hi := slots[0].Rows, slots[0].Rows
	for _, s := range slots[1:] {
		lo = min(lo, s.Rows)
		hi = max(hi, s.Rows)
	}
	return hi - lo
}
