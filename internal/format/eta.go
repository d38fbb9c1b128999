package format

import "time"

// ETA estimates time to completion from a progress fraction, assuming a
// constant rate since Start.
type ETA struct {
	Start time.Time
}

// NewETA starts an estimator at the current time.
func NewETA() ETA { return ETA{Start: time.Now()} }

// Remaining returns the estimated time left at now for the given fraction
// in [0, 1]. It returns 0 when no estimate is possible yet.
func (e ETA) Remaining(fraction float64, now time.Time) time.Duration {
	if fraction <= 0 {
		return 0
	}
	if fraction >= 1 {
		return 0
	}
	elapsed := now.Sub(e.Start)
	if elapsed <= 0 {
		return 0
	}
	total := time.Duration(float64(elapsed) / fraction)
	return total - elapsed
}
