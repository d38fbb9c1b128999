// Package orchestration runs a partition strategy across a fixed set of
// workers, joins them and aggregates their slots. It reports worker lifecycle
// and progress through small interfaces so the presentation layer stays
// outside the core.
package orchestration
