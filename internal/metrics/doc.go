// Package metrics records reduction runs as Prometheus metrics and samples
// Go runtime memory statistics.
package metrics
