//go:generate mockgen -source=observer.go -destination=mocks/mock_observer.go -package=mocks

package partition

// RowObserver is notified after a worker has folded a row into its slot.
// Implementations are called concurrently from every worker and must be safe
// for concurrent use.
type RowObserver interface {
	RowVisited(worker, row int)
}

// RowObserverFunc adapts a function to RowObserver.
type RowObserverFunc func(worker, row int)

// RowVisited calls f.
func (f RowObserverFunc) RowVisited(worker, row int) { f(worker, row) }

// NopObserver ignores every notification.
type NopObserver struct{}

// RowVisited does nothing.
func (NopObserver) RowVisited(int, int) {}

// MultiObserver fans a notification out to several observers, in order.
type MultiObserver []RowObserver

// RowVisited implements RowObserver.
func (m MultiObserver) RowVisited(worker, row int) {
	for _, o := range m {
		o.RowVisited(worker, row)
	}
}
