package partition

import "fmt"

// Strategy names as exposed on the command line.
const (
	StaticName  = "static"
	DynamicName = "dynamic"
)

// Strategy distributes the rows of a Job across its workers.
type Strategy interface {
	// Name returns the identifier of the strategy.
	Name() string
	// Prepare initializes any shared state on job. It runs once, before the
	// first worker is started.
	Prepare(job *Job)
	// Work runs the loop of a single worker to completion.
	Work(job *Job, worker int)
}

// Static assigns rows round-robin by worker id.
type Static struct{}

// Name implements Strategy.
func (Static) Name() string { return StaticName }

// Prepare implements Strategy. Static needs no shared state.
func (Static) Prepare(*Job) {}

// Work visits worker, worker+n, worker+2n, ... while below the row count.
func (Static) Work(job *Job, worker int) {
	rows, n := job.matrix.Rows(), job.workers
	for row := worker; row < rows; row += n {
		job.visit(worker, row)
	}
}

// StaticShare returns how many rows Static gives worker out of n over rows,
// i.e. ceil((rows-worker)/n).
func StaticShare(rows, n, worker int) int {
	if worker >= rows {
		return 0
	}
	return (rows - worker + n - 1) / n
}

// Dynamic lets workers claim rows from a shared Cursor until it runs out.
type Dynamic struct {
	// Cursor selects the cursor implementation. Empty means atomic.
	Cursor CursorKind
}

// Name implements Strategy.
func (Dynamic) Name() string { return DynamicName }

// Prepare positions a fresh cursor at the row count.
func (d Dynamic) Prepare(job *Job) {
	job.cursor = NewCursor(d.Cursor, job.matrix.Rows())
}

// Work claims rows until the cursor is exhausted.
func (Dynamic) Work(job *Job, worker int) {
	if job.cursor == nil {
		panic(fmt.Sprintf("partition: %s worker %d started before Prepare", DynamicName, worker))
	}
	for {
		row, ok := job.cursor.Claim()
		if !ok {
			return
		}
		job.visit(worker, row)
	}
}
