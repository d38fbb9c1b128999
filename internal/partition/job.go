package partition

import (
	"fmt"

	"github.com/agbru/matreduce/internal/matrix"
)

// Job is the state shared by the workers of one reduction run.
type Job struct {
	matrix   *matrix.Matrix
	workers  int
	cursor   Cursor
	slots    []Slot
	observer RowObserver
}

// NewJob prepares a run of workers over m with zeroed slots. A nil observer is
// replaced by NopObserver.
func NewJob(m *matrix.Matrix, workers int, observer RowObserver) *Job {
	if workers <= 0 {
		panic(fmt.Sprintf("partition: worker count must be positive, got %d", workers))
	}
	if observer == nil {
		observer = NopObserver{}
	}
	return &Job{
		matrix:   m,
		workers:  workers,
		slots:    make([]Slot, workers),
		observer: observer,
	}
}

// Matrix returns the matrix being reduced.
func (j *Job) Matrix() *matrix.Matrix { return j.matrix }

// Workers returns the number of workers the job was sized for.
func (j *Job) Workers() int { return j.workers }

// Cursor returns the shared cursor, or nil for strategies that do not use one.
func (j *Job) Cursor() Cursor { return j.cursor }

// Slot returns a copy of worker's accumulator. Only safe after that worker
// has returned.
func (j *Job) Slot(worker int) Slot { return j.slots[worker] }

// Slots returns a copy of every accumulator. Only safe after the join.
func (j *Job) Slots() []Slot {
	out := make([]Slot, len(j.slots))
	copy(out, j.slots)
	return out
}

func (j *Job) visit(worker, row int) {
	s := &j.slots[worker]
	s.Sum += j.matrix.RowSum(row)
	s.Rows++
	j.observer.RowVisited(worker, row)
}
