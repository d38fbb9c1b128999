package partition

import (
	"fmt"
	"sync"
	"sync/atomic"

	apperrors "github.com/agbru/matreduce/internal/errors"
)

// Cursor hands out row indices to dynamic workers. Claim returns each index
// in [0, rows) exactly once, highest first, then reports exhaustion forever.
type Cursor interface {
	// Claim decrements the cursor and returns the new value as the row to
	// process. ok is false once the cursor has reached zero.
	Claim() (row int, ok bool)
	// Remaining returns the number of rows not yet claimed.
	Remaining() int
}

// CursorKind selects a Cursor implementation.
type CursorKind string

const (
	// AtomicCursorKind claims rows with a compare-and-swap loop.
	AtomicCursorKind CursorKind = "atomic"
	// LockedCursorKind claims rows under a mutex.
	LockedCursorKind CursorKind = "mutex"
)

// ParseCursorKind validates a cursor name from configuration.
func ParseCursorKind(name string) (CursorKind, error) {
	switch kind := CursorKind(name); kind {
	case AtomicCursorKind, LockedCursorKind:
		return kind, nil
	case "":
		return AtomicCursorKind, nil
	default:
		return "", apperrors.NewConfigError("unknown cursor %q (expected %s|%s)", name, AtomicCursorKind, LockedCursorKind)
	}
}

// NewCursor creates a cursor of the given kind positioned at rows.
func NewCursor(kind CursorKind, rows int) Cursor {
	switch kind {
	case LockedCursorKind:
		return NewLockedCursor(rows)
	case AtomicCursorKind, "":
		return NewAtomicCursor(rows)
	default:
		panic(fmt.Sprintf("partition: unknown cursor kind %q", kind))
	}
}

// AtomicCursor is a lock-free Cursor. The counter never drops below zero.
type AtomicCursor struct {
	next atomic.Int64
}

// NewAtomicCursor returns an AtomicCursor positioned at rows.
func NewAtomicCursor(rows int) *AtomicCursor {
	c := &AtomicCursor{}
	c.next.Store(int64(rows))
	return c
}

// Claim implements Cursor.
func (c *AtomicCursor) Claim() (int, bool) {
	for {
		cur := c.next.Load()
		if cur <= 0 {
			return 0, false
		}
		if c.next.CompareAndSwap(cur, cur-1) {
			return int(cur - 1), true
		}
	}
}

// Remaining implements Cursor.
func (c *AtomicCursor) Remaining() int { return int(c.next.Load()) }

// LockedCursor serializes every read-decrement-test behind a mutex.
type LockedCursor struct {
	mu   sync.Mutex
	next int
}

// NewLockedCursor returns a LockedCursor positioned at rows.
func NewLockedCursor(rows int) *LockedCursor {
	return &LockedCursor{next: rows}
}

// Claim implements Cursor.
func (c *LockedCursor) Claim() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.next <= 0 {
		return 0, false
	}
	c.next--
	return c.next, true
}

// Remaining implements Cursor.
func (c *LockedCursor) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.next
}
