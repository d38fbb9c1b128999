package matrix

import (
	"errors"
	"testing"

	apperrors "github.com/agbru/matreduce/internal/errors"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	m, err := Build(3, 4, func(r, c int) int32 { return int32(r*10 + c) })
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if m.Rows() != 3 || m.Cols() != 4 {
		t.Fatalf("dims = %dx%d, want 3x4", m.Rows(), m.Cols())
	}
	if got := m.At(2, 3); got != 23 {
		t.Errorf("At(2,3) = %d, want 23", got)
	}
	if got := m.RowSum(1); got != 10+11+12+13 {
		t.Errorf("RowSum(1) = %d, want %d", got, 10+11+12+13)
	}
}

func TestBuildRejectsNonPositiveDims(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		rows, cols int
		field      string
	}{
		{"zero rows", 0, 10, "rows"},
		{"negative rows", -1, 10, "rows"},
		{"zero cols", 10, 0, "cols"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Build(tt.rows, tt.cols, nil)
			var ve apperrors.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tt.field {
				t.Errorf("Field = %q, want %q", ve.Field, tt.field)
			}
		})
	}
}

func TestFromRows(t *testing.T) {
	t.Parallel()

	m, err := FromRows([][]int32{{1}, {2}, {3}, {4}})
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	if m.Total() != 10 {
		t.Errorf("Total() = %d, want 10", m.Total())
	}

	if _, err := FromRows([][]int32{{1, 2}, {3}}); err == nil {
		t.Error("expected error for ragged rows")
	}
	if _, err := FromRows(nil); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestRowSumWrapsNegativeValues(t *testing.T) {
	t.Parallel()

	m, err := FromRows([][]int32{{-1, 1}, {-5, 2}})
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	if got := m.RowSum(0); got != 0 {
		t.Errorf("RowSum(0) = %d, want 0", got)
	}
	// -3 modulo 2^64, combined with row 0 still yields -3.
	if got := m.Total(); got != ^uint64(0)-2 {
		t.Errorf("Total() = %d, want %d", got, ^uint64(0)-2)
	}
}

func TestAtPanicsOutOfRange(t *testing.T) {
	t.Parallel()

	m, _ := Build(2, 2, nil)
	defer func() {
		if recover() == nil {
			t.Error("At(2, 0) should panic")
		}
	}()
	m.At(2, 0)
}

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	a, err := Generate(DefaultRows, DefaultCols, DefaultSeed)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, _ := Generate(DefaultRows, DefaultCols, DefaultSeed)
	if a.Total() != b.Total() {
		t.Errorf("same seed produced different totals: %d vs %d", a.Total(), b.Total())
	}
	c, _ := Generate(DefaultRows, DefaultCols, DefaultSeed+1)
	if a.Total() == c.Total() {
		t.Error("different seeds should produce different matrices")
	}
	for r := 0; r < a.Rows(); r++ {
		for col := 0; col < a.Cols(); col++ {
			if a.At(r, col) < 0 {
				t.Fatalf("At(%d,%d) = %d, want non-negative", r, col, a.At(r, col))
			}
		}
	}
}
