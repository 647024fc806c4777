package sparse

import (
	"testing"
)

func TestMatrixSetAndGet(t *testing.T) {
	M := NewIntMatrix(10, 10, DefaultNullValue)
	M.Set(2, 3, 4711)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M(2,3) to be 4711, is %d", v)
	}
	if v := M.Value(9, 9); v != M.NullValue() {
		t.Errorf("expected M(9,9) to be null value, is %d", v)
	}
	if M.Values(9, 9) != nil {
		t.Errorf("expected values of M(9,9) to be nil")
	}
}

func TestMatrixAddCollectsValues(t *testing.T) {
	M := NewIntMatrix(10, 10, -1)
	M.Set(2, 3, 4711)
	M.Add(2, 3, 123)
	M.Add(2, 3, 7)
	vals := M.Values(2, 3)
	if len(vals) != 3 || vals[0] != 4711 || vals[1] != 123 || vals[2] != 7 {
		t.Errorf("expected values of M(2,3) to be [4711 123 7], are %v", vals)
	}
	if M.Count(2, 3) != 3 {
		t.Errorf("expected count of M(2,3) to be 3, is %d", M.Count(2, 3))
	}
	if M.ValueCount() != 1 {
		t.Errorf("expected 1 position to be set, have %d", M.ValueCount())
	}
	M.Set(2, 3, 1)
	if M.Count(2, 3) != 1 || M.Value(2, 3) != 1 {
		t.Errorf("expected Set to replace all values, have %v", M.Values(2, 3))
	}
}

func TestMatrixOrdering(t *testing.T) {
	M := NewIntMatrix(5, 5, -1)
	M.Set(4, 4, 44)
	M.Set(0, 1, 1)
	M.Set(2, 0, 20)
	M.Set(0, 0, 0)
	for _, pos := range [][3]int{{4, 4, 44}, {0, 1, 1}, {2, 0, 20}, {0, 0, 0}} {
		if v := M.Value(pos[0], pos[1]); v != int32(pos[2]) {
			t.Errorf("expected M(%d,%d) to be %d, is %d", pos[0], pos[1], pos[2], v)
		}
	}
	if M.ValueCount() != 4 {
		t.Errorf("expected 4 positions to be set, have %d", M.ValueCount())
	}
}

func TestMatrixValuesAreCopies(t *testing.T) {
	M := NewIntMatrix(2, 2, -1)
	M.Set(1, 1, 5)
	vals := M.Values(1, 1)
	vals[0] = 99
	if M.Value(1, 1) != 5 {
		t.Errorf("modifying result of Values() must not change matrix")
	}
}

func TestMatrixOutOfRange(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Set out of range to panic")
		}
	}()
	M := NewIntMatrix(2, 2, -1)
	M.Set(2, 0, 1)
}
