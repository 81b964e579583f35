package plot2d

import "testing"

func TestDataArrayTuples(t *testing.T) {
	a := NewDataArray("speed", 2)
	if got := a.Name(); got != "speed" {
		t.Errorf("Name() = %q", got)
	}

	a.InsertNextTuple(1, 2)
	a.InsertNextTuple(3) // short tuple, zero-filled
	a.InsertNextTuple(4, 5, 6) // long tuple, truncated

	if got := a.NumberOfTuples(); got != 3 {
		t.Fatalf("NumberOfTuples() = %d, want 3", got)
	}
	tests := []struct {
		i, comp int
		want    float64
	}{
		{0, 0, 1}, {0, 1, 2},
		{1, 0, 3}, {1, 1, 0},
		{2, 0, 4}, {2, 1, 5},
	}
	for _, tt := range tests {
		if got := a.Component(tt.i, tt.comp); got != tt.want {
			t.Errorf("Component(%d, %d) = %v, want %v", tt.i, tt.comp, got, tt.want)
		}
	}
}

func TestDataArrayComponentFloor(t *testing.T) {
	a := NewDataArray("x", 0)
	if got := a.NumberOfComponents(); got != 1 {
		t.Errorf("component count %d, want floor of 1", got)
	}
}

func TestDataArraySetComponent(t *testing.T) {
	a := NewDataArray("x", 1)
	a.InsertNextTuple(1)
	a.SetComponent(0, 0, 42)
	if got := a.Component(0, 0); got != 42 {
		t.Errorf("Component after SetComponent = %v, want 42", got)
	}
}

func TestFieldDataColumns(t *testing.T) {
	f := NewFieldData()
	ab := NewDataArray("ab", 2)
	ab.InsertNextTuple(1, 2)
	c := NewDataArray("c", 1)
	c.InsertNextTuple(3)
	f.AddArray(ab)
	f.AddArray(c)

	if got := f.NumberOfArrays(); got != 2 {
		t.Errorf("NumberOfArrays() = %d, want 2", got)
	}
	if got := f.NumberOfComponents(); got != 3 {
		t.Errorf("NumberOfComponents() = %d, want 3", got)
	}

	// Columns concatenate across arrays in insertion order.
	for comp, want := range []float64{1, 2, 3} {
		if got := f.Component(0, comp); got != want {
			t.Errorf("Component(0, %d) = %v, want %v", comp, got, want)
		}
	}
	if got := f.Component(0, 5); got != 0 {
		t.Errorf("Component past the last column = %v, want 0", got)
	}
}

func TestFieldDataMTime(t *testing.T) {
	f := NewFieldData()
	before := f.MTime()

	f.AddArray(NewDataArray("x", 1))
	afterAdd := f.MTime()
	if !afterAdd.After(before) {
		t.Error("AddArray did not advance MTime")
	}

	f.Modified()
	if !f.MTime().After(afterAdd) {
		t.Error("Modified did not advance MTime")
	}
}
