package plot2d

// DataArray is a named array of numeric tuples. Each tuple holds a fixed
// number of components; values are stored flat, tuple-major.
type DataArray struct {
	name       string
	components int
	values     []float64
}

// NewDataArray creates an empty array with the given name and number of
// components per tuple. A component count below 1 is treated as 1.
func NewDataArray(name string, components int) *DataArray {
	if components < 1 {
		components = 1
	}
	return &DataArray{name: name, components: components}
}

// Name returns the array name.
func (a *DataArray) Name() string { return a.name }

// NumberOfComponents returns the number of components per tuple.
func (a *DataArray) NumberOfComponents() int { return a.components }

// NumberOfTuples returns the number of complete tuples stored.
func (a *DataArray) NumberOfTuples() int { return len(a.values) / a.components }

// InsertNextTuple appends one tuple. Missing components are zero-filled,
// extra components are dropped, so the flat storage always holds complete
// tuples.
func (a *DataArray) InsertNextTuple(values ...float64) {
	tuple := make([]float64, a.components)
	copy(tuple, values)
	a.values = append(a.values, tuple...)
}

// Component returns component comp of tuple i.
func (a *DataArray) Component(i, comp int) float64 {
	return a.values[i*a.components+comp]
}

// SetComponent sets component comp of tuple i.
func (a *DataArray) SetComponent(i, comp int, v float64) {
	a.values[i*a.components+comp] = v
}

// FieldData is a 2D numeric table assembled from one or more data arrays.
// The table's columns are the concatenated components of all arrays, in
// array order; a row is one tuple index across every array. Arrays may
// have different tuple counts (a ragged field); consumers use the minimum
// tuple count as the effective row count.
type FieldData struct {
	arrays []*DataArray
	mtime  TimeStamp
}

// NewFieldData creates an empty field.
func NewFieldData() *FieldData {
	f := &FieldData{}
	f.mtime.Modified()
	return f
}

// AddArray appends an array to the field and advances the field's
// modification time. The field borrows the array; the caller must call
// Modified after mutating an array already added.
func (f *FieldData) AddArray(a *DataArray) {
	f.arrays = append(f.arrays, a)
	f.mtime.Modified()
}

// NumberOfArrays returns the number of arrays in the field.
func (f *FieldData) NumberOfArrays() int { return len(f.arrays) }

// Array returns the i-th array.
func (f *FieldData) Array(i int) *DataArray { return f.arrays[i] }

// NumberOfComponents returns the total number of columns: the sum of the
// component counts of all arrays.
func (f *FieldData) NumberOfComponents() int {
	total := 0
	for _, a := range f.arrays {
		total += a.components
	}
	return total
}

// Component returns the value at (tuple, comp), where comp indexes the
// concatenated components of all arrays. Returns 0 for a column past the
// end of the field.
func (f *FieldData) Component(tuple, comp int) float64 {
	for _, a := range f.arrays {
		if comp < a.components {
			return a.Component(tuple, comp)
		}
		comp -= a.components
	}
	return 0
}

// MTime returns the field's modification time.
func (f *FieldData) MTime() TimeStamp { return f.mtime }

// Modified advances the field's modification time. Call it after mutating
// an array in place.
func (f *FieldData) Modified() { f.mtime.Modified() }
