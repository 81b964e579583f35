package plot2d

// PolyData is a 2D geometric mesh: a shared point list plus line cells
// (polylines) and polygon cells indexing into it. Actors rebuild their
// PolyData in place; Initialize resets it while keeping allocations.
type PolyData struct {
	points     []Point
	lines      [][]int
	polys      [][]int
	polyColors []RGBA
}

// NewPolyData creates an empty mesh.
func NewPolyData() *PolyData {
	return &PolyData{}
}

// Initialize removes all points and cells, keeping capacity for reuse.
func (p *PolyData) Initialize() {
	p.points = p.points[:0]
	p.lines = p.lines[:0]
	p.polys = p.polys[:0]
	p.polyColors = p.polyColors[:0]
}

// AllocatePoints pre-sizes point storage for n points so that building a
// mesh of known size does not reallocate.
func (p *PolyData) AllocatePoints(n int) {
	if cap(p.points) < n {
		pts := make([]Point, len(p.points), n)
		copy(pts, p.points)
		p.points = pts
	}
}

// InsertNextPoint appends a point and returns its id.
func (p *PolyData) InsertNextPoint(x, y float64) int {
	p.points = append(p.points, Point{X: x, Y: y})
	return len(p.points) - 1
}

// InsertNextLine appends a polyline cell visiting the given point ids in
// order and returns the cell id.
func (p *PolyData) InsertNextLine(ids []int) int {
	p.lines = append(p.lines, ids)
	return len(p.lines) - 1
}

// InsertNextPoly appends a polygon cell with a constant fill color and
// returns the cell id.
func (p *PolyData) InsertNextPoly(ids []int, c RGBA) int {
	p.polys = append(p.polys, ids)
	p.polyColors = append(p.polyColors, c)
	return len(p.polys) - 1
}

// NumberOfPoints returns the number of points.
func (p *PolyData) NumberOfPoints() int { return len(p.points) }

// NumberOfLines returns the number of polyline cells.
func (p *PolyData) NumberOfLines() int { return len(p.lines) }

// NumberOfPolys returns the number of polygon cells.
func (p *PolyData) NumberOfPolys() int { return len(p.polys) }

// Point returns the point with the given id.
func (p *PolyData) Point(id int) Point { return p.points[id] }

// Line returns the point ids of polyline cell i. The returned slice is
// owned by the mesh and must not be modified.
func (p *PolyData) Line(i int) []int { return p.lines[i] }

// Poly returns the point ids of polygon cell i. The returned slice is
// owned by the mesh and must not be modified.
func (p *PolyData) Poly(i int) []int { return p.polys[i] }

// PolyColor returns the fill color of polygon cell i.
func (p *PolyData) PolyColor(i int) RGBA { return p.polyColors[i] }
