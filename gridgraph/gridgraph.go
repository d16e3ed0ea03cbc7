package gridgraph

import (
	"github.com/arborist-go/impsep/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D
// slice. It deep-copies the input to ensure immutability. Returns
// ErrEmptyGrid if values has no rows or no columns, ErrNonRectangular if
// any row length differs.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets for gg.Conn.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// IsLand reports whether (x,y) meets LandThreshold. A hole (not land)
// contributes no vertex to ToCoreGraph.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// OnBorder reports whether (x,y) lies on the outer border of the grid
// (row 0, last row, column 0, or last column).
func (gg *GridGraph) OnBorder(x, y int) bool {
	return x == 0 || y == 0 || x == gg.Width-1 || y == gg.Height-1
}

// ToCoreGraph converts gg into a core.Graph[[2]int]: one vertex per land
// cell (coordinates as the vertex identity), one edge per pair of adjacent
// land cells per gg.Conn. Hole cells (below LandThreshold) are entirely
// absent: no vertex, no edge.
func (gg *GridGraph) ToCoreGraph() *core.Graph[[2]int] {
	g := core.NewGraph[[2]int]()

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.IsLand(x, y) {
				g.AddVertex([2]int{x, y})
			}
		}
	}

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue
			}
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.IsLand(nx, ny) {
					continue
				}
				_ = g.AddEdge([2]int{x, y}, [2]int{nx, ny})
			}
		}
	}

	return g
}

// sinkVertex is the coordinate used to identify the auxiliary sink added
// by LinkBoundarySink. It lies strictly outside any legal grid coordinate
// (both components negative), so it can never collide with a real cell.
var sinkVertex = [2]int{-1, -1}

// LinkBoundarySink adds sinkVertex to g and connects it to every land
// border cell of gg still present in g, giving the enumerator a ready-made
// sink terminal linked to all four borders. Returns the sink's vertex
// identity.
func LinkBoundarySink(g *core.Graph[[2]int], gg *GridGraph) [2]int {
	g.AddVertex(sinkVertex)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.IsLand(x, y) && gg.OnBorder(x, y) {
				_ = g.AddEdge(sinkVertex, [2]int{x, y})
			}
		}
	}

	return sinkVertex
}
