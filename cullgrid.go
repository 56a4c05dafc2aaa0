package prism

import (
	"sort"

	"github.com/akmonengine/prism/geometry"
	"github.com/akmonengine/prism/scalar"
)

// MAX_CELLS_PER_VOLUME caps how many cells a single box is spread over.
// Bigger boxes (and boxes with non-finite or inverted bounds) go to the oversized list.
const MAX_CELLS_PER_VOLUME = 512

// CellKey - coordinates of a cell in the 3D grid
type CellKey struct {
	X, Y, Z int
}

// Cell - container of volume indices in one cell
type Cell struct {
	volumeIndices []int
}

// CullGrid is a uniform hashed grid used as the broad phase of light culling.
// Volumes are inserted by index; queries return indices of the volumes really
// touched by the query shape, in ascending order.
type CullGrid struct {
	cellSize  float32
	cells     []Cell
	cellMask  int
	oversized Cell
}

// NewCullGrid creates a grid of numCells hashed cells (rounded up to a power of two).
func NewCullGrid(cellSize float32, numCells int) *CullGrid {
	numCells = nextPowerOfTwo(numCells)

	cells := make([]Cell, numCells)
	for i := range cells {
		cells[i].volumeIndices = make([]int, 0, 8)
	}

	return &CullGrid{
		cellSize: cellSize,
		cells:    cells,
		cellMask: numCells - 1,
	}
}

// nextPowerOfTwo - rounds up to the next power of two
func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert adds a volume index to every cell its bounds cover.
func (g *CullGrid) Insert(volumeIndex int, bounds geometry.AABB) {
	if g.spansTooManyCells(bounds) {
		g.oversized.volumeIndices = append(g.oversized.volumeIndices, volumeIndex)
		return
	}

	minCell := g.worldToCell(bounds.Min)
	maxCell := g.worldToCell(bounds.Max)

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				cellIdx := g.hashCell(CellKey{x, y, z})

				g.cells[cellIdx].volumeIndices = append(g.cells[cellIdx].volumeIndices, volumeIndex)
			}
		}
	}
}

func (g *CullGrid) Clear() {
	for i := range g.cells {
		g.cells[i].volumeIndices = g.cells[i].volumeIndices[:0]
	}
	g.oversized.volumeIndices = g.oversized.volumeIndices[:0]
}

func (g *CullGrid) SortCells() {
	for i := range g.cells {
		if len(g.cells[i].volumeIndices) > 1 {
			sort.Ints(g.cells[i].volumeIndices)
		}
	}
	sort.Ints(g.oversized.volumeIndices)
}

// QuerySphere returns the indices of the volumes whose bounds overlap the
// sphere, according to AABB.OverlapSphere.
// volumes must be the slice the indices were inserted from.
// QuerySphere only reads the grid, so concurrent queries are safe.
func (g *CullGrid) QuerySphere(center geometry.Vec3, radius float32, volumes []*Volume) []int {
	return g.query(geometry.SphereBounds(center, radius), volumes, func(bounds geometry.AABB) bool {
		return bounds.OverlapSphere(center, radius)
	})
}

// QueryBox returns the indices of the volumes whose bounds overlap box.
func (g *CullGrid) QueryBox(box geometry.AABB, volumes []*Volume) []int {
	return g.query(box, volumes, func(bounds geometry.AABB) bool {
		return bounds.Overlaps(box)
	})
}

func (g *CullGrid) query(area geometry.AABB, volumes []*Volume, accept func(bounds geometry.AABB) bool) []int {
	found := make([]int, 0, 8)
	seen := make([]bool, len(volumes))

	test := func(volumeIdx int) {
		if volumeIdx >= len(volumes) || seen[volumeIdx] {
			return
		}
		seen[volumeIdx] = true

		if accept(volumes[volumeIdx].Bounds) {
			found = append(found, volumeIdx)
		}
	}

	if g.spansTooManyCells(area) {
		// Walking the cells would cost more than testing everything.
		for volumeIdx := range volumes {
			test(volumeIdx)
		}
		return found
	}

	for _, volumeIdx := range g.oversized.volumeIndices {
		test(volumeIdx)
	}

	minCell := g.worldToCell(area.Min)
	maxCell := g.worldToCell(area.Max)
	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				cellIdx := g.hashCell(CellKey{x, y, z})

				for _, volumeIdx := range g.cells[cellIdx].volumeIndices {
					test(volumeIdx)
				}
			}
		}
	}

	sort.Ints(found)
	return found
}

// spansTooManyCells also reports true for NaN, infinite or inverted bounds.
// Inverted boxes map to an empty cell range, so they must not take the cell path.
func (g *CullGrid) spansTooManyCells(bounds geometry.AABB) bool {
	extents := bounds.Extents()
	cells := extents.DivScalar(g.cellSize).AddScalar(2)
	count := cells.X() * cells.Y() * cells.Z()

	return !(extents.Minimum() >= 0 && count <= MAX_CELLS_PER_VOLUME)
}

// worldToCell - converts a world position to cell coordinates
func (g *CullGrid) worldToCell(pos geometry.Vec3) CellKey {
	return CellKey{
		X: int(scalar.Floor(pos.X() / g.cellSize)),
		Y: int(scalar.Floor(pos.Y() / g.cellSize)),
		Z: int(scalar.Floor(pos.Z() / g.cellSize)),
	}
}

// hashCell - hashes a cell to an index in the cells array
func (g *CullGrid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & g.cellMask
}
