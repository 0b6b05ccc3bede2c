package grid

import (
	"math"

	"github.com/boljen/go-bitmap"
	"github.com/pkg/errors"
)

// MaxCells is the largest number of cells we'll allocate for one grid.
const MaxCells = 1 << 30

var (
	// ErrTooLarge implies the area can't be covered by at most MaxCells
	// cells of the given size.
	ErrTooLarge = errors.New("grid too large")
)

// Grid is a fixed spatial index over a width x height area where every cell
// holds at most one value (an index into some caller owned list).
//
// Cells are stored row major (cells[y*cols+x]). Occupancy is tracked by a
// bitmap so that an empty cell never needs a sentinel index.
type Grid struct {
	cellSize float64
	cols     int
	rows     int

	used  bitmap.Bitmap
	cells []int
}

// Dimensions returns the number of columns & rows needed to cover
// [0,width] x [0,height] with square cells of the given size. Dimensions are
// rounded up so the whole area is covered, we always have at least one cell
// in each direction.
func Dimensions(width, height, cellSize float64) (int, int, error) {
	fc := math.Max(math.Ceil(width/cellSize), 1)
	fr := math.Max(math.Ceil(height/cellSize), 1)

	// also catches NaN & Inf
	if !(fc*fr <= MaxCells) {
		return 0, 0, errors.Wrapf(ErrTooLarge, "%vx%v with cell size %v", width, height, cellSize)
	}
	return int(fc), int(fr), nil
}

// New returns an empty grid covering [0,width] x [0,height], see Dimensions.
func New(width, height, cellSize float64) (*Grid, error) {
	cols, rows, err := Dimensions(width, height, cellSize)
	if err != nil {
		return nil, err
	}

	return &Grid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		used:     bitmap.New(cols * rows),
		cells:    make([]int, cols*rows),
	}, nil
}

// Size returns the number of columns & rows
func (g *Grid) Size() (int, int) {
	return g.cols, g.rows
}

// CellSize returns the edge length of one cell
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// Cell returns the column & row that (x, y) falls in. Values on the far
// edge of the area (eg. x == width) are clamped into the last column / row.
// The result may be out of bounds if (x, y) is outside the area, see InBounds.
func (g *Grid) Cell(x, y float64) (int, int) {
	cx := int(math.Floor(x / g.cellSize))
	cy := int(math.Floor(y / g.cellSize))
	if cx == g.cols && x <= float64(g.cols)*g.cellSize {
		cx--
	}
	if cy == g.rows && y <= float64(g.rows)*g.cellSize {
		cy--
	}
	return cx, cy
}

// InBounds returns if the cell (cx, cy) exists
func (g *Grid) InBounds(cx, cy int) bool {
	return cx >= 0 && cx < g.cols && cy >= 0 && cy < g.rows
}

// Get returns the value stored at (cx, cy) & whether the cell is occupied.
// Out of bounds cells are never occupied.
func (g *Grid) Get(cx, cy int) (int, bool) {
	if !g.InBounds(cx, cy) {
		return 0, false
	}
	i := cy*g.cols + cx
	if !g.used.Get(i) {
		return 0, false
	}
	return g.cells[i], true
}

// Set stores v at (cx, cy). It returns false (& does nothing) if the cell
// is out of bounds or already occupied.
func (g *Grid) Set(cx, cy, v int) bool {
	if !g.InBounds(cx, cy) {
		return false
	}
	i := cy*g.cols + cx
	if g.used.Get(i) {
		return false
	}
	g.used.Set(i, true)
	g.cells[i] = v
	return true
}

// Neighbours calls fn for every occupied cell within `reach` cells of
// (cx, cy) in both directions, ie. the inclusive (2*reach+1)^2 block centred
// on (cx, cy), including (cx, cy) itself. Cells outside the grid are skipped.
// Iteration stops early if fn returns false.
func (g *Grid) Neighbours(cx, cy, reach int, fn func(v int) bool) {
	for y := cy - reach; y <= cy+reach; y++ {
		for x := cx - reach; x <= cx+reach; x++ {
			v, ok := g.Get(x, y)
			if !ok {
				continue
			}
			if !fn(v) {
				return
			}
		}
	}
}

// Occupied returns how many cells hold a value
func (g *Grid) Occupied() int {
	count := 0
	for i := 0; i < g.cols*g.rows; i++ {
		if g.used.Get(i) {
			count++
		}
	}
	return count
}
