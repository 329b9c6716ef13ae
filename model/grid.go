package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

/*
Grid represents the game board: a fixed-size rectangle of live/dead cells.

Cells are stored in a flat row-major slice (index = y*width + x). A second
buffer of the same length receives the next generation during Step so the
rule only ever reads the pre-step state; the buffers swap roles at the end
of each step.
*/
type Grid struct {
	width   int
	height  int
	cells   []bool
	scratch []bool
	history []string // Store recent grid hashes for cycle detection
}

// New creates an all-dead grid with the specified dimensions
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[New] %dx%d", width, height)
	}
	return &Grid{
		width:   width,
		height:  height,
		cells:   make([]bool, width*height),
		scratch: make([]bool, width*height),
	}, nil
}

/*
FromRandom creates a grid whose cells are independently alive with
probability density, drawn from the provided random source.

Density is clamped to [0, 1], so out-of-range values saturate rather than fail.
*/
func FromRandom(width, height int, density float64, src RandSource) (*Grid, error) {
	g, err := New(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[FromRandom] failed to create grid")
	}
	g.Randomize(density, src)
	return g, nil
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

// index returns the linear slice index for coordinates (x, y)
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// inBounds reports whether (x, y) lies within the grid extent
func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Alive returns the state of the cell at (x, y), failing with ErrOutOfBounds
// for coordinates outside the grid extent
func (g *Grid) Alive(x, y int) (bool, error) {
	if !g.inBounds(x, y) {
		return false, errors.Wrapf(ErrOutOfBounds, "[Alive] (%d,%d) on %dx%d grid", x, y, g.width, g.height)
	}
	return g.cells[g.index(x, y)], nil
}

// SetAlive sets the cell at (x, y) to alive (true) or dead (false), with the
// same bounds policy as Alive
func (g *Grid) SetAlive(x, y int, alive bool) error {
	if !g.inBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "[SetAlive] (%d,%d) on %dx%d grid", x, y, g.width, g.height)
	}
	g.cells[g.index(x, y)] = alive
	return nil
}

/*
countAliveNeighbors counts living cells in the Moore neighborhood of (x, y).

Neighbors beyond the grid edge do not exist and are never counted; there is
no wraparound, so edge and corner cells simply see fewer neighbors.
*/
func (g *Grid) countAliveNeighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue // Skip the cell itself
			}
			nx, ny := x+dx, y+dy
			if g.inBounds(nx, ny) && g.cells[g.index(nx, ny)] {
				count++
			}
		}
	}
	return count
}

/*
Step advances the grid by exactly one generation.

Every cell transitions against the pre-step state: the next generation is
computed into the scratch buffer in a single pass, then the buffers swap.
No caller can observe a partial mix of old and new cell values, and the
grid's dimensions and identity are preserved.
*/
func (g *Grid) Step() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			idx := g.index(x, y)
			g.scratch[idx] = rules.ApplyConwayRules(g.countAliveNeighbors(x, y), g.cells[idx])
		}
	}
	g.cells, g.scratch = g.scratch, g.cells
}

// ForEachCell visits every cell in row-major order. The traversal is finite
// and restartable; visitors must not mutate the grid mid-walk.
func (g *Grid) ForEachCell(visit func(x, y int, alive bool)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			visit(x, y, g.cells[g.index(x, y)])
		}
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Randomize fills the grid in place, each cell independently alive with
// probability density (clamped to [0, 1]) drawn from src
func (g *Grid) Randomize(density float64, src RandSource) {
	density = min(max(density, 0), 1)
	for i := range g.cells {
		g.cells[i] = src.Float64() < density
	}
}

// InjectRandomLife adds some random cells to break stagnation
func (g *Grid) InjectRandomLife(count int, src RandSource) {
	for i := 0; i < count; i++ {
		x := int(src.Float64() * float64(g.width))
		y := int(src.Float64() * float64(g.height))
		g.cells[g.index(x, y)] = true
	}
}

// Clear clears all cells and the stagnation history
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
	g.history = nil
}

// Reset resizes the grid to the given dimensions and kills every cell,
// reusing the existing buffers where possible. Used by GridPool; callers
// constructing grids directly go through New, which validates dimensions.
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height
	g.history = nil

	size := width * height
	if cap(g.cells) < size || cap(g.scratch) < size {
		g.cells = make([]bool, size)
		g.scratch = make([]bool, size)
		return
	}
	g.cells = g.cells[:size]
	g.scratch = g.scratch[:size]
	for i := range g.cells {
		g.cells[i] = false
		g.scratch[i] = false
	}
}

// Hash returns an efficient MD5 hash of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	b := []byte{0}
	for _, alive := range g.cells {
		if alive {
			b[0] = 1
		} else {
			b[0] = 0
		}
		h.Write(b)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds the current state hash to history and maintains size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.Hash())

	// Keep only last 5 states to detect cycles
	if len(g.history) > 5 {
		g.history = g.history[1:]
	}
}

/*
IsStagnant checks if the grid is stuck in a static state or a short cycle
(period up to 3) by comparing the current hash against recorded history.

Call it before UpdateHistory for the current generation, otherwise the
freshly recorded hash trivially matches itself.
*/
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	currentHash := g.Hash()
	for i := 1; i <= 3; i++ {
		if g.history[len(g.history)-i] == currentHash {
			return true
		}
	}
	return false
}
