package game

import (
	"fmt"
	"image"
	"math/rand"
)

const (
	// TileSize is the pixel pitch of one board cell.
	TileSize = 54

	// BoardCols and BoardRows are the playable extent; cells 1..8 on each axis.
	BoardCols = 8
	BoardRows = 8

	// gridSize adds a one-cell sentinel border on every side so neighbour
	// checks never need to special-case edges.
	gridSize = BoardRows + 2

	// SpeciesCount is the size of the tile palette.
	SpeciesCount = 7

	// rerollLimit caps the random re-rolls for one cell in ClearInitialMatches
	// before it falls back to a deterministic pick.
	rerollLimit = 64
)

// BoardOffset is the pixel offset from the window origin to the top-left of
// the playable region.
var BoardOffset = image.Point{X: 48, Y: 24}

// Species is the kind of animal on a tile.
type Species int8

// SpeciesNone marks border sentinels. It never takes part in a run.
const SpeciesNone Species = -1

const (
	SpeciesBear Species = iota
	SpeciesBunny
	SpeciesChick
	SpeciesCow
	SpeciesFrog
	SpeciesMonkey
	SpeciesPig
)

var speciesNames = [SpeciesCount]string{"bear", "bunny", "chick", "cow", "frog", "monkey", "pig"}

func (s Species) String() string {
	if s < 0 || int(s) >= SpeciesCount {
		return "none"
	}
	return speciesNames[s]
}

// Pos is a logical board coordinate. Playable cells are 1..8 on both axes.
type Pos struct {
	Col int
	Row int
}

// Adjacent reports whether p and q are at Manhattan distance 1.
func (p Pos) Adjacent(q Pos) bool {
	return abs(p.Col-q.Col)+abs(p.Row-q.Row) == 1
}

// Playable reports whether p lies inside the 8x8 playable region.
func (p Pos) Playable() bool {
	return p.Col >= 1 && p.Col <= BoardCols && p.Row >= 1 && p.Row <= BoardRows
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// ScreenToCell maps a window pixel to a playable board cell.
func ScreenToCell(pt image.Point) (Pos, bool) {
	q := pt.Sub(BoardOffset)
	if q.X < 0 || q.Y < 0 {
		return Pos{}, false
	}
	p := Pos{Col: q.X/TileSize + 1, Row: q.Y/TileSize + 1}
	return p, p.Playable()
}

// CellCenter is the window pixel at the centre of a board cell.
func CellCenter(p Pos) image.Point {
	return image.Point{
		X: BoardOffset.X + (p.Col-1)*TileSize + TileSize/2,
		Y: BoardOffset.Y + (p.Row-1)*TileSize + TileSize/2,
	}
}

// Tile is one cell's record. X/Y are the on-screen pixel position in board
// space (cell (1,1) rests at TileSize,TileSize) and lag Col/Row while the tile
// is animating.
type Tile struct {
	Col, Row   int
	X, Y       int
	Species    Species
	MatchCount int // >0 while part of a detected run
	Alpha      int // 0..255
}

// Target is the resting pixel position for the tile's logical cell.
func (t *Tile) Target() (int, int) {
	return t.Col * TileSize, t.Row * TileSize
}

// Board is the bordered tile arena.
type Board struct {
	cells [gridSize][gridSize]Tile
}

// NewBoard returns a board whose playable cells are at rest with species 0
// and whose border holds sentinels.
func NewBoard() *Board {
	b := &Board{}
	for row := 0; row < gridSize; row++ {
		for col := 0; col < gridSize; col++ {
			b.cells[row][col] = Tile{Col: col, Row: row, Species: SpeciesNone, Alpha: 255}
		}
	}
	b.Each(func(t *Tile) {
		t.Species = 0
		t.X, t.Y = t.Target()
	})
	return b
}

func mustInGrid(p Pos) {
	if p.Col < 0 || p.Col >= gridSize || p.Row < 0 || p.Row >= gridSize {
		panic(fmt.Sprintf("board: position %v outside grid", p))
	}
}

// At returns the tile stored at p. Border cells are addressable; anything
// beyond them panics.
func (b *Board) At(p Pos) *Tile {
	mustInGrid(p)
	return &b.cells[p.Row][p.Col]
}

// Each calls fn for every playable tile in row-major order.
func (b *Board) Each(fn func(t *Tile)) {
	for row := 1; row <= BoardRows; row++ {
		for col := 1; col <= BoardCols; col++ {
			fn(&b.cells[row][col])
		}
	}
}

// Swap exchanges the tile records at a and c. Logical coordinates are
// rewritten to match the new cells; pixel positions travel with the records
// so the tween layer animates the exchange.
func (b *Board) Swap(a, c Pos) {
	ta, tc := b.At(a), b.At(c)
	*ta, *tc = *tc, *ta
	ta.Col, ta.Row = a.Col, a.Row
	tc.Col, tc.Row = c.Col, c.Row
}

// Init fills the playable region with random species at rest and removes
// every initial run.
func (b *Board) Init(rng *rand.Rand) {
	b.Each(func(t *Tile) {
		t.Species = Species(rng.Intn(SpeciesCount))
		t.X, t.Y = t.Target()
		t.MatchCount = 0
		t.Alpha = 255
	})
	b.ClearInitialMatches(rng)
}

// Load places a fixed species layout at rest. Row-major, index [row-1][col-1].
func (b *Board) Load(layout [BoardRows][BoardCols]Species) {
	b.Each(func(t *Tile) {
		t.Species = layout[t.Row-1][t.Col-1]
		t.X, t.Y = t.Target()
		t.MatchCount = 0
		t.Alpha = 255
	})
}

// Layout returns the species arrangement of the playable region.
func (b *Board) Layout() [BoardRows][BoardCols]Species {
	var out [BoardRows][BoardCols]Species
	b.Each(func(t *Tile) {
		out[t.Row-1][t.Col-1] = t.Species
	})
	return out
}

// ClearInitialMatches re-rolls every cell that completes a run with the two
// cells above it or the two cells to its left. Scanning in row-major order
// means each run is caught at its last cell, so one pass leaves no run.
func (b *Board) ClearInitialMatches(rng *rand.Rand) {
	for row := 1; row <= BoardRows; row++ {
		for col := 1; col <= BoardCols; col++ {
			t := &b.cells[row][col]
			for n := 0; b.completesRun(row, col); n++ {
				if n >= rerollLimit {
					b.pickSafeSpecies(row, col)
					break
				}
				t.Species = Species(rng.Intn(SpeciesCount))
			}
		}
	}
}

// completesRun reports whether (row,col) ends a run with its two upper or
// two left playable predecessors.
func (b *Board) completesRun(row, col int) bool {
	sp := b.cells[row][col].Species
	if row >= 3 && sp == b.cells[row-1][col].Species && sp == b.cells[row-2][col].Species {
		return true
	}
	if col >= 3 && sp == b.cells[row][col-1].Species && sp == b.cells[row][col-2].Species {
		return true
	}
	return false
}

// pickSafeSpecies assigns the lowest species that does not complete a run.
// At most two species are excluded, so one always exists.
func (b *Board) pickSafeSpecies(row, col int) {
	for sp := Species(0); int(sp) < SpeciesCount; sp++ {
		b.cells[row][col].Species = sp
		if !b.completesRun(row, col) {
			return
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
