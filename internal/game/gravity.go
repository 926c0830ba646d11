package game

import "math/rand"

// Compact moves matched tiles to the top of their columns. Scanning each
// column from the bottom, a matched tile is swapped with the nearest
// unmatched tile above it. Because the scan starts at the bottom, one pass
// leaves every column with its matched tiles in a contiguous top segment.
func Compact(b *Board) {
	for row := BoardRows; row >= 1; row-- {
		for col := 1; col <= BoardCols; col++ {
			if b.cells[row][col].MatchCount == 0 {
				continue
			}
			for target := row - 1; target >= 1; target-- {
				if b.cells[target][col].MatchCount == 0 {
					b.Swap(Pos{Col: col, Row: target}, Pos{Col: col, Row: row})
					break
				}
			}
		}
	}
}

// Refill reseeds every tile still flagged matched. New tiles start above the
// board, stacked one tile apart per column so a multi-tile refill cascades
// in. It returns the number of tiles reseeded.
func Refill(b *Board, rng *rand.Rand) int {
	refilled := 0
	for col := 1; col <= BoardCols; col++ {
		drop := 0
		for row := BoardRows; row >= 1; row-- {
			t := &b.cells[row][col]
			if t.MatchCount == 0 {
				continue
			}
			t.Species = Species(rng.Intn(SpeciesCount))
			t.X = col * TileSize
			t.Y = -TileSize * drop
			t.MatchCount = 0
			t.Alpha = 255
			drop++
			refilled++
		}
	}
	return refilled
}
