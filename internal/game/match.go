package game

// MarkMatches scans every playable cell and, for each cell that sits in the
// middle of three equal species along a column or a row, increments
// MatchCount on all three tiles. It returns the number of 3-windows found.
//
// MatchCount is a counter: a tile shared by a horizontal and a vertical run,
// or lying in the overlap of a run of four or more, is counted more than
// once. Scoring sums these counters, so long and crossing runs score extra.
func MarkMatches(b *Board) int {
	windows := 0
	for row := 1; row <= BoardRows; row++ {
		for col := 1; col <= BoardCols; col++ {
			sp := b.cells[row][col].Species
			if sp == SpeciesNone {
				continue
			}
			if b.cells[row-1][col].Species == sp && b.cells[row+1][col].Species == sp {
				for off := -1; off <= 1; off++ {
					b.cells[row+off][col].MatchCount++
				}
				windows++
			}
			if b.cells[row][col-1].Species == sp && b.cells[row][col+1].Species == sp {
				for off := -1; off <= 1; off++ {
					b.cells[row][col+off].MatchCount++
				}
				windows++
			}
		}
	}
	return windows
}

// MatchPoints sums MatchCount over the playable region.
func MatchPoints(b *Board) int {
	points := 0
	b.Each(func(t *Tile) {
		points += t.MatchCount
	})
	return points
}

// HasRun reports whether any run of three exists, without marking tiles.
func HasRun(b *Board) bool {
	for row := 1; row <= BoardRows; row++ {
		for col := 1; col <= BoardCols; col++ {
			sp := b.cells[row][col].Species
			if sp == SpeciesNone {
				continue
			}
			if b.cells[row-1][col].Species == sp && b.cells[row+1][col].Species == sp {
				return true
			}
			if b.cells[row][col-1].Species == sp && b.cells[row][col+1].Species == sp {
				return true
			}
		}
	}
	return false
}

// Move is a candidate adjacent swap.
type Move struct {
	A, B Pos
}

// FindMoves lists every adjacent swap that would create at least one run.
// Each pair is reported once, A being the upper or left cell.
func FindMoves(b *Board) []Move {
	var moves []Move
	scratch := *b
	try := func(a, c Pos) {
		scratch.Swap(a, c)
		if HasRun(&scratch) {
			moves = append(moves, Move{A: a, B: c})
		}
		scratch.Swap(a, c)
	}
	for row := 1; row <= BoardRows; row++ {
		for col := 1; col <= BoardCols; col++ {
			p := Pos{Col: col, Row: row}
			if col < BoardCols {
				try(p, Pos{Col: col + 1, Row: row})
			}
			if row < BoardRows {
				try(p, Pos{Col: col, Row: row + 1})
			}
		}
	}
	return moves
}
