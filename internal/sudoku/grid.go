package sudoku

// Grid is a 9x9 board. Cell values are 0-9; 0 marks an empty cell.
type Grid [9][9]uint8

// IsLegal reports whether v can sit at (row, col) without colliding with an
// equal value in the same row, column, or 3x3 box. The cell itself is assumed
// empty; callers checking a placed value must zero it first.
func IsLegal(g *Grid, row, col int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[row][i] == v || g[i][col] == v {
			return false
		}
	}
	boxRow := row - row%3
	boxCol := col - col%3
	for r := boxRow; r < boxRow+3; r++ {
		for c := boxCol; c < boxCol+3; c++ {
			if g[r][c] == v {
				return false
			}
		}
	}
	return true
}

// Solve fills every empty cell in place by exhaustive backtracking: cells are
// visited in row-major order, digits tried ascending, and a failed subtree
// resets its cell to 0 before the next candidate. Recursion depth is bounded
// by the 81 cells. Returns false when the grid admits no completion.
func Solve(g *Grid) bool {
	row, col, ok := firstEmpty(g)
	if !ok {
		return true
	}
	for v := uint8(1); v <= 9; v++ {
		if IsLegal(g, row, col, v) {
			g[row][col] = v
			if Solve(g) {
				return true
			}
			g[row][col] = 0
		}
	}
	return false
}

func firstEmpty(g *Grid) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// FilledCells counts the non-zero cells of g.
func FilledCells(g *Grid) int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// Progress converts fill level into the 0-100 percentage shown next to a
// player's name.
func Progress(g *Grid) int {
	return int(float64(FilledCells(g))/81.0*100.0 + 0.5)
}
