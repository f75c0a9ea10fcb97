package sudoku

import "math/rand"

// Difficulty selects how many cells Generate removes from the solved grid.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty maps a wire string onto a known difficulty. Unrecognized
// values fall back to Easy.
func ParseDifficulty(s string) Difficulty {
	switch d := Difficulty(s); d {
	case Easy, Medium, Hard:
		return d
	}
	return Easy
}

func removalTarget(d Difficulty) int {
	switch d {
	case Medium:
		return 45
	case Hard:
		return 55
	default:
		return 35
	}
}

// Generate builds a fully solved grid and derives a puzzle from it.
//
// The three diagonal 3x3 boxes are seeded first, each with an independent
// random permutation of 1-9; they share no row, column, or box, so any
// seeding is conflict-free and Solve always completes the rest. Removal then
// zeroes uniform random cells, with replacement, until exactly the
// difficulty's target count of cells has been newly cleared.
//
// The puzzle is not checked for solution uniqueness.
func Generate(rng *rand.Rand, d Difficulty) (puzzle, solution Grid) {
	var g Grid
	for box := 0; box < 9; box += 3 {
		fillBox(rng, &g, box, box)
	}
	Solve(&g)
	solution = g
	puzzle = g

	for removed, target := 0, removalTarget(d); removed < target; {
		row, col := rng.Intn(9), rng.Intn(9)
		if puzzle[row][col] != 0 {
			puzzle[row][col] = 0
			removed++
		}
	}
	return puzzle, solution
}

func fillBox(rng *rand.Rand, g *Grid, row, col int) {
	var nums [9]uint8
	for i := range nums {
		nums[i] = uint8(i + 1)
	}
	rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			g[row+i][col+j] = nums[i*3+j]
		}
	}
}
