package sudoku

import (
	"math/rand"
	"testing"
)

func TestGenerateSolutionIsValid(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		_, solution := Generate(rng, Easy)
		assertSolved(t, &solution)
	}
}

func TestGeneratePuzzleIsSubsetOfSolution(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	puzzle, solution := Generate(rng, Medium)

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if puzzle[r][c] != 0 && puzzle[r][c] != solution[r][c] {
				t.Fatalf("puzzle cell (%d,%d)=%d disagrees with solution %d",
					r, c, puzzle[r][c], solution[r][c])
			}
		}
	}
}

func TestGenerateRemovalCounts(t *testing.T) {
	cases := []struct {
		difficulty Difficulty
		filled     int
	}{
		{Easy, 46},
		{Medium, 36},
		{Hard, 26},
		{Difficulty("nightmare"), 46}, // unknown difficulty falls back to 35 removals
	}
	for _, tc := range cases {
		rng := rand.New(rand.NewSource(99))
		puzzle, _ := Generate(rng, tc.difficulty)
		if got := FilledCells(&puzzle); got != tc.filled {
			t.Errorf("difficulty %q: %d filled cells, want %d", tc.difficulty, got, tc.filled)
		}
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	a1, s1 := Generate(rand.New(rand.NewSource(5)), Hard)
	a2, s2 := Generate(rand.New(rand.NewSource(5)), Hard)
	if a1 != a2 || s1 != s2 {
		t.Fatal("same seed produced different puzzles")
	}

	b, _ := Generate(rand.New(rand.NewSource(6)), Hard)
	if a1 == b {
		t.Fatal("different seeds produced the same puzzle")
	}
}

func TestParseDifficulty(t *testing.T) {
	cases := map[string]Difficulty{
		"easy":      Easy,
		"medium":    Medium,
		"hard":      Hard,
		"":          Easy,
		"EXTREME":   Easy,
		"nightmare": Easy,
	}
	for in, want := range cases {
		if got := ParseDifficulty(in); got != want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", in, got, want)
		}
	}
}
