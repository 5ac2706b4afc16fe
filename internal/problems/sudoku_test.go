package problems

import (
	"fmt"
	"strings"
	"testing"

	"csplab/internal/csp"
	"csplab/internal/sat"

	"github.com/stretchr/testify/assert"
)

const wikipediaPuzzle = `
53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79
`

const wikipediaSolution = `
534678912
672195348
198342567
859761423
426853791
713924856
961537284
287419635
345286179
`

func solutionFromGrid(t *testing.T, grid string) csp.Solution {
	sudoku, err := NewSudoku(grid)
	assert.Nil(t, err)

	solution := make(csp.Solution, 81)
	for row := range 9 {
		for column := range 9 {
			solution[fmt.Sprintf("r%vc%v", row, column)] = sudoku.Givens[row][column]
		}
	}
	return solution
}

func TestNewSudoku(t *testing.T) {
	t.Run("valid grid", func(t *testing.T) {
		sudoku, err := NewSudoku(wikipediaPuzzle)

		assert.Nil(t, err)
		assert.Equal(t, int64(5), sudoku.Givens[0][0])
		assert.Equal(t, int64(0), sudoku.Givens[0][2])
		assert.Equal(t, int64(9), sudoku.Givens[8][8])
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := NewSudoku("53..7")
		assert.NotNil(t, err)
	})

	t.Run("invalid cell", func(t *testing.T) {
		invalid := "x" + wikipediaPuzzle[2:]
		_, err := NewSudoku(invalid)
		assert.NotNil(t, err)
	})
}

func TestSudokuSolve(t *testing.T) {
	solver := csp.NewSATSolver(sat.NewGophersatSolver())

	t.Run("the wikipedia puzzle has its unique solution", func(t *testing.T) {
		// Arrange
		sudoku, err := NewSudoku(wikipediaPuzzle)
		assert.Nil(t, err)

		model, err := sudoku.Model()
		assert.Nil(t, err)

		// Act
		solution, stats, err := solver.Solve(model)

		// Assert
		assert.Nil(t, err)
		assert.NotNil(t, solution)
		assert.True(t, sudoku.Verify(solution))
		assert.Equal(t, uint64(9*9*9), stats.Variables)
		assert.Equal(t, solutionFromGrid(t, wikipediaSolution), solution)
	})

	t.Run("conflicting givens are unsatisfiable", func(t *testing.T) {
		// Two 5s in the first row
		conflicting := "55" + wikipediaPuzzle[len("\n53"):]
		sudoku, err := NewSudoku(conflicting)
		assert.Nil(t, err)

		model, err := sudoku.Model()
		assert.Nil(t, err)

		solution, _, err := solver.Solve(model)

		assert.Nil(t, err)
		assert.Nil(t, solution)
	})

	t.Run("empty grid is satisfiable", func(t *testing.T) {
		sudoku, err := NewSudoku(strings.Repeat(".", 81))
		assert.Nil(t, err)

		model, err := sudoku.Model()
		assert.Nil(t, err)

		solution, _, err := solver.Solve(model)

		assert.Nil(t, err)
		assert.True(t, sudoku.Verify(solution))
	})
}

func TestSudokuVerify(t *testing.T) {
	sudoku, err := NewSudoku(wikipediaPuzzle)
	assert.Nil(t, err)

	valid := solutionFromGrid(t, wikipediaSolution)
	assert.True(t, sudoku.Verify(valid))

	t.Run("violated given", func(t *testing.T) {
		tampered := solutionFromGrid(t, wikipediaSolution)
		tampered["r0c0"] = 3
		tampered["r0c1"] = 5
		assert.False(t, sudoku.Verify(tampered))
	})

	t.Run("duplicate in a row", func(t *testing.T) {
		tampered := solutionFromGrid(t, wikipediaSolution)
		tampered["r0c2"] = 5
		assert.False(t, sudoku.Verify(tampered))
	})

	t.Run("incomplete solution", func(t *testing.T) {
		assert.False(t, sudoku.Verify(csp.Solution{"r0c0": 5}))
	})
}

func TestSudokuFormat(t *testing.T) {
	sudoku, err := NewSudoku(wikipediaPuzzle)
	assert.Nil(t, err)

	formatted := sudoku.Format(solutionFromGrid(t, wikipediaSolution))

	assert.Contains(t, formatted, "5 3 4 | 6 7 8 | 9 1 2")
	assert.Contains(t, formatted, "------+-------+------")
}
