package problems

import (
	"fmt"
	"strings"

	"csplab/internal/csp"
)

// NQueens places Size queens on a Size x Size board so that no two attack
// each other. One variable per column holds the row of that column's queen;
// distinct rows come from an all-different constraint and diagonal attacks
// are barred pairwise through offset disequalities.
type NQueens struct {
	Size int64
}

func NewNQueens(size int64) (*NQueens, error) {
	if size < 1 {
		return nil, fmt.Errorf("board size must be positive: %v", size)
	}
	return &NQueens{Size: size}, nil
}

func (n *NQueens) Name() string {
	return "nqueens"
}

func (n *NQueens) queen(column int64) string {
	return fmt.Sprintf("q%v", column)
}

func (n *NQueens) Model() (*csp.Model, error) {
	model := csp.NewModel()

	queens := make([]csp.Variable, n.Size)
	for column := range n.Size {
		queens[column] = model.NewVariable(n.queen(column), 0, n.Size-1)
	}

	if n.Size > 1 {
		model.AddConstraint(csp.AllDifferent{Vars: queens})
	}

	// Two queens share a diagonal when their row difference equals their
	// column distance, in either direction
	for i := int64(0); i < n.Size-1; i++ {
		for j := i + 1; j < n.Size; j++ {
			distance := j - i
			model.AddConstraint(csp.NotEqualOffset{X: queens[i], Y: queens[j], Offset: distance})
			model.AddConstraint(csp.NotEqualOffset{X: queens[i], Y: queens[j], Offset: -distance})
		}
	}

	return model, nil
}

func (n *NQueens) Verify(solution csp.Solution) bool {
	rows := make(map[int64]bool, n.Size)
	for column := range n.Size {
		row, ok := solution[n.queen(column)]
		if !ok || row < 0 || row >= n.Size || rows[row] {
			return false
		}
		rows[row] = true
	}

	for i := int64(0); i < n.Size-1; i++ {
		for j := i + 1; j < n.Size; j++ {
			difference := solution[n.queen(i)] - solution[n.queen(j)]
			if difference == j-i || difference == i-j {
				return false
			}
		}
	}

	return true
}

// Format draws the board with Q for queens and _ for empty squares.
func (n *NQueens) Format(solution csp.Solution) string {
	var builder strings.Builder
	for row := range n.Size {
		for column := range n.Size {
			if solution[n.queen(column)] == row {
				builder.WriteString("Q")
			} else {
				builder.WriteString("_")
			}
		}
		builder.WriteString("\n")
	}
	return builder.String()
}
