package problems

import (
	"fmt"
	"strings"
	"unicode"

	"csplab/internal/csp"
)

// Sudoku is the standard 9x9 puzzle: rows, columns and 3x3 boxes hold the
// digits 1 through 9 exactly once, with the given cells fixed.
type Sudoku struct {
	Givens [9][9]int64 // 0 marks an empty cell
}

// NewSudoku parses an 81-character grid read row by row: digits 1-9 are
// givens, '0' and '.' mark empty cells. Whitespace is ignored.
func NewSudoku(grid string) (*Sudoku, error) {
	cells := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, grid)

	if len(cells) != 81 {
		return nil, fmt.Errorf("grid must contain 81 cells, got %v", len(cells))
	}

	sudoku := &Sudoku{}
	for i, cell := range cells {
		row, column := i/9, i%9
		switch {
		case cell == '.' || cell == '0':
			sudoku.Givens[row][column] = 0
		case cell >= '1' && cell <= '9':
			sudoku.Givens[row][column] = int64(cell - '0')
		default:
			return nil, fmt.Errorf("invalid cell %q at row %v, column %v", string(cell), row, column)
		}
	}

	return sudoku, nil
}

func (s *Sudoku) Name() string {
	return "sudoku"
}

func (s *Sudoku) cell(row, column int) string {
	return fmt.Sprintf("r%vc%v", row, column)
}

func (s *Sudoku) Model() (*csp.Model, error) {
	model := csp.NewModel()

	var cells [9][9]csp.Variable
	for row := range 9 {
		for column := range 9 {
			cells[row][column] = model.NewVariable(s.cell(row, column), 1, 9)
			if given := s.Givens[row][column]; given != 0 {
				model.AddConstraint(csp.Assign{Var: cells[row][column], Value: given})
			}
		}
	}

	// Rows and columns
	for i := range 9 {
		rowScope := make([]csp.Variable, 9)
		columnScope := make([]csp.Variable, 9)
		for j := range 9 {
			rowScope[j] = cells[i][j]
			columnScope[j] = cells[j][i]
		}
		model.AddConstraint(csp.AllDifferent{Vars: rowScope})
		model.AddConstraint(csp.AllDifferent{Vars: columnScope})
	}

	// 3x3 boxes
	for boxRow := 0; boxRow < 9; boxRow += 3 {
		for boxColumn := 0; boxColumn < 9; boxColumn += 3 {
			scope := make([]csp.Variable, 0, 9)
			for row := boxRow; row < boxRow+3; row++ {
				for column := boxColumn; column < boxColumn+3; column++ {
					scope = append(scope, cells[row][column])
				}
			}
			model.AddConstraint(csp.AllDifferent{Vars: scope})
		}
	}

	return model, nil
}

func (s *Sudoku) Verify(solution csp.Solution) bool {
	var grid [9][9]int64
	for row := range 9 {
		for column := range 9 {
			value, ok := solution[s.cell(row, column)]
			if !ok || value < 1 || value > 9 {
				return false
			}
			if given := s.Givens[row][column]; given != 0 && given != value {
				return false
			}
			grid[row][column] = value
		}
	}

	distinct := func(values [9]int64) bool {
		seen := make(map[int64]bool, 9)
		for _, value := range values {
			if seen[value] {
				return false
			}
			seen[value] = true
		}
		return true
	}

	for i := range 9 {
		var row, column [9]int64
		for j := range 9 {
			row[j] = grid[i][j]
			column[j] = grid[j][i]
		}
		if !distinct(row) || !distinct(column) {
			return false
		}
	}

	for boxRow := 0; boxRow < 9; boxRow += 3 {
		for boxColumn := 0; boxColumn < 9; boxColumn += 3 {
			var box [9]int64
			for i := range 9 {
				box[i] = grid[boxRow+i/3][boxColumn+i%3]
			}
			if !distinct(box) {
				return false
			}
		}
	}

	return true
}

func (s *Sudoku) Format(solution csp.Solution) string {
	var builder strings.Builder
	for row := range 9 {
		if row > 0 && row%3 == 0 {
			builder.WriteString("------+-------+------\n")
		}
		for column := range 9 {
			if column > 0 && column%3 == 0 {
				builder.WriteString("| ")
			}
			fmt.Fprintf(&builder, "%v ", solution[s.cell(row, column)])
		}
		builder.WriteString("\n")
	}
	return builder.String()
}
