package problems

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// ProblemInput is the JSON shape accepted by the command line tools. Problem
// selects the formulation; the remaining fields are per-problem parameters.
type ProblemInput struct {
	Problem string
	Puzzle  string     // cryptarithmetic, e.g. "SEND+MORE=MONEY"
	Regions []string   // map coloring
	Borders [][]string // map coloring, pairs of region names
	Colors  int64      // map coloring
	Size    int64      // nqueens
	Grid    string     // sudoku, 81 cells
}

func InputFromJson(file string) (ProblemInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ProblemInput{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ProblemInput{}, err
	}

	var input ProblemInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return ProblemInput{}, err
	}

	return input, nil
}

// ToProblem builds the formulation the input describes.
func (input ProblemInput) ToProblem() (Problem, error) {
	switch strings.ToLower(input.Problem) {
	case "cryptarithmetic":
		return NewCryptarithmetic(input.Puzzle)

	case "mapcoloring":
		borders := make([][2]string, 0, len(input.Borders))
		for _, border := range input.Borders {
			if len(border) != 2 {
				return nil, fmt.Errorf("a border must name exactly two regions: %v", border)
			}
			borders = append(borders, [2]string{border[0], border[1]})
		}
		return NewMapColoring(input.Regions, borders, input.Colors)

	case "nqueens":
		return NewNQueens(input.Size)

	case "sudoku":
		return NewSudoku(input.Grid)

	default:
		return nil, fmt.Errorf("%q is not a valid problem", input.Problem)
	}
}
