package problems

import (
	"fmt"
	"strings"

	"csplab/internal/csp"

	"github.com/samber/lo"
)

// Cryptarithmetic is a verbal arithmetic puzzle such as SEND + MORE = MONEY:
// every letter stands for a distinct digit, leading letters cannot be zero
// and the addition must hold.
type Cryptarithmetic struct {
	Addends []string
	Result  string
}

// NewCryptarithmetic parses a puzzle of the form "SEND+MORE=MONEY". Any
// number of addends is accepted; letters are case-insensitive.
func NewCryptarithmetic(puzzle string) (*Cryptarithmetic, error) {
	cleaned := strings.ToUpper(strings.ReplaceAll(puzzle, " ", ""))

	left, result, found := strings.Cut(cleaned, "=")
	if !found || strings.Contains(result, "=") {
		return nil, fmt.Errorf("puzzle must contain exactly one \"=\": %q", puzzle)
	}

	addends := strings.Split(left, "+")
	if len(addends) < 2 {
		return nil, fmt.Errorf("puzzle needs at least two addends: %q", puzzle)
	}

	for _, word := range append(addends, result) {
		if word == "" {
			return nil, fmt.Errorf("puzzle contains an empty word: %q", puzzle)
		}
		for _, letter := range word {
			if letter < 'A' || letter > 'Z' {
				return nil, fmt.Errorf("words must only contain letters: %q", word)
			}
		}
	}

	instance := &Cryptarithmetic{Addends: addends, Result: result}

	if len(instance.letters()) > 10 {
		return nil, fmt.Errorf("puzzle uses more than ten distinct letters: %q", puzzle)
	}
	if lo.SomeBy(addends, func(addend string) bool { return len(addend) > len(result) }) {
		return nil, fmt.Errorf("an addend is longer than the result: %q", puzzle)
	}

	return instance, nil
}

func (c *Cryptarithmetic) Name() string {
	return "cryptarithmetic"
}

// letters returns the distinct letters of the puzzle in order of first
// appearance, so models are deterministic.
func (c *Cryptarithmetic) letters() []string {
	seen := make(map[rune]bool)
	letters := make([]string, 0, 10)
	for _, word := range c.words() {
		for _, letter := range word {
			if !seen[letter] {
				seen[letter] = true
				letters = append(letters, string(letter))
			}
		}
	}
	return letters
}

func (c *Cryptarithmetic) words() []string {
	return append(append([]string{}, c.Addends...), c.Result)
}

// leading returns the letters that start a word and therefore cannot be zero.
func (c *Cryptarithmetic) leading() map[string]bool {
	leading := make(map[string]bool)
	for _, word := range c.words() {
		leading[string(word[0])] = true
	}
	return leading
}

// Model formulates the puzzle column by column: for every column the addend
// digits plus the incoming carry equal the result digit plus ten times the
// outgoing carry. Letters are pairwise distinct and leading letters start
// their domain at one.
func (c *Cryptarithmetic) Model() (*csp.Model, error) {
	model := csp.NewModel()
	leading := c.leading()

	variables := make(map[string]csp.Variable)
	scope := make([]csp.Variable, 0, 10)
	for _, letter := range c.letters() {
		low := int64(0)
		if leading[letter] {
			low = 1
		}
		variable := model.NewVariable(letter, low, 9)
		variables[letter] = variable
		scope = append(scope, variable)
	}
	if len(scope) > 1 {
		model.AddConstraint(csp.AllDifferent{Vars: scope})
	}

	// The carry out of a column of k addends never reaches k
	carryHigh := int64(len(c.Addends)) - 1
	columns := len(c.Result)
	carries := make([]csp.Variable, columns)
	for column := 1; column < columns; column++ {
		carries[column] = model.NewVariable(fmt.Sprintf("carry%v", column), 0, carryHigh)
		variables[carries[column].Name] = carries[column]
	}

	for column := range columns {
		// Accumulate a net coefficient per variable: the same letter may occur
		// several times within a column
		coefficients := make(map[string]int64)
		order := []string{}
		accumulate := func(name string, coefficient int64) {
			if _, ok := coefficients[name]; !ok {
				order = append(order, name)
			}
			coefficients[name] += coefficient
		}

		for _, addend := range c.Addends {
			if column < len(addend) {
				accumulate(string(addend[len(addend)-1-column]), 1)
			}
		}
		accumulate(string(c.Result[len(c.Result)-1-column]), -1)
		if column > 0 {
			accumulate(carries[column].Name, 1)
		}
		if column < columns-1 {
			accumulate(carries[column+1].Name, -10)
		}

		equation := csp.LinearEq{}
		for _, name := range order {
			if coefficients[name] == 0 {
				continue
			}
			equation.Vars = append(equation.Vars, variables[name])
			equation.Coeffs = append(equation.Coeffs, coefficients[name])
		}
		if len(equation.Vars) > 0 {
			model.AddConstraint(equation)
		}
	}

	return model, nil
}

// value reads the number a word denotes under the solution; the second result
// is false when a letter is unassigned.
func (c *Cryptarithmetic) value(word string, solution csp.Solution) (int64, bool) {
	number := int64(0)
	for _, letter := range word {
		digit, ok := solution[string(letter)]
		if !ok || digit < 0 || digit > 9 {
			return 0, false
		}
		number = number*10 + digit
	}
	return number, true
}

// Verify re-checks the puzzle arithmetic: distinct digits, no leading zeros
// and the addition itself.
func (c *Cryptarithmetic) Verify(solution csp.Solution) bool {
	digits := make(map[int64]bool)
	for _, letter := range c.letters() {
		digit, ok := solution[letter]
		if !ok || digit < 0 || digit > 9 || digits[digit] {
			return false
		}
		digits[digit] = true
	}

	for letter := range c.leading() {
		if solution[letter] == 0 {
			return false
		}
	}

	total := int64(0)
	for _, addend := range c.Addends {
		number, ok := c.value(addend, solution)
		if !ok {
			return false
		}
		total += number
	}

	result, ok := c.value(c.Result, solution)
	return ok && total == result
}

// Format renders the worked addition with digits substituted for letters,
// followed by the letter assignment.
func (c *Cryptarithmetic) Format(solution csp.Solution) string {
	width := len(c.Result) + 2
	pad := func(word string) string {
		return strings.Repeat(" ", width-len(word)) + word
	}
	substitute := func(word string) string {
		var digits strings.Builder
		for _, letter := range word {
			fmt.Fprintf(&digits, "%v", solution[string(letter)])
		}
		return digits.String()
	}

	var builder strings.Builder
	for i, addend := range c.Addends {
		line := pad(substitute(addend)) + "   " + pad(addend)
		if i > 0 {
			line = "+" + line[1:]
		}
		builder.WriteString(line + "\n")
	}
	separator := strings.Repeat("-", width)
	fmt.Fprintf(&builder, "%s   %s\n", separator, separator)
	fmt.Fprintf(&builder, "%s   %s\n", pad(substitute(c.Result)), pad(c.Result))

	assignments := lo.Map(c.letters(), func(letter string, _ int) string {
		return fmt.Sprintf("%v=%v", letter, solution[letter])
	})
	builder.WriteString(strings.Join(assignments, " "))
	builder.WriteString("\n")

	return builder.String()
}
