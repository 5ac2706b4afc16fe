package problems

import (
	"fmt"
	"strings"

	"csplab/internal/csp"

	"github.com/samber/lo"
)

// MapColoring asks for an assignment of one of Colors colors to every region
// such that bordering regions never share a color.
type MapColoring struct {
	Regions []string
	Borders [][2]string
	Colors  int64
}

var colorNames = []string{"red", "green", "blue", "yellow", "orange", "purple"}

func NewMapColoring(regions []string, borders [][2]string, colors int64) (*MapColoring, error) {
	if colors < 1 {
		return nil, fmt.Errorf("at least one color is required: %v", colors)
	}
	if len(regions) == 0 {
		return nil, fmt.Errorf("at least one region is required")
	}
	if len(lo.Uniq(regions)) != len(regions) {
		return nil, fmt.Errorf("regions must be unique: %v", regions)
	}

	for _, border := range borders {
		if border[0] == border[1] {
			return nil, fmt.Errorf("region %q borders itself", border[0])
		}
		for _, region := range border {
			if !lo.Contains(regions, region) {
				return nil, fmt.Errorf("border mentions unknown region %q", region)
			}
		}
	}

	return &MapColoring{Regions: regions, Borders: borders, Colors: colors}, nil
}

// Australia is the textbook instance: the seven mainland states and
// territories with their land borders.
func Australia(colors int64) *MapColoring {
	instance, err := NewMapColoring(
		[]string{"WA", "NT", "SA", "Q", "NSW", "V", "T"},
		[][2]string{
			{"WA", "NT"}, {"WA", "SA"}, {"NT", "SA"}, {"NT", "Q"},
			{"SA", "Q"}, {"SA", "NSW"}, {"SA", "V"}, {"Q", "NSW"}, {"NSW", "V"},
		},
		colors,
	)
	if err != nil {
		panic(err) // The instance is hardcoded
	}
	return instance
}

func (m *MapColoring) Name() string {
	return "mapcoloring"
}

func (m *MapColoring) Model() (*csp.Model, error) {
	model := csp.NewModel()

	variables := make(map[string]csp.Variable, len(m.Regions))
	for _, region := range m.Regions {
		variables[region] = model.NewVariable(region, 0, m.Colors-1)
	}

	for _, border := range m.Borders {
		model.AddConstraint(csp.NotEqualOffset{X: variables[border[0]], Y: variables[border[1]]})
	}

	return model, nil
}

func (m *MapColoring) Verify(solution csp.Solution) bool {
	for _, region := range m.Regions {
		color, ok := solution[region]
		if !ok || color < 0 || color >= m.Colors {
			return false
		}
	}

	return !lo.SomeBy(m.Borders, func(border [2]string) bool {
		return solution[border[0]] == solution[border[1]]
	})
}

func (m *MapColoring) Format(solution csp.Solution) string {
	colorName := func(color int64) string {
		if color < int64(len(colorNames)) {
			return colorNames[color]
		}
		return fmt.Sprintf("color%v", color)
	}

	var builder strings.Builder
	for _, region := range m.Regions {
		fmt.Fprintf(&builder, "%v: %v\n", region, colorName(solution[region]))
	}
	return builder.String()
}
