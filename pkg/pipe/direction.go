package pipe

import "fmt"

// Direction is one of the six symbolic directions a pipe segment can run in.
// The four compass directions are drawn tilted on the isometric grid, UP and
// DOWN run straight along the vertical axis.
type Direction string

const (
	North Direction = "NORTH"
	South Direction = "SOUTH"
	East  Direction = "EAST"
	West  Direction = "WEST"
	Up    Direction = "UP"
	Down  Direction = "DOWN"
)

// Directions lists all six directions in a stable order
var Directions = []Direction{North, South, East, West, Up, Down}

// ParseDirection converts a string to a Direction
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown direction %q", s)
}
