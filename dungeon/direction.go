package dungeon

// Direction is one of the four cardinal directions of a grid.
type Direction int

const (
	North Direction = iota
	West
	South
	East
)

// DirectionCount is the number of cardinal directions.
const DirectionCount = 4

// Directions lists every direction in iteration order.
var Directions = [DirectionCount]Direction{North, West, South, East}

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case West:
		return "West"
	case South:
		return "South"
	case East:
		return "East"
	default:
		return "Unknown"
	}
}

// IsValid reports whether d is one of the four cardinal directions.
func (d Direction) IsValid() bool {
	return d >= North && d <= East
}

// Opposite returns the direction facing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case West:
		return East
	case East:
		return West
	default:
		return d
	}
}

// Offset returns the column and row deltas of a single step in direction d.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case West:
		return -1, 0
	case South:
		return 0, 1
	case East:
		return 1, 0
	default:
		return 0, 0
	}
}
