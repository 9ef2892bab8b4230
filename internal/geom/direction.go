package geom

// Direction is one of the six axis-aligned unit directions.
type Direction uint8

const (
	Down Direction = iota
	Up
	North
	South
	West
	East
)

var directionNames = [...]string{
	Down:  "down",
	Up:    "up",
	North: "north",
	South: "south",
	West:  "west",
	East:  "east",
}

// -Y down, -Z north, -X west.
var directionVectors = [...]Pos{
	Down:  {0, -1, 0},
	Up:    {0, 1, 0},
	North: {0, 0, -1},
	South: {0, 0, 1},
	West:  {-1, 0, 0},
	East:  {1, 0, 0},
}

// Directions lists every direction in declaration order.
var Directions = [...]Direction{Down, Up, North, South, West, East}

// ParseDirection resolves a serialized direction name.
func ParseDirection(name string) (Direction, bool) {
	for _, d := range Directions {
		if directionNames[d] == name {
			return d, true
		}
	}
	return 0, false
}

// Name returns the serialized name of d.
func (d Direction) Name() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "invalid"
}

func (d Direction) String() string { return d.Name() }

// Opposite returns the direction pointing the other way along the same axis.
func (d Direction) Opposite() Direction {
	return d ^ 1
}

// Vector returns the unit step for d.
func (d Direction) Vector() Pos {
	return directionVectors[d]
}
