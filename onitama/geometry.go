package onitama

import "fmt"

// Size is the width and height of the board.
const Size = 5

const NumSquares = Size * Size

type Coordinate struct {
	X, Y int
}

func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Y: c.Y + o.Y}
}

func (c Coordinate) Valid() bool {
	return 0 <= c.X && c.X < Size && 0 <= c.Y && c.Y < Size
}

// Index returns y*Size+x. It is only meaningful for valid coordinates.
func (c Coordinate) Index() int {
	return c.Y*Size + c.X
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

func CoordinateAt(i int) Coordinate {
	return Coordinate{X: i % Size, Y: i / Size}
}

var allCoordinates [NumSquares]Coordinate

func init() {
	for i := range allCoordinates {
		allCoordinates[i] = CoordinateAt(i)
	}
}

// AllCoordinates returns every square in index order (by y, then x).
func AllCoordinates() []Coordinate {
	out := make([]Coordinate, NumSquares)
	copy(out, allCoordinates[:])
	return out
}

// A Delta is a displacement relative to a side's orientation.
type Delta struct {
	Forward, Right int
}

func (d Delta) Opposite() Delta {
	return Delta{Forward: -d.Forward, Right: -d.Right}
}

// Offset maps the delta onto board axes. Forward is +y and right is
// +x; a delta for Blue has already been negated by Movement.Delta.
func (d Delta) Offset() Coordinate {
	return Coordinate{X: d.Right, Y: d.Forward}
}
