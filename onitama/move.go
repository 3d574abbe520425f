package onitama

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrOutOfRange  = errors.New("coordinate out of range")
	ErrInvalidPlay = errors.New("card not held by that side")
	ErrInvalidDeal = errors.New("invalid deal")
	ErrEmptyOrigin = errors.New("no piece at origin")
	ErrIllegalMove = errors.New("illegal move")
)

type Move struct {
	Origin   Coordinate
	Card     Card
	Movement Movement
}

func (m Move) Destination(color Color) Coordinate {
	return m.Origin.Add(m.Movement.Delta(color).Offset())
}

// Legal reports whether m is allowed by its card and lands on the
// board. Occupancy and turn order are not considered.
func (m Move) Legal(color Color) bool {
	return m.Card.Has(m.Movement) && m.Origin.Valid() && m.Destination(color).Valid()
}

// Mirror rotates m's origin half a turn about the board's center.
// m is legal for a color exactly when m.Mirror() is legal for the
// opposite color, which is how Blue's moves are read off the table.
func (m Move) Mirror() Move {
	m.Origin = Coordinate{X: Size - 1 - m.Origin.X, Y: Size - 1 - m.Origin.Y}
	return m
}

func (m Move) String() string {
	return fmt.Sprintf("%v %s %s", m.Origin, m.Card, m.Movement)
}

// A Table is the ordered set of every move legal for ReferenceColor.
// It is never modified after construction.
type Table struct {
	moves  []Move
	index  map[Move]int
	byFrom [NumSquares][]Move
}

// BuildTable enumerates origins by y then x, then cards in
// declaration order, then each card's movements in order.
func BuildTable() *Table {
	t := &Table{index: make(map[Move]int)}
	var starts [NumSquares + 1]int
	for i, origin := range allCoordinates {
		starts[i] = len(t.moves)
		for c := Card(0); c < NumCards; c++ {
			for _, mv := range c.info().movements {
				m := Move{Origin: origin, Card: c, Movement: mv}
				if !m.Legal(ReferenceColor) {
					continue
				}
				t.index[m] = len(t.moves)
				t.moves = append(t.moves, m)
			}
		}
	}
	starts[NumSquares] = len(t.moves)
	for i := range t.byFrom {
		t.byFrom[i] = t.moves[starts[i]:starts[i+1]:starts[i+1]]
	}
	return t
}

var (
	tableOnce sync.Once
	table     *Table
)

// MoveTable returns the shared table, building it on first use.
func MoveTable() *Table {
	tableOnce.Do(func() {
		table = BuildTable()
	})
	return table
}

func (t *Table) Len() int {
	return len(t.moves)
}

func (t *Table) At(i int) Move {
	return t.moves[i]
}

// Moves returns a copy of the table in index order.
func (t *Table) Moves() []Move {
	out := make([]Move, len(t.moves))
	copy(out, t.moves)
	return out
}

// Index returns the position of m in the table, or -1.
func (t *Table) Index(m Move) int {
	if i, ok := t.index[m]; ok {
		return i
	}
	return -1
}

// From appends to out the moves whose origin is c.
func (t *Table) From(c Coordinate, out []Move) []Move {
	if !c.Valid() {
		return out
	}
	return append(out, t.byFrom[c.Index()]...)
}

// Legal reports whether m, taken from the table, is also legal for
// color. For the other side the destination is re-derived from the
// mirrored delta.
func (t *Table) Legal(m Move, color Color) bool {
	if color == ReferenceColor {
		return t.Index(m) >= 0
	}
	return m.Legal(color)
}

// Equal compares two tables move by move, in order.
func (t *Table) Equal(o *Table) bool {
	if len(t.moves) != len(o.moves) {
		return false
	}
	for i := range t.moves {
		if t.moves[i] != o.moves[i] {
			return false
		}
	}
	return true
}
