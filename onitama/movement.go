package onitama

import (
	"fmt"
	"strings"
)

type Movement byte

const (
	TwoForward Movement = iota
	KnightLeft
	ForwardLeft
	OneForward
	ForwardRight
	KnightRight
	TwoLeft
	OneLeft
	OneRight
	TwoRight
	BackLeft
	OneBack
	BackRight

	NumMovements = 13
)

var movementNames = [NumMovements]string{
	TwoForward:   "two-forward",
	KnightLeft:   "knight-left",
	ForwardLeft:  "forward-left",
	OneForward:   "one-forward",
	ForwardRight: "forward-right",
	KnightRight:  "knight-right",
	TwoLeft:      "two-left",
	OneLeft:      "one-left",
	OneRight:     "one-right",
	TwoRight:     "two-right",
	BackLeft:     "back-left",
	OneBack:      "one-back",
	BackRight:    "back-right",
}

// movementDeltas[m][0] is the canonical (Red) delta and
// movementDeltas[m][1] its opposite, both fixed at init.
var movementDeltas [NumMovements][2]Delta

func init() {
	canonical := [NumMovements]Delta{
		TwoForward:   {2, 0},
		KnightLeft:   {1, -2},
		ForwardLeft:  {1, -1},
		OneForward:   {1, 0},
		ForwardRight: {1, 1},
		KnightRight:  {1, 2},
		TwoLeft:      {0, -2},
		OneLeft:      {0, -1},
		OneRight:     {0, 1},
		TwoRight:     {0, 2},
		BackLeft:     {-1, -1},
		OneBack:      {-1, 0},
		BackRight:    {-1, 1},
	}
	for m, d := range canonical {
		movementDeltas[m] = [2]Delta{d, d.Opposite()}
	}
}

// Delta returns the displacement of m as seen by color. Passing
// NoColor is a programming error.
func (m Movement) Delta(color Color) Delta {
	switch color {
	case ReferenceColor:
		return movementDeltas[m][0]
	case ReferenceColor.Opposite():
		return movementDeltas[m][1]
	default:
		panic(fmt.Sprintf("movement %s has no delta for %v", m, color))
	}
}

func (m Movement) String() string {
	if m >= NumMovements {
		panic(fmt.Sprintf("bad movement: %x", int(m)))
	}
	return movementNames[m]
}

func MovementByName(name string) (Movement, bool) {
	for m, n := range movementNames {
		if strings.EqualFold(n, name) {
			return Movement(m), true
		}
	}
	return 0, false
}
