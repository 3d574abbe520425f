package notation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/nelhage/onitama/onitama"
)

var (
	ErrBadCoordinate = errors.New("bad coordinate")
	ErrBadMove       = errors.New("bad move")
	ErrBadBoard      = errors.New("bad board")
)

var moveRE = regexp.MustCompile(
	// square card movement
	`^\s*([a-zA-Z][0-9])\s+([a-zA-Z]+)\s+([a-zA-Z]+-[a-zA-Z]+)\s*$`,
)

func FormatCoordinate(c onitama.Coordinate) string {
	if !c.Valid() {
		return c.String()
	}
	return string([]byte{byte('a' + c.X), byte('1' + c.Y)})
}

func ParseCoordinate(s string) (onitama.Coordinate, error) {
	if len(s) != 2 {
		return onitama.Coordinate{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}
	file := s[0] | 0x20
	c := onitama.Coordinate{X: int(file) - 'a', Y: int(s[1]) - '1'}
	if !c.Valid() {
		return onitama.Coordinate{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}
	return c, nil
}

// FormatMove renders m as "<square> <card> <movement>", e.g.
// "c1 tiger two-forward".
func FormatMove(m onitama.Move) string {
	return strings.Join([]string{
		FormatCoordinate(m.Origin),
		m.Card.String(),
		m.Movement.String(),
	}, " ")
}

// ParseMove parses the output of FormatMove. It checks names and the
// square, not legality.
func ParseMove(s string) (onitama.Move, error) {
	groups := moveRE.FindStringSubmatch(s)
	if groups == nil {
		return onitama.Move{}, fmt.Errorf("%w: %q", ErrBadMove, s)
	}
	origin, err := ParseCoordinate(groups[1])
	if err != nil {
		return onitama.Move{}, fmt.Errorf("%w: %v", ErrBadMove, err)
	}
	card, ok := onitama.CardByName(groups[2])
	if !ok {
		return onitama.Move{}, fmt.Errorf("%w: unknown card %q", ErrBadMove, groups[2])
	}
	mv, ok := onitama.MovementByName(groups[3])
	if !ok {
		return onitama.Move{}, fmt.Errorf("%w: unknown movement %q", ErrBadMove, groups[3])
	}
	return onitama.Move{Origin: origin, Card: card, Movement: mv}, nil
}
