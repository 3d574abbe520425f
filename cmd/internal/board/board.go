package board

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/onitama/cli"
	"github.com/nelhage/onitama/cmd/internal/opt"
	"github.com/nelhage/onitama/notation"
	"github.com/nelhage/onitama/onitama"
)

type Command struct {
	position string
	unicode  bool
	zobrist  opt.Zobrist
}

func (*Command) Name() string     { return "board" }
func (*Command) Synopsis() string { return "Render a board and its hash" }
func (*Command) Usage() string {
	return `board [options] [MOVE...]

Render the starting board (or -position) and its Zobrist hash. Each
MOVE argument, written "<square> <card> <movement>" and prefixed with
"red:" or "blue:", is applied in turn before rendering. Only geometry
is checked.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.position, "position", notation.StartBoard, "board to render, in row notation")
	flags.BoolVar(&c.unicode, "unicode", false, "render with unicode glyphs")
	c.zobrist.AddFlags(flags)
}

func parseColoredMove(s string) (onitama.Color, onitama.Move, error) {
	var color onitama.Color
	var rest string
	switch {
	case strings.HasPrefix(s, "red:"):
		color, rest = onitama.Red, strings.TrimPrefix(s, "red:")
	case strings.HasPrefix(s, "blue:"):
		color, rest = onitama.Blue, strings.TrimPrefix(s, "blue:")
	default:
		return 0, onitama.Move{}, fmt.Errorf("move %q: missing red: or blue: prefix", s)
	}
	m, err := notation.ParseMove(rest)
	return color, m, err
}

// Play parses position and applies each colored move to it.
func Play(z *onitama.Zobrist, position string, moves []string) (*onitama.Board, error) {
	b, err := notation.ParseBoardWith(z, position)
	if err != nil {
		return nil, err
	}
	for _, s := range moves {
		color, m, err := parseColoredMove(s)
		if err != nil {
			return nil, err
		}
		b, err = b.Apply(m, color)
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := Play(c.zobrist.Build(), c.position, flag.Args())
	if err != nil {
		log.Error().Err(err).Msg("board")
		return subcommands.ExitFailure
	}
	g := &cli.DefaultGlyphs
	if c.unicode {
		g = &cli.UnicodeGlyphs
	}
	cli.RenderBoard(g, os.Stdout, b)
	fmt.Println(notation.FormatBoard(b))
	return subcommands.ExitSuccess
}
