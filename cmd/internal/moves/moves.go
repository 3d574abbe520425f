package moves

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nelhage/onitama/notation"
	"github.com/nelhage/onitama/onitama"
)

type Command struct {
	color string
	card  string
	from  string
	count bool
}

func (*Command) Name() string     { return "moves" }
func (*Command) Synopsis() string { return "List the precomputed move table" }
func (*Command) Usage() string {
	return `moves [options]

Print every geometrically legal move, one per line, in table order.
Moves for blue are the red table mirrored through the board's center.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.color, "color", "red", "list moves for this side (red or blue)")
	flags.StringVar(&c.card, "card", "", "only list moves using this card")
	flags.StringVar(&c.from, "from", "", "only list moves from this square (e.g. c1)")
	flags.BoolVar(&c.count, "count", false, "only print the number of moves")
}

// Select returns the moves for color, optionally restricted to a card
// and an origin.
func Select(t *onitama.Table, color onitama.Color, card *onitama.Card, from *onitama.Coordinate) []onitama.Move {
	var out []onitama.Move
	for i := 0; i < t.Len(); i++ {
		m := t.At(i)
		if color != onitama.ReferenceColor {
			m = m.Mirror()
		}
		if card != nil && m.Card != *card {
			continue
		}
		if from != nil && m.Origin != *from {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var color onitama.Color
	switch c.color {
	case "red":
		color = onitama.Red
	case "blue":
		color = onitama.Blue
	default:
		log.Error().Msgf("bad -color %q", c.color)
		return subcommands.ExitUsageError
	}

	var card *onitama.Card
	if c.card != "" {
		cd, ok := onitama.CardByName(c.card)
		if !ok {
			log.Error().Msgf("unknown card %q", c.card)
			return subcommands.ExitUsageError
		}
		card = &cd
	}
	var from *onitama.Coordinate
	if c.from != "" {
		sq, err := notation.ParseCoordinate(c.from)
		if err != nil {
			log.Error().Err(err).Msg("-from")
			return subcommands.ExitUsageError
		}
		from = &sq
	}

	ms := Select(onitama.MoveTable(), color, card, from)
	log.Debug().Int("moves", len(ms)).Str("color", color.String()).Msg("selected moves")
	if !c.count {
		if err := notation.WriteMoves(os.Stdout, ms); err != nil {
			log.Error().Err(err).Msg("write")
			return subcommands.ExitFailure
		}
	}
	p := message.NewPrinter(language.English)
	p.Printf("%d moves\n", len(ms))
	return subcommands.ExitSuccess
}
