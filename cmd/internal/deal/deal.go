package deal

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
	"github.com/nelhage/onitama/onitama"
)

type Command struct {
	deal    opt.Deal
	zobrist opt.Zobrist
}

func (*Command) Name() string     { return "deal" }
func (*Command) Synopsis() string { return "Deal cards and play them through" }
func (*Command) Usage() string {
	return `deal [options] [COLOR:CARD...]

Deal five cards and print each side's hand and the reserve. Each
argument, e.g. "red:tiger", plays that card and prints the new hands.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.deal.AddFlags(flags)
	c.zobrist.AddFlags(flags)
}

// Play applies each "color:card" play to h in order. It returns every
// hand reached, starting with h, even when a play fails.
func Play(h onitama.Hand, plays []string) ([]onitama.Hand, error) {
	out := []onitama.Hand{h}
	for _, p := range plays {
		bits := strings.SplitN(p, ":", 2)
		if len(bits) != 2 {
			return out, fmt.Errorf("bad play %q", p)
		}
		var color onitama.Color
		switch bits[0] {
		case "red":
			color = onitama.Red
		case "blue":
			color = onitama.Blue
		default:
			return out, fmt.Errorf("bad color in %q", p)
		}
		card, ok := onitama.CardByName(bits[1])
		if !ok {
			return out, fmt.Errorf("unknown card in %q", p)
		}
		next, err := h.Play(color, card)
		if err != nil {
			return out, err
		}
		out = append(out, next)
		h = next
	}
	return out, nil
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	h, err := c.deal.Hand()
	if err != nil {
		log.Error().Err(err).Msg("deal")
		return subcommands.ExitFailure
	}
	log.Debug().Uint64("seed", c.deal.Seed).Str("hand", h.String()).Msg("dealt")
	z := c.zobrist.Build()

	hands, err := Play(h, flag.Args())
	for i, h := range hands {
		if i > 0 {
			fmt.Printf("\n%s\n", flag.Arg(i-1))
		}
		cli.RenderHand(os.Stdout, h)
		fmt.Printf("hash: %016x\n", h.Hash(z))
	}
	if err != nil {
		log.Error().Err(err).Msg("play")
		return subcommands.ExitFailure
	}
	fmt.Printf("\n%s moves first\n", hands[0].StartingColor())
	return subcommands.ExitSuccess
}
