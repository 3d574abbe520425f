package opt

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"

	"github.com/nelhage/onitama/onitama"
)

type Zobrist struct {
	Seed uint64
}

func (o *Zobrist) AddFlags(flags *flag.FlagSet) {
	flags.Uint64Var(&o.Seed, "zobrist-seed", onitama.DefaultSeed, "seed for the Zobrist table")
}

func (o *Zobrist) Build() *onitama.Zobrist {
	if o.Seed == onitama.DefaultSeed {
		return onitama.DefaultZobrist()
	}
	return onitama.NewZobrist(o.Seed)
}

// Deal selects the cards in play: an explicit list, a YAML file, or a
// seeded random draw, in that order of precedence.
type Deal struct {
	Seed   uint64
	Cards  string
	Config string
}

type dealFile struct {
	Seed  uint64   `yaml:"seed"`
	Cards []string `yaml:"cards"`
}

func (o *Deal) AddFlags(flags *flag.FlagSet) {
	flags.Uint64Var(&o.Seed, "seed", 0, "random seed for dealing (0 picks one)")
	flags.StringVar(&o.Cards, "cards", "", "comma-separated cards: red, red, blue, blue, reserve")
	flags.StringVar(&o.Config, "config", "", "YAML file with seed and/or cards")
}

func (o *Deal) load() error {
	if o.Config == "" {
		return nil
	}
	buf, err := os.ReadFile(o.Config)
	if err != nil {
		return err
	}
	var f dealFile
	if err := yaml.Unmarshal(buf, &f); err != nil {
		return fmt.Errorf("parse %s: %v", o.Config, err)
	}
	if o.Seed == 0 {
		o.Seed = f.Seed
	}
	if o.Cards == "" && len(f.Cards) > 0 {
		o.Cards = strings.Join(f.Cards, ",")
	}
	return nil
}

func ParseCards(s string) ([]onitama.Card, error) {
	var out []onitama.Card
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		c, ok := onitama.CardByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown card %q", name)
		}
		out = append(out, c)
	}
	return out, nil
}

func (o *Deal) Hand() (onitama.Hand, error) {
	if err := o.load(); err != nil {
		return onitama.Hand{}, err
	}
	if o.Cards != "" {
		cards, err := ParseCards(o.Cards)
		if err != nil {
			return onitama.Hand{}, err
		}
		return onitama.NewHand(cards)
	}
	if o.Seed == 0 {
		o.Seed = uint64(time.Now().UnixNano())
	}
	return onitama.DealHand(rand.New(rand.NewSource(o.Seed))), nil
}
