package export

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/onitama/cmd/internal/opt"
	"github.com/nelhage/onitama/movedb"
	"github.com/nelhage/onitama/onitama"
)

type Command struct {
	verify  string
	list    bool
	zobrist opt.Zobrist
}

func (*Command) Name() string     { return "export" }
func (*Command) Synopsis() string { return "Store the move table and Zobrist constants in sqlite" }
func (*Command) Usage() string {
	return `export [options] MOVES.db

Write the move table and Zobrist constants to MOVES.db under a new run
id. With -verify RUN, check this process's tables against a stored run
instead.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.verify, "verify", "", "verify against this run id instead of exporting")
	flags.BoolVar(&c.list, "list", false, "list stored runs")
	c.zobrist.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(flag.Args()) != 1 {
		log.Error().Msg("must supply a database path")
		return subcommands.ExitUsageError
	}
	repo, err := movedb.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Str("db", flag.Arg(0)).Msg("open")
	}
	defer repo.Close()

	tbl := onitama.MoveTable()
	z := c.zobrist.Build()

	switch {
	case c.list:
		runs, err := repo.Runs()
		if err != nil {
			log.Error().Err(err).Msg("list runs")
			return subcommands.ExitFailure
		}
		for _, r := range runs {
			fmt.Printf("%s\t%s\tseed=%#x\tmoves=%d\n",
				r.ID, r.Created.Format("2006-01-02 15:04:05"), uint64(r.Seed), r.Moves)
		}
	case c.verify != "":
		if err := repo.Verify(c.verify, tbl, z); err != nil {
			log.Error().Err(err).Str("run", c.verify).Msg("verify")
			return subcommands.ExitFailure
		}
		log.Info().Str("run", c.verify).Msg("tables match")
	default:
		id, err := repo.Export(tbl, z)
		if err != nil {
			log.Error().Err(err).Msg("export")
			return subcommands.ExitFailure
		}
		log.Info().Str("run", id).Int("moves", tbl.Len()).Msg("exported")
		fmt.Println(id)
	}
	return subcommands.ExitSuccess
}
