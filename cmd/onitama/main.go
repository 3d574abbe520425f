package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/onitama/cmd/internal/board"
	"github.com/nelhage/onitama/cmd/internal/deal"
	"github.com/nelhage/onitama/cmd/internal/export"
	"github.com/nelhage/onitama/cmd/internal/moves"
	"github.com/nelhage/onitama/cmd/internal/selftest"
)

var debug = flag.Bool("debug", false, "enable debug logging")

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&moves.Command{}, "")
	subcommands.Register(&board.Command{}, "")
	subcommands.Register(&deal.Command{}, "")
	subcommands.Register(&export.Command{}, "")
	subcommands.Register(&selftest.Command{}, "")

	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
