package selftest

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nelhage/onitama/cli"
	"github.com/nelhage/onitama/onitama"
)

type Command struct {
	threads int
	builds  int
}

func (*Command) Name() string     { return "selftest" }
func (*Command) Synopsis() string { return "Check table and hash invariants in parallel" }
func (*Command) Usage() string {
	return `selftest [options]

Rebuild the move table concurrently and compare each copy against the
shared table, then apply every move from the starting position and
check each successor's incremental hash against a full recomputation.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.threads, "threads", runtime.NumCPU(), "number of worker goroutines")
	flags.IntVar(&c.builds, "builds", 8, "number of independent table builds")
}

var errMismatch = errors.New("mismatch")

// CheckBuilds builds the move table n times across threads workers and
// compares each build to the shared table.
func CheckBuilds(ctx context.Context, threads, n int) error {
	if threads < 1 {
		threads = 1
	}
	grp, ctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, threads)
	want := onitama.MoveTable()
	for i := 0; i < n; i++ {
		i := i
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			return grp.Wait()
		}
		grp.Go(func() error {
			defer func() { <-sem }()
			if !onitama.BuildTable().Equal(want) {
				return fmt.Errorf("build %d: %w", i, errMismatch)
			}
			return nil
		})
	}
	return grp.Wait()
}

func recompute(b *onitama.Board) uint64 {
	z := b.Zobrist()
	h := z.Start()
	for _, c := range onitama.AllCoordinates() {
		h ^= z.Piece(c, b.At(c))
	}
	return h
}

// CheckClones applies every table move for both sides to start and
// verifies the successor's hash. It returns the number of successors
// checked.
func CheckClones(ctx context.Context, threads int, start *onitama.Board) (int64, error) {
	if threads < 1 {
		threads = 1
	}
	tbl := onitama.MoveTable()
	before := start.Hash()
	grp, ctx := errgroup.WithContext(ctx)
	squares := make(chan onitama.Coordinate)
	var count int64

	grp.Go(func() error {
		defer close(squares)
		for _, c := range onitama.AllCoordinates() {
			select {
			case squares <- c:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for i := 0; i < threads; i++ {
		grp.Go(func() error {
			var buf []onitama.Move
			for c := range squares {
				buf = tbl.From(c, buf[:0])
				for _, m := range buf {
					for _, color := range []onitama.Color{onitama.Red, onitama.Blue} {
						mv := m
						if color != onitama.ReferenceColor {
							mv = m.Mirror()
						}
						if start.At(mv.Origin).Color() != color {
							continue
						}
						next, err := start.Apply(mv, color)
						if err != nil {
							return fmt.Errorf("%s %v: %w", color, mv, err)
						}
						if got := recompute(next); got != next.Hash() {
							return fmt.Errorf("%s %v: hash %016x, recomputed %016x: %w",
								color, mv, next.Hash(), got, errMismatch)
						}
						atomic.AddInt64(&count, 1)
					}
				}
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return count, err
	}
	if start.Hash() != before || recompute(start) != before {
		return count, fmt.Errorf("start board changed: %w", errMismatch)
	}
	return count, nil
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p := message.NewPrinter(language.English)

	log.Info().Int("threads", c.threads).Int("builds", c.builds).Msg("checking table builds")
	if err := CheckBuilds(ctx, c.threads, c.builds); err != nil {
		log.Error().Err(err).Msg("table builds")
		return subcommands.ExitFailure
	}
	p.Printf("%d moves\n", onitama.MoveTable().Len())

	start := onitama.New()
	n, err := CheckClones(ctx, c.threads, start)
	if err != nil {
		log.Error().Err(err).Int64("checked", n).Msg("successor hashes")
		return subcommands.ExitFailure
	}
	p.Printf("%d successor boards checked\n", n)
	cli.RenderBoard(nil, os.Stdout, start)
	return subcommands.ExitSuccess
}
