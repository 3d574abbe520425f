package movedb

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/nelhage/onitama/notation"
	"github.com/nelhage/onitama/onitama"

	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite
)

// Kind names a group of Zobrist constants.
type Kind string

const (
	KindPiece Kind = "piece"
	KindCard  Kind = "card"
	KindStart Kind = "start"
)

var (
	ErrNoRun   = errors.New("no such run")
	ErrCorrupt = errors.New("stored move table is inconsistent")
)

// A Repository stores exported move tables and Zobrist constants so
// that independent processes can check they agree.
type Repository struct {
	db *sqlx.DB
}

func Open(path string) (*Repository, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	for _, stmt := range []struct {
		name string
		sql  string
	}{
		{"runs", createRunTable},
		{"moves", createMoveTable},
		{"zobrist", createZobristTable},
	} {
		if _, err := db.Exec(stmt.sql); err != nil {
			db.Close()
			return nil, fmt.Errorf("create %s table: %v", stmt.name, err)
		}
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// Export writes t and z under a new run id in a single transaction.
// Constants are stored as the int64 with the same bits.
func (r *Repository) Export(t *onitama.Table, z *onitama.Zobrist) (string, error) {
	id := uuid.NewString()
	tx, err := r.db.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	run := Run{
		ID:      id,
		Created: time.Now().UTC(),
		Seed:    int64(z.Seed()),
		Moves:   t.Len(),
	}
	if _, err := tx.NamedExec(insertRun, &run); err != nil {
		return "", fmt.Errorf("insert run: %v", err)
	}

	for i := 0; i < t.Len(); i++ {
		m := t.At(i)
		row := moveRow{
			Run:         id,
			Idx:         i,
			Origin:      notation.FormatCoordinate(m.Origin),
			Card:        m.Card.String(),
			Movement:    m.Movement.String(),
			Destination: notation.FormatCoordinate(m.Destination(onitama.ReferenceColor)),
		}
		if _, err := tx.NamedExec(insertMove, &row); err != nil {
			return "", fmt.Errorf("insert move %d: %v", i, err)
		}
	}

	groups := []struct {
		kind   Kind
		values []uint64
	}{
		{KindPiece, z.PieceConstants()},
		{KindCard, z.CardConstants()},
		{KindStart, []uint64{z.Start()}},
	}
	for _, g := range groups {
		for i, v := range g.values {
			row := zobristRow{Run: id, Kind: string(g.kind), Idx: i, Value: int64(v)}
			if _, err := tx.NamedExec(insertZobrist, &row); err != nil {
				return "", fmt.Errorf("insert %s constant %d: %v", g.kind, i, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

func (r *Repository) Runs() ([]Run, error) {
	var runs []Run
	if err := r.db.Select(&runs, selectRuns); err != nil {
		return nil, err
	}
	return runs, nil
}

func (r *Repository) Run(id string) (*Run, error) {
	var run Run
	err := r.db.Get(&run, selectRun, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNoRun, id)
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// Moves reads back the table stored under id, in index order.
func (r *Repository) Moves(id string) ([]onitama.Move, error) {
	run, err := r.Run(id)
	if err != nil {
		return nil, err
	}
	var rows []moveRow
	if err := r.db.Select(&rows, selectMoves, id); err != nil {
		return nil, err
	}
	if len(rows) != run.Moves {
		return nil, fmt.Errorf("%w: run %s has %d moves, expected %d", ErrCorrupt, id, len(rows), run.Moves)
	}
	out := make([]onitama.Move, 0, len(rows))
	for i, row := range rows {
		if row.Idx != i {
			return nil, fmt.Errorf("%w: gap at index %d", ErrCorrupt, i)
		}
		m, err := notation.ParseMove(row.Origin + " " + row.Card + " " + row.Movement)
		if err != nil {
			return nil, fmt.Errorf("%w: move %d: %v", ErrCorrupt, i, err)
		}
		if dest := notation.FormatCoordinate(m.Destination(onitama.ReferenceColor)); dest != row.Destination {
			return nil, fmt.Errorf("%w: move %d lands on %s, stored %s", ErrCorrupt, i, dest, row.Destination)
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *Repository) ZobristConstants(id string, kind Kind) ([]uint64, error) {
	if _, err := r.Run(id); err != nil {
		return nil, err
	}
	var rows []zobristRow
	if err := r.db.Select(&rows, selectZobrist, id, string(kind)); err != nil {
		return nil, err
	}
	out := make([]uint64, len(rows))
	for i, row := range rows {
		out[i] = uint64(row.Value)
	}
	return out, nil
}

// Verify compares the run stored under id against t and z.
func (r *Repository) Verify(id string, t *onitama.Table, z *onitama.Zobrist) error {
	moves, err := r.Moves(id)
	if err != nil {
		return err
	}
	if len(moves) != t.Len() {
		return fmt.Errorf("%w: %d moves stored, table has %d", ErrCorrupt, len(moves), t.Len())
	}
	for i, m := range moves {
		if m != t.At(i) {
			return fmt.Errorf("%w: move %d is %s, table has %s",
				ErrCorrupt, i, notation.FormatMove(m), notation.FormatMove(t.At(i)))
		}
	}
	for _, g := range []struct {
		kind Kind
		want []uint64
	}{
		{KindPiece, z.PieceConstants()},
		{KindCard, z.CardConstants()},
		{KindStart, []uint64{z.Start()}},
	} {
		got, err := r.ZobristConstants(id, g.kind)
		if err != nil {
			return err
		}
		if len(got) != len(g.want) {
			return fmt.Errorf("%w: %d %s constants stored, want %d", ErrCorrupt, len(got), g.kind, len(g.want))
		}
		for i := range got {
			if got[i] != g.want[i] {
				return fmt.Errorf("%w: %s constant %d differs", ErrCorrupt, g.kind, i)
			}
		}
	}
	return nil
}
