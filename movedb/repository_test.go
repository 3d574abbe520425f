package movedb

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/nelhage/onitama/onitama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Repository {
	t.Helper()
	r, err := Open(filepath.Join(t.TempDir(), "moves.db"))
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestExportRoundTrip(t *testing.T) {
	r := openTemp(t)
	tbl := onitama.MoveTable()
	z := onitama.DefaultZobrist()

	id, err := r.Export(tbl, z)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	runs, err := r.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, id, runs[0].ID)
	assert.Equal(t, 903, runs[0].Moves)
	assert.Equal(t, int64(onitama.DefaultSeed), runs[0].Seed)

	moves, err := r.Moves(id)
	require.NoError(t, err)
	assert.Equal(t, tbl.Moves(), moves)

	pieces, err := r.ZobristConstants(id, KindPiece)
	require.NoError(t, err)
	assert.Equal(t, z.PieceConstants(), pieces)
	cards, err := r.ZobristConstants(id, KindCard)
	require.NoError(t, err)
	assert.Equal(t, z.CardConstants(), cards)
	start, err := r.ZobristConstants(id, KindStart)
	require.NoError(t, err)
	assert.Equal(t, []uint64{z.Start()}, start)

	assert.NoError(t, r.Verify(id, tbl, z))
}

func TestVerifyMismatch(t *testing.T) {
	r := openTemp(t)
	tbl := onitama.MoveTable()
	id, err := r.Export(tbl, onitama.NewZobrist(onitama.DefaultSeed+1))
	require.NoError(t, err)

	err = r.Verify(id, tbl, onitama.DefaultZobrist())
	assert.True(t, errors.Is(err, ErrCorrupt), "%v", err)
}

func TestCorruptMoves(t *testing.T) {
	r := openTemp(t)
	id, err := r.Export(onitama.MoveTable(), onitama.DefaultZobrist())
	require.NoError(t, err)

	_, err = r.db.Exec(`UPDATE moves SET destination = 'a1' WHERE run = ? AND idx = 10`, id)
	require.NoError(t, err)
	_, err = r.Moves(id)
	assert.True(t, errors.Is(err, ErrCorrupt), "%v", err)

	_, err = r.db.Exec(`DELETE FROM moves WHERE run = ? AND idx = 11`, id)
	require.NoError(t, err)
	_, err = r.Moves(id)
	assert.True(t, errors.Is(err, ErrCorrupt), "%v", err)
}

func TestUnknownRun(t *testing.T) {
	r := openTemp(t)
	_, err := r.Moves("nope")
	assert.True(t, errors.Is(err, ErrNoRun), "%v", err)
	_, err = r.ZobristConstants("nope", KindStart)
	assert.True(t, errors.Is(err, ErrNoRun), "%v", err)
}

func TestMultipleRuns(t *testing.T) {
	r := openTemp(t)
	a, err := r.Export(onitama.MoveTable(), onitama.DefaultZobrist())
	require.NoError(t, err)
	b, err := r.Export(onitama.MoveTable(), onitama.DefaultZobrist())
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	runs, err := r.Runs()
	require.NoError(t, err)
	assert.Len(t, runs, 2)
	assert.NoError(t, r.Verify(b, onitama.MoveTable(), onitama.DefaultZobrist()))
}
