package selftest

import (
	"context"
	"testing"

	"github.com/nelhage/onitama/onitama"
	"github.com/nelhage/onitama/onitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckBuilds(t *testing.T) {
	require.NoError(t, CheckBuilds(context.Background(), 4, 16))
}

func TestCheckClones(t *testing.T) {
	start := onitama.New()
	before := start.Hash()

	tbl := onitama.MoveTable()
	want := int64(0)
	for i := 0; i < tbl.Len(); i++ {
		m := tbl.At(i)
		if m.Origin.Y == 0 {
			want++
		}
		if m.Mirror().Origin.Y == onitama.Size-1 {
			want++
		}
	}

	n, err := CheckClones(context.Background(), 3, start)
	require.NoError(t, err)
	assert.Equal(t, want, n)
	assert.Equal(t, before, start.Hash())
}

func TestCheckClonesCustomBoard(t *testing.T) {
	n, err := CheckClones(context.Background(), 2, onitest.Board("5/5/2B2/5/2R2"))
	require.NoError(t, err)
	assert.Greater(t, n, int64(0))
}

func TestZeroThreads(t *testing.T) {
	require.NoError(t, CheckBuilds(context.Background(), 0, 2))
	n, err := CheckClones(context.Background(), 0, onitama.New())
	require.NoError(t, err)
	assert.Greater(t, n, int64(0))
}
