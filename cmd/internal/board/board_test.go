package board

import (
	"testing"

	"github.com/nelhage/onitama/notation"
	"github.com/nelhage/onitama/onitama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlay(t *testing.T) {
	z := onitama.DefaultZobrist()
	b, err := Play(z, notation.StartBoard, nil)
	require.NoError(t, err)
	assert.True(t, b.Equal(onitama.New()))

	b, err = Play(z, notation.StartBoard, []string{
		"red:c1 tiger two-forward",
		"blue:c5 crab one-forward",
	})
	require.NoError(t, err)
	assert.Equal(t, "bb1bb/2B2/2R2/5/rr1rr", notation.FormatBoard(b))

	_, err = Play(z, notation.StartBoard, []string{"c1 tiger two-forward"})
	assert.Error(t, err)
	_, err = Play(z, notation.StartBoard, []string{"red:c5 tiger two-forward"})
	assert.ErrorIs(t, err, onitama.ErrIllegalMove)
	_, err = Play(z, notation.StartBoard, []string{"red:c3 tiger one-back"})
	assert.ErrorIs(t, err, onitama.ErrEmptyOrigin)
}
