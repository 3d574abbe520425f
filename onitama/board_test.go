package onitama

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardLayout(t *testing.T) {
	b := New()
	for _, c := range AllCoordinates() {
		p := b.At(c)
		switch {
		case c.Y == 0 && c.X == 2:
			assert.Equal(t, RedMaster, p, "%v", c)
		case c.Y == 0:
			assert.Equal(t, RedStudent, p, "%v", c)
		case c.Y == Size-1 && c.X == 2:
			assert.Equal(t, BlueMaster, p, "%v", c)
		case c.Y == Size-1:
			assert.Equal(t, BlueStudent, p, "%v", c)
		default:
			assert.Equal(t, Empty, p, "%v", c)
		}
	}
	assert.Equal(t, b.computeHash(), b.Hash())
}

func TestNewBoardDeterministic(t *testing.T) {
	a, b := New(), New()
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Hash(), NewBoard(NewZobrist(DefaultSeed)).Hash())
	assert.NotEqual(t, a.Hash(), NewBoard(NewZobrist(DefaultSeed+1)).Hash())
}

func TestZeroBoard(t *testing.T) {
	var b Board
	assert.Panics(t, func() { b.Set(Coordinate{0, 0}, RedStudent) })
}

func TestSetIncremental(t *testing.T) {
	b := New()
	for _, c := range AllCoordinates() {
		for p := Piece(0); p < numPieces; p++ {
			clone := b.Clone()
			old := clone.At(c)
			want := b.Hash() ^ b.z.Piece(c, old) ^ b.z.Piece(c, p)
			if old == p {
				want = b.Hash()
			}
			require.NoError(t, clone.Set(c, p))
			if clone.Hash() != want {
				t.Errorf("set %v=%v: hash=%x want %x", c, p, clone.Hash(), want)
			}
			if clone.Hash() != clone.computeHash() {
				t.Errorf("set %v=%v: hash out of sync", c, p)
			}
			for _, o := range AllCoordinates() {
				if o != c && clone.At(o) != b.At(o) {
					t.Errorf("set %v touched %v", c, o)
				}
			}
			assert.Equal(t, old, b.At(c), "source board mutated")
		}
	}
	assert.True(t, b.Equal(New()))
}

func TestSetIdempotent(t *testing.T) {
	b := New()
	h := b.Hash()
	for _, c := range AllCoordinates() {
		require.NoError(t, b.Set(c, b.At(c)))
	}
	assert.Equal(t, h, b.Hash())
	assert.True(t, b.Equal(New()))
}

func TestSetRoundTrip(t *testing.T) {
	b := New()
	c := Coordinate{1, 2}
	require.NoError(t, b.Set(c, BlueMaster))
	assert.NotEqual(t, New().Hash(), b.Hash())
	require.NoError(t, b.Set(c, Empty))
	assert.Equal(t, New().Hash(), b.Hash())
}

func TestRandomSets(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	b := New()
	for i := 0; i < 2000; i++ {
		c := CoordinateAt(r.Intn(NumSquares))
		p := Piece(r.Intn(numPieces))
		require.NoError(t, b.Set(c, p))
		if b.Hash() != b.computeHash() {
			t.Fatalf("step %d: incremental hash diverged", i)
		}
	}
}

func TestOutOfRange(t *testing.T) {
	b := New()
	for _, c := range []Coordinate{{-1, 0}, {0, 5}, {5, 5}, {2, -3}} {
		_, err := b.Get(c)
		assert.True(t, errors.Is(err, ErrOutOfRange), "get %v: %v", c, err)
		err = b.Set(c, RedStudent)
		assert.True(t, errors.Is(err, ErrOutOfRange), "set %v: %v", c, err)
		assert.Panics(t, func() { b.At(c) })
	}
	assert.True(t, b.Equal(New()))
}

func TestClone(t *testing.T) {
	b := New()
	c := b.Clone()
	require.NoError(t, c.Set(Coordinate{2, 0}, Empty))
	assert.Equal(t, RedMaster, b.At(Coordinate{2, 0}))
	assert.Equal(t, Empty, c.At(Coordinate{2, 0}))
	assert.NotEqual(t, b.Hash(), c.Hash())
	assert.True(t, b.Equal(New()))
}

func TestApply(t *testing.T) {
	b := New()
	m := Move{Origin: Coordinate{2, 0}, Card: Tiger, Movement: TwoForward}
	next, err := b.Apply(m, Red)
	require.NoError(t, err)
	assert.Equal(t, Empty, next.At(Coordinate{2, 0}))
	assert.Equal(t, RedMaster, next.At(Coordinate{2, 2}))
	assert.Equal(t, next.computeHash(), next.Hash())
	assert.True(t, b.Equal(New()))

	_, err = b.Apply(Move{Origin: Coordinate{2, 2}, Card: Tiger, Movement: TwoForward}, Red)
	assert.True(t, errors.Is(err, ErrEmptyOrigin), "%v", err)

	_, err = b.Apply(m, Blue)
	assert.True(t, errors.Is(err, ErrIllegalMove), "%v", err)

	bm := Move{Origin: Coordinate{0, 4}, Card: Crab, Movement: OneForward}
	next, err = b.Apply(bm, Blue)
	require.NoError(t, err)
	assert.Equal(t, BlueStudent, next.At(Coordinate{0, 3}))
}

func TestPieces(t *testing.T) {
	b := New()
	red := b.Pieces(Red, nil)
	require.Len(t, red, Size)
	for i, c := range red {
		assert.Equal(t, Coordinate{i, 0}, c)
	}
	assert.Len(t, b.Pieces(Blue, nil), Size)
	assert.Empty(t, b.Pieces(NoColor, nil))
}
