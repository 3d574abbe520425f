package onitama

import (
	"sync"

	"golang.org/x/exp/rand"
)

// DefaultSeed seeds the shared Zobrist table. Hashes are only
// comparable between processes that agree on the seed.
const DefaultSeed uint64 = 0x0417a3

// Zobrist holds the random constants used to hash positions. Draw
// order is fixed: one constant per (square, piece) with the square
// index varying slowest, then one per (card, color) with the card
// varying slowest, then the start constant.
type Zobrist struct {
	seed   uint64
	pieces [NumSquares][numPieces]uint64
	cards  [NumCards][numColors]uint64
	start  uint64
}

func NewZobrist(seed uint64) *Zobrist {
	z := &Zobrist{seed: seed}
	src := rand.NewSource(seed)
	next := func() uint64 {
		v := src.Uint64()
		for v == 0 {
			v = src.Uint64()
		}
		return v
	}
	for i := range z.pieces {
		for p := range z.pieces[i] {
			z.pieces[i][p] = next()
		}
	}
	for c := range z.cards {
		for col := range z.cards[c] {
			z.cards[c][col] = next()
		}
	}
	z.start = next()
	return z
}

var (
	zobristOnce sync.Once
	zobrist     *Zobrist
)

func DefaultZobrist() *Zobrist {
	zobristOnce.Do(func() {
		zobrist = NewZobrist(DefaultSeed)
	})
	return zobrist
}

func (z *Zobrist) Seed() uint64 {
	return z.seed
}

func (z *Zobrist) Piece(c Coordinate, p Piece) uint64 {
	return z.pieces[c.Index()][p]
}

func (z *Zobrist) Card(card Card, holder Color) uint64 {
	return z.cards[card][holder]
}

func (z *Zobrist) Start() uint64 {
	return z.start
}

// PieceConstants returns the piece constants in draw order.
func (z *Zobrist) PieceConstants() []uint64 {
	out := make([]uint64, 0, NumSquares*numPieces)
	for i := range z.pieces {
		out = append(out, z.pieces[i][:]...)
	}
	return out
}

// CardConstants returns the card constants in draw order.
func (z *Zobrist) CardConstants() []uint64 {
	out := make([]uint64, 0, NumCards*numColors)
	for c := range z.cards {
		out = append(out, z.cards[c][:]...)
	}
	return out
}
