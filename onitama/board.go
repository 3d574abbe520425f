package onitama

import "fmt"

// A Board maps every square to a Piece and carries a Zobrist hash of
// its contents. The hash is kept current by Set; it is computed from
// scratch only when a board is first built. Boards must be created
// with NewBoard or New; the zero Board has no Zobrist table.
type Board struct {
	z     *Zobrist
	cells [NumSquares]Piece
	hash  uint64
}

var backRank = [Size]PieceType{Student, Student, Master, Student, Student}

// NewBoard returns the starting layout hashed with z: Red's back rank
// is y=0, Blue's is y=Size-1, masters on the center file.
func NewBoard(z *Zobrist) *Board {
	b := &Board{z: z}
	for x := 0; x < Size; x++ {
		b.cells[Coordinate{x, 0}.Index()] = MakePiece(Red, backRank[x])
		b.cells[Coordinate{x, Size - 1}.Index()] = MakePiece(Blue, backRank[x])
	}
	b.hash = b.computeHash()
	return b
}

// New returns the starting layout hashed with DefaultZobrist.
func New() *Board {
	return NewBoard(DefaultZobrist())
}

func (b *Board) computeHash() uint64 {
	h := b.z.Start()
	for i, p := range b.cells {
		h ^= b.z.pieces[i][p]
	}
	return h
}

func (b *Board) Clone() *Board {
	out := *b
	return &out
}

func (b *Board) Hash() uint64 {
	return b.hash
}

func (b *Board) Zobrist() *Zobrist {
	return b.z
}

func (b *Board) Get(c Coordinate) (Piece, error) {
	if !c.Valid() {
		return Empty, fmt.Errorf("get %v: %w", c, ErrOutOfRange)
	}
	return b.cells[c.Index()], nil
}

// At is Get for callers that have already validated c; it panics on
// an invalid coordinate.
func (b *Board) At(c Coordinate) Piece {
	p, err := b.Get(c)
	if err != nil {
		panic(err)
	}
	return p
}

// Set places p on c, updating the hash incrementally. Setting the
// piece already on c changes nothing.
func (b *Board) Set(c Coordinate, p Piece) error {
	if !c.Valid() {
		return fmt.Errorf("set %v: %w", c, ErrOutOfRange)
	}
	if !p.Valid() {
		panic(fmt.Sprintf("bad piece: %x", int(p)))
	}
	i := c.Index()
	old := b.cells[i]
	if old == p {
		return nil
	}
	b.hash ^= b.z.pieces[i][old]
	b.hash ^= b.z.pieces[i][p]
	b.cells[i] = p
	return nil
}

// Apply returns a copy of b with the piece on m's origin moved to its
// destination as seen by color. Whatever occupied the destination is
// replaced; capture and turn rules belong to the caller.
func (b *Board) Apply(m Move, color Color) (*Board, error) {
	if !m.Legal(color) {
		return nil, fmt.Errorf("apply %v for %v: %w", m, color, ErrIllegalMove)
	}
	p := b.cells[m.Origin.Index()]
	if p == Empty {
		return nil, fmt.Errorf("apply %v: %w", m, ErrEmptyOrigin)
	}
	next := b.Clone()
	if err := next.Set(m.Destination(color), p); err != nil {
		return nil, err
	}
	if err := next.Set(m.Origin, Empty); err != nil {
		return nil, err
	}
	return next, nil
}

// Pieces appends the coordinates occupied by color to out in index
// order.
func (b *Board) Pieces(color Color, out []Coordinate) []Coordinate {
	for i, p := range b.cells {
		if p != Empty && p.Color() == color {
			out = append(out, CoordinateAt(i))
		}
	}
	return out
}

func (b *Board) Equal(o *Board) bool {
	return b.hash == o.hash && b.cells == o.cells
}
