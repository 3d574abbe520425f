package onitama

import "fmt"

type Color byte
type PieceType byte
type Piece byte

const (
	NoColor Color = iota
	Red
	Blue

	numColors = 3
)

// Red is the reference side: canonical movement deltas and the
// global move table are expressed from Red's point of view.
const ReferenceColor = Red

const (
	NoType PieceType = iota
	Student
	Master
)

const (
	Empty Piece = iota
	RedStudent
	RedMaster
	BlueStudent
	BlueMaster

	numPieces = 5
)

var pieceInfo = [numPieces]struct {
	color Color
	kind  PieceType
}{
	Empty:       {NoColor, NoType},
	RedStudent:  {Red, Student},
	RedMaster:   {Red, Master},
	BlueStudent: {Blue, Student},
	BlueMaster:  {Blue, Master},
}

func MakePiece(color Color, kind PieceType) Piece {
	for p, info := range pieceInfo {
		if info.color == color && info.kind == kind {
			return Piece(p)
		}
	}
	panic(fmt.Sprintf("bad piece: color=%v type=%v", color, kind))
}

func (p Piece) Color() Color {
	return pieceInfo[p].color
}

func (p Piece) Type() PieceType {
	return pieceInfo[p].kind
}

func (p Piece) Valid() bool {
	return p < numPieces
}

func (p Piece) String() string {
	switch p {
	case Empty:
		return "empty"
	case RedStudent, RedMaster, BlueStudent, BlueMaster:
		return p.Color().String() + " " + p.Type().String()
	default:
		panic(fmt.Sprintf("bad piece: %x", int(p)))
	}
}

func (t PieceType) String() string {
	switch t {
	case NoType:
		return "none"
	case Student:
		return "student"
	case Master:
		return "master"
	default:
		panic(fmt.Sprintf("bad piece type: %x", int(t)))
	}
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case NoColor:
		return "no color"
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

func (c Color) Opposite() Color {
	switch c {
	case Red:
		return Blue
	case Blue:
		return Red
	case NoColor:
		return NoColor
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}
