package notation

import (
	"fmt"
	"strings"

	"github.com/nelhage/onitama/onitama"
)

const StartBoard = "bbBbb/5/5/5/rrRrr"

var pieceChars = map[onitama.Piece]byte{
	onitama.RedStudent:  'r',
	onitama.RedMaster:   'R',
	onitama.BlueStudent: 'b',
	onitama.BlueMaster:  'B',
}

// FormatBoard writes rows from the top rank down, separated by '/',
// with digits standing for runs of empty squares.
func FormatBoard(b *onitama.Board) string {
	var rows []string
	for y := onitama.Size - 1; y >= 0; y-- {
		var row []byte
		empty := 0
		for x := 0; x < onitama.Size; x++ {
			p := b.At(onitama.Coordinate{X: x, Y: y})
			if p == onitama.Empty {
				empty++
				continue
			}
			if empty > 0 {
				row = append(row, byte('0'+empty))
				empty = 0
			}
			row = append(row, pieceChars[p])
		}
		if empty > 0 {
			row = append(row, byte('0'+empty))
		}
		rows = append(rows, string(row))
	}
	return strings.Join(rows, "/")
}

// ParseBoard builds a board hashed with the default Zobrist table.
func ParseBoard(s string) (*onitama.Board, error) {
	return ParseBoardWith(onitama.DefaultZobrist(), s)
}

func ParseBoardWith(z *onitama.Zobrist, s string) (*onitama.Board, error) {
	rows := strings.Split(strings.TrimSpace(s), "/")
	if len(rows) != onitama.Size {
		return nil, fmt.Errorf("%w: %d rows", ErrBadBoard, len(rows))
	}
	b := onitama.NewBoard(z)
	for i, row := range rows {
		y := onitama.Size - 1 - i
		cells, err := parseRow(row)
		if err != nil {
			return nil, err
		}
		for x, p := range cells {
			if err := b.Set(onitama.Coordinate{X: x, Y: y}, p); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

func parseRow(row string) ([]onitama.Piece, error) {
	var out []onitama.Piece
	for _, ch := range row {
		switch {
		case ch >= '1' && ch <= '0'+onitama.Size:
			for i := 0; i < int(ch-'0'); i++ {
				out = append(out, onitama.Empty)
			}
		case ch == 'r':
			out = append(out, onitama.RedStudent)
		case ch == 'R':
			out = append(out, onitama.RedMaster)
		case ch == 'b':
			out = append(out, onitama.BlueStudent)
		case ch == 'B':
			out = append(out, onitama.BlueMaster)
		default:
			return nil, fmt.Errorf("%w: malformed row %q", ErrBadBoard, row)
		}
	}
	if len(out) != onitama.Size {
		return nil, fmt.Errorf("%w: row %q has %d squares", ErrBadBoard, row, len(out))
	}
	return out, nil
}
