package notation

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/nelhage/onitama/onitama"
)

// WriteMoves writes one move per line, in order.
func WriteMoves(w io.Writer, moves []onitama.Move) error {
	bw := bufio.NewWriter(w)
	for _, m := range moves {
		if _, err := fmt.Fprintln(bw, FormatMove(m)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadMoves parses the output of WriteMoves. Blank lines and lines
// starting with '#' are skipped.
func ReadMoves(r io.Reader) ([]onitama.Move, error) {
	var out []onitama.Move
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		m, err := ParseMove(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, m)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
