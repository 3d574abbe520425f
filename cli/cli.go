package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nelhage/onitama/onitama"
)

type GlyphSet struct {
	Student string
	Master  string
}

type Glyphs struct {
	Empty     string
	Red, Blue GlyphSet
}

var DefaultGlyphs = Glyphs{
	Empty: ".",
	Red: GlyphSet{
		Student: "r",
		Master:  "R",
	},
	Blue: GlyphSet{
		Student: "b",
		Master:  "B",
	},
}

var UnicodeGlyphs = Glyphs{
	Empty: "·",
	Red: GlyphSet{
		Student: "♙",
		Master:  "♔",
	},
	Blue: GlyphSet{
		Student: "♟",
		Master:  "♚",
	},
}

func (g *Glyphs) glyph(p onitama.Piece) string {
	switch p {
	case onitama.Empty:
		return g.Empty
	case onitama.RedStudent:
		return g.Red.Student
	case onitama.RedMaster:
		return g.Red.Master
	case onitama.BlueStudent:
		return g.Blue.Student
	case onitama.BlueMaster:
		return g.Blue.Master
	default:
		panic(fmt.Sprintf("bad piece %v", p))
	}
}

// RenderBoard draws b with the top rank first, followed by its hash.
func RenderBoard(g *Glyphs, out io.Writer, b *onitama.Board) {
	if g == nil {
		g = &DefaultGlyphs
	}
	w := tabwriter.NewWriter(out, 2, 8, 1, ' ', 0)
	for y := onitama.Size - 1; y >= 0; y-- {
		fmt.Fprintf(w, "%c.\t", '1'+y)
		for x := 0; x < onitama.Size; x++ {
			fmt.Fprintf(w, "%s\t", g.glyph(b.At(onitama.Coordinate{X: x, Y: y})))
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "\t")
	for x := 0; x < onitama.Size; x++ {
		fmt.Fprintf(w, "%c\t", 'a'+x)
	}
	fmt.Fprintf(w, "\n")
	w.Flush()
	fmt.Fprintf(out, "hash: %016x\n", b.Hash())
}

func RenderHand(out io.Writer, h onitama.Hand) {
	for _, c := range []onitama.Color{onitama.Red, onitama.Blue} {
		fmt.Fprintf(out, "%s:", c)
		for _, card := range h.Cards(c) {
			fmt.Fprintf(out, " %s", card)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "reserve: %s\n", h.Reserve())
}
