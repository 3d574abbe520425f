package onitest

import (
	"strings"

	"github.com/nelhage/onitama/notation"
	"github.com/nelhage/onitama/onitama"
)

func Move(s string) onitama.Move {
	m, e := notation.ParseMove(s)
	if e != nil {
		panic(e)
	}
	return m
}

// Moves parses a ';'-separated list of moves.
func Moves(s string) []onitama.Move {
	if s == "" {
		return nil
	}
	var ms []onitama.Move
	for _, b := range strings.Split(s, ";") {
		ms = append(ms, Move(b))
	}
	return ms
}

func FormatMoves(ms []onitama.Move) string {
	var bits []string
	for _, m := range ms {
		bits = append(bits, notation.FormatMove(m))
	}
	return strings.Join(bits, ";")
}

func Board(s string) *onitama.Board {
	b, e := notation.ParseBoard(s)
	if e != nil {
		panic(e)
	}
	return b
}

func Hand(s string) onitama.Hand {
	var cards []onitama.Card
	for _, name := range strings.Split(s, ",") {
		c, ok := onitama.CardByName(strings.TrimSpace(name))
		if !ok {
			panic("unknown card: " + name)
		}
		cards = append(cards, c)
	}
	h, e := onitama.NewHand(cards)
	if e != nil {
		panic(e)
	}
	return h
}
