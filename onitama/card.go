package onitama

import (
	"fmt"
	"strings"
)

type Card byte

const (
	Boar Card = iota
	Cobra
	Crab
	Crane
	Dragon
	Eel
	Elephant
	Frog
	Goose
	Horse
	Mantis
	Monkey
	Ox
	Rabbit
	Rooster
	Tiger

	NumCards = 16
)

type cardInfo struct {
	name      string
	affinity  Color
	movements []Movement
}

// The movement order of each card is part of the move table's index
// order and must not change.
var cards = [NumCards]cardInfo{
	Boar:     {"boar", Red, []Movement{OneForward, OneLeft, OneRight}},
	Cobra:    {"cobra", Red, []Movement{ForwardRight, OneLeft, BackRight}},
	Crab:     {"crab", Blue, []Movement{OneForward, TwoLeft, TwoRight}},
	Crane:    {"crane", Blue, []Movement{OneForward, BackLeft, BackRight}},
	Dragon:   {"dragon", Red, []Movement{KnightLeft, KnightRight, BackLeft, BackRight}},
	Eel:      {"eel", Blue, []Movement{ForwardLeft, OneRight, BackLeft}},
	Elephant: {"elephant", Red, []Movement{ForwardLeft, ForwardRight, OneLeft, OneRight}},
	Frog:     {"frog", Red, []Movement{ForwardLeft, TwoLeft, BackRight}},
	Goose:    {"goose", Blue, []Movement{ForwardLeft, OneLeft, OneRight, BackRight}},
	Horse:    {"horse", Red, []Movement{OneForward, OneLeft, OneBack}},
	Mantis:   {"mantis", Red, []Movement{ForwardLeft, ForwardRight, OneBack}},
	Monkey:   {"monkey", Blue, []Movement{ForwardLeft, ForwardRight, BackLeft, BackRight}},
	Ox:       {"ox", Blue, []Movement{OneForward, OneRight, OneBack}},
	Rabbit:   {"rabbit", Blue, []Movement{ForwardRight, TwoRight, BackLeft}},
	Rooster:  {"rooster", Red, []Movement{ForwardRight, OneLeft, OneRight, BackLeft}},
	Tiger:    {"tiger", Blue, []Movement{TwoForward, OneBack}},
}

func (c Card) info() *cardInfo {
	if c >= NumCards {
		panic(fmt.Sprintf("bad card: %x", int(c)))
	}
	return &cards[c]
}

// Affinity is the side that holds c in the printed starting deal. It
// has no bearing on which side may play the card.
func (c Card) Affinity() Color {
	return c.info().affinity
}

func (c Card) NumMovements() int {
	return len(c.info().movements)
}

func (c Card) Movement(i int) Movement {
	return c.info().movements[i]
}

// Movements returns a copy of the card's movements in declaration order.
func (c Card) Movements() []Movement {
	ms := c.info().movements
	out := make([]Movement, len(ms))
	copy(out, ms)
	return out
}

func (c Card) Has(m Movement) bool {
	for _, mv := range c.info().movements {
		if mv == m {
			return true
		}
	}
	return false
}

func (c Card) String() string {
	return c.info().name
}

func CardByName(name string) (Card, bool) {
	for c := range cards {
		if strings.EqualFold(cards[c].name, name) {
			return Card(c), true
		}
	}
	return 0, false
}

func AllCards() []Card {
	out := make([]Card, NumCards)
	for i := range out {
		out[i] = Card(i)
	}
	return out
}
