package onitama

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardCatalog(t *testing.T) {
	counts := map[Color]int{}
	for _, c := range AllCards() {
		n := c.NumMovements()
		if n < 2 || n > 4 {
			t.Errorf("%s: %d movements", c, n)
		}
		for i := 0; i < n; i++ {
			if !c.Has(c.Movement(i)) {
				t.Errorf("%s: missing own movement %s", c, c.Movement(i))
			}
		}
		counts[c.Affinity()]++
	}
	assert.Equal(t, 8, counts[Red])
	assert.Equal(t, 8, counts[Blue])
}

func TestCardMovementsCopy(t *testing.T) {
	ms := Tiger.Movements()
	require.Equal(t, []Movement{TwoForward, OneBack}, ms)
	ms[0] = OneLeft
	assert.Equal(t, TwoForward, Tiger.Movement(0))
	assert.False(t, Tiger.Has(OneLeft))
}

func TestCardByName(t *testing.T) {
	for _, c := range AllCards() {
		got, ok := CardByName(c.String())
		require.True(t, ok, c.String())
		assert.Equal(t, c, got)
	}
	got, ok := CardByName("ELEPHANT")
	require.True(t, ok)
	assert.Equal(t, Elephant, got)
	_, ok = CardByName("unicorn")
	assert.False(t, ok)
}
