package yahtzee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollBounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		dice := Roll()
		assert.Len(t, dice, NumDice)
		for _, d := range dice {
			assert.GreaterOrEqual(t, d, 1)
			assert.LessOrEqual(t, d, 6)
		}
	}
}

func TestRerollKeepsHeldPositions(t *testing.T) {
	current := []int{1, 2, 3, 4, 5}
	held := []bool{true, false, true, false, true}

	for i := 0; i < 50; i++ {
		next := Reroll(current, held)
		assert.Len(t, next, NumDice)
		assert.Equal(t, 1, next[0])
		assert.Equal(t, 3, next[2])
		assert.Equal(t, 5, next[4])
		for _, d := range next {
			assert.GreaterOrEqual(t, d, 1)
			assert.LessOrEqual(t, d, 6)
		}
	}
}

func TestRerollDoesNotMutateInput(t *testing.T) {
	current := []int{6, 6, 6, 6, 6}
	Reroll(current, []bool{false, false, false, false, false})
	assert.Equal(t, []int{6, 6, 6, 6, 6}, current)
}
