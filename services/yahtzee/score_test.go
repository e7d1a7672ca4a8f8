package yahtzee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreUpperSection(t *testing.T) {
	tests := []struct {
		name     string
		dice     []int
		category Category
		want     int
	}{
		{"ones counts only aces", []int{1, 1, 3, 4, 5}, Ones, 2},
		{"twos", []int{2, 2, 2, 3, 4}, Twos, 6},
		{"sixes all", []int{6, 6, 6, 6, 6}, Sixes, 30},
		{"no matching face scores zero", []int{2, 3, 4, 5, 6}, Ones, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.dice, tt.category))
		})
	}
}

func TestScoreLowerSection(t *testing.T) {
	tests := []struct {
		name     string
		dice     []int
		category Category
		want     int
	}{
		{"three of a kind sums all dice", []int{3, 3, 3, 2, 1}, ThreeOfAKind, 12},
		{"three of a kind needs three", []int{3, 3, 2, 2, 1}, ThreeOfAKind, 0},
		{"four of a kind counts quads", []int{5, 5, 5, 5, 3}, FourOfAKind, 23},
		{"five of a kind qualifies as four", []int{2, 2, 2, 2, 2}, FourOfAKind, 10},
		{"full house is strictly 3+2", []int{2, 2, 3, 3, 3}, FullHouse, 25},
		{"five of a kind is not a full house", []int{3, 3, 3, 3, 3}, FullHouse, 0},
		{"large straight", []int{1, 2, 3, 4, 5}, LargeStraight, 40},
		{"large straight high", []int{2, 3, 4, 5, 6}, LargeStraight, 40},
		{"large straight also small", []int{1, 2, 3, 4, 5}, SmallStraight, 30},
		{"small straight with pair", []int{2, 3, 4, 5, 5}, SmallStraight, 30},
		{"broken straight", []int{1, 2, 3, 5, 6}, LargeStraight, 0},
		{"yahtzee", []int{4, 4, 4, 4, 4}, Yahtzee, 50},
		{"almost yahtzee scores zero", []int{4, 4, 4, 4, 5}, Yahtzee, 0},
		{"chance sums everything", []int{1, 2, 3, 4, 6}, Chance, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.dice, tt.category))
		})
	}
}

func TestComputeTotalsUpperBonus(t *testing.T) {
	card := Scorecard{
		Ones: 3, Twos: 6, Threes: 12, Fours: 12, Fives: 15, Sixes: 18,
	}
	totals := ComputeTotals(card)
	assert.Equal(t, 66, totals.UpperTotal)
	assert.Equal(t, 35, totals.UpperBonus)
	assert.Equal(t, 101, totals.UpperTotal+totals.UpperBonus)
}

func TestComputeTotalsBonusBoundary(t *testing.T) {
	exactly := Scorecard{Ones: 3, Twos: 6, Threes: 9, Fours: 12, Fives: 15, Sixes: 18}
	assert.Equal(t, 63, ComputeTotals(exactly).UpperTotal)
	assert.Equal(t, 35, ComputeTotals(exactly).UpperBonus)

	oneShort := Scorecard{Ones: 2, Twos: 6, Threes: 9, Fours: 12, Fives: 15, Sixes: 18}
	assert.Equal(t, 62, ComputeTotals(oneShort).UpperTotal)
	assert.Equal(t, 0, ComputeTotals(oneShort).UpperBonus)
}

func TestComputeTotalsOpenSlotsContributeZero(t *testing.T) {
	card := Scorecard{Fives: 20, Yahtzee: 50}
	totals := ComputeTotals(card)
	assert.Equal(t, 20, totals.UpperTotal)
	assert.Equal(t, 50, totals.LowerTotal)
	assert.Equal(t, 70, totals.GrandTotal)
}

func TestAvailableScoresExcludesFilled(t *testing.T) {
	card := Scorecard{Chance: 18, Fives: 0}
	available := AvailableScores([]int{5, 5, 5, 5, 3}, card)

	assert.NotContains(t, available, Chance)
	assert.NotContains(t, available, Fives)
	assert.Equal(t, 23, available[FourOfAKind])
	assert.Equal(t, 0, available[Yahtzee])
	assert.Len(t, available, len(Categories)-2)
}

func TestScorecardFilledAndComplete(t *testing.T) {
	card := Scorecard{}
	assert.False(t, card.Filled(Ones))
	assert.False(t, card.IsComplete())

	// A scratched zero still counts as filled
	card[Ones] = 0
	assert.True(t, card.Filled(Ones))

	for _, c := range Categories {
		card[c] = 0
	}
	assert.True(t, card.IsComplete())
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory(FullHouse))
	assert.False(t, IsValidCategory(Category("flush")))
}
