package yahtzee

import "math/rand"

const NumDice = 5
const numFaces = 6

// Roll draws five fresh dice. Dice are always generated server-side;
// client-supplied values are never trusted.
func Roll() []int {
	dice := make([]int, NumDice)
	for i := range dice {
		dice[i] = rand.Intn(numFaces) + 1
	}
	return dice
}

// Reroll redraws every die whose held flag is false. Held positions keep
// their value untouched.
func Reroll(current []int, held []bool) []int {
	dice := make([]int, NumDice)
	for i := range dice {
		if i < len(current) && i < len(held) && held[i] {
			dice[i] = current[i]
		} else {
			dice[i] = rand.Intn(numFaces) + 1
		}
	}
	return dice
}
