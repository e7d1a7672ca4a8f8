package yahtzee

// Greedy bot heuristic. Deterministic given (dice, scorecard): choices are
// ranked by marginal value (achieved score divided by the category's
// theoretical maximum), ties broken by higher absolute score, further ties by
// scorecard order.

// The bot stops rerolling once its best open category reaches this share of
// the category's maximum.
const rerollThreshold = 0.8

// On a full tie (same marginal value, same score) the bot fills the most
// constrained category first, keeping the easy ones open for later turns.
var constraintRank = map[Category]int{
	Yahtzee: 8, LargeStraight: 7, SmallStraight: 6, FullHouse: 5,
	FourOfAKind: 4, ThreeOfAKind: 3,
	Ones: 1, Twos: 1, Threes: 1, Fours: 1, Fives: 1, Sixes: 1,
	Chance: 0,
}

// BestCategory picks the category the bot would fill with the given dice.
// When nothing scores at all, it sacrifices the open category with the lowest
// theoretical maximum to minimize the lost upside.
func BestCategory(dice []int, card Scorecard) (Category, int) {
	available := AvailableScores(dice, card)
	if len(available) == 0 {
		return "", 0
	}

	var best Category
	bestScore := -1
	bestValue := -1.0
	for _, c := range Categories {
		score, ok := available[c]
		if !ok {
			continue
		}
		value := float64(score) / float64(CategoryMax[c])
		better := value > bestValue ||
			(value == bestValue && score > bestScore) ||
			(value == bestValue && score == bestScore && constraintRank[c] > constraintRank[best])
		if better {
			best, bestScore, bestValue = c, score, value
		}
	}

	if bestScore > 0 {
		return best, bestScore
	}

	// Nothing matches: scratch the cheapest open category
	var sacrifice Category
	lowestMax := -1
	for _, c := range Categories {
		if _, ok := available[c]; !ok {
			continue
		}
		if lowestMax == -1 || CategoryMax[c] < lowestMax {
			sacrifice, lowestMax = c, CategoryMax[c]
		}
	}
	return sacrifice, 0
}

// HoldPattern decides which dice to keep before a reroll, supporting the
// category BestCategory currently targets.
func HoldPattern(dice []int, card Scorecard) []bool {
	held := make([]bool, NumDice)
	target, _ := BestCategory(dice, card)
	if target == "" {
		return held
	}
	counts := faceCounts(dice)

	if face, ok := upperFace[target]; ok {
		for i, d := range dice {
			held[i] = d == face
		}
		return held
	}

	switch target {
	case ThreeOfAKind, FourOfAKind, Yahtzee:
		face := mostFrequentFace(counts)
		for i, d := range dice {
			held[i] = d == face
		}
	case FullHouse:
		// Keep the triple and the pair candidates
		first := mostFrequentFace(counts)
		counts[first] = 0
		second := mostFrequentFace(counts)
		keptFirst, keptSecond := 0, 0
		for i, d := range dice {
			if d == first && keptFirst < 3 {
				held[i] = true
				keptFirst++
			} else if d == second && keptSecond < 2 {
				held[i] = true
				keptSecond++
			}
		}
	case SmallStraight, LargeStraight:
		// One die per distinct face
		seen := make(map[int]bool)
		for i, d := range dice {
			if !seen[d] {
				held[i] = true
				seen[d] = true
			}
		}
	case Chance:
		for i, d := range dice {
			held[i] = d >= 4
		}
	}
	return held
}

// ShouldReroll reports whether the bot rerolls: never past the roll limit,
// and not once the best open category is close enough to its maximum.
func ShouldReroll(dice []int, card Scorecard, rollCount, maxRolls int) bool {
	if rollCount >= maxRolls {
		return false
	}
	available := AvailableScores(dice, card)
	if len(available) == 0 {
		return false
	}
	bestValue := 0.0
	for c, score := range available {
		if v := float64(score) / float64(CategoryMax[c]); v > bestValue {
			bestValue = v
		}
	}
	return bestValue < rerollThreshold
}

// mostFrequentFace returns the face with the highest count, preferring the
// higher face on ties.
func mostFrequentFace(counts [7]int) int {
	best, bestCount := 0, 0
	for face := 1; face <= 6; face++ {
		if counts[face] >= bestCount && counts[face] > 0 {
			best, bestCount = face, counts[face]
		}
	}
	return best
}
