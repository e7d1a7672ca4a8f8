package yahtzee

// Category identifies one of the 13 scorecard slots.
type Category string

const (
	Ones   Category = "ones"
	Twos   Category = "twos"
	Threes Category = "threes"
	Fours  Category = "fours"
	Fives  Category = "fives"
	Sixes  Category = "sixes"

	ThreeOfAKind  Category = "three_of_a_kind"
	FourOfAKind   Category = "four_of_a_kind"
	FullHouse     Category = "full_house"
	SmallStraight Category = "small_straight"
	LargeStraight Category = "large_straight"
	Yahtzee       Category = "yahtzee"
	Chance        Category = "chance"
)

// Categories lists all 13 slots in scorecard order.
var Categories = []Category{
	Ones, Twos, Threes, Fours, Fives, Sixes,
	ThreeOfAKind, FourOfAKind, FullHouse,
	SmallStraight, LargeStraight, Yahtzee, Chance,
}

var UpperCategories = []Category{Ones, Twos, Threes, Fours, Fives, Sixes}

var LowerCategories = []Category{
	ThreeOfAKind, FourOfAKind, FullHouse,
	SmallStraight, LargeStraight, Yahtzee, Chance,
}

// upperFace maps each upper-section category to the die face it counts.
var upperFace = map[Category]int{
	Ones: 1, Twos: 2, Threes: 3, Fours: 4, Fives: 5, Sixes: 6,
}

// CategoryMax holds the theoretical maximum score of each category.
// Used by the bot to rank choices by marginal value.
var CategoryMax = map[Category]int{
	Ones: 5, Twos: 10, Threes: 15, Fours: 20, Fives: 25, Sixes: 30,
	ThreeOfAKind: 30, FourOfAKind: 30, FullHouse: 25,
	SmallStraight: 30, LargeStraight: 40, Yahtzee: 50, Chance: 30,
}

const upperBonusThreshold = 63
const upperBonusValue = 35

func IsValidCategory(c Category) bool {
	_, ok := CategoryMax[c]
	return ok
}

// Scorecard maps a category to its recorded score. A missing key means the
// slot is still open; once present, the entry never changes.
type Scorecard map[Category]int

func (sc Scorecard) Filled(c Category) bool {
	_, ok := sc[c]
	return ok
}

// IsComplete reports whether all 13 slots are filled.
func (sc Scorecard) IsComplete() bool {
	return len(sc) == len(Categories)
}

func (sc Scorecard) Clone() Scorecard {
	out := make(Scorecard, len(sc))
	for k, v := range sc {
		out[k] = v
	}
	return out
}

// Score evaluates five die faces against a single category. Pure, no side
// effects; an unknown category scores 0 (programmer error, not user input).
func Score(dice []int, category Category) int {
	counts := faceCounts(dice)

	if face, ok := upperFace[category]; ok {
		return counts[face] * face
	}

	switch category {
	case ThreeOfAKind:
		if maxCount(counts) >= 3 {
			return sum(dice)
		}
		return 0
	case FourOfAKind:
		if maxCount(counts) >= 4 {
			return sum(dice)
		}
		return 0
	case FullHouse:
		// Exactly a triple plus a pair; five of a kind does not qualify
		hasThree, hasTwo := false, false
		for _, c := range counts {
			if c == 3 {
				hasThree = true
			}
			if c == 2 {
				hasTwo = true
			}
		}
		if hasThree && hasTwo {
			return 25
		}
		return 0
	case SmallStraight:
		for _, run := range [][]int{{1, 2, 3, 4}, {2, 3, 4, 5}, {3, 4, 5, 6}} {
			if containsAll(counts, run) {
				return 30
			}
		}
		return 0
	case LargeStraight:
		if containsAll(counts, []int{1, 2, 3, 4, 5}) || containsAll(counts, []int{2, 3, 4, 5, 6}) {
			return 40
		}
		return 0
	case Yahtzee:
		if maxCount(counts) == 5 {
			return 50
		}
		return 0
	case Chance:
		return sum(dice)
	}

	return 0
}

// AvailableScores returns what each still-open category would score for the
// given dice. Filled slots are excluded.
func AvailableScores(dice []int, card Scorecard) map[Category]int {
	out := make(map[Category]int)
	for _, c := range Categories {
		if !card.Filled(c) {
			out[c] = Score(dice, c)
		}
	}
	return out
}

// Totals aggregates a scorecard into section totals, with the 35-point upper
// bonus granted at 63 or more upper-section points. Open slots contribute 0.
type Totals struct {
	UpperTotal int `json:"upper_total"`
	UpperBonus int `json:"upper_bonus"`
	LowerTotal int `json:"lower_total"`
	GrandTotal int `json:"grand_total"`
}

func ComputeTotals(card Scorecard) Totals {
	var t Totals
	for _, c := range UpperCategories {
		t.UpperTotal += card[c]
	}
	for _, c := range LowerCategories {
		t.LowerTotal += card[c]
	}
	if t.UpperTotal >= upperBonusThreshold {
		t.UpperBonus = upperBonusValue
	}
	t.GrandTotal = t.UpperTotal + t.UpperBonus + t.LowerTotal
	return t
}

func faceCounts(dice []int) [7]int {
	var counts [7]int
	for _, d := range dice {
		if d >= 1 && d <= 6 {
			counts[d]++
		}
	}
	return counts
}

func maxCount(counts [7]int) int {
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	return max
}

func sum(dice []int) int {
	total := 0
	for _, d := range dice {
		total += d
	}
	return total
}

func containsAll(counts [7]int, faces []int) bool {
	for _, f := range faces {
		if counts[f] == 0 {
			return false
		}
	}
	return true
}
