package poker

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lazharichir/deck/cards"
)

// ErrInvalidEvaluationInput is returned for fewer than five cards, jokers or
// cards outside a standard deck
var ErrInvalidEvaluationInput = errors.New("invalid poker evaluation input")

// AceLowStraight makes A-2-3-4-5 the lowest straight, ranked by its five.
// The ace always completes 10-J-Q-K-A as well.
const AceLowStraight = true

// PokerHand is the class of a five card poker hand, weakest first
type PokerHand int

const (
	HighCard PokerHand = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	FiveOfAKind // only possible when the cards repeat a value five times
)

var pokerHandNames = map[PokerHand]string{
	HighCard:      "High Card",
	Pair:          "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	FiveOfAKind:   "Five of a Kind",
}

func (p PokerHand) String() string {
	if name, ok := pokerHandNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PokerHand(%d)", int(p))
}

// Result is the evaluation of the best five cards of a set
type Result struct {
	Hand     PokerHand    // The hand class (pair, flush, etc.)
	TieBreak []int        // Aces-high values deciding between equal classes, most significant first
	Cards    []cards.Card // The five cards making the hand, most significant first
}

func (r Result) String() string {
	return fmt.Sprintf("%s %v", r.Hand, r.TieBreak)
}

// Compare returns -1 if a is worse than b, 0 if they tie and 1 if a is better
func Compare(a, b Result) int {
	if c := compareInt(int(a.Hand), int(b.Hand)); c != 0 {
		return c
	}
	for i := 0; i < len(a.TieBreak) && i < len(b.TieBreak); i++ {
		if c := compareInt(a.TieBreak[i], b.TieBreak[i]); c != 0 {
			return c
		}
	}
	return compareInt(len(a.TieBreak), len(b.TieBreak))
}

// Beats reports whether r ranks strictly above other
func (r Result) Beats(other Result) bool {
	return Compare(r, other) > 0
}

// Less reports whether r ranks strictly below other
func (r Result) Less(other Result) bool {
	return Compare(r, other) < 0
}

// compareInt is a helper function to compare two integers
func compareInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Evaluate returns the best poker hand that five of the given cards make.
// With more than five cards every five card combination is tried.
func Evaluate(cs []cards.Card) (Result, error) {
	if err := validate(cs); err != nil {
		return Result{}, err
	}

	if len(cs) == 5 {
		return evaluateHand(cs), nil
	}

	var best Result
	for i, combo := range combinations(len(cs), 5) {
		hand := make([]cards.Card, 5)
		for j, idx := range combo {
			hand[j] = cs[idx]
		}
		if r := evaluateHand(hand); i == 0 || r.Beats(best) {
			best = r
		}
	}
	return best, nil
}

func validate(cs []cards.Card) error {
	if len(cs) < 5 {
		return fmt.Errorf("%w: need at least 5 cards, got %d", ErrInvalidEvaluationInput, len(cs))
	}
	for _, c := range cs {
		if c.Joker {
			return fmt.Errorf("%w: cannot rank a hand containing jokers", ErrInvalidEvaluationInput)
		}
		if !c.Valid() {
			return fmt.Errorf("%w: %#v is not a playing card", ErrInvalidEvaluationInput, c)
		}
	}
	return nil
}

// group is a run of cards sharing a value
type group struct {
	rank  int
	count int
}

// evaluateHand evaluates exactly five valid cards
func evaluateHand(hand []cards.Card) Result {
	counts := make(map[int]int)
	suits := make(map[cards.Suit]bool)
	for _, c := range hand {
		counts[c.Value.AcesHigh()]++
		suits[c.Suit] = true
	}

	// Bigger groups first, then higher values
	groups := make([]group, 0, len(counts))
	for rank, count := range counts {
		groups = append(groups, group{rank: rank, count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})

	values := make([]int, len(groups))
	for i, g := range groups {
		values[i] = g.rank
	}

	flush := len(suits) == 1
	high, straight := straightHigh(groups)

	var class PokerHand
	switch {
	case groups[0].count == 5:
		class = FiveOfAKind
	case straight && flush:
		class = StraightFlush
	case groups[0].count == 4:
		class = FourOfAKind
	case groups[0].count == 3 && groups[1].count == 2:
		class = FullHouse
	case flush:
		class = Flush
	case straight:
		class = Straight
	case groups[0].count == 3:
		class = ThreeOfAKind
	case groups[0].count == 2 && groups[1].count == 2:
		class = TwoPair
	case groups[0].count == 2:
		class = Pair
	default:
		class = HighCard
	}

	tieBreak := values
	if class == Straight || class == StraightFlush {
		tieBreak = []int{high}
	}

	return Result{
		Hand:     class,
		TieBreak: tieBreak,
		Cards:    orderCards(hand, counts, straight && high == 5),
	}
}

// straightHigh returns the top value of a straight made by five distinct
// values sorted high to low
func straightHigh(groups []group) (int, bool) {
	if len(groups) != 5 {
		return 0, false
	}
	if groups[0].rank-groups[4].rank == 4 {
		return groups[0].rank, true
	}
	if AceLowStraight && groups[0].rank == 14 && groups[1].rank == 5 && groups[4].rank == 2 {
		return 5, true
	}
	return 0, false
}

// orderCards sorts the hand like the tie-break: bigger groups, higher values
// and higher suits first. A wheel puts its ace last.
func orderCards(hand []cards.Card, counts map[int]int, wheel bool) []cards.Card {
	out := make([]cards.Card, len(hand))
	copy(out, hand)

	rank := func(c cards.Card) int {
		if wheel && c.Value == cards.Ace {
			return 1
		}
		return c.Value.AcesHigh()
	}
	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := counts[out[i].Value.AcesHigh()], counts[out[j].Value.AcesHigh()]
		if ci != cj {
			return ci > cj
		}
		if ri, rj := rank(out[i]), rank(out[j]); ri != rj {
			return ri > rj
		}
		return out[i].Suit.BridgeRank() > out[j].Suit.BridgeRank()
	})
	return out
}

// combinations generates all possible combinations of k elements from a set
func combinations(n, k int) [][]int {
	if k > n {
		return nil
	}

	var result [][]int
	var combine func(int, []int)

	combine = func(start int, current []int) {
		if len(current) == k {
			// Make a copy of current combination
			combo := make([]int, k)
			copy(combo, current)
			result = append(result, combo)
			return
		}

		for i := start; i < n; i++ {
			current = append(current, i)
			combine(i+1, current)
			current = current[:len(current)-1]
		}
	}

	combine(0, []int{})
	return result
}
