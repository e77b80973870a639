package poker

import (
	"fmt"

	ph "github.com/paulhankin/poker"

	"github.com/lazharichir/deck/cards"
)

// toLibrary converts a card for github.com/paulhankin/poker, which numbers
// ranks like cards.Value: ace 1 through king 13.
func toLibrary(c cards.Card) (ph.Card, error) {
	var s ph.Suit
	var zero ph.Card
	switch c.Suit {
	case cards.Clubs:
		s = ph.Club
	case cards.Diamonds:
		s = ph.Diamond
	case cards.Hearts:
		s = ph.Heart
	case cards.Spades:
		s = ph.Spade
	default:
		return zero, fmt.Errorf("%w: %#v has no suit", ErrInvalidEvaluationInput, c)
	}
	return ph.MakeCard(s, ph.Rank(c.Value))
}

func toLibrarySlice(cs []cards.Card) ([]ph.Card, error) {
	if err := validate(cs); err != nil {
		return nil, err
	}
	out := make([]ph.Card, len(cs))
	for i, c := range cs {
		lc, err := toLibrary(c)
		if err != nil {
			return nil, err
		}
		out[i] = lc
	}
	return out, nil
}

// Score returns the paulhankin/poker score of the best five cards, higher
// is better. Scores of different sets compare like Evaluate results.
func Score(cs []cards.Card) (int16, error) {
	lcs, err := toLibrarySlice(cs)
	if err != nil {
		return 0, err
	}

	switch len(lcs) {
	case 5:
		var a5 [5]ph.Card
		copy(a5[:], lcs)
		return ph.Eval5(&a5), nil
	case 7:
		var a7 [7]ph.Card
		copy(a7[:], lcs)
		return ph.Eval7(&a7), nil
	}

	var best int16
	var five [5]ph.Card
	for i, combo := range combinations(len(lcs), 5) {
		for j, idx := range combo {
			five[j] = lcs[idx]
		}
		if score := ph.Eval5(&five); i == 0 || score > best {
			best = score
		}
	}
	return best, nil
}

// Describe returns the paulhankin/poker text description of a hand
func Describe(cs []cards.Card) (string, error) {
	lcs, err := toLibrarySlice(cs)
	if err != nil {
		return "", err
	}
	return ph.Describe(lcs)
}
