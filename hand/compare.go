package hand

import (
	"context"
	"fmt"
	"iter"

	"github.com/lazharichir/deck/cards"
)

// matchKey reduces a card to the part the comparison looks at. Cards match
// when their keys are equal.
func matchKey(cmp Comparison) func(cards.Card) cards.Card {
	switch cmp {
	case CompareExact:
		return cards.Card.Key
	case CompareValues:
		return func(c cards.Card) cards.Card { return cards.Card{Value: c.Key().Value} }
	case CompareSuits:
		return func(c cards.Card) cards.Card { return cards.Card{Suit: c.Key().Suit} }
	}
	return nil
}

func keySet(cs []cards.Card, key func(cards.Card) cards.Card) map[cards.Card]struct{} {
	set := make(map[cards.Card]struct{}, len(cs))
	for _, c := range cs {
		set[key(c)] = struct{}{}
	}
	return set
}

// Index returns the position of the first card matching q. Card queries
// match under the active comparison, value and suit queries match on that
// attribute alone.
func (h *Hand) Index(ctx context.Context, q cards.Query) (int, error) {
	var key func(cards.Card) cards.Card
	var want cards.Card
	switch q.Kind() {
	case cards.QueryCard:
		cmp := ComparisonFrom(ctx)
		if key = matchKey(cmp); key == nil {
			return -1, fmt.Errorf("%w: %d", ErrUnknownComparison, int(cmp))
		}
		want = key(q.Card())
	case cards.QueryValue:
		key = matchKey(CompareValues)
		want = cards.Card{Value: q.Value()}
	case cards.QuerySuit:
		key = matchKey(CompareSuits)
		want = cards.Card{Suit: q.Suit()}
	default:
		return -1, fmt.Errorf("%w: %s", ErrNotFound, q)
	}

	for i, c := range h.cards {
		if key(c) == want {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrNotFound, q)
}

// Contains checks if any card matches q, see Index
func (h *Hand) Contains(ctx context.Context, q cards.Query) bool {
	_, err := h.Index(ctx, q)
	return err == nil
}

// Intersect yields the cards of h, in order, that match a card of other.
// CompareActive uses the comparison active on ctx. The mode is fixed when
// Intersect is called. An unknown mode yields nothing.
func (h *Hand) Intersect(ctx context.Context, other *Hand, cmp Comparison) iter.Seq[cards.Card] {
	key := matchKey(resolveComparison(ctx, cmp))
	return func(yield func(cards.Card) bool) {
		if key == nil {
			return
		}
		theirs := keySet(other.cards, key)
		for _, c := range h.cards {
			if _, ok := theirs[key(c)]; !ok {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Union yields every card of h followed by the cards of other that match
// nothing in h. An unknown mode yields nothing.
func (h *Hand) Union(ctx context.Context, other *Hand, cmp Comparison) iter.Seq[cards.Card] {
	key := matchKey(resolveComparison(ctx, cmp))
	return func(yield func(cards.Card) bool) {
		if key == nil {
			return
		}
		for _, c := range h.cards {
			if !yield(c) {
				return
			}
		}
		ours := keySet(h.cards, key)
		for _, c := range other.cards {
			if _, ok := ours[key(c)]; ok {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// IntersectHand returns a new hand with the cards of Intersect under the
// active comparison, without repeating a card
func (h *Hand) IntersectHand(ctx context.Context, other *Hand) *Hand {
	return FromSeq(distinct(h.Intersect(ctx, other, CompareActive)))
}

// UnionHand returns a new hand with the cards of Union under the active
// comparison, without repeating a card
func (h *Hand) UnionHand(ctx context.Context, other *Hand) *Hand {
	return FromSeq(distinct(h.Union(ctx, other, CompareActive)))
}

// IntersectInPlace replaces the contents of h with IntersectHand
func (h *Hand) IntersectInPlace(ctx context.Context, other *Hand) {
	h.cards = h.IntersectHand(ctx, other).cards
}

// UnionInPlace replaces the contents of h with UnionHand
func (h *Hand) UnionInPlace(ctx context.Context, other *Hand) {
	h.cards = h.UnionHand(ctx, other).cards
}

func distinct(seq iter.Seq[cards.Card]) iter.Seq[cards.Card] {
	return func(yield func(cards.Card) bool) {
		seen := make(map[cards.Card]struct{})
		for c := range seq {
			if _, ok := seen[c.Key()]; ok {
				continue
			}
			seen[c.Key()] = struct{}{}
			if !yield(c) {
				return
			}
		}
	}
}
