package hand

import (
	"context"
	"fmt"
	"sort"

	"github.com/lazharichir/deck/cards"
)

type lessFunc func(a, b cards.Card) bool

func byValue(rank func(cards.Value) int) lessFunc {
	return func(a, b cards.Card) bool {
		if ra, rb := rank(a.Key().Value), rank(b.Key().Value); ra != rb {
			return ra < rb
		}
		return a.Key().Suit.BridgeRank() < b.Key().Suit.BridgeRank()
	}
}

// pokerLess puts bigger value groups first, then higher values, then
// higher suits
func pokerLess(cs []cards.Card) lessFunc {
	count := make(map[cards.Value]int)
	for _, c := range cs {
		count[c.Key().Value]++
	}
	return func(a, b cards.Card) bool {
		va, vb := a.Key().Value, b.Key().Value
		if count[va] != count[vb] {
			return count[va] > count[vb]
		}
		if va.AcesHigh() != vb.AcesHigh() {
			return va.AcesHigh() > vb.AcesHigh()
		}
		return a.Key().Suit.BridgeRank() > b.Key().Suit.BridgeRank()
	}
}

func lessFor(order Order, cs []cards.Card) (lessFunc, error) {
	switch order {
	case SortDefault:
		return byValue(func(v cards.Value) int { return int(v) }), nil
	case SortAcesHigh:
		return byValue(cards.Value.AcesHigh), nil
	case SortPoker:
		return pokerLess(cs), nil
	case SortUnsorted:
		return nil, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownOrder, order)
}

func sortCards(ctx context.Context, cs []cards.Card, order Order, reverse bool) error {
	less, err := lessFor(resolveOrder(ctx, order), cs)
	if err != nil || less == nil {
		return err
	}
	sort.SliceStable(cs, func(i, j int) bool {
		if reverse {
			return less(cs[j], cs[i])
		}
		return less(cs[i], cs[j])
	})
	return nil
}

// Sort sorts the hand in place. SortActive uses the order active on ctx.
func (h *Hand) Sort(ctx context.Context, order Order, reverse bool) error {
	return sortCards(ctx, h.cards, order, reverse)
}

// Sorted returns the cards of the hand sorted, leaving the hand untouched
func (h *Hand) Sorted(ctx context.Context, order Order, reverse bool) ([]cards.Card, error) {
	out := h.Cards()
	if err := sortCards(ctx, out, order, reverse); err != nil {
		return nil, err
	}
	return out, nil
}
