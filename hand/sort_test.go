package hand

import (
	"context"
	"math/rand"
	"testing"

	"github.com/lazharichir/deck/cards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHand_Sorted(t *testing.T) {
	ctx := context.Background()
	h := New(cards.MustParse("Kh As 2c 2s 10d")...)

	tests := []struct {
		name    string
		order   Order
		reverse bool
		want    string
	}{
		{"default", SortDefault, false, "As 2c 2s 10d Kh"},
		{"default reversed", SortDefault, true, "Kh 10d 2s 2c As"},
		{"aces high", SortAcesHigh, false, "2c 2s 10d Kh As"},
		{"poker", SortPoker, false, "2s 2c As Kh 10d"},
		{"poker reversed", SortPoker, true, "10d Kh As 2c 2s"},
		{"unsorted", SortUnsorted, false, "Kh As 2c 2s 10d"},
		{"active falls back to default", SortActive, false, "As 2c 2s 10d Kh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.Sorted(ctx, tt.order, tt.reverse)
			require.NoError(t, err)
			assert.Equal(t, cards.MustParse(tt.want), got)
		})
	}

	assert.Equal(t, cards.MustParse("Kh As 2c 2s 10d"), h.Cards(), "Sorted leaves the hand untouched")
}

func TestHand_SortPokerGroups(t *testing.T) {
	ctx := context.Background()
	h := New(cards.MustParse("3c 9d Ah 9s 3h 9h Kd")...)

	require.NoError(t, h.Sort(ctx, SortPoker, false))
	assert.Equal(t, cards.MustParse("9s 9h 9d 3h 3c Ah Kd"), h.Cards())
}

func TestHand_SortJokersLast(t *testing.T) {
	ctx := context.Background()
	h := New(cards.NewJoker(), cards.New(cards.Spades, cards.King), cards.New(cards.Clubs, cards.Ace))

	require.NoError(t, h.Sort(ctx, SortDefault, false))
	assert.Equal(t, []cards.Card{cards.New(cards.Clubs, cards.Ace), cards.New(cards.Spades, cards.King), cards.NewJoker()}, h.Cards())

	require.NoError(t, h.Sort(ctx, SortAcesHigh, false))
	assert.Equal(t, []cards.Card{cards.New(cards.Spades, cards.King), cards.New(cards.Clubs, cards.Ace), cards.NewJoker()}, h.Cards())
}

func TestHand_SortIsIdempotent(t *testing.T) {
	ctx := context.Background()
	r := rand.New(rand.NewSource(7))

	for _, order := range []Order{SortDefault, SortAcesHigh, SortPoker} {
		for _, reverse := range []bool{false, true} {
			all := make([]cards.Card, 0, 52)
			for _, s := range cards.Suits {
				for _, v := range cards.Values {
					all = append(all, cards.New(s, v))
				}
			}
			r.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })

			h := New(all[:9]...)
			require.NoError(t, h.Sort(ctx, order, reverse))
			once := h.Cards()
			require.NoError(t, h.Sort(ctx, order, reverse))
			assert.Equal(t, once, h.Cards(), "order %s reverse %t", order, reverse)
		}
	}
}

func TestHand_SortUsesScopedOrder(t *testing.T) {
	ctx := WithOrder(context.Background(), SortAcesHigh)
	h := New(cards.MustParse("As 2c")...)

	require.NoError(t, h.Sort(ctx, SortActive, false))
	assert.Equal(t, cards.MustParse("2c As"), h.Cards())

	// an explicit order wins over the scope
	require.NoError(t, h.Sort(ctx, SortDefault, false))
	assert.Equal(t, cards.MustParse("As 2c"), h.Cards())
}

func TestHand_SortUnknownOrder(t *testing.T) {
	h := New(cards.MustParse("As 2c")...)
	err := h.Sort(context.Background(), Order(99), false)
	assert.ErrorIs(t, err, ErrUnknownOrder)

	_, err = h.Sorted(context.Background(), Order(99), false)
	assert.ErrorIs(t, err, ErrUnknownOrder)
	assert.Equal(t, cards.MustParse("As 2c"), h.Cards())
}
