package poker

import (
	"testing"

	"github.com/lazharichir/deck/cards"
	"github.com/lazharichir/deck/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_AllClasses(t *testing.T) {
	tests := []struct {
		name     string
		hand     string
		class    PokerHand
		tieBreak []int
	}{
		{"royal straight flush", "As Ks Qs Js 10s", StraightFlush, []int{14}},
		{"wheel straight flush", "5h 4h 3h 2h Ah", StraightFlush, []int{5}},
		{"four of a kind", "7h 7d 7c 7s Kh", FourOfAKind, []int{7, 13}},
		{"full house", "2d 2c 2h 9s 9d", FullHouse, []int{2, 9}},
		{"flush", "Ah Jh 8h 4h 2h", Flush, []int{14, 11, 8, 4, 2}},
		{"straight", "9c 8d 7h 6s 5c", Straight, []int{9}},
		{"wheel", "Ac 2d 3h 4s 5c", Straight, []int{5}},
		{"broadway", "10c Jd Qh Ks Ac", Straight, []int{14}},
		{"no wrap around", "Qc Kd Ah 2s 3c", HighCard, []int{14, 13, 12, 3, 2}},
		{"three of a kind", "8c 8d 8h Ks 3c", ThreeOfAKind, []int{8, 13, 3}},
		{"two pair", "Jc Jd 4h 4s Ac", TwoPair, []int{11, 4, 14}},
		{"pair", "10c 10d Kh 4s 2c", Pair, []int{10, 13, 4, 2}},
		{"high card", "Kc 9d 7h 4s 2c", HighCard, []int{13, 9, 7, 4, 2}},
		{"five of a kind from a repeated card", "7h 7h 7d 7c 7s", FiveOfAKind, []int{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(cards.MustParse(tt.hand))
			require.NoError(t, err)
			assert.Equal(t, tt.class, got.Hand)
			assert.Equal(t, tt.tieBreak, got.TieBreak)
			assert.Len(t, got.Cards, 5)
		})
	}
}

func TestEvaluate_OrdersCardsBySignificance(t *testing.T) {
	got, err := Evaluate(cards.MustParse("9s 2d 9d 2c 2h"))
	require.NoError(t, err)
	assert.Equal(t, cards.MustParse("2h 2d 2c 9s 9d"), got.Cards)

	got, err = Evaluate(cards.MustParse("Ah 3h 5h 2h 4h"))
	require.NoError(t, err)
	assert.Equal(t, cards.MustParse("5h 4h 3h 2h Ah"), got.Cards)
}

func TestEvaluate_FullHouseFavoursTrips(t *testing.T) {
	low, err := Evaluate(cards.MustParse("2d 2c 2h 9s 9d"))
	require.NoError(t, err)
	high, err := Evaluate(cards.MustParse("3d 3c 3h 4s 4d"))
	require.NoError(t, err)

	assert.Equal(t, FullHouse, low.Hand)
	assert.Equal(t, 2, low.TieBreak[0], "the trips decide before the pair")
	assert.True(t, high.Beats(low))
}

func TestEvaluate_StraightFlushBeatsFourOfAKind(t *testing.T) {
	sf, err := Evaluate(cards.MustParse("As Ks Qs Js 10s"))
	require.NoError(t, err)
	quads, err := Evaluate(cards.MustParse("9h 9d 9c 9s 8h"))
	require.NoError(t, err)

	assert.Equal(t, 1, Compare(sf, quads))
	assert.Equal(t, -1, Compare(quads, sf))
	assert.True(t, quads.Less(sf))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"class decides", "2c 2d 5h 7s 9c", "Ac Kd 8h 7s 3c", 1},
		{"pair value decides", "Ac Ad 5h 7s 9c", "Kc Kd Qh Js 9d", 1},
		{"kicker decides", "Ac Ad 5h 7s 9c", "Ah As 5d 7d 8c", 1},
		{"suits never break ties", "Ac Kd Qh Js 9c", "As Kh Qd Jc 9s", 0},
		{"wheel is the lowest straight", "Ac 2d 3h 4s 5c", "2c 3d 4h 5s 6c", -1},
		{"second pair decides", "Jc Jd 4h 4s 2c", "Jh Js 3h 3s Ac", 1},
		{"flush compares every card", "Ah Jh 8h 4h 2h", "As Js 8s 4s 3s", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Evaluate(cards.MustParse(tt.a))
			require.NoError(t, err)
			b, err := Evaluate(cards.MustParse(tt.b))
			require.NoError(t, err)
			assert.Equal(t, tt.want, Compare(a, b))
			assert.Equal(t, -tt.want, Compare(b, a))
		})
	}
}

func TestEvaluate_SevenCardsIsBestOfTwentyOneSubsets(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		d := deck.New(false)
		d.Shuffle(deck.NewSeededSource(seed))
		seven := d.Cards()[:7]

		got, err := Evaluate(seven)
		require.NoError(t, err)

		combos := combinations(7, 5)
		require.Len(t, combos, 21)

		var best Result
		for i, combo := range combos {
			five := make([]cards.Card, 5)
			for j, idx := range combo {
				five[j] = seven[idx]
			}
			r, err := Evaluate(five)
			require.NoError(t, err)
			if i == 0 || Compare(r, best) > 0 {
				best = r
			}
		}

		assert.Equal(t, 0, Compare(got, best), "seed %d: %s vs %s", seed, got, best)
	}
}

func TestEvaluate_PicksBestFromMoreCards(t *testing.T) {
	got, err := Evaluate(cards.MustParse("2c 9c 9d Kh Qh Jh 10h 3s"))
	require.NoError(t, err)
	assert.Equal(t, Straight, got.Hand)
	assert.Equal(t, []int{13}, got.TieBreak)

	got, err = Evaluate(cards.MustParse("2c 9c 9d Kh Qh Jh 10h 3s 9h"))
	require.NoError(t, err)
	assert.Equal(t, StraightFlush, got.Hand)
	assert.Equal(t, []int{13}, got.TieBreak)
}

func TestEvaluate_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		hand []cards.Card
	}{
		{"no cards", nil},
		{"four cards", cards.MustParse("As Ks Qs Js")},
		{"joker", append(cards.MustParse("As Ks Qs Js"), cards.NewJoker())},
		{"joker among seven", append(cards.MustParse("As Ks Qs Js 10s 9s"), cards.NewJoker())},
		{"not a card", append(cards.MustParse("As Ks Qs Js 10s"), cards.Card{})},
		{"no suit", append(cards.MustParse("As Ks Qs Js"), cards.New(cards.NoSuit, cards.Two))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.hand)
			assert.ErrorIs(t, err, ErrInvalidEvaluationInput)
		})
	}
}

func TestPokerHand_String(t *testing.T) {
	assert.Equal(t, "Full House", FullHouse.String())
	assert.Equal(t, "PokerHand(42)", PokerHand(42).String())
	assert.True(t, StraightFlush > FourOfAKind)
	assert.True(t, HighCard < Pair)
}
