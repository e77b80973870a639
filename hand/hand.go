package hand

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/lazharichir/deck/cards"
	"github.com/sanity-io/litter"
)

var (
	ErrInvalidHandContents = errors.New("invalid objects in hand")
	ErrNotFound            = errors.New("not found in hand")
	ErrEmptyHand           = errors.New("hand is empty")
)

// InvalidContentsError lists the cards that failed CheckContents
type InvalidContentsError struct {
	Invalid []cards.Card
}

func (e *InvalidContentsError) Error() string {
	parts := make([]string, len(e.Invalid))
	for i, c := range e.Invalid {
		parts[i] = fmt.Sprintf("%#v", c)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidHandContents, strings.Join(parts, ", "))
}

func (e *InvalidContentsError) Is(target error) bool {
	return target == ErrInvalidHandContents
}

// Hand is an ordered collection of cards held by one player.
// Duplicates are allowed. Contents are validated by CheckContents, and by the
// checked add operations when validation is on in their context.
type Hand struct {
	cards []cards.Card
}

// New creates a hand holding the given cards in order
func New(cs ...cards.Card) *Hand {
	h := &Hand{}
	h.Extend(cs)
	return h
}

// NewChecked is New with validation: when ValidationFrom(ctx) is set and a
// card is invalid it returns an *InvalidContentsError and no hand.
func NewChecked(ctx context.Context, cs ...cards.Card) (*Hand, error) {
	if err := checkCards(ctx, cs); err != nil {
		return nil, err
	}
	return New(cs...), nil
}

// FromSeq collects a card sequence into a new hand
func FromSeq(seq iter.Seq[cards.Card]) *Hand {
	h := &Hand{}
	for c := range seq {
		h.cards = append(h.cards, c)
	}
	return h
}

// Append adds a card at the end of the hand
func (h *Hand) Append(c cards.Card) {
	h.cards = append(h.cards, c)
}

// Prepend adds a card at the front of the hand
func (h *Hand) Prepend(c cards.Card) {
	h.cards = append([]cards.Card{c}, h.cards...)
}

// Extend adds multiple cards at the end of the hand
func (h *Hand) Extend(cs []cards.Card) {
	h.cards = append(h.cards, cs...)
}

// AppendChecked is Append with validation. An invalid card is not added.
func (h *Hand) AppendChecked(ctx context.Context, c cards.Card) error {
	if err := checkCards(ctx, []cards.Card{c}); err != nil {
		return err
	}
	h.Append(c)
	return nil
}

// ExtendChecked is Extend with validation. Nothing is added when any card
// is invalid.
func (h *Hand) ExtendChecked(ctx context.Context, cs []cards.Card) error {
	if err := checkCards(ctx, cs); err != nil {
		return err
	}
	h.Extend(cs)
	return nil
}

// Pop removes and returns the first card
func (h *Hand) Pop() (cards.Card, error) {
	if len(h.cards) == 0 {
		return cards.Card{}, ErrEmptyHand
	}
	c := h.cards[0]
	h.cards = h.cards[1:]
	return c, nil
}

// PopBack removes and returns the last card
func (h *Hand) PopBack() (cards.Card, error) {
	if len(h.cards) == 0 {
		return cards.Card{}, ErrEmptyHand
	}
	c := h.cards[len(h.cards)-1]
	h.cards = h.cards[:len(h.cards)-1]
	return c, nil
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// At returns the card at position i. It panics when i is out of range,
// like a slice index.
func (h *Hand) At(i int) cards.Card {
	return h.cards[i]
}

// Cards returns a copy of the cards in hand order
func (h *Hand) Cards() []cards.Card {
	out := make([]cards.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// All iterates over the positions and cards of the hand
func (h *Hand) All() iter.Seq2[int, cards.Card] {
	return func(yield func(int, cards.Card) bool) {
		for i, c := range h.cards {
			if !yield(i, c) {
				return
			}
		}
	}
}

// CheckContents returns an *InvalidContentsError naming every card that is
// not part of a standard deck
func (h *Hand) CheckContents() error {
	return invalidCards(h.cards)
}

func checkCards(ctx context.Context, cs []cards.Card) error {
	if !ValidationFrom(ctx) {
		return nil
	}
	return invalidCards(cs)
}

func invalidCards(cs []cards.Card) error {
	var invalid []cards.Card
	for _, c := range cs {
		if !c.Valid() {
			invalid = append(invalid, c)
		}
	}
	if len(invalid) > 0 {
		return &InvalidContentsError{Invalid: invalid}
	}
	return nil
}

// String shows the hand the way Display does with its default options
func (h *Hand) String() string {
	return h.Display(context.Background(), DefaultDisplay)
}

// GoString dumps the hand contents for debugging
func (h *Hand) GoString() string {
	return "hand.Hand" + litter.Sdump(h.cards)
}
