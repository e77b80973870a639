package deck

import (
	"errors"
	"fmt"
	"iter"

	"github.com/google/uuid"
	"github.com/lazharichir/deck/cards"
	"github.com/lazharichir/deck/hand"
)

var (
	ErrEmptyDeck         = errors.New("no cards left in deck")
	ErrInsufficientCards = errors.New("not enough cards in deck")
	ErrInvalidDeal       = errors.New("invalid deal")
)

// Deck is an ordered pile of cards. The front of the deck is the top card.
type Deck struct {
	ID    string
	cards []cards.Card
}

// New creates a fresh deck in canonical order: suits in bridge order
// (clubs, diamonds, hearts, spades), ace to king within each suit, followed
// by two jokers when includeJokers is set.
func New(includeJokers bool) *Deck {
	d := &Deck{
		ID:    uuid.NewString(),
		cards: make([]cards.Card, 0, 54),
	}

	for _, suit := range cards.Suits {
		for _, value := range cards.Values {
			d.cards = append(d.cards, cards.New(suit, value))
		}
	}

	if includeJokers {
		d.cards = append(d.cards, cards.NewJoker(), cards.NewJoker())
	}

	return d
}

// Len returns the number of cards left
func (d *Deck) Len() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards, top first
func (d *Deck) Cards() []cards.Card {
	out := make([]cards.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// All iterates over the remaining cards, top first
func (d *Deck) All() iter.Seq[cards.Card] {
	return func(yield func(cards.Card) bool) {
		for _, c := range d.cards {
			if !yield(c) {
				return
			}
		}
	}
}

// Append puts a card at the bottom of the deck
func (d *Deck) Append(c cards.Card) {
	d.cards = append(d.cards, c)
}

// Prepend puts a card on top of the deck
func (d *Deck) Prepend(c cards.Card) {
	d.cards = append([]cards.Card{c}, d.cards...)
}

// Deal removes and returns the top card
func (d *Deck) Deal() (cards.Card, error) {
	if len(d.cards) == 0 {
		return cards.Card{}, fmt.Errorf("deck %s: %w", d.ID, ErrEmptyDeck)
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

// DealFromBottom removes and returns the bottom card
func (d *Deck) DealFromBottom() (cards.Card, error) {
	if len(d.cards) == 0 {
		return cards.Card{}, fmt.Errorf("deck %s: %w", d.ID, ErrEmptyDeck)
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, nil
}

// DealHands deals n hands of size cards each. Cards go out one at a time
// from the top, round-robin: the first card to hand 0, the second to hand 1,
// and so on. The deck is left untouched when it holds too few cards.
func (d *Deck) DealHands(n, size int) ([]*hand.Hand, error) {
	if n <= 0 || size <= 0 {
		return nil, fmt.Errorf("%w: %d hands of %d cards", ErrInvalidDeal, n, size)
	}
	if n > len(d.cards)/size {
		return nil, fmt.Errorf("deck %s: %w: %d hands of %d cards, have %d",
			d.ID, ErrInsufficientCards, n, size, len(d.cards))
	}

	dealt := d.cards[:n*size]
	d.cards = d.cards[n*size:]

	hands := make([]*hand.Hand, n)
	for i := range hands {
		hands[i] = hand.New()
	}
	for i, c := range dealt {
		hands[i%n].Append(c)
	}
	return hands, nil
}
