package cards

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a string cannot be parsed into a card
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit int

const (
	NoSuit Suit = iota // jokers carry no suit
	Clubs
	Diamonds
	Hearts
	Spades
)

// Suits lists the four real suits in bridge order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

var suitSymbols = map[Suit]string{
	Clubs:    "♣",
	Diamonds: "♦",
	Hearts:   "♥",
	Spades:   "♠",
}

var suitNames = map[Suit]string{
	Clubs:    "Clubs",
	Diamonds: "Diamonds",
	Hearts:   "Hearts",
	Spades:   "Spades",
}

// String returns the suit symbol
func (s Suit) String() string {
	return suitSymbols[s]
}

// Name returns the suit name, e.g. "Hearts"
func (s Suit) Name() string {
	return suitNames[s]
}

// Valid reports whether s is one of the four real suits
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

// BridgeRank orders suits Clubs < Diamonds < Hearts < Spades.
// NoSuit ranks above every real suit.
func (s Suit) BridgeRank() int {
	if !s.Valid() {
		return 10
	}
	return int(s) - 1
}

// IsRed checks if the suit is hearts or diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Value represents a card value
type Value int

const (
	Ace   Value = 1
	Two   Value = 2
	Three Value = 3
	Four  Value = 4
	Five  Value = 5
	Six   Value = 6
	Seven Value = 7
	Eight Value = 8
	Nine  Value = 9
	Ten   Value = 10
	Jack  Value = 11
	Queen Value = 12
	King  Value = 13
	Joker Value = 15
)

// Values lists Ace..King in numeric order
var Values = []Value{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// valueNames holds the display names of a value, longest first.
// Values missing here display as their number.
var valueNames = map[Value][]string{
	Ace:   {"Ace", "A"},
	King:  {"King", "Kng", "K"},
	Queen: {"Queen", "Que", "Q"},
	Jack:  {"Jack", "Jck", "J"},
	Ten:   {"10", "X"},
	Joker: {"Joker", "Jok", "🃏"},
}

// Valid reports whether v is Ace..King
func (v Value) Valid() bool {
	return v >= Ace && v <= King
}

// AcesHigh returns the numeric value with the ace above the king (2..14)
func (v Value) AcesHigh() int {
	if v == Ace {
		return 14
	}
	return int(v)
}

// Names returns the display names of the value, longest first
func (v Value) Names() []string {
	if names, ok := valueNames[v]; ok {
		return names
	}
	return []string{fmt.Sprint(int(v))}
}

// String returns the short name used in card strings, e.g. "A" or "10"
func (v Value) String() string {
	names := v.Names()
	if v == Ten {
		return names[0]
	}
	return names[len(names)-1]
}

// Card represents a playing card
type Card struct {
	Suit  Suit
	Value Value
	Joker bool
}

// New creates a card. The Joker value always gives a joker, whatever the suit.
func New(suit Suit, value Value) Card {
	if value == Joker {
		return NewJoker()
	}
	return Card{Suit: suit, Value: value}
}

// NewJoker creates a joker
func NewJoker() Card {
	return Card{Suit: NoSuit, Value: Joker, Joker: true}
}

// Equals checks if two cards are the same card. Any two jokers are equal.
func (c Card) Equals(other Card) bool {
	if c.Joker && other.Joker {
		return true
	}
	return c.Joker == other.Joker && c.Suit == other.Suit && c.Value == other.Value
}

// Key returns a comparable key with the same equality as Equals
func (c Card) Key() Card {
	if c.Joker {
		return NewJoker()
	}
	return c
}

// Valid reports whether the card belongs to a standard deck
func (c Card) Valid() bool {
	if c.Joker {
		return true
	}
	return c.Suit.Valid() && c.Value.Valid()
}

// String returns the string representation of a card
func (c Card) String() string {
	if c.Joker {
		return "Joker"
	}
	return fmt.Sprintf("%s%s", c.Value, c.Suit)
}

// CardFromString creates a card from a string representation
// e.g., "10♠" or "10s" or "10S" -> Card{Suit: Spades, Value: Ten}
// e.g., "W" or "Joker" -> a joker
func CardFromString(s string) (Card, error) {
	if s == "W" || strings.EqualFold(s, "joker") {
		return NewJoker(), nil
	}

	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	for _, suit := range Suits {
		sym := suit.String()
		if strings.HasSuffix(s, sym) {
			return cardFromParts(s[:len(s)-len(sym)], suit, s)
		}
	}

	var suit Suit
	switch s[len(s)-1:] {
	case "s", "S":
		suit = Spades
	case "h", "H":
		suit = Hearts
	case "d", "D":
		suit = Diamonds
	case "c", "C":
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("%w: bad suit in %q", ErrInvalidCard, s)
	}
	return cardFromParts(s[:len(s)-1], suit, s)
}

func cardFromParts(value string, suit Suit, raw string) (Card, error) {
	var v Value
	switch value {
	case "A", "a":
		v = Ace
	case "K", "k":
		v = King
	case "Q", "q":
		v = Queen
	case "J", "j":
		v = Jack
	case "10", "T", "t", "X":
		v = Ten
	case "9":
		v = Nine
	case "8":
		v = Eight
	case "7":
		v = Seven
	case "6":
		v = Six
	case "5":
		v = Five
	case "4":
		v = Four
	case "3":
		v = Three
	case "2":
		v = Two
	default:
		return Card{}, fmt.Errorf("%w: bad value in %q", ErrInvalidCard, raw)
	}
	return Card{Suit: suit, Value: v}, nil
}

// MustParse parses a space separated list of cards and panics on error.
// It is meant for fixtures and tests.
func MustParse(s string) []Card {
	var out []Card
	for _, f := range strings.Fields(s) {
		c, err := CardFromString(f)
		if err != nil {
			panic(err)
		}
		out = append(out, c)
	}
	return out
}
