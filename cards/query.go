package cards

import (
	"errors"
	"fmt"
)

// ErrInvalidQuery is returned when loose input maps to no card, value or suit
var ErrInvalidQuery = errors.New("invalid card query")

// QueryKind tells which shape a Query holds
type QueryKind int

const (
	QueryCard QueryKind = iota + 1
	QueryValue
	QuerySuit
)

// Query is what a hand lookup searches for: a whole card, a value or a suit.
// The zero Query matches nothing.
type Query struct {
	kind  QueryKind
	card  Card
	value Value
	suit  Suit
}

// CardQuery looks up a whole card
func CardQuery(c Card) Query {
	return Query{kind: QueryCard, card: c}
}

// ValueQuery looks up any card of the given value
func ValueQuery(v Value) Query {
	return Query{kind: QueryValue, value: v}
}

// SuitQuery looks up any card of the given suit
func SuitQuery(s Suit) Query {
	return Query{kind: QuerySuit, suit: s}
}

// NumberQuery looks up a value by number, see ValueFromInt
func NumberQuery(n int) (Query, error) {
	v, err := ValueFromInt(n)
	if err != nil {
		return Query{}, fmt.Errorf("%w: %d", ErrInvalidQuery, n)
	}
	return ValueQuery(v), nil
}

// ParseQuery resolves a string to a query. Suits are tried first, then
// values, then whole cards: "h" and "hearts" are suits, "A" and "10" are
// values and "10h" is a card.
func ParseQuery(s string) (Query, error) {
	if suit, err := ParseSuit(s); err == nil {
		return SuitQuery(suit), nil
	}
	if v, err := ParseValue(s); err == nil {
		return ValueQuery(v), nil
	}
	if c, err := CardFromString(s); err == nil {
		return CardQuery(c), nil
	}
	return Query{}, fmt.Errorf("%w: %q", ErrInvalidQuery, s)
}

// Kind returns the shape of the query
func (q Query) Kind() QueryKind {
	return q.kind
}

// Card returns the card of a QueryCard query
func (q Query) Card() Card {
	return q.card
}

// Value returns the value of a QueryValue query
func (q Query) Value() Value {
	return q.value
}

// Suit returns the suit of a QuerySuit query
func (q Query) Suit() Suit {
	return q.suit
}

func (q Query) String() string {
	switch q.kind {
	case QueryCard:
		return q.card.String()
	case QueryValue:
		return q.value.String()
	case QuerySuit:
		return q.suit.Name()
	}
	return "<empty query>"
}
