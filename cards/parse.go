package cards

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSuit accepts a suit symbol, its initial letter or its name in any case
func ParseSuit(s string) (Suit, error) {
	for _, suit := range Suits {
		if s == suit.String() || strings.EqualFold(s, suit.Name()) || strings.EqualFold(s, suit.Name()[:1]) {
			return suit, nil
		}
	}
	return NoSuit, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, s)
}

// ParseValue accepts any display name of a value in any case, or its number
func ParseValue(s string) (Value, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return ValueFromInt(n)
	}
	for _, v := range Values {
		if hasName(v, s) {
			return v, nil
		}
	}
	if hasName(Joker, s) {
		return Joker, nil
	}
	return 0, fmt.Errorf("%w: unknown value %q", ErrInvalidCard, s)
}

func hasName(v Value, s string) bool {
	for _, name := range v.Names() {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

// ValueFromInt maps 1..13 to Ace..King. 14 is accepted as an aces-high ace
// and 15 as the joker value.
func ValueFromInt(n int) (Value, error) {
	switch {
	case n >= int(Ace) && n <= int(King):
		return Value(n), nil
	case n == 14:
		return Ace, nil
	case n == int(Joker):
		return Joker, nil
	}
	return 0, fmt.Errorf("%w: no value numbered %d", ErrInvalidCard, n)
}
