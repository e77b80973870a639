package cards

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Format implements fmt.Formatter.
//
// The precision picks the longest value name that still leaves room for the
// suit symbol, so "%.5v" prints "Ace♠", "%.3v" prints "A♠" and "%.4v" prints
// "Que♥". The width pads the result on the left, or on the right with the
// '-' flag. "%#v" prints a Go literal.
func (c Card) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		if verb == 'v' && f.Flag('#') {
			fmt.Fprintf(f, "cards.Card{Suit:%d, Value:%d, Joker:%t}", c.Suit, c.Value, c.Joker)
			return
		}
		s := c.String()
		if p, ok := f.Precision(); ok {
			s = c.Abbrev(p)
		}
		pad(f, s)
	default:
		fmt.Fprintf(f, "%%!%c(cards.Card=%s)", verb, c.String())
	}
}

// Abbrev returns the card name fitting in limit characters. A limit of
// zero means no limit.
func (c Card) Abbrev(limit int) string {
	if c.Joker {
		return pickName(Joker.Names(), limit, 0)
	}
	return pickName(c.Value.Names(), limit, 1) + c.Suit.String()
}

func pickName(names []string, limit, reserve int) string {
	for _, n := range names {
		if limit == 0 || utf8.RuneCountInString(n)+reserve <= limit {
			return n
		}
	}
	return names[len(names)-1]
}

func pad(f fmt.State, s string) {
	w, ok := f.Width()
	n := utf8.RuneCountInString(s)
	if !ok || n >= w {
		fmt.Fprint(f, s)
		return
	}
	fill := strings.Repeat(" ", w-n)
	if f.Flag('-') {
		fmt.Fprint(f, s+fill)
		return
	}
	fmt.Fprint(f, fill+s)
}
