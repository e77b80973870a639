package hand

import (
	"context"
	"fmt"
	"strings"
)

// Direction orders the cards of a displayed hand
type Direction int

const (
	AsDealt Direction = iota
	Ascending
	Descending
)

// DisplayOptions control Display. Width left-justifies every card in a
// column of that many characters, Precision abbreviates card names as in
// cards.Card.Abbrev.
type DisplayOptions struct {
	Width     int
	Precision int
	Direction Direction
}

// DefaultDisplay is used by Hand.String
var DefaultDisplay = DisplayOptions{Width: 4, Precision: 3, Direction: Descending}

// Display renders the hand on one line. Sorted directions use the order
// active on ctx, and fall back to the dealt order if that order is unknown.
func (h *Hand) Display(ctx context.Context, opts DisplayOptions) string {
	cs := h.Cards()
	if opts.Direction != AsDealt {
		if sorted, err := h.Sorted(ctx, SortActive, opts.Direction == Descending); err == nil {
			cs = sorted
		}
	}

	var b strings.Builder
	for _, c := range cs {
		fmt.Fprintf(&b, "%-*.*v", opts.Width, opts.Precision, c)
	}
	return b.String()
}
