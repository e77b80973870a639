package hand

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrUnknownComparison = errors.New("unknown hand comparison")
	ErrUnknownOrder      = errors.New("unknown hand sort order")
)

// Comparison decides when two cards match in lookups, intersections and unions
type Comparison int

const (
	CompareActive Comparison = iota // use the scoped default
	CompareExact                    // same card
	CompareValues                   // same value
	CompareSuits                    // same suit
)

// Order selects how hands are sorted
type Order int

const (
	SortActive   Order = iota // use the scoped default
	SortDefault               // value ascending with aces low, then bridge suit order
	SortAcesHigh              // as SortDefault with aces above kings
	SortPoker                 // value groups by size, then value, aces high
	SortUnsorted              // leave the hand as dealt
)

// Process-wide defaults used when no scope overrides them
const (
	DefaultComparison = CompareExact
	DefaultOrder      = SortDefault
)

func (c Comparison) String() string {
	switch c {
	case CompareActive:
		return "active"
	case CompareExact:
		return "exact"
	case CompareValues:
		return "values"
	case CompareSuits:
		return "suits"
	}
	return fmt.Sprintf("Comparison(%d)", int(c))
}

// Validate returns ErrUnknownComparison for values outside the enum
func (c Comparison) Validate() error {
	if c < CompareActive || c > CompareSuits {
		return fmt.Errorf("%w: %d", ErrUnknownComparison, int(c))
	}
	return nil
}

func (o Order) String() string {
	switch o {
	case SortActive:
		return "active"
	case SortDefault:
		return "default"
	case SortAcesHigh:
		return "aces-high"
	case SortPoker:
		return "poker"
	case SortUnsorted:
		return "unsorted"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// Validate returns ErrUnknownOrder for values outside the enum
func (o Order) Validate() error {
	if o < SortActive || o > SortUnsorted {
		return fmt.Errorf("%w: %d", ErrUnknownOrder, int(o))
	}
	return nil
}

type comparisonKey struct{}

type orderKey struct{}

type validationKey struct{}

// WithComparison returns a context whose default comparison is c. The
// previous default applies again to callers holding the parent context.
func WithComparison(ctx context.Context, c Comparison) context.Context {
	if c == CompareActive {
		return ctx
	}
	return context.WithValue(ctx, comparisonKey{}, c)
}

// ComparisonFrom returns the innermost comparison set on ctx, or DefaultComparison
func ComparisonFrom(ctx context.Context) Comparison {
	if c, ok := ctx.Value(comparisonKey{}).(Comparison); ok {
		return c
	}
	return DefaultComparison
}

// WithOrder returns a context whose default sort order is o
func WithOrder(ctx context.Context, o Order) context.Context {
	if o == SortActive {
		return ctx
	}
	return context.WithValue(ctx, orderKey{}, o)
}

// OrderFrom returns the innermost order set on ctx, or DefaultOrder
func OrderFrom(ctx context.Context) Order {
	if o, ok := ctx.Value(orderKey{}).(Order); ok {
		return o
	}
	return DefaultOrder
}

// WithValidation returns a context in which the checked add operations
// (NewChecked, AppendChecked, ExtendChecked) reject invalid cards when on is set
func WithValidation(ctx context.Context, on bool) context.Context {
	return context.WithValue(ctx, validationKey{}, on)
}

// ValidationFrom reports whether validation is on in ctx. It is off by default.
func ValidationFrom(ctx context.Context) bool {
	on, _ := ctx.Value(validationKey{}).(bool)
	return on
}

// ScopedValidation runs fn with validation switched on or off
func ScopedValidation(ctx context.Context, on bool, fn func(ctx context.Context)) {
	fn(WithValidation(ctx, on))
}

// ScopedComparison runs fn with c as the default comparison
func ScopedComparison(ctx context.Context, c Comparison, fn func(ctx context.Context)) {
	fn(WithComparison(ctx, c))
}

// ScopedOrder runs fn with o as the default sort order
func ScopedOrder(ctx context.Context, o Order, fn func(ctx context.Context)) {
	fn(WithOrder(ctx, o))
}

func resolveComparison(ctx context.Context, c Comparison) Comparison {
	if c == CompareActive {
		return ComparisonFrom(ctx)
	}
	return c
}

func resolveOrder(ctx context.Context, o Order) Order {
	if o == SortActive {
		return OrderFrom(ctx)
	}
	return o
}
