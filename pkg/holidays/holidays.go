// Package holidays acquires the set of non-working dates.
package holidays

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when the holiday source could not be reached
// after every attempt. Its message is the fixed marker "failed to fetch holidays".
var ErrUnavailable = errors.New("failed to fetch holidays")

// Provider supplies the active holiday set.
type Provider interface {
	Holidays(ctx context.Context) (Set, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context) (Set, error)

// Holidays calls f.
func (f ProviderFunc) Holidays(ctx context.Context) (Set, error) {
	return f(ctx)
}

// Static is a Provider with a fixed set.
type Static struct {
	Set Set
}

// Holidays returns the fixed set.
func (s Static) Holidays(context.Context) (Set, error) {
	return s.Set, nil
}
