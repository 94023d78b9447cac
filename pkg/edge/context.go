package edge

import (
	"context"

	"github.com/dmitrymomot/trackkit"
)

type contextKey struct{}

// WithContext stores props in the context.
func WithContext(ctx context.Context, props trackkit.Props) context.Context {
	return context.WithValue(ctx, contextKey{}, props)
}

// FromContext retrieves props stored by the middleware. The zero value is
// returned when none are present.
func FromContext(ctx context.Context) trackkit.Props {
	props, _ := ctx.Value(contextKey{}).(trackkit.Props)
	return props
}
