// pkg/domain/options/options.go

// Package options provides the generic functional options used by every
// domain package to configure its adapters.
package options

// Option mutates a settings value of type T.
type Option[T any] interface {
	ApplyOption(*T) error
}

// OptionFunc adapts a plain function to the Option interface.
// A nil OptionFunc is a no-op.
type OptionFunc[T any] func(*T) error

func (f OptionFunc[T]) ApplyOption(o *T) error {
	if f == nil {
		return nil
	}
	return f(o)
}

// Apply applies opts to target in order, skipping nil entries.
// The first failing option stops the chain.
func Apply[T any](target *T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(target); err != nil {
			return err
		}
	}
	return nil
}

// Build applies opts on top of defaults and returns the result.
func Build[T any](defaults T, opts ...Option[T]) (T, error) {
	target := defaults
	if err := Apply(&target, opts...); err != nil {
		var zero T
		return zero, err
	}
	return target, nil
}
