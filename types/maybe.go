// Package types holds small value types shared across the library.
package types

// Maybe is an explicit optional value. The zero value is None.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Some wraps v as a present value.
func Some[T any](v T) Maybe[T] { return Maybe[T]{value: v, ok: true} }

// None returns an absent value.
func None[T any]() Maybe[T] { return Maybe[T]{} }

func (m Maybe[T]) HasValue() bool { return m.ok }
func (m Maybe[T]) HasNoValue() bool { return !m.ok }

// Value returns the wrapped value and whether it is present.
func (m Maybe[T]) Value() (T, bool) { return m.value, m.ok }

// OrElse returns the wrapped value, or def when absent.
func (m Maybe[T]) OrElse(def T) T {
	if !m.ok {
		return def
	}
	return m.value
}
