package validation

// Optional wraps a value that may be absent, typically the result of
// parsing raw user input. It replaces sentinel values (NaN, -1, "") which
// could otherwise leak into numeric comparisons unnoticed.
type Optional[T any] struct {
	value   T
	present bool
}

// Some wraps a present value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

// None represents an absent value (e.g. an unparseable input field).
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the wrapped value and whether it is present. The value is
// the zero value of T when absent.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent reports whether a value is set.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// OrElse returns the wrapped value, or fallback if absent.
func (o Optional[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}
