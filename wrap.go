package trickle

// Try is a container for a value or an error
type Try[A any] struct {
	Value A
	Error error
}

// Wrap converts a value and an error into a [Try] container.
func Wrap[A any](value A, err error) Try[A] {
	return Try[A]{Value: value, Error: err}
}

// Unwrap returns the value and the error held by the container.
func (t Try[A]) Unwrap() (A, error) {
	return t.Value, t.Error
}
