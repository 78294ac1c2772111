package pointers

// To returns a pointer to v.
//
// Example:
//
//	limit := pointers.To(10)
func To[T any](v T) *T {
	return &v
}

// Deref returns the value p points to, or the zero value when p is nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T

		return zero
	}

	return *p
}

// DerefOr returns the value p points to, or def when p is nil.
func DerefOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}

	return *p
}

// Equal reports whether a and b are both nil or point to equal values.
func Equal[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
