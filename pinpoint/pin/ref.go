package pin

import (
	"unsafe"

	"github.com/google/uuid"
)

// Ref is the borrowed variant: a mutable slice whose storage is owned by
// the caller. Converting a Ref does not change ownership and allocates no
// element storage; the pin trusts the caller not to swap the referent while
// it is alive, the same promise the slice header itself encodes.
type Ref[T any] []T

// IntoPin converts the borrowed slice into a pinned view aliasing the same
// storage.
func (r Ref[T]) IntoPin() *Pin[T] {
	return &Pin[T]{
		data:  r,
		base:  unsafe.Pointer(unsafe.SliceData(r)),
		token: uuid.New(),
	}
}
