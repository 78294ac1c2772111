package pin

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/google/uuid"
)

// ErrMovedWhilePinned is returned when an operation would relocate, or has
// relocated, backing storage that still has pins outstanding.
var ErrMovedWhilePinned = errors.New("backing storage moved while pinned")

// ErrIndexOutOfBounds is returned when an element index is outside the
// pinned region.
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// ErrBufferReleased is returned when an Owned buffer is used after Take
// released its storage.
var ErrBufferReleased = errors.New("buffer released")

// IntoPinner is the conversion capability: anything that can yield a pinned
// view of its contents. Ref and *Owned are the two implementations; callers
// pick the variant by the static type they hold, there is no runtime
// dispatch on ownership form.
type IntoPinner[T any] interface {
	IntoPin() *Pin[T]
}

// Pin is a view over a contiguous region whose base address is stable for
// the lifetime of the pin. It aliases the converted storage; no elements are
// copied.
//
// A Pin must be released with Unpin once the caller is done with it. Pins
// are not safe for concurrent use.
type Pin[T any] struct {
	data     []T
	base     unsafe.Pointer
	token    uuid.UUID
	unpin    func()
	verify   func() error
	released bool
}

// Len returns the number of pinned elements.
func (p *Pin[T]) Len() int {
	if p == nil {
		return 0
	}

	return len(p.data)
}

// IsEmpty reports whether the pinned region holds no elements.
func (p *Pin[T]) IsEmpty() bool {
	return p.Len() == 0
}

// Slice returns the pinned elements. The returned slice aliases the backing
// storage: mutations through it are visible to the original owner, and the
// caller must not retain it past Unpin.
func (p *Pin[T]) Slice() []T {
	if p == nil {
		return nil
	}

	return p.data
}

// Addr returns the base address captured when the pin was created. For an
// empty region the address may be zero.
func (p *Pin[T]) Addr() uintptr {
	if p == nil {
		return 0
	}

	return uintptr(p.base)
}

// Token returns the borrow token identifying this pin. Each conversion
// produces a distinct token; it appears in violation diagnostics.
func (p *Pin[T]) Token() uuid.UUID {
	if p == nil {
		return uuid.Nil
	}

	return p.token
}

// At returns the element at index i.
// Returns ErrIndexOutOfBounds if the index is out of range.
//
// Example:
//
//	v, err := p.At(2)
//	if err != nil {
//	    return fmt.Errorf("read pinned element: %w", err)
//	}
func (p *Pin[T]) At(i int) (T, error) {
	var zero T

	if p == nil || i < 0 || i >= len(p.data) {
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, p.Len())
	}

	return p.data[i], nil
}

// Set stores v at index i, mutating the backing storage in place.
// Returns ErrIndexOutOfBounds if the index is out of range.
func (p *Pin[T]) Set(i int, v T) error {
	if p == nil || i < 0 || i >= len(p.data) {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, p.Len())
	}

	p.data[i] = v

	return nil
}

// Verify rechecks that the backing storage still sits at the address
// captured at conversion time. Returns ErrMovedWhilePinned on a violation.
//
// The owned variant already refuses relocating operations while pins are
// outstanding, so Verify failing indicates the owner was bypassed (for
// example through a copied struct).
func (p *Pin[T]) Verify() error {
	if p == nil {
		return nil
	}

	if unsafe.Pointer(unsafe.SliceData(p.data)) != p.base {
		return fmt.Errorf("%w: pin %s", ErrMovedWhilePinned, p.token)
	}

	if p.verify != nil {
		return p.verify()
	}

	return nil
}

// Unpin ends the borrow, releasing the runtime pin on the backing array and
// notifying the owner for the owned variant. Unpin is idempotent; a nil pin
// is a no-op.
func (p *Pin[T]) Unpin() {
	if p == nil || p.released {
		return
	}

	p.released = true

	if p.unpin != nil {
		p.unpin()
	}
}
