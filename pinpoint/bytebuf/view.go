package bytebuf

import (
	"fmt"

	"github.com/LerianStudio/lib-pinpoint/pinpoint/pin"
)

// View holds an immutable view of bytes. It supports read-only access only;
// accessors return copies so callers cannot reach the underlying array.
type View struct {
	data []byte
}

// NewView creates a view over a copy of b.
func NewView(b []byte) View {
	return View{data: cloneBytes(b)}
}

// Len returns the view's length in bytes.
func (v View) Len() int {
	return len(v.data)
}

// ByteSlice returns a copy of the data as a byte slice.
func (v View) ByteSlice() []byte {
	return cloneBytes(v.data)
}

// String returns the data as a string.
func (v View) String() string {
	return string(v.data)
}

// At returns the byte at index i.
// Returns pin.ErrIndexOutOfBounds if the index is out of range.
func (v View) At(i int) (byte, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("%w: index %d, length %d", pin.ErrIndexOutOfBounds, i, len(v.data))
	}

	return v.data[i], nil
}

// cloneBytes copies b into a fresh allocation.
func cloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)

	return c
}
