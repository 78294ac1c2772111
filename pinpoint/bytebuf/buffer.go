package bytebuf

import (
	"context"

	"github.com/LerianStudio/lib-pinpoint/pinpoint/pin"
)

// Buffer is an owned, heap-allocated byte region. It wraps pin.Owned, so
// pins taken from it keep the storage address stable and relocating
// operations are refused while pins are outstanding.
//
// Buffer is not safe for concurrent use.
type Buffer struct {
	owned *pin.Owned[byte]
}

// New allocates a zeroed buffer of n bytes.
func New(n int, opts ...pin.Option[byte]) *Buffer {
	return &Buffer{owned: pin.NewOwned(n, opts...)}
}

// FromBytes allocates a buffer holding a copy of b. The caller keeps
// ownership of b; the buffer owns its copy.
func FromBytes(b []byte, opts ...pin.Option[byte]) *Buffer {
	return &Buffer{owned: pin.Own(cloneBytes(b), opts...)}
}

// FromString allocates a buffer holding the bytes of s.
func FromString(s string, opts ...pin.Option[byte]) *Buffer {
	return &Buffer{owned: pin.Own([]byte(s), opts...)}
}

// IntoPin converts the buffer into a pinned byte view.
func (b *Buffer) IntoPin() *pin.Pin[byte] {
	return b.owned.IntoPin()
}

// Len returns the buffer length in bytes.
func (b *Buffer) Len() int {
	return b.owned.Len()
}

// Pinned returns the number of outstanding pins.
func (b *Buffer) Pinned() int {
	return b.owned.Pinned()
}

// Bytes returns a copy of the buffer contents.
func (b *Buffer) Bytes() []byte {
	return cloneBytes(b.owned.Slice())
}

// String returns the buffer contents as a string.
func (b *Buffer) String() string {
	return string(b.owned.Slice())
}

// View returns an immutable snapshot of the current contents.
func (b *Buffer) View() View {
	return NewView(b.owned.Slice())
}

// Append grows the buffer. Fails with pin.ErrMovedWhilePinned while pins
// are outstanding.
func (b *Buffer) Append(ctx context.Context, p ...byte) error {
	return b.owned.Append(ctx, p...)
}

// AppendString grows the buffer by the bytes of s. Fails with
// pin.ErrMovedWhilePinned while pins are outstanding.
func (b *Buffer) AppendString(ctx context.Context, s string) error {
	return b.owned.Append(ctx, []byte(s)...)
}

// Reset drops the contents. Fails with pin.ErrMovedWhilePinned while pins
// are outstanding.
func (b *Buffer) Reset(ctx context.Context) error {
	return b.owned.Reset(ctx)
}

// Take releases the backing slice to the caller; the buffer is unusable
// afterwards. Fails with pin.ErrMovedWhilePinned while pins are
// outstanding.
func (b *Buffer) Take(ctx context.Context) ([]byte, error) {
	return b.owned.Take(ctx)
}

var _ pin.IntoPinner[byte] = (*Buffer)(nil)
