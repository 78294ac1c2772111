package pin

import (
	"context"
	"fmt"
	"runtime"
	"unsafe"

	"github.com/google/uuid"

	"github.com/LerianStudio/lib-pinpoint/pinpoint"
	"github.com/LerianStudio/lib-pinpoint/pinpoint/assert"
	"github.com/LerianStudio/lib-pinpoint/pinpoint/log"
)

// Owned is the owned variant: a uniquely-owned heap buffer whose storage
// this package controls. While pins derived from it are outstanding, every
// operation that could relocate the storage fails with ErrMovedWhilePinned,
// which makes the address-stability guarantee enforced rather than assumed.
//
// Owned is not safe for concurrent use; callers serialize access the same
// way they would for the underlying slice.
type Owned[T any] struct {
	data     []T
	pins     int
	released bool
	logger   log.Logger
	asserter *assert.Asserter
}

// Option configures an Owned buffer.
type Option[T any] func(*Owned[T])

// WithLogger sets the logger used for violation reporting. Without it,
// violations are still returned as errors but logged nowhere unless the
// operation context carries a logger.
func WithLogger[T any](logger log.Logger) Option[T] {
	return func(o *Owned[T]) {
		o.logger = logger
	}
}

// NewOwned allocates an owned heap buffer of n zero-valued elements.
func NewOwned[T any](n int, opts ...Option[T]) *Owned[T] {
	return Own(make([]T, n), opts...)
}

// Own adopts an existing slice as an owned buffer, taking ownership of its
// allocation. The caller must not retain or mutate the slice afterwards;
// the buffer's guarantees only hold if it is the sole owner.
func Own[T any](data []T, opts ...Option[T]) *Owned[T] {
	owned := &Owned[T]{
		data:   data,
		logger: log.NewNop(),
	}

	for _, opt := range opts {
		opt(owned)
	}

	owned.asserter = assert.New(context.Background(), owned.logger, "pin", "owned")

	return owned
}

// IntoPin converts the buffer into a pinned view. The backing array is
// pinned against the runtime for the lifetime of the view, and the buffer
// counts the pin so relocating operations can be refused.
//
// The conversion is total: it cannot fail, copies nothing, and does not
// relocate the existing allocation.
func (o *Owned[T]) IntoPin() *Pin[T] {
	base := unsafe.Pointer(unsafe.SliceData(o.data))

	var pinner *runtime.Pinner
	if len(o.data) > 0 {
		pinner = new(runtime.Pinner)
		pinner.Pin(base)
	}

	o.pins++

	return &Pin[T]{
		data:  o.data,
		base:  base,
		token: uuid.New(),
		unpin: func() {
			if pinner != nil {
				pinner.Unpin()
			}

			o.releasePin()
		},
		verify: func() error {
			if unsafe.Pointer(unsafe.SliceData(o.data)) != base {
				return fmt.Errorf("%w: owner storage no longer matches pinned base", ErrMovedWhilePinned)
			}

			return nil
		},
	}
}

// Len returns the number of elements in the buffer.
func (o *Owned[T]) Len() int {
	return len(o.data)
}

// Pinned returns the number of outstanding pins.
func (o *Owned[T]) Pinned() int {
	return o.pins
}

// Slice returns the buffer contents for owner-side access. The returned
// slice aliases the backing storage and must not be appended to.
func (o *Owned[T]) Slice() []T {
	return o.data
}

// Append grows the buffer by the given elements. Fails with
// ErrMovedWhilePinned while pins are outstanding, since growth may relocate
// the backing array.
func (o *Owned[T]) Append(ctx context.Context, items ...T) error {
	if err := o.guard(ctx, "append"); err != nil {
		return err
	}

	o.data = append(o.data, items...)

	return nil
}

// Grow reallocates the buffer to hold n additional zero-valued elements.
// Fails with ErrMovedWhilePinned while pins are outstanding.
func (o *Owned[T]) Grow(ctx context.Context, n int) error {
	if err := o.guard(ctx, "grow"); err != nil {
		return err
	}

	grown := make([]T, len(o.data)+n)
	copy(grown, o.data)
	o.data = grown

	return nil
}

// Reset drops the buffer contents and releases the allocation. Fails with
// ErrMovedWhilePinned while pins are outstanding.
func (o *Owned[T]) Reset(ctx context.Context) error {
	if err := o.guard(ctx, "reset"); err != nil {
		return err
	}

	o.data = nil

	return nil
}

// Take releases the backing slice to the caller, ending this buffer's
// ownership. The buffer is unusable afterwards; further operations return
// ErrBufferReleased. Fails with ErrMovedWhilePinned while pins are
// outstanding.
func (o *Owned[T]) Take(ctx context.Context) ([]T, error) {
	if err := o.guard(ctx, "take"); err != nil {
		return nil, err
	}

	taken := o.data
	o.data = nil
	o.released = true

	return taken, nil
}

// guard refuses operations that would relocate or release storage out from
// under outstanding pins.
func (o *Owned[T]) guard(ctx context.Context, op string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if o.released {
		return fmt.Errorf("%s: %w", op, ErrBufferReleased)
	}

	if o.pins == 0 {
		return nil
	}

	o.violationLogger(ctx).Log(ctx, log.LevelError, "refusing to relocate pinned storage",
		log.String("op", op),
		log.Int("pins", o.pins),
		log.Int("len", len(o.data)),
		log.Uintptr("addr", uintptr(unsafe.Pointer(unsafe.SliceData(o.data)))),
	)

	return fmt.Errorf("%s: %w: %d pins outstanding", op, ErrMovedWhilePinned, o.pins)
}

func (o *Owned[T]) releasePin() {
	o.pins--

	if o.pins < 0 {
		_ = o.asserter.Never(context.Background(), "pin count went negative", "pins", o.pins)
		o.pins = 0
	}
}

// violationLogger prefers the operation-scoped logger from ctx over the
// buffer's own.
//
//nolint:ireturn
func (o *Owned[T]) violationLogger(ctx context.Context) log.Logger {
	if logger := pinpoint.NewLoggerFromContext(ctx); logger.Enabled(log.LevelError) {
		return logger
	}

	return o.logger
}
