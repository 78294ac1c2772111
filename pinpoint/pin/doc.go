// Package pin converts borrowed or owned buffers into pinned views.
//
// A Pin is a handle over a contiguous region whose base address is
// guaranteed stable for as long as the pin is held. Two input forms
// implement the IntoPinner capability:
//
//   - Ref, a borrowed mutable slice owned by the caller. The conversion is a
//     zero-cost relabeling; the caller promises not to swap the backing
//     storage while the pin is alive.
//   - Owned, a uniquely-owned heap buffer managed by this package. The
//     conversion takes ownership and the buffer refuses any relocating
//     operation (Append, Grow, Reset, Take) while pins are outstanding,
//     reporting ErrMovedWhilePinned.
//
// The conversion itself never fails, never copies elements, and allocates
// nothing beyond the pin handle:
//
//	buf := []uint32{1, 2, 3, 4}
//	p := pin.Ref[uint32](buf).IntoPin()
//	defer p.Unpin()
//	slices.Reverse(p.Slice()) // visible through buf: [4, 3, 2, 1]
package pin
