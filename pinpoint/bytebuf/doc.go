// Package bytebuf provides an owned heap byte buffer and an immutable view
// over it.
//
// Buffer specializes pin.Owned for bytes and adds string conversions; View
// is a read-only snapshot that never exposes the backing array, so cached or
// shared copies cannot be mutated by callers.
package bytebuf
