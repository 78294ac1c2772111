// Package pinpoint provides shared plumbing for the pinned-view subpackages.
//
// The package includes context helpers used to carry a logger into the
// runtime enforcement paths of the pin and bytebuf subpackages.
//
// Typical usage at the start of an operation:
//
//	ctx = pinpoint.ContextWithLogger(ctx, logger)
//
// This package is intentionally dependency-light; the conversion primitives
// live in the pin, bytebuf, and pointers subpackages.
package pinpoint
