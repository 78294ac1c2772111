package pinpoint

import (
	"context"
	"errors"

	"github.com/LerianStudio/lib-pinpoint/pinpoint/log"
)

// ErrNilParentContext indicates that a nil parent context was provided.
var ErrNilParentContext = errors.New("cannot create context from nil parent")

type customContextKey string

// CustomContextKey is the context key used to store CustomContextKeyValue.
var CustomContextKey = customContextKey("pinpoint_context")

// CustomContextKeyValue holds the operation-scoped facilities we attach to
// context.
type CustomContextKeyValue struct {
	Logger log.Logger
}

// NewLoggerFromContext extracts the Logger stored in ctx.
//
// Returns a NopLogger when no logger was attached, so callers can log
// unconditionally.
//
//nolint:ireturn
func NewLoggerFromContext(ctx context.Context) log.Logger {
	if customContext, ok := ctx.Value(CustomContextKey).(*CustomContextKeyValue); ok &&
		customContext.Logger != nil {
		return customContext.Logger
	}

	return &log.NopLogger{}
}

// ContextWithLogger returns a child context carrying the given Logger.
func ContextWithLogger(ctx context.Context, logger log.Logger) context.Context {
	values, _ := ctx.Value(CustomContextKey).(*CustomContextKeyValue)
	if values == nil {
		values = &CustomContextKeyValue{}
	}

	next := *values
	next.Logger = logger

	return context.WithValue(ctx, CustomContextKey, &next)
}
