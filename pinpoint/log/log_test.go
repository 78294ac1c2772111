//go:build unit

package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Level
		wantErr bool
	}{
		{name: "debug", input: "debug", want: LevelDebug},
		{name: "info", input: "info", want: LevelInfo},
		{name: "warn", input: "warn", want: LevelWarn},
		{name: "warning alias", input: "warning", want: LevelWarn},
		{name: "error", input: "error", want: LevelError},
		{name: "mixed case", input: "InFo", want: LevelInfo},
		{name: "invalid", input: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevel_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "warn", LevelWarn.String())
	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "unknown", Level(42).String())
}

func TestFieldConstructors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Field{Key: "k", Value: "v"}, String("k", "v"))
	assert.Equal(t, Field{Key: "n", Value: 3}, Int("n", 3))
	assert.Equal(t, Field{Key: "ok", Value: true}, Bool("ok", true))
	assert.Equal(t, Field{Key: "raw", Value: 1.5}, Any("raw", 1.5))
	assert.Equal(t, Field{Key: "addr", Value: "0xff"}, Uintptr("addr", 0xff))

	err := errors.New("boom")
	assert.Equal(t, Field{Key: "error", Value: err}, Err(err))
}

func TestGoLogger_Enabled(t *testing.T) {
	t.Parallel()

	logger := &GoLogger{Level: LevelInfo}

	assert.True(t, logger.Enabled(LevelError))
	assert.True(t, logger.Enabled(LevelWarn))
	assert.True(t, logger.Enabled(LevelInfo))
	assert.False(t, logger.Enabled(LevelDebug))

	var nilLogger *GoLogger

	assert.False(t, nilLogger.Enabled(LevelError))
}

func TestGoLogger_Hydrate(t *testing.T) {
	t.Parallel()

	logger := &GoLogger{Level: LevelDebug}

	plain := logger.hydrate(LevelInfo, "started", nil)
	assert.Equal(t, "[info] started", plain)

	withFields := logger.hydrate(LevelError, "failed", []Field{Int("pins", 2)})
	assert.Equal(t, "[error] [pins=2] failed", withFields)
}

func TestGoLogger_WithAndGroups(t *testing.T) {
	t.Parallel()

	base := &GoLogger{Level: LevelDebug}

	scoped, ok := base.With(String("component", "pin")).(*GoLogger)
	require.True(t, ok)

	grouped, ok := scoped.WithGroup("owned").(*GoLogger)
	require.True(t, ok)

	rendered := grouped.hydrate(LevelInfo, "msg", []Field{Int("pins", 1)})
	assert.Equal(t, "[info] [owned.component=pin, owned.pins=1] msg", rendered)

	// The original logger is unchanged.
	assert.Equal(t, "[info] msg", base.hydrate(LevelInfo, "msg", nil))
}

func TestGoLogger_SanitizesControlChars(t *testing.T) {
	t.Parallel()

	logger := &GoLogger{Level: LevelDebug}

	rendered := logger.hydrate(LevelInfo, "line1\nline2", []Field{String("k", "a\tb")})
	assert.Equal(t, `[info] [k=a\tb] line1\nline2`, rendered)
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	logger := NewNop()

	assert.False(t, logger.Enabled(LevelError))
	assert.Same(t, logger, logger.With(String("k", "v")))
	assert.Same(t, logger, logger.WithGroup("g"))
	assert.NoError(t, logger.Sync(nil))
}
