//go:build unit

package pointers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTo(t *testing.T) {
	t.Parallel()

	p := To(42)

	assert.NotNil(t, p)
	assert.Equal(t, 42, *p)
}

func TestDeref(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "value", Deref(To("value")))
	assert.Equal(t, "", Deref[string](nil))
	assert.Equal(t, 0, Deref[int](nil))
}

func TestDerefOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, DerefOr(To(7), 9))
	assert.Equal(t, 9, DerefOr(nil, 9))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    *int
		b    *int
		want bool
	}{
		{name: "both nil", a: nil, b: nil, want: true},
		{name: "left nil", a: nil, b: To(1), want: false},
		{name: "right nil", a: To(1), b: nil, want: false},
		{name: "equal values", a: To(1), b: To(1), want: true},
		{name: "different values", a: To(1), b: To(2), want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}
