//go:build unit

package pin

import (
	"slices"
	"testing"
	"unsafe"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefIntoPin_AliasesStorage(t *testing.T) {
	t.Parallel()

	buf := []uint32{1, 2, 3, 4}

	p := Ref[uint32](buf).IntoPin()
	defer p.Unpin()

	require.NoError(t, p.Set(0, 9))
	assert.Equal(t, uint32(9), buf[0])

	buf[1] = 7

	got, err := p.At(1)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), got)
}

func TestRefIntoPin_ReverseVisibleThroughBorrow(t *testing.T) {
	t.Parallel()

	buf := []uint32{1, 2, 3, 4}

	p := Ref[uint32](buf).IntoPin()
	slices.Reverse(p.Slice())
	p.Unpin()

	assert.Equal(t, []uint32{4, 3, 2, 1}, buf)
}

func TestRefIntoPin_AddressStability(t *testing.T) {
	t.Parallel()

	buf := []byte{10, 20, 30}
	want := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))

	p := Ref[byte](buf).IntoPin()
	defer p.Unpin()

	assert.Equal(t, want, p.Addr())
	require.NoError(t, p.Verify())

	require.NoError(t, p.Set(2, 99))
	assert.Equal(t, want, p.Addr())
	require.NoError(t, p.Verify())
}

func TestRefIntoPin_RoundTrip(t *testing.T) {
	t.Parallel()

	buf := []int{5, 4, 3, 2, 1}

	p := Ref[int](buf).IntoPin()
	defer p.Unpin()

	require.Equal(t, len(buf), p.Len())

	for i, want := range buf {
		got, err := p.At(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestRefIntoPin_Empty(t *testing.T) {
	t.Parallel()

	p := Ref[byte]{}.IntoPin()
	defer p.Unpin()

	assert.Equal(t, 0, p.Len())
	assert.True(t, p.IsEmpty())
	assert.NoError(t, p.Verify())

	_, err := p.At(0)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestPin_BoundsErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		index int
	}{
		{name: "negative index", index: -1},
		{name: "index at length", index: 3},
		{name: "index past length", index: 42},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := Ref[int]([]int{1, 2, 3}).IntoPin()
			defer p.Unpin()

			_, err := p.At(tt.index)
			assert.ErrorIs(t, err, ErrIndexOutOfBounds)

			err = p.Set(tt.index, 0)
			assert.ErrorIs(t, err, ErrIndexOutOfBounds)
		})
	}
}

func TestPin_TokenUniqueness(t *testing.T) {
	t.Parallel()

	buf := []int{1}

	first := Ref[int](buf).IntoPin()
	defer first.Unpin()

	second := Ref[int](buf).IntoPin()
	defer second.Unpin()

	assert.NotEqual(t, uuid.Nil, first.Token())
	assert.NotEqual(t, uuid.Nil, second.Token())
	assert.NotEqual(t, first.Token(), second.Token())
}

func TestPin_NilSafe(t *testing.T) {
	t.Parallel()

	var p *Pin[int]

	assert.Equal(t, 0, p.Len())
	assert.True(t, p.IsEmpty())
	assert.Nil(t, p.Slice())
	assert.Equal(t, uintptr(0), p.Addr())
	assert.Equal(t, uuid.Nil, p.Token())
	assert.NoError(t, p.Verify())

	_, err := p.At(0)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)

	p.Unpin()
}
