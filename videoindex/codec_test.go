package videoindex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeEmptyIndexIsImmediatelyDone(t *testing.T) {
	it := Decode(nil)
	require.True(t, it.Done())
	require.False(t, it.HasError())
}

func TestDecodeVisitsEveryFrameInOrder(t *testing.T) {
	var b Builder
	b.AddSample(3000, 1024, true)
	b.AddSample(3000, 200, false)
	b.AddSample(3000, 150, false)

	it := Decode(b.Bytes())

	type seen struct {
		start, dur, end, bytes int32
		isKey                  bool
		pos                    int64
	}
	var got []seen
	for !it.Done() {
		got = append(got, seen{it.Start90k(), it.Duration90k(), it.End90k(), it.Bytes(), it.IsKey(), it.Pos()})
		it.Next()
	}
	require.NoError(t, it.Err())

	require.Equal(t, []seen{
		{0, 3000, 3000, 1024, true, 0},
		{3000, 3000, 6000, 200, false, 1024},
		{6000, 3000, 9000, 150, false, 1224},
	}, got)
}

func TestDecodeCorruptIndexSetsError(t *testing.T) {
	it := Decode([]byte{0xFF}) // truncated varint (continuation bit set, no more bytes)
	require.True(t, it.Done())
	require.True(t, it.HasError())
	require.Error(t, it.Err())
}
