package slice

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileSlicesSizeIsSumOfChildren(t *testing.T) {
	var fs FileSlices
	fs.Append(Static{Data: []byte("hello")})
	fs.Append(Static{Data: []byte(" world")})
	require.Equal(t, int64(11), fs.Size())
}

func TestFileSlicesAddRangeFullFile(t *testing.T) {
	var fs FileSlices
	fs.Append(Static{Data: []byte("hello")})
	fs.Append(Static{Data: []byte(" world")})

	var out bytes.Buffer
	n, err := fs.AddRange(ByteRange{0, fs.Size()}, &out)
	require.NoError(t, err)
	require.Equal(t, int64(11), n)
	require.Equal(t, "hello world", out.String())
}

func TestFileSlicesAddRangeCrossesBoundary(t *testing.T) {
	var fs FileSlices
	fs.Append(Static{Data: []byte("hello")})
	fs.Append(Static{Data: []byte(" world")})

	var out bytes.Buffer
	_, err := fs.AddRange(ByteRange{3, 8}, &out)
	require.NoError(t, err)
	require.Equal(t, "lo wo", out.String())
}

func TestFileSlicesAddRangeSkipsZeroWidthSlices(t *testing.T) {
	var fs FileSlices
	fs.Append(Static{Data: []byte("a")})
	fs.Append(Static{Data: nil})
	fs.Append(Static{Data: []byte("b")})

	var out bytes.Buffer
	_, err := fs.AddRange(ByteRange{0, 2}, &out)
	require.NoError(t, err)
	require.Equal(t, "ab", out.String())
}

func TestFileSlicesConcatenationLaw(t *testing.T) {
	full := "the quick brown fox jumps over the lazy dog, twice over"
	var fs FileSlices
	for i := 0; i < len(full); i += 7 {
		end := i + 7
		if end > len(full) {
			end = len(full)
		}
		fs.Append(Static{Data: []byte(full[i:end])})
	}
	require.Equal(t, int64(len(full)), fs.Size())

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		a := int64(rng.Intn(len(full) + 1))
		b := int64(rng.Intn(len(full) + 1))
		c := int64(rng.Intn(len(full) + 1))
		lo, mid, hi := sorted3(a, b, c)

		var left, right, whole bytes.Buffer
		_, err := fs.AddRange(ByteRange{lo, mid}, &left)
		require.NoError(t, err)
		_, err = fs.AddRange(ByteRange{mid, hi}, &right)
		require.NoError(t, err)
		_, err = fs.AddRange(ByteRange{lo, hi}, &whole)
		require.NoError(t, err)

		require.Equal(t, whole.String(), left.String()+right.String())
	}
}

func sorted3(a, b, c int64) (int64, int64, int64) {
	v := []int64{a, b, c}
	for i := 1; i < 3; i++ {
		for j := i; j > 0 && v[j-1] > v[j]; j-- {
			v[j-1], v[j] = v[j], v[j-1]
		}
	}
	return v[0], v[1], v[2]
}

func TestFileSlicesAddRangeOutOfBounds(t *testing.T) {
	var fs FileSlices
	fs.Append(Static{Data: []byte("abc")})

	var out bytes.Buffer
	_, err := fs.AddRange(ByteRange{0, 4}, &out)
	require.Error(t, err)
}
