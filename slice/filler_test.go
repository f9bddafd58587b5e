package slice

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFillerMaterializesOnceAndCaches(t *testing.T) {
	calls := 0
	f := NewFiller(5, func() ([]byte, error) {
		calls++
		return []byte("abcde"), nil
	})

	require.Equal(t, int64(5), f.Size())

	var out bytes.Buffer
	_, err := f.AddRange(ByteRange{0, 2}, &out)
	require.NoError(t, err)
	_, err = f.AddRange(ByteRange{2, 5}, &out)
	require.NoError(t, err)
	require.Equal(t, "abcde", out.String())
	require.Equal(t, 1, calls)
}

func TestFillerWrongSizeIsAnError(t *testing.T) {
	f := NewFiller(5, func() ([]byte, error) {
		return []byte("abc"), nil
	})
	var out bytes.Buffer
	_, err := f.AddRange(ByteRange{0, 5}, &out)
	require.ErrorIs(t, err, ErrFillerWrongSize)
}

func TestFillerBackendErrorPropagates(t *testing.T) {
	backendErr := errors.New("index decode failed")
	f := NewFiller(5, func() ([]byte, error) {
		return nil, backendErr
	})
	var out bytes.Buffer
	_, err := f.AddRange(ByteRange{0, 5}, &out)
	require.Error(t, err)
	var fbe *FillerBackendError
	require.ErrorAs(t, err, &fbe)
	require.ErrorIs(t, err, backendErr)
}
