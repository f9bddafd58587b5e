package mp4

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/traw/mp4vault/videoindex"
)

// buildUniformIndex appends n frames of duration90k ticks and size
// bytes each, marking every keyInterval-th frame (starting at 0) as a
// key frame.
func buildUniformIndex(n int, duration90k, size int32, keyInterval int) []byte {
	var b videoindex.Builder
	for i := 0; i < n; i++ {
		b.AddSample(duration90k, size, i%keyInterval == 0)
	}
	return b.Bytes()
}

// TestFastPathSingleRecording exercises concrete scenario 1 of
// spec.md §8: a full-window request over one recording takes the fast
// path and reproduces the recording's own totals exactly.
func TestFastPathSingleRecording(t *testing.T) {
	const frames = 1800
	const duration90k = 3000
	const size = 5000
	const keyInterval = 30 // 1800/30 = 60 key frames

	rec := &Recording{
		StartTime90k:     0,
		EndTime90k:       frames * duration90k,
		VideoSamples:     frames,
		VideoSyncSamples: frames / keyInterval,
		VideoIndex:       buildUniformIndex(frames, duration90k, size, keyInterval),
	}
	rec.SampleFileBytes = int64(frames) * size

	pieces, err := NewSampleTablePieces(rec, 1, 1, 0, frames*duration90k)
	require.NoError(t, err)

	require.Equal(t, int32(frames), pieces.Frames)
	require.Equal(t, int32(frames/keyInterval), pieces.KeyFrames)
	require.Equal(t, int32(0), pieces.BeginStart90k)
	require.Equal(t, int32(frames*duration90k), pieces.ActualEnd90k)
	require.Equal(t, int64(0), pieces.SamplePos.Begin)
	require.Equal(t, rec.SampleFileBytes, pieces.SamplePos.End)

	require.Equal(t, int64(8*frames), pieces.SttsFiller.Size())
	require.Equal(t, int64(4*frames/keyInterval), pieces.StssFiller.Size())
	require.Equal(t, int64(4*frames), pieces.StszFiller.Size())
}

// TestSubWindowAlignmentUsesLatestKeyAtOrBeforeStart exercises
// concrete scenario 2: a request window not aligned to a GOP boundary
// resolves begin to the latest key frame at or before start_90k, and
// the scan stops at the first frame whose start is >= end_90k.
func TestSubWindowAlignmentUsesLatestKeyAtOrBeforeStart(t *testing.T) {
	const duration90k = 3000
	const size = 1000
	rec := &Recording{
		StartTime90k:     0,
		EndTime90k:       15 * duration90k,
		VideoSamples:     15,
		VideoSyncSamples: 2,
		VideoIndex:       buildUniformIndex(15, duration90k, size, 10), // keys at frame 0, 10
	}
	rec.SampleFileBytes = 15 * size

	// start_90k=150 falls strictly between frame 0 (start 0) and frame
	// 1 (start 3000); frame 0 is the only key at or before it.
	// end_90k=12000 is exactly frame 4's start, so frame 4 is excluded.
	pieces, err := NewSampleTablePieces(rec, 1, 1, 150, 12000)
	require.NoError(t, err)

	require.Equal(t, int32(0), pieces.BeginStart90k)
	require.Equal(t, int32(4), pieces.Frames)
	require.Equal(t, int32(1), pieces.KeyFrames) // only frame 0
	require.Equal(t, int32(12000), pieces.ActualEnd90k)
	require.Equal(t, int64(0), pieces.SamplePos.Begin)
	require.Equal(t, int64(4*size), pieces.SamplePos.End)
}

func TestNotKeyFramedWhenFirstFrameIsNotKey(t *testing.T) {
	var b videoindex.Builder
	b.AddSample(3000, 1000, false)
	b.AddSample(3000, 1000, true)
	rec := &Recording{
		StartTime90k: 0,
		EndTime90k:   6000,
		VideoIndex:   b.Bytes(),
	}
	_, err := NewSampleTablePieces(rec, 1, 1, 3000, 6000)
	require.ErrorIs(t, err, ErrNotKeyFramed)
}

func TestFillersProduceDeclaredContent(t *testing.T) {
	rec := &Recording{
		StartTime90k:     0,
		EndTime90k:       4 * 3000,
		VideoSamples:     4,
		VideoSyncSamples: 1,
		VideoIndex:       buildUniformIndex(4, 3000, 2000, 4),
	}
	rec.SampleFileBytes = 4 * 2000

	pieces, err := NewSampleTablePieces(rec, 1, 5, 0, 4*3000)
	require.NoError(t, err)

	stts, err := pieces.generateStts()
	require.NoError(t, err)
	require.Len(t, stts, int(pieces.SttsFiller.Size()))

	stsz, err := pieces.generateStsz()
	require.NoError(t, err)
	require.Len(t, stsz, int(pieces.StszFiller.Size()))

	stss, err := pieces.generateStss()
	require.NoError(t, err)
	require.Len(t, stss, int(pieces.StssFiller.Size()))
	// sample_offset=5, only frame 0 is key => global sample number 5.
	require.Equal(t, []byte{0, 0, 0, 5}, stss)
}
