package replay

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testFrame struct {
	Tick uint64  `json:"tick"`
	X    float64 `json:"x"`
}

func TestRecorderRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewRecorder(dir, "ABCD")
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		require.NoError(t, rec.Record(testFrame{Tick: uint64(i), X: float64(i) * 1.5}))
	}
	require.NoError(t, rec.Close())

	frames, err := ReadFrames(rec.Path())
	require.NoError(t, err)
	require.Len(t, frames, 100)

	var first, last testFrame
	require.NoError(t, json.Unmarshal(frames[0], &first))
	require.NoError(t, json.Unmarshal(frames[99], &last))
	assert.Equal(t, uint64(0), first.Tick)
	assert.Equal(t, uint64(99), last.Tick)
	assert.InDelta(t, 148.5, last.X, 1e-9)
}

func TestRecorderClosedRejectsWrites(t *testing.T) {
	rec, err := NewRecorder(t.TempDir(), "WXYZ")
	require.NoError(t, err)
	require.NoError(t, rec.Close())

	assert.Error(t, rec.Record(testFrame{}))
	// Closing twice is fine.
	assert.NoError(t, rec.Close())
}

func TestReadFramesMissingFile(t *testing.T) {
	_, err := ReadFrames(filepath.Join(t.TempDir(), "nope.jsonl.zst"))
	assert.Error(t, err)
}
