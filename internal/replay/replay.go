// Package replay persists per-tick world snapshots as zstd-compressed
// JSONL, one file per session, so a finished drive can be replayed or
// inspected offline.
package replay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Recorder appends JSON frames to a session replay file.
type Recorder struct {
	path string

	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

// NewRecorder opens <dir>/<name>.jsonl.zst for writing, creating dir as
// needed.
func NewRecorder(dir, name string) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	path := filepath.Join(dir, name+".jsonl.zst")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &Recorder{
		path: path,
		f:    f,
		enc:  enc,
		w:    bufio.NewWriterSize(enc, 128*1024),
	}, nil
}

// Path returns the replay file location.
func (r *Recorder) Path() string {
	return r.path
}

// Record appends one frame.
func (r *Recorder) Record(v any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.f == nil {
		return fmt.Errorf("replay %s: recorder is closed", r.path)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := r.w.Write(b); err != nil {
		return err
	}
	return r.w.WriteByte('\n')
}

// Close flushes and closes the replay file.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.f == nil {
		return nil
	}
	var firstErr error
	if err := r.w.Flush(); err != nil {
		firstErr = err
	}
	if err := r.enc.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := r.f.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	r.f = nil
	return firstErr
}

// ReadFrames decodes every frame of a replay file in recorded order.
func ReadFrames(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var frames []json.RawMessage
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	for sc.Scan() {
		line := make([]byte, len(sc.Bytes()))
		copy(line, sc.Bytes())
		frames = append(frames, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("replay %s: %w", path, err)
	}
	return frames, nil
}
