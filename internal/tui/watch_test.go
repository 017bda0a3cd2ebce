package tui

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/require"

	"github.com/geostack-labs/fgbscope/internal/testutil"
)

// headerFileBytes builds a minimal valid FlatGeobuf file whose header
// carries only a name, so reloads are distinguishable.
func headerFileBytes(name string) []byte {
	b := flatbuffers.NewBuilder(128)
	nameOff := b.CreateString(name)
	b.StartObject(14)
	b.PrependUOffsetTSlot(0, nameOff, 0)
	b.Finish(b.EndObject())
	body := b.FinishedBytes()

	out := []byte{'f', 'g', 'b', 3, 'f', 'g', 'b', 0}
	out = binary.LittleEndian.AppendUint32(out, uint32(len(body)))
	return append(out, body...)
}

// waitForReload drains msgs until a successful reload carrying wantName
// arrives. Writes and renames can fire more than one event, so earlier
// messages are skipped, not failed on.
func waitForReload(t *testing.T, msgs <-chan any, wantName string) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case m := <-msgs:
			r, ok := m.(reloadMsg)
			if !ok {
				continue
			}
			if r.err == nil && r.hdr.Name == wantName {
				return
			}
		case <-deadline:
			t.Fatalf("no reload carrying header name %q", wantName)
		}
	}
}

func TestWatchFileReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.fgb")
	require.NoError(t, os.WriteFile(path, headerFileBytes("v1"), 0o644))

	msgs := make(chan any, 16)
	w, err := WatchFile(path, func(msg any) { msgs <- msg }, testutil.NewTestLogger(t))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, headerFileBytes("v2"), 0o644))
	waitForReload(t, msgs, "v2")
}

func TestWatchFileSurvivesAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.fgb")
	require.NoError(t, os.WriteFile(path, headerFileBytes("v1"), 0o644))

	msgs := make(chan any, 16)
	w, err := WatchFile(path, func(msg any) { msgs <- msg }, testutil.NewTestLogger(t))
	require.NoError(t, err)
	defer w.Close()

	// Save the way editors and GDAL-style writers do: temp file in the
	// same directory, renamed over the target.
	tmp := filepath.Join(dir, "data.fgb.tmp")
	require.NoError(t, os.WriteFile(tmp, headerFileBytes("v2"), 0o644))
	require.NoError(t, os.Rename(tmp, path))
	waitForReload(t, msgs, "v2")

	// The watch must still be alive for a plain write afterwards.
	require.NoError(t, os.WriteFile(path, headerFileBytes("v3"), 0o644))
	waitForReload(t, msgs, "v3")
}

func TestWatchFileIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.fgb")
	require.NoError(t, os.WriteFile(path, headerFileBytes("v1"), 0o644))

	msgs := make(chan any, 16)
	w, err := WatchFile(path, func(msg any) { msgs <- msg }, testutil.NewTestLogger(t))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.fgb"), headerFileBytes("other"), 0o644))

	select {
	case m := <-msgs:
		t.Fatalf("sibling file change must not trigger a reload, got %#v", m)
	case <-time.After(300 * time.Millisecond):
	}
}
