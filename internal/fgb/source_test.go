package fgb

import (
	"bytes"
	"context"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geostack-labs/fgbscope/internal/testutil"
)

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("https://example.com/data.fgb"))
	assert.True(t, IsRemote("http://example.com/data.fgb"))
	assert.False(t, IsRemote("data.fgb"))
	assert.False(t, IsRemote("/var/data/data.fgb"))
	assert.False(t, IsRemote("ftp://example.com/data.fgb"))
}

func TestOpenLocal(t *testing.T) {
	data := buildFile(headerSpec{name: "local", envelope: []float64{0, 0, 1, 1}})
	path := filepath.Join(t.TempDir(), "local.fgb")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	src, err := Open(context.Background(), path, OpenOptions{Logger: testutil.NewTestLogger(t)})
	require.NoError(t, err)
	defer src.Close()

	assert.True(t, src.Local)
	assert.Equal(t, "local.fgb", src.Name)
	assert.Equal(t, int64(len(data)), src.Size)

	hdr, err := DecodeHeader(src)
	require.NoError(t, err)
	assert.Equal(t, "local", hdr.Name)
}

func TestOpenLocalNotFound(t *testing.T) {
	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "missing.fgb"), OpenOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOpenRemote(t *testing.T) {
	data := buildFile(headerSpec{name: "remote", featuresCount: 42})
	// Pad with fake feature data so the object is larger than the header.
	data = append(data, bytes.Repeat([]byte{0xCD}, 1<<20)...)

	var sawRange bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Range") != "" {
			sawRange = true
		}
		http.ServeContent(w, r, "remote.fgb", time.Now(), bytes.NewReader(data))
	}))
	defer srv.Close()

	src, err := Open(context.Background(), srv.URL+"/remote.fgb", OpenOptions{
		Timeout: 5 * time.Second,
		Logger:  testutil.NewTestLogger(t),
	})
	require.NoError(t, err)
	defer src.Close()

	assert.False(t, src.Local)
	assert.Equal(t, int64(len(data)), src.Size)
	assert.True(t, sawRange, "remote source must range-fetch, not download the object")

	hdr, err := DecodeHeader(src)
	require.NoError(t, err)
	assert.Equal(t, "remote", hdr.Name)
	assert.Equal(t, uint64(42), hdr.FeaturesCount)
}

func TestOpenRemoteHeaderLargerThanPrefix(t *testing.T) {
	// Metadata bigger than the initial range fetch forces the second,
	// exact-size fetch.
	data := buildFile(headerSpec{
		name:     "wide",
		metadata: strings.Repeat("x", remotePrefixLen+1024),
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeContent(w, r, "wide.fgb", time.Now(), bytes.NewReader(data))
	}))
	defer srv.Close()

	src, err := Open(context.Background(), srv.URL+"/wide.fgb", OpenOptions{
		Timeout: 5 * time.Second,
		Logger:  testutil.NewTestLogger(t),
	})
	require.NoError(t, err)
	defer src.Close()

	hdr, err := DecodeHeader(src)
	require.NoError(t, err)
	assert.Equal(t, "wide", hdr.Name)
	assert.Len(t, hdr.Metadata, remotePrefixLen+1024)
}

func TestOpenRemoteHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := Open(context.Background(), srv.URL+"/missing.fgb", OpenOptions{Timeout: 5 * time.Second})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestOpenRemoteServerIgnoresRange(t *testing.T) {
	data := buildFile(headerSpec{name: "norange"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// Plain 200 with the whole object, Range ignored.
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	src, err := Open(context.Background(), srv.URL+"/norange.fgb", OpenOptions{Timeout: 5 * time.Second})
	require.NoError(t, err)
	defer src.Close()

	hdr, err := DecodeHeader(src)
	require.NoError(t, err)
	assert.Equal(t, "norange", hdr.Name)
}
