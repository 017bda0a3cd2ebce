package fgb

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// remotePrefixLen is the initial range fetched from a remote object.
// Almost every real-world header fits in it, so the common case is one
// HEAD and one GET.
const remotePrefixLen = 64 << 10

// Source is a byte source positioned at offset 0 of a FlatGeobuf file,
// plus what is known about where it came from. The reader covers at
// least the full header; for remote objects nothing past the fetched
// prefix exists locally.
type Source struct {
	Name  string // display name: base name of the path, or the URL
	Path  string // the argument as given
	Local bool
	Size  int64 // total byte size, 0 when unknown

	r io.ReadCloser
}

func (s *Source) Read(p []byte) (int, error) { return s.r.Read(p) }
func (s *Source) Close() error               { return s.r.Close() }

// OpenOptions configures source acquisition.
type OpenOptions struct {
	Timeout   time.Duration
	UserAgent string
	Logger    *slog.Logger
}

// IsRemote reports whether the argument names a remote object rather
// than a local file.
func IsRemote(arg string) bool {
	return strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://")
}

// Open acquires a byte source for a local path or an http(s) URL. The
// remote path fetches only a bounded header prefix, never the feature
// payload. Acquisition is a one-shot synchronous step; the caller owns
// the returned source and must close it.
func Open(ctx context.Context, arg string, opts OpenOptions) (*Source, error) {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if IsRemote(arg) {
		return openRemote(ctx, arg, opts)
	}
	return openLocal(arg)
}

func openLocal(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	var size int64
	if fi, err := f.Stat(); err == nil {
		size = fi.Size()
	}
	return &Source{
		Name:  filepath.Base(path),
		Path:  path,
		Local: true,
		Size:  size,
		r:     f,
	}, nil
}

// openRemote learns the object size and fetches the header prefix in
// parallel, then extends the prefix with a second ranged GET in the
// rare case the header outgrows the initial fetch.
func openRemote(ctx context.Context, url string, opts OpenOptions) (*Source, error) {
	client := &http.Client{Timeout: opts.Timeout}

	var (
		size   int64
		prefix []byte
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		req, err := http.NewRequestWithContext(gctx, http.MethodHead, url, nil)
		if err != nil {
			return err
		}
		setAgent(req, opts)
		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("head %s: %w", url, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 400 {
			return fmt.Errorf("head %s: HTTP %d", url, resp.StatusCode)
		}
		if resp.ContentLength > 0 {
			size = resp.ContentLength
		}
		return nil
	})
	g.Go(func() error {
		var err error
		prefix, err = fetchRange(gctx, client, url, remotePrefixLen, opts)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// A ranged fetch of a too-small object is fine, DecodeHeader will
	// report the truncation. Only extend when the prefix provably ends
	// inside the header table.
	if len(prefix) >= MagicLen+HeaderLenPrefix {
		need := MagicLen + HeaderLenPrefix + int(binary.LittleEndian.Uint32(prefix[MagicLen:]))
		if need > len(prefix) && need <= MagicLen+HeaderLenPrefix+MaxHeaderLen {
			opts.Logger.Debug("header exceeds initial prefix, refetching", "need", need, "have", len(prefix))
			full, err := fetchRange(ctx, client, url, need, opts)
			if err != nil {
				return nil, err
			}
			prefix = full
		}
	}

	return &Source{
		Name: url,
		Path: url,
		Size: size,
		r:    io.NopCloser(bytes.NewReader(prefix)),
	}, nil
}

// fetchRange requests the first n bytes of url. Servers that ignore
// the Range header answer 200 with the whole object; reading is capped
// at n either way.
func fetchRange(ctx context.Context, client *http.Client, url string, n int, opts OpenOptions) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	setAgent(req, opts)
	req.Header.Set("Range", fmt.Sprintf("bytes=0-%d", n-1))
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch %s: HTTP %d", url, resp.StatusCode)
	}
	buf, err := io.ReadAll(io.LimitReader(resp.Body, int64(n)))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	return buf, nil
}

func setAgent(req *http.Request, opts OpenOptions) {
	if opts.UserAgent != "" {
		req.Header.Set("User-Agent", opts.UserAgent)
	}
}
