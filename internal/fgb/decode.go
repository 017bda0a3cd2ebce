package fgb

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// MagicLen is the size of the fixed file prologue: "fgb", the spec
// major version, "fgb" again, and the patch version.
const MagicLen = 8

// specMajorVersion is the only header layout this decoder understands.
const specMajorVersion = 3

// HeaderLenPrefix is the size of the little-endian length prefix that
// follows the magic and bounds the header table.
const HeaderLenPrefix = 4

// MaxHeaderLen caps the header length prefix. Real headers are a few
// kilobytes; anything larger is treated as corruption rather than
// buffered.
const MaxHeaderLen = 10 << 20

// DecodeHeader reads the magic prologue, the header length prefix, and
// the header table from r, which must be positioned at offset 0. It
// consumes exactly MagicLen + HeaderLenPrefix + header-length bytes and
// never reads into the feature payload.
func DecodeHeader(r io.Reader) (*Header, error) {
	var pre [MagicLen + HeaderLenPrefix]byte
	if _, err := io.ReadFull(r, pre[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: file shorter than the magic prologue", ErrTruncatedHeader)
		}
		return nil, fmt.Errorf("read magic: %w", err)
	}

	if pre[0] != 'f' || pre[1] != 'g' || pre[2] != 'b' ||
		pre[4] != 'f' || pre[5] != 'g' || pre[6] != 'b' {
		return nil, ErrBadMagic
	}
	version := pre[3]
	if version != specMajorVersion {
		return nil, fmt.Errorf("%w: unsupported spec version %d", ErrBadMagic, version)
	}

	hlen := binary.LittleEndian.Uint32(pre[MagicLen:])
	if hlen == 0 || hlen > MaxHeaderLen {
		return nil, fmt.Errorf("%w: implausible header length %d", ErrTruncatedHeader, hlen)
	}

	buf := make([]byte, hlen)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %d bytes promised, fewer available", ErrTruncatedHeader, hlen)
		}
		return nil, fmt.Errorf("read header table: %w", err)
	}

	hdr, err := decodeTable(buf)
	if err != nil {
		return nil, err
	}
	hdr.Version = version
	return hdr, nil
}

// decodeTable decodes the header FlatBuffers table. The flatbuffers
// runtime does no verification and panics on out-of-bounds access in a
// corrupt buffer, so panics are converted to ErrTruncatedHeader here.
func decodeTable(buf []byte) (hdr *Header, err error) {
	defer func() {
		if recover() != nil {
			hdr = nil
			err = fmt.Errorf("%w: header table overruns its buffer", ErrTruncatedHeader)
		}
	}()

	if len(buf) < 8 {
		return nil, fmt.Errorf("%w: header table too small", ErrTruncatedHeader)
	}

	fh := rootHeader(buf)

	hdr = &Header{
		Name:          fh.Name(),
		Title:         fh.Title(),
		Description:   fh.Description(),
		Metadata:      fh.Metadata(),
		GeometryType:  GeometryType(fh.GeometryType()),
		HasZ:          fh.HasZ(),
		HasM:          fh.HasM(),
		HasT:          fh.HasT(),
		HasTM:         fh.HasTM(),
		FeaturesCount: fh.FeaturesCount(),
		IndexNodeSize: fh.IndexNodeSize(),
	}

	switch n := fh.EnvelopeLength(); n {
	case 0:
		// No extent recorded; the map preview degrades to a plain basemap.
	case 4:
		hdr.Envelope = make([]float64, 4)
		for i := range hdr.Envelope {
			hdr.Envelope[i] = fh.Envelope(i)
		}
	default:
		return nil, fmt.Errorf("%w: envelope has %d values, want 4", ErrMalformedEnvelope, n)
	}

	if n := fh.ColumnsLength(); n > 0 {
		hdr.Columns = make([]Column, 0, n)
		var fc flatColumn
		for i := 0; i < n; i++ {
			if !fh.Columns(&fc, i) {
				return nil, fmt.Errorf("%w: column %d unreadable", ErrTruncatedHeader, i)
			}
			raw := fc.Type()
			if raw > uint8(ColumnBinary) {
				return nil, fmt.Errorf("%w: column %q has type tag %d", ErrUnknownColumnType, fc.Name(), raw)
			}
			hdr.Columns = append(hdr.Columns, Column{
				Name:        fc.Name(),
				Type:        ColumnType(raw),
				Title:       fc.Title(),
				Description: fc.Description(),
				Width:       fc.Width(),
				Precision:   fc.Precision(),
				Scale:       fc.Scale(),
				Nullable:    fc.Nullable(),
				Unique:      fc.Unique(),
				PrimaryKey:  fc.PrimaryKey(),
			})
		}
	}

	if fc := fh.Crs(nil); fc != nil {
		hdr.Crs = &Crs{
			Org:         fc.Org(),
			Code:        fc.Code(),
			Name:        fc.Name(),
			Description: fc.Description(),
			WKT:         fc.Wkt(),
			CodeString:  fc.CodeString(),
		}
	}

	return hdr, nil
}
