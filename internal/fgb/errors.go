package fgb

import "errors"

// Format errors are fatal: a header that fails to decode never reaches
// the interactive UI. Wrap sites add context with fmt.Errorf and %w so
// callers can classify with errors.Is.
var (
	ErrBadMagic          = errors.New("fgb: not a FlatGeobuf file (bad magic)")
	ErrTruncatedHeader   = errors.New("fgb: truncated header")
	ErrUnknownColumnType = errors.New("fgb: unknown column type")
	ErrMalformedEnvelope = errors.New("fgb: malformed envelope")
)
