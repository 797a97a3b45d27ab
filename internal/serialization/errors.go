package serialization

import "errors"

// Common errors.
var (
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrPayloadTooLarge    = errors.New("payload exceeds maximum size")
	ErrMalformedEntry     = errors.New("malformed state dict entry")
	ErrDuplicateEntry     = errors.New("duplicate state dict entry")
)
