package serialization

import (
	"crypto/sha256"
)

// Format constants.
const (
	MagicBytes     = "SGRD"
	FormatVersion  = 1
	ChecksumSize   = sha256.Size
	HeaderSize     = 4 + 4 + ChecksumSize + 8 // magic + version + checksum + payload size
	MaxPayloadSize = 100 * 1024 * 1024
)

// Protobuf field numbers of the payload.
const (
	fieldEntry = 1 // payload: repeated entry

	fieldName  = 1 // entry: parameter name
	fieldValue = 2 // entry: parameter value
)

// ComputeChecksum computes the SHA-256 checksum of a payload.
func ComputeChecksum(payload []byte) [ChecksumSize]byte {
	return sha256.Sum256(payload)
}

// ValidateChecksum compares computed checksum against stored checksum.
// Returns ErrChecksumMismatch if they don't match.
func ValidateChecksum(computed, stored [ChecksumSize]byte) error {
	if computed != stored {
		return ErrChecksumMismatch
	}
	return nil
}
