package serialization

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"google.golang.org/protobuf/encoding/protowire"
)

// Decode reads a checkpoint from r and returns its state dict.
//
// The payload checksum is verified before any entry is parsed.
func Decode(r io.Reader) (map[string]float64, error) {
	header := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header[:4]) != MagicBytes {
		return nil, ErrInvalidMagic
	}
	if version := binary.LittleEndian.Uint32(header[4:8]); version != FormatVersion {
		return nil, fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}

	var stored [ChecksumSize]byte
	copy(stored[:], header[8:8+ChecksumSize])

	size := binary.LittleEndian.Uint64(header[8+ChecksumSize:])
	if size > MaxPayloadSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, size)
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}

	if err := ValidateChecksum(ComputeChecksum(payload), stored); err != nil {
		return nil, err
	}

	return decodePayload(payload)
}

// ReadFile decodes the checkpoint stored at path.
func ReadFile(path string) (map[string]float64, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(bufio.NewReader(file))
}

// decodePayload parses the entries of a verified payload.
func decodePayload(payload []byte) (map[string]float64, error) {
	sd := make(map[string]float64)

	for len(payload) > 0 {
		num, typ, n := protowire.ConsumeTag(payload)
		if n < 0 {
			return nil, fmt.Errorf("%w: %w", ErrMalformedEntry, protowire.ParseError(n))
		}
		payload = payload[n:]

		if num != fieldEntry || typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, payload)
			if n < 0 {
				return nil, fmt.Errorf("%w: %w", ErrMalformedEntry, protowire.ParseError(n))
			}
			payload = payload[n:]
			continue
		}

		raw, n := protowire.ConsumeBytes(payload)
		if n < 0 {
			return nil, fmt.Errorf("%w: %w", ErrMalformedEntry, protowire.ParseError(n))
		}
		payload = payload[n:]

		name, value, err := decodeEntry(raw)
		if err != nil {
			return nil, err
		}
		if _, dup := sd[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateEntry, name)
		}
		sd[name] = value
	}

	return sd, nil
}

// decodeEntry parses one (name, value) entry. Both fields are required.
func decodeEntry(raw []byte) (string, float64, error) {
	var (
		name              string
		value             float64
		hasName, hasValue bool
	)

	for len(raw) > 0 {
		num, typ, n := protowire.ConsumeTag(raw)
		if n < 0 {
			return "", 0, fmt.Errorf("%w: %w", ErrMalformedEntry, protowire.ParseError(n))
		}
		raw = raw[n:]

		switch {
		case num == fieldName && typ == protowire.BytesType:
			s, m := protowire.ConsumeString(raw)
			if m < 0 {
				return "", 0, fmt.Errorf("%w: %w", ErrMalformedEntry, protowire.ParseError(m))
			}
			name, hasName = s, true
			n = m
		case num == fieldValue && typ == protowire.Fixed64Type:
			bits, m := protowire.ConsumeFixed64(raw)
			if m < 0 {
				return "", 0, fmt.Errorf("%w: %w", ErrMalformedEntry, protowire.ParseError(m))
			}
			value, hasValue = math.Float64frombits(bits), true
			n = m
		default:
			n = protowire.ConsumeFieldValue(num, typ, raw)
			if n < 0 {
				return "", 0, fmt.Errorf("%w: %w", ErrMalformedEntry, protowire.ParseError(n))
			}
		}
		raw = raw[n:]
	}

	if !hasName || !hasValue {
		return "", 0, fmt.Errorf("%w: entry needs both name and value", ErrMalformedEntry)
	}
	return name, value, nil
}
