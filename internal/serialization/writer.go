package serialization

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"slices"

	"github.com/samber/lo"
	"google.golang.org/protobuf/encoding/protowire"
)

// Encode writes sd to w in checkpoint format.
//
// Entries are sorted by name, so equal state dicts always encode to the same
// bytes.
func Encode(w io.Writer, sd map[string]float64) error {
	payload := encodePayload(sd)
	if len(payload) > MaxPayloadSize {
		return fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(payload))
	}

	header := make([]byte, 0, HeaderSize)
	header = append(header, MagicBytes...)
	header = binary.LittleEndian.AppendUint32(header, FormatVersion)
	checksum := ComputeChecksum(payload)
	header = append(header, checksum[:]...)
	header = binary.LittleEndian.AppendUint64(header, uint64(len(payload)))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}
	return nil
}

// WriteFile encodes sd into the file at path, replacing any existing file.
func WriteFile(path string, sd map[string]float64) error {
	//nolint:gosec // G304: File path comes from user input, which is expected for model saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	bw := bufio.NewWriter(file)
	if err := Encode(bw, sd); err != nil {
		_ = file.Close() // Best effort close on error
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to flush file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}

// encodePayload serializes the entries of sd in name order.
func encodePayload(sd map[string]float64) []byte {
	names := lo.Keys(sd)
	slices.Sort(names)

	var payload, entry []byte
	for _, name := range names {
		entry = entry[:0]
		entry = protowire.AppendTag(entry, fieldName, protowire.BytesType)
		entry = protowire.AppendString(entry, name)
		entry = protowire.AppendTag(entry, fieldValue, protowire.Fixed64Type)
		entry = protowire.AppendFixed64(entry, math.Float64bits(sd[name]))

		payload = protowire.AppendTag(payload, fieldEntry, protowire.BytesType)
		payload = protowire.AppendBytes(payload, entry)
	}
	return payload
}
