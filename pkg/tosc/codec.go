package tosc

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/paulschiretz/pgl-tosc/pkg/usererr"
)

// Compress wraps payload into a zlib stream using the given level.
// The payload is not inspected; any byte sequence can be compressed.
func Compress(payload []byte, level Level) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, level.zlibLevel())
	if err != nil {
		return nil, fmt.Errorf("failed to create zlib writer: %w", err)
	}
	if _, err := zw.Write(payload); err != nil {
		zw.Close()
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish zlib stream: %w", err)
	}
	return buf.Bytes(), nil
}

// Decompress returns the payload of a zlib stream. A corrupt or truncated
// stream yields a CorruptContainer user error wrapping the library error.
func Decompress(container []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(container))
	if err != nil {
		return nil, usererr.Wrap(usererr.CorruptContainer, fmt.Errorf("invalid zlib header: %w", err))
	}
	defer zr.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, zr); err != nil {
		return nil, usererr.Wrap(usererr.CorruptContainer, fmt.Errorf("failed to decompress container: %w", err))
	}
	return buf.Bytes(), nil
}
