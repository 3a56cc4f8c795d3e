package tosc

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// HeaderSize is the number of leading bytes inspected to classify a file.
const HeaderSize = 2

// zlibCMF is the compression method/info byte: deflate with a 32K window.
const zlibCMF = 0x78

// zlibFLG lists the flag bytes that form a valid header with zlibCMF and no
// preset dictionary, one per compression-level family (fastest, fast,
// default, best).
var zlibFLG = [...]byte{0x01, 0x5e, 0x9c, 0xda}

// IsContainerHeader reports whether b starts with a container header.
// Slices shorter than HeaderSize are never a container.
func IsContainerHeader(b []byte) bool {
	if len(b) < HeaderSize {
		return false
	}
	if b[0] != zlibCMF {
		return false
	}
	for _, flg := range zlibFLG {
		if b[1] == flg {
			return true
		}
	}
	return false
}

// IsContainer reports whether the file at path is a compressed container.
// At most HeaderSize bytes are read. A file shorter than that is not a
// container; failing to open or read the file is returned as an error.
func IsContainer(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	var header [HeaderSize]byte
	n, err := io.ReadFull(f, header[:])
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	return IsContainerHeader(header[:n]), nil
}
