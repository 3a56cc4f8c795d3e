package tosc_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulschiretz/pgl-tosc/pkg/tosc"
)

func writeTestFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestIsContainerHeader(t *testing.T) {
	testCases := []struct {
		name     string
		header   []byte
		expected bool
	}{
		{"Nil", nil, false},
		{"Empty", []byte{}, false},
		{"OneByte", []byte{0x78}, false},
		{"Fastest", []byte{0x78, 0x01}, true},
		{"Fast", []byte{0x78, 0x5e}, true},
		{"Default", []byte{0x78, 0x9c}, true},
		{"Best", []byte{0x78, 0xda}, true},
		{"LongerPrefix", []byte{0x78, 0x9c, 0x00, 0xff}, true},
		{"WrongFirstByte", []byte{0x79, 0x9c}, false},
		{"XMLDeclaration", []byte("<?xml"), false},
		{"PresetDictionary", []byte{0x78, 0xbb}, false},
		{"WrongSecondByte", []byte{0x78, 0x00}, false},
		{"GzipMagic", []byte{0x1f, 0x8b}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tosc.IsContainerHeader(tc.header); got != tc.expected {
				t.Errorf("IsContainerHeader(% x) = %v, want %v", tc.header, got, tc.expected)
			}
		})
	}
}

func TestIsContainer(t *testing.T) {
	t.Run("Files", func(t *testing.T) {
		testCases := []struct {
			name     string
			content  []byte
			expected bool
		}{
			{"EmptyFile", []byte{}, false},
			{"OneByteFile", []byte{0x78}, false},
			{"PlainXML", []byte(`<?xml version="1.0"?><lexml/>`), false},
			{"FirstByteMismatch", []byte{0x77, 0x9c, 0x00}, false},
			{"SecondByteMismatch", []byte{0x78, 0x9d, 0x00}, false},
			{"HeaderOnly", []byte{0x78, 0xda}, true},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				path := writeTestFile(t, "input", tc.content)
				got, err := tosc.IsContainer(path)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tc.expected {
					t.Errorf("IsContainer() = %v, want %v", got, tc.expected)
				}
			})
		}
	})

	t.Run("RealStreams", func(t *testing.T) {
		payloads := [][]byte{nil, []byte("x"), []byte("<lexml version=\"3\"><node/></lexml>")}
		levels := []tosc.Level{tosc.Default, tosc.Fastest, tosc.Better, tosc.Best}
		for _, level := range levels {
			for _, payload := range payloads {
				container, err := tosc.Compress(payload, level)
				if err != nil {
					t.Fatalf("Compress failed: %v", err)
				}
				path := writeTestFile(t, "layout.tosc", container)
				got, err := tosc.IsContainer(path)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !got {
					t.Errorf("expected zlib stream (level %s, header % x) to be detected as container", level, container[:2])
				}
			}
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := tosc.IsContainer(filepath.Join(t.TempDir(), "does-not-exist.tosc"))
		if !os.IsNotExist(err) {
			t.Errorf("expected a not-exist error, got %v", err)
		}
	})
}
