//go:build !windows

package preflight_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulschiretz/pgl-tosc/pkg/preflight"
)

func TestCheckOutputDirWritable_ReadOnly(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("Skipping test: root bypasses directory permissions.")
	}

	dir := t.TempDir()
	readOnly := filepath.Join(dir, "ro")
	if err := os.Mkdir(readOnly, 0555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(readOnly, 0755) })

	if err := preflight.CheckOutputDirWritable(filepath.Join(readOnly, "out.tosc")); err == nil {
		t.Error("expected an error for a read-only output directory")
	}
}
