//go:build windows

package preflight

import "os"

// platformCheckWritable performs a write check by creating and deleting a
// temporary file, since directory ACLs are not reflected in the mode bits.
func platformCheckWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".pgl-tosc-writetest-*.tmp")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	_ = os.Remove(name)
	return nil
}
