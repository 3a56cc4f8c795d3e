package transcode

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/paulschiretz/pgl-tosc/pkg/util"
)

// commit writes data to path through a temp file in the same directory that
// is renamed into place, so the destination is either absent, untouched or
// complete.
func commit(ctx context.Context, path string, data []byte) (retErr error) {
	// Last chance to abort: nothing has been written yet.
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(path), ".pgl-tosc-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp output file: %w", err)
	}
	tempPath := f.Name()

	// Ensure cleanup on error
	defer func() {
		if retErr != nil {
			f.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync output file: %w", err)
	}
	if err := f.Chmod(util.UserWritableFilePerms); err != nil {
		return fmt.Errorf("failed to set output file permissions: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to move output file into place: %w", err)
	}
	return nil
}
