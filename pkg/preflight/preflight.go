// Package preflight provides the validation that runs before a transcoding
// command does any real work. The checks never modify the file system, except
// for the write probe on Windows, which removes its probe file again.
package preflight

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/paulschiretz/pgl-tosc/pkg/plog"
	"github.com/paulschiretz/pgl-tosc/pkg/tosc"
	"github.com/paulschiretz/pgl-tosc/pkg/usererr"
)

// Validator runs the checks of a Plan in a fixed order.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Run executes the plan. The overwrite guard always runs first, so a run that
// cannot write its output never touches the input beyond its path.
func (v *Validator) Run(ctx context.Context, p *Plan) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// --- 1. Overwrite guard ---
	if err := CheckOutput(p.OutputPath, p.Force); err != nil {
		return err
	}

	// --- 2. Input is a readable file ---
	if err := CheckInputFile(p.InputPath); err != nil {
		return err
	}

	// --- 3. Input format ---
	if err := checkInputKind(p.InputPath, p.Input); err != nil {
		return err
	}

	// --- 4. Output directory ---
	if p.OutputWritable {
		if err := CheckOutputDirWritable(p.OutputPath); err != nil {
			return err
		}
	}

	plog.Debug("Preflight checks passed", "input", p.InputPath, "output", p.OutputPath)
	return nil
}

func checkInputKind(path string, kind InputKind) error {
	if kind == AnyInput {
		return nil
	}

	isContainer, err := tosc.IsContainer(path)
	if err != nil {
		return fmt.Errorf("failed to inspect input file: %w", err)
	}

	switch {
	case kind == ContainerInput && !isContainer:
		return usererr.New(usererr.NotContainer, "input %s is not a compressed container", path)
	case kind == PlainInput && isContainer:
		return usererr.New(usererr.AlreadyContainer, "input %s is already a compressed container", path)
	}
	return nil
}

// CheckOutput is the overwrite guard. Without force, any file-system entry at
// path (including a dangling symlink) is an error. A directory is refused even
// with force, since it cannot be replaced by a file.
func CheckOutput(path string, force bool) error {
	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return nil // Path is clear.
	}
	if err != nil {
		return fmt.Errorf("cannot stat output path %s: %w", path, err)
	}
	if !force {
		return usererr.New(usererr.DestinationExists, "output file %s already exists (use --force or -f to overwrite)", path)
	}
	if info.IsDir() {
		return usererr.New(usererr.DestinationExists, "output path %s is a directory", path)
	}
	return nil
}

// CheckInputFile validates that path exists and is a regular file.
func CheckInputFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("input file %s does not exist: %w", path, err)
		}
		return fmt.Errorf("cannot stat input file %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return usererr.New(usererr.InvalidArgument, "input path %s is not a regular file", path)
	}
	return nil
}

// CheckOutputDirWritable ensures the directory that will hold outputPath
// exists, is a directory and accepts new files.
func CheckOutputDirWritable(outputPath string) error {
	dir := filepath.Dir(outputPath)
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("output directory %s does not exist: %w", dir, err)
		}
		return fmt.Errorf("cannot stat output directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output directory %s is not a directory", dir)
	}
	if err := platformCheckWritable(dir); err != nil {
		return fmt.Errorf("output directory %s is not writable: %w", dir, err)
	}
	return nil
}
