package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// atomicWriteFile writes data to a randomly-named temp file in the
// same directory as path, then renames it into place. Writing to a
// temp file first and renaming over the destination means a reader
// never observes a partially-written output file, and a crash mid-write
// leaves the original (or nothing) rather than a truncated file.
//
// os.CreateTemp picks the random suffix, so concurrent writers to
// different outputs never collide on a temp name.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("atomicwrite: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("atomicwrite: write temp file: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("atomicwrite: close temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("atomicwrite: set permissions: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("atomicwrite: rename into place: %w", err)
	}
	return nil
}
