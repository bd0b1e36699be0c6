package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAtomicWriteFileReplacesContentAndNoTempLeftBehind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")

	if err := atomicWriteFile(path, []byte("first"), 0o600); err != nil {
		t.Fatalf("atomicWriteFile: %v", err)
	}
	if err := atomicWriteFile(path, []byte("second"), 0o600); err != nil {
		t.Fatalf("atomicWriteFile: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "second" {
		t.Fatalf("content = %q, want %q", got, "second")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("directory has %d entries, want 1 (no leftover temp files)", len(entries))
	}
}

func TestAtomicWriteFileSetsPermissions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")

	if err := atomicWriteFile(path, []byte("payload"), 0o640); err != nil {
		t.Fatalf("atomicWriteFile: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Mode().Perm() != 0o640 {
		t.Fatalf("mode = %v, want %v", info.Mode().Perm(), os.FileMode(0o640))
	}
}

func TestAtomicWriteFileFailsForMissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nonexistent", "out.bin")
	if err := atomicWriteFile(path, []byte("x"), 0o600); err == nil {
		t.Fatal("expected an error writing into a nonexistent directory")
	}
}
