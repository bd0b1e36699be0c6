package keyfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AsfhtgkDavid/nalenc"
)

func sampleKey() nalenc.Key {
	var k nalenc.Key
	for i := range k {
		k[i] = byte(i)
	}
	return k
}

func TestGenerateProducesDistinctKeys(t *testing.T) {
	t.Parallel()

	a, err := Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if a == b {
		t.Fatal("two calls to Generate produced identical keys")
	}
}

func TestSaveLoadBinaryRoundTrip(t *testing.T) {
	t.Parallel()

	k := sampleKey()
	path := filepath.Join(t.TempDir(), "key.bin")

	if err := SaveBinary(path, k); err != nil {
		t.Fatalf("SaveBinary: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != k {
		t.Fatal("binary round trip mismatch")
	}
}

func TestSaveLoadASCIIRoundTrip(t *testing.T) {
	t.Parallel()

	k := sampleKey()
	path := filepath.Join(t.TempDir(), "key.asc")

	if err := SaveASCII(path, k); err != nil {
		t.Fatalf("SaveASCII: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != k {
		t.Fatal("ASCII round trip mismatch")
	}
}

func TestSaveASCIIIsFramedAndWrapped(t *testing.T) {
	t.Parallel()

	k := sampleKey()
	path := filepath.Join(t.TempDir(), "key.asc")
	if err := SaveASCII(path, k); err != nil {
		t.Fatalf("SaveASCII: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !IsASCIIArmored(data) {
		t.Fatal("expected file to be detected as ASCII-armoured")
	}

	lines := splitLines(data)
	if lines[0] != asciiHeader {
		t.Fatalf("first line = %q, want %q", lines[0], asciiHeader)
	}
	if lines[len(lines)-1] != asciiFooter {
		t.Fatalf("last line = %q, want %q", lines[len(lines)-1], asciiFooter)
	}
	for _, line := range lines[1 : len(lines)-1] {
		if len(line) > wrapColumns {
			t.Fatalf("line %q exceeds %d columns", line, wrapColumns)
		}
	}
}

func splitLines(data []byte) []string {
	var lines []string
	start := 0
	for i, b := range data {
		if b == '\n' {
			lines = append(lines, string(data[start:i]))
			start = i + 1
		}
	}
	if start < len(data) {
		lines = append(lines, string(data[start:]))
	}
	return lines
}

func TestLoadRejectsWrongLengthBinary(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "key.bin")
	if err := os.WriteFile(path, make([]byte, 511), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error loading a 511-byte file")
	}
}

func TestLoadRejectsMalformedASCII(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "key.asc")
	content := asciiHeader + "\nnot valid base64!!\n" + asciiFooter + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error loading malformed ASCII content")
	}
}

func TestLoadRejectsMissingFrame(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "key.asc")
	if err := os.WriteFile(path, []byte("just some text\nwith a few lines\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error loading unframed content")
	}
}
