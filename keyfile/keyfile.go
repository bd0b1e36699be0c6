// Package keyfile loads and saves NALEnc keys in the two on-disk forms
// named at the boundary of the core cipher: raw 512-byte binary, and an
// ASCII-armoured base64 form framed between fixed header/footer lines.
//
// The core package (nalenc) only ever deals in a 512-byte Key; keyfile
// is the glue a command-line tool needs to get one from a file and back,
// kept deliberately outside the cipher core.
package keyfile

import (
	"bufio"
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/AsfhtgkDavid/nalenc"
)

const (
	asciiHeader = "----BEGIN NAL KEY----"
	asciiFooter = "----END NAL KEY----"
	wrapColumns = 64
	keySize     = 512
)

// Generate returns a fresh key drawn from a cryptographically secure
// random source.
func Generate() (nalenc.Key, error) {
	var k nalenc.Key
	if _, err := rand.Read(k[:]); err != nil {
		return nalenc.Key{}, errors.Wrap(err, "generate key")
	}
	return k, nil
}

// Load reads a key from path, auto-detecting binary versus ASCII-armoured
// form the same way the data itself decides: a file that is exactly 512
// bytes is treated as raw binary, anything else is parsed as ASCII.
func Load(path string) (nalenc.Key, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nalenc.Key{}, errors.Wrap(err, "read key file")
	}

	if len(data) == keySize {
		var k nalenc.Key
		copy(k[:], data)
		return k, nil
	}

	return decodeASCII(data)
}

func decodeASCII(data []byte) (nalenc.Key, error) {
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) < 2 {
		return nalenc.Key{}, fmt.Errorf("keyfile: not a recognized key file (wrong length and no ASCII frame)")
	}

	first := strings.TrimSpace(lines[0])
	last := strings.TrimSpace(lines[len(lines)-1])
	if first != asciiHeader || last != asciiFooter {
		return nalenc.Key{}, fmt.Errorf("keyfile: ASCII key file must be framed by %q and %q", asciiHeader, asciiFooter)
	}

	var b64 strings.Builder
	for _, line := range lines[1 : len(lines)-1] {
		b64.WriteString(strings.TrimSpace(line))
	}

	raw, err := base64.StdEncoding.DecodeString(b64.String())
	if err != nil {
		return nalenc.Key{}, errors.Wrap(err, "decode ASCII key payload")
	}
	if len(raw) != keySize {
		return nalenc.Key{}, fmt.Errorf("keyfile: decoded ASCII key is %d bytes, want %d", len(raw), keySize)
	}

	var k nalenc.Key
	copy(k[:], raw)
	return k, nil
}

// SaveBinary writes k to path as a raw 512-byte file.
func SaveBinary(path string, k nalenc.Key) error {
	if err := os.WriteFile(path, k[:], 0o600); err != nil {
		return errors.Wrap(err, "write binary key file")
	}
	return nil
}

// SaveASCII writes k to path wrapped in the header/footer-framed
// base64 form, 64 columns per line, LF-terminated.
func SaveASCII(path string, k nalenc.Key) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return errors.Wrap(err, "create ASCII key file")
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, asciiHeader)

	encoded := base64.StdEncoding.EncodeToString(k[:])
	for len(encoded) > 0 {
		n := wrapColumns
		if n > len(encoded) {
			n = len(encoded)
		}
		fmt.Fprintln(w, encoded[:n])
		encoded = encoded[n:]
	}

	fmt.Fprintln(w, asciiFooter)
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "flush ASCII key file")
	}
	return nil
}

// IsASCIIArmored reports whether data looks like the ASCII-armoured
// form (as opposed to raw binary), without fully parsing it.
func IsASCIIArmored(data []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(data), []byte(asciiHeader))
}
