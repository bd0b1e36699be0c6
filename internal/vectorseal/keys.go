// Package vectorseal derives sealing keys and authenticates committed
// golden test vectors for the nalenc core.
//
// NALEnc itself produces no MAC and verifies none: an attacker who can
// tamper with ciphertext gets garbage plaintext back, never an error.
// That is a deliberate property of the cipher, not a gap, so it lives
// outside the core package entirely. What the test suite does need is
// confidence that its own golden vectors, checked into the repository
// as plain files under nalenc/testdata/vectors, have not been
// silently edited. vectorseal exists only to seal and verify those
// fixtures, loaded by nalenc's TestGoldenVectorsDecryptToExpectedPlaintext;
// production callers of nalenc never import it.
package vectorseal

import (
	"crypto/hkdf"
	"crypto/sha256"
	"fmt"
	"strings"
)

type keyContext string

const sealContext keyContext = "nalenc/vectorseal:v1"

// Provider derives a sealing key and nonce for each vector ID it is
// asked about. Derivation is a pure function of (masterSecret,
// vectorID), so Seal and Open can be called in any order and any
// number of times without a shared mutable counter.
type Provider struct {
	masterSecret []byte
}

// NewProvider constructs a Provider from masterSecret, which should be
// at least 32 bytes of high-entropy material (e.g. a value baked into
// the test binary, never a production key).
func NewProvider(masterSecret []byte) (*Provider, error) {
	if len(masterSecret) == 0 {
		return nil, fmt.Errorf("vectorseal: master secret is empty")
	}
	cp := append([]byte(nil), masterSecret...)
	return &Provider{masterSecret: cp}, nil
}

// KeyAndNonce derives a 32-byte ChaCha20-Poly1305 key and a 12-byte
// nonce for vectorID.
func (p *Provider) KeyAndNonce(vectorID string) (key, nonce []byte, err error) {
	var info strings.Builder
	info.Grow(len(sealContext) + 1 + len(vectorID))
	info.WriteString(string(sealContext))
	info.WriteByte(0)
	info.WriteString(vectorID)

	material, err := hkdf.Key(sha256.New, p.masterSecret, nil, info.String(), 44)
	if err != nil {
		return nil, nil, fmt.Errorf("vectorseal: derive key material: %w", err)
	}
	key = material[:32]
	nonce = material[32:44]
	return key, nonce, nil
}
