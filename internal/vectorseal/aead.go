package vectorseal

import (
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// Seal authenticates and encrypts a golden vector's bytes under a key
// and nonce derived from vectorID, binding vectorID itself as
// associated data so a sealed vector cannot be silently relabeled.
func Seal(p *Provider, vectorID string, plaintext []byte) ([]byte, error) {
	key, nonce, err := p.KeyAndNonce(vectorID)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("vectorseal: create aead: %w", err)
	}
	return aead.Seal(nil, nonce, plaintext, []byte(vectorID)), nil
}

// Open verifies and decrypts a vector sealed by Seal. p must be
// constructed with the same master secret that sealed it.
func Open(p *Provider, vectorID string, sealed []byte) ([]byte, error) {
	key, nonce, err := p.KeyAndNonce(vectorID)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("vectorseal: create aead: %w", err)
	}
	plaintext, err := aead.Open(nil, nonce, sealed, []byte(vectorID))
	if err != nil {
		return nil, fmt.Errorf("vectorseal: vector %q failed integrity check: %w", vectorID, err)
	}
	return plaintext, nil
}
