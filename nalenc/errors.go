package nalenc

import "errors"

// Sentinel errors returned by the core. Callers should use errors.Is,
// since every returned error wraps one of these via fmt.Errorf's %w.
var (
	// ErrInvalidInput is returned when a value passed to New or Encrypt
	// cannot be coerced into a flat byte buffer: an integer outside
	// 0..255, a non-integer slice element, or an unsupported Go type.
	// Decrypt takes a []byte and never returns it.
	ErrInvalidInput = errors.New("nalenc: invalid input")

	// ErrInvalidKeyLength is returned by New when the coerced key is
	// not exactly 512 bytes.
	ErrInvalidKeyLength = errors.New("nalenc: key must be exactly 512 bytes")

	// ErrInvalidCiphertextLength is returned by Decrypt when the input
	// length is zero or not a multiple of 2048.
	ErrInvalidCiphertextLength = errors.New("nalenc: ciphertext length must be a positive multiple of 2048 bytes")

	// ErrInvalidPaddingLength is returned by Decrypt when the padding
	// length recovered from the frame header exceeds the available
	// buffer. The cipher is unauthenticated, so this is a best-effort
	// corruption signal, not a guarantee.
	ErrInvalidPaddingLength = errors.New("nalenc: recovered padding length exceeds the ciphertext")
)
