package nalenc

import "fmt"

// Cipher is a constructed NALEnc instance: a 512-byte key and the
// round-key table derived from it. Both are immutable after New
// returns, so a single Cipher is safe for concurrent Encrypt/Decrypt
// calls from multiple goroutines.
type Cipher struct {
	key   Key
	table *roundKeyTable

	// parallel enables concurrent row dispatch inside CryptParts for
	// rows at least parallelRowThreshold bytes long. On by default;
	// exposed so callers benchmarking small messages can pin it off.
	parallel bool
}

// New constructs a Cipher from a 512-byte key. key may be a string,
// []byte, Key, []int, or any other integer slice/array accepted by
// the package's input coercion rules.
func New(key any) (*Cipher, error) {
	k, err := coerceKey(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{
		key:      k,
		table:    deriveRoundKeys(k),
		parallel: true,
	}, nil
}

// SetParallel toggles concurrent row dispatch inside CryptParts. It
// returns the Cipher so calls can be chained after New.
func (c *Cipher) SetParallel(enabled bool) *Cipher {
	c.parallel = enabled
	return c
}

// Encrypt pads plaintext into a 2048-aligned frame, splits it into
// four quarters, and runs the 256-round forward transformation.
// plaintext may be any value accepted by the package's input
// coercion rules, including the empty string/slice.
func (c *Cipher) Encrypt(plaintext any) ([]byte, error) {
	m, err := coerce(plaintext)
	if err != nil {
		return nil, err
	}
	framed := frameEncrypt(c.key, m)
	q := splitToQuarters(framed)
	q = c.engineForward(q)
	return joinQuarters(q), nil
}

// Decrypt runs the 256-round inverse transformation on ciphertext and
// strips the padding frame, recovering the plaintext. ciphertext must
// be a positive multiple of 2048 bytes.
func (c *Cipher) Decrypt(ciphertext []byte) ([]byte, error) {
	n := len(ciphertext)
	if n == 0 || n%frameBlock != 0 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidCiphertextLength, n)
	}
	q := splitToQuarters(ciphertext)
	q = c.engineInverse(q)
	return frameDecrypt(joinQuarters(q))
}
