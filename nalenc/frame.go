package nalenc

import "fmt"

// frameBlock is the alignment the padded message must be a multiple
// of, and the minimum size of a padded message or ciphertext.
const frameBlock = 2048

// computePadding returns the padding length P for a plaintext of m
// bytes: the smallest non-negative value that makes m+2+P a multiple
// of frameBlock.
//
// There is a documented special case in the original NAL-Encryption
// source — collapse P to 0 when P == 2046 and M mod 2048 != 0 — but
// that trigger condition is provably unreachable: P == 2046 already
// implies M mod 2048 == 0 by construction. The override is therefore
// dead code, preserved here for parity rather than acted on; every
// output of this function stays 2048-aligned regardless. See
// DESIGN.md Decision D2 for the derivation.
func computePadding(m int) int {
	raw := (frameBlock - (m+2)%frameBlock) % frameBlock
	if raw == 2046 && m%frameBlock != 0 {
		return 0
	}
	return raw
}

// frameEncrypt pads a plaintext into a 2-byte big-endian header
// encoding P, the plaintext verbatim, then P pseudo-random tail bytes
// generated against the already-materialised prefix.
func frameEncrypt(k Key, m []byte) []byte {
	n := len(m)
	p := computePadding(n)

	buf := make([]byte, n+2+p)
	buf[0] = byte(p >> 8)
	buf[1] = byte(p)
	copy(buf[2:2+n], m)

	if n == 0 {
		// Decision D1 (DESIGN.md): the recurrence below indexes modulo
		// the already-materialised payload length, starting at n. For
		// n == 0 that's a modulo-by-zero with no prefix to draw from.
		// The original Python/Numba source leaves this undefined; here
		// the tail is filled from a simple keyed recurrence instead.
		fillEmptyPadding(buf[2:2+p], k)
		return buf
	}

	c := n
	for i := 0; i < p; i++ {
		kb := int(k[i%keySize])
		a := buf[2+kb%c]
		b := buf[2+(kb+1)%c]
		buf[2+n+i] = a ^ b
		c++
	}
	return buf
}

func fillEmptyPadding(dst []byte, k Key) {
	for i := range dst {
		dst[i] = k[i%keySize] ^ k[(i+1)%keySize]
	}
}

// frameDecrypt reads the 2-byte padding length header and strips both
// the header and the padding tail, returning the plaintext.
func frameDecrypt(framed []byte) ([]byte, error) {
	if len(framed) < 2 {
		return nil, fmt.Errorf("%w: frame shorter than the header", ErrInvalidPaddingLength)
	}
	p := int(framed[0])<<8 | int(framed[1])
	if p > len(framed)-2 {
		return nil, fmt.Errorf("%w: padding length %d exceeds %d available bytes", ErrInvalidPaddingLength, p, len(framed)-2)
	}
	return framed[2 : len(framed)-p], nil
}
