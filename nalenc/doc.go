// Package nalenc implements the NAL symmetric cipher: a fixed 512-byte
// key, a 256-row round-key schedule derived from it, and a 256-round
// four-way transformation applied to a padded copy of the message.
//
// The cipher is deterministic in key and plaintext and produces no
// authentication tag — callers that need tamper detection must layer
// their own MAC on top, exactly as they would layer authentication on
// top of a raw block cipher mode.
package nalenc
