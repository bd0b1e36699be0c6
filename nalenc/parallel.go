package nalenc

import "golang.org/x/sync/errgroup"

// parallelRowThreshold is the per-row byte length at or above which
// cryptParts dispatches its four rows across goroutines instead of
// running them sequentially. It mirrors the point at which the
// original NAL-Encryption source switched its Numba kernel from a
// uint8 to a uint64 code path (len(parts[0]) >= 65536 in helpers.py);
// here it gates concurrency instead of a numeric kernel choice, since
// Go's compiler already auto-vectorizes the inner XOR loop.
const parallelRowThreshold = 65536

// cryptPartsParallel applies cryptRow to all four rows concurrently.
// This is safe because rows are independent within a single round,
// and cryptRow never mutates its input row, only allocates and
// returns a new one.
func cryptPartsParallel(q quarters, round int, decrypt bool, t *roundKeyTable) quarters {
	var out quarters
	var g errgroup.Group
	for r := 0; r < 4; r++ {
		r := r
		g.Go(func() error {
			out[r] = cryptRow(q[r], r, round, decrypt, t)
			return nil
		})
	}
	// cryptRow cannot fail; Wait only synchronizes completion.
	_ = g.Wait()
	return out
}
