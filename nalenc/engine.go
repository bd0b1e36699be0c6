package nalenc

// quarters holds the four equal-length rows the padded message is
// split into. splitToQuarters returns rows that are disjoint slices of
// the padded buffer; the mix and crypt steps of each round then
// allocate fresh rows. The cyclic row-shifts the engine performs every
// round are a 4-element rotation of slice headers, never a physical
// copy of row bytes.
type quarters [4][]byte

// splitToQuarters reshapes a padded message of length 4*L into four
// rows of L bytes each, row-major.
func splitToQuarters(padded []byte) quarters {
	l := len(padded) / 4
	var q quarters
	for i := 0; i < 4; i++ {
		q[i] = padded[i*l : (i+1)*l : (i+1)*l]
	}
	return q
}

// joinQuarters concatenates the four rows back into one buffer, in
// logical row order.
func joinQuarters(q quarters) []byte {
	rowLen := len(q[0])
	out := make([]byte, 0, rowLen*4)
	for i := 0; i < 4; i++ {
		out = append(out, q[i]...)
	}
	return out
}

func xorRows(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// mixForward XORs rows 0, 1, 2 each with their successor row; row 3
// is left untouched. The three updates read each row's pre-mix value, which
// sequential in-order evaluation (r = 0, 1, 2) already guarantees,
// since row r's update only ever reads q[r] and q[r+1], and q[r+1]
// is not itself updated until a later iteration.
func mixForward(q quarters) quarters {
	return quarters{
		xorRows(q[0], q[1]),
		xorRows(q[1], q[2]),
		xorRows(q[2], q[3]),
		q[3],
	}
}

// mixInverse undoes mixForward. Unlike mixForward, this walk is a
// dependent chain (index 2, then 1, then 0): each update must see the
// *already updated* successor row, which is exactly what undoes
// mixForward's simultaneous update.
func mixInverse(q quarters) quarters {
	q[2] = xorRows(q[2], q[3])
	q[1] = xorRows(q[1], q[2])
	q[0] = xorRows(q[0], q[1])
	return q
}

func rotateDown(q quarters) quarters {
	return quarters{q[3], q[0], q[1], q[2]}
}

func rotateUp(q quarters) quarters {
	return quarters{q[1], q[2], q[3], q[0]}
}

// cryptRow XORs a single row, block by block, against the round key
// for this round: the output byte at block-local position j is the
// input XORed with the round key rotated by shift = block + row,
// where block is the row-local 512-byte block index and row is this
// row's index (0..3).
func cryptRow(row []byte, rowIdx, round int, decrypt bool, t *roundKeyTable) []byte {
	var key *[keySize]byte
	if decrypt {
		key = &t[roundKeyCount-1-round]
	} else {
		key = &t[round]
	}

	out := make([]byte, len(row))
	blocks := len(row) / keySize
	for b := 0; b < blocks; b++ {
		shift := b + rowIdx
		base := b * keySize
		for j := 0; j < keySize; j++ {
			idx := ((j-shift)%keySize + keySize) % keySize
			out[base+j] = row[base+j] ^ key[idx]
		}
	}
	return out
}

// cryptParts runs cryptRow over every row of q. The four rows have no
// data dependency on one another, so the dispatcher may run them
// concurrently; engineForward/engineInverse never call this across
// rounds concurrently, since round i depends on round i-1.
func (c *Cipher) cryptParts(q quarters, round int, decrypt bool) quarters {
	if c.parallel && len(q[0]) >= parallelRowThreshold {
		return cryptPartsParallel(q, round, decrypt, c.table)
	}
	var out quarters
	for r := 0; r < 4; r++ {
		out[r] = cryptRow(q[r], r, round, decrypt, c.table)
	}
	return out
}

// engineForward runs the 256-round forward transformation: mix rows,
// crypt every row against this round's key, rotate rows down.
func (c *Cipher) engineForward(q quarters) quarters {
	for i := 0; i < roundKeyCount; i++ {
		q = mixForward(q)
		q = c.cryptParts(q, i, false)
		q = rotateDown(q)
	}
	return q
}

// engineInverse runs the 256-round inverse transformation: rotate
// rows up, crypt every row against this round's key (decrypting),
// undo the mix.
func (c *Cipher) engineInverse(q quarters) quarters {
	for i := 0; i < roundKeyCount; i++ {
		q = rotateUp(q)
		q = c.cryptParts(q, i, true)
		q = mixInverse(q)
	}
	return q
}
