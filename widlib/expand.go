package widlib

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// ExpandIndices converts seed into an ordered sequence of count integers in
// [0, modulus). The seed is consumed in non-overlapping 4-byte chunks, each
// read as a big-endian uint32 and reduced modulo modulus; a trailing chunk
// shorter than 4 bytes is discarded. When the pool runs out before count
// values have been produced, it is replaced by SHA-256 of the current pool
// followed by a 2-byte big-endian counter that starts at 1, and scanning
// resumes on the new pool.
//
// The exact chunking, endianness, and counter format are load-bearing:
// independent implementations must produce identical sequences from the same
// seed.
func ExpandIndices(seed []byte, modulus, count int) ([]int, error) {
	if modulus < 1 {
		return nil, fmt.Errorf("%w: modulus must be positive (got %d)", ErrBadParameter, modulus)
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: count must be positive (got %d)", ErrBadParameter, count)
	}
	out := make([]int, 0, count)
	pool := seed
	var ctr uint16
	for {
		for i := 0; i+4 <= len(pool); i += 4 {
			v := binary.BigEndian.Uint32(pool[i:])
			out = append(out, int(uint64(v)%uint64(modulus)))
			if len(out) == count {
				return out, nil
			}
		}
		ctr++
		next := make([]byte, 0, len(pool)+2)
		next = append(next, pool...)
		next = binary.BigEndian.AppendUint16(next, ctr)
		sum := sha256.Sum256(next)
		pool = sum[:]
	}
}
