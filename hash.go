package mucow

import (
	"encoding/binary"
	"hash/maphash"

	"fortio.org/safecast"
	"golang.org/x/crypto/blake2b"
)

// Hashing over smart pointers. Both functions hash the canonical byte
// encoding of the dereferenced view (see Hashable), so a Borrowed and an
// Owned pointer wrapping equal data always hash identically.

// Hash returns a seeded 64-bit hash of p's view, suitable for hash tables.
// Pointers that are Equal hash to the same value under the same seed.
func Hash[T Hashable](seed maphash.Seed, p Ptr[T]) uint64 {
	return maphash.Bytes(seed, (*p.Get()).AppendHash(nil))
}

// Sum256 returns the BLAKE2b-256 digest of p's view, for stable content
// fingerprints that survive across processes.
func Sum256[T Hashable](p Ptr[T]) [blake2b.Size256]byte {
	return blake2b.Sum256((*p.Get()).AppendHash(nil))
}

// AppendLen appends a uvarint length prefix to dst. AppendHash
// implementations use it to delimit variable-length components so adjacent
// components cannot collide.
func AppendLen(dst []byte, n int) []byte {
	v, err := safecast.Conv[uint64](n)
	if err != nil {
		panic("mucow: AppendLen called with negative length")
	}
	return binary.AppendUvarint(dst, v)
}
