// Package fnvhash computes 64-bit FNV-1a digests with a caller-held
// accumulator, so a digest can be built from several byte ranges without
// allocating a hash.Hash.
package fnvhash

const (
	// Offset64 is the FNV-1a 64-bit offset basis, the starting accumulator.
	Offset64 uint64 = 14695981039346656037
	// Prime64 is the FNV 64-bit prime.
	Prime64 uint64 = 0x100000001B3
)

// Sum64a folds data into acc and returns the new accumulator.
// Sum64a(b, Sum64a(a, Offset64)) equals Sum64(append(a, b...)).
func Sum64a(data []byte, acc uint64) uint64 {
	for _, c := range data {
		acc ^= uint64(c)
		acc *= Prime64
	}
	return acc
}

// Sum64 returns the FNV-1a digest of data.
func Sum64(data []byte) uint64 {
	return Sum64a(data, Offset64)
}

// String returns the FNV-1a digest of s.
func String(s string) uint64 {
	acc := Offset64
	for i := 0; i < len(s); i++ {
		acc ^= uint64(s[i])
		acc *= Prime64
	}
	return acc
}
