package immutable

import "math"

// FNV-1a constants. hash/maphash is deliberately not used here: its
// per-process seed would make generated Hash values differ between runs,
// and generated hashes must be stable for equal instances across invocations.
const (
	fnvOffset uint64 = 14695981039346656037
	fnvPrime  uint64 = 1099511628211

	// NilHash is the sentinel hash contributed by an absent (nil) property
	// value. Any fixed odd constant works; it only has to be consistent.
	NilHash uint64 = 0x9e3779b97f4a7c15
)

// HashCombine folds the next property hash into an accumulator. The fold is
// order-sensitive, so swapping two property values changes the result.
func HashCombine(acc, next uint64) uint64 {
	acc ^= next
	acc *= fnvPrime

	return acc
}

// HashSeed returns the accumulator seed for a fresh hash computation.
func HashSeed() uint64 {
	return fnvOffset
}

// HashBytes hashes a byte slice with FNV-1a.
func HashBytes(b []byte) uint64 {
	h := fnvOffset
	for _, c := range b {
		h ^= uint64(c)
		h *= fnvPrime
	}

	return h
}

// HashString hashes a string with FNV-1a.
func HashString(s string) uint64 {
	h := fnvOffset
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime
	}

	return h
}

// HashUint64 hashes an integer value.
func HashUint64(v uint64) uint64 {
	h := fnvOffset
	for i := 0; i < 8; i++ {
		h ^= v >> (8 * i) & 0xff
		h *= fnvPrime
	}

	return h
}

// HashInt64 hashes a signed integer value.
func HashInt64(v int64) uint64 {
	return HashUint64(uint64(v))
}

// HashBool hashes a boolean value.
func HashBool(v bool) uint64 {
	if v {
		return HashUint64(1)
	}

	return HashUint64(0)
}

// HashFloat64 hashes a float by its IEEE-754 bits. +0 and -0 hash equally so
// that Hash stays consistent with ==.
func HashFloat64(v float64) uint64 {
	if v == 0 {
		v = 0
	}

	return HashUint64(math.Float64bits(v))
}
