package goacset

// Mix64 is an incremental 64-bit mixer used for coloring indicators and
// canonical hashes.  It is keyed by nothing and must stay stable across runs:
// search ordering and catalog keys depend on it.
type Mix64 struct {
	h1 uint64
	h2 uint64
}

func (mix *Mix64) Reset() {
	mix.h1 = 0xaaaaaaaaaaaaaaaa
	mix.h2 = 0
}

func (mix *Mix64) WriteInt(val int64) {
	x := mix.h1 ^ mix.h2

	// https://github.com/skeeto/hash-prospector
	x1 := x
	x1 = x1 + 0x9e3779b97f4a7c15 + uint64(val)
	x1 ^= (x1 >> 30)
	x1 *= 0xbf58476d1ce4e5b9
	x1 ^= (x1 >> 27)
	x1 *= 0x94d049bb133111eb
	x1 ^= (x1 >> 31)
	mix.h1 = x1

	// https://gist.github.com/badboy/6267743
	x2 := x
	x2 = (^x2) + (x2 << 21)
	x2 = x2 ^ (x2 >> 24)
	x2 = (x2 + (x2 << 3)) + (x2 << 8) // x2 * 265
	x2 = x2 ^ (x2 >> 14)
	x2 = (x2 + (x2 << 2)) + (x2 << 4) // x2 * 21
	x2 = x2 ^ (x2 >> 28)
	x2 = x2 + (x2 << 31)
	mix.h2 = x2
}

func (mix *Mix64) Sum64() uint64 {
	return mix.h1 ^ (mix.h2 >> 1)
}

// HashBytes hashes an arbitrary byte buffer to 64 bits.
//
// AP Hash Function
// https://www.partow.net/programming/hashfunctions/#AvailableHashFunctions
func HashBytes(buf []byte) uint64 {
	var hash uint64 = 0xaaaaaaaaaaaaaaaa
	for i, b := range buf {
		if (i & 1) == 0 {
			hash ^= ((hash << 7) ^ uint64(b) ^ (hash >> 3))
		} else {
			hash ^= (^((hash << 11) ^ uint64(b) ^ (hash >> 5)) + 1)
		}
	}
	return hash
}
