// +build amd64,!generic

package util

import (
	"math/bits"

	"github.com/alecthomas/unsafeslice"
)

// Xor casts the first part of the byte slices (length divisible
// by 8) into uint64 and then performs XOR on the slices of uint64.
// The excess elements that could not be cast are XORed conventionally.
// The whole operation is performed in place. Panic if a and dst do
// not have the same length.
// Only tested on x86-64.
func Xor(dst, a []byte) {
	if len(dst) != len(a) {
		panic(ErrByteLengthMissMatch)
	}
	// nothing to cast
	if len(dst) == 0 {
		return
	}

	castDst := unsafeslice.Uint64SliceFromByteSlice(dst)
	castA := unsafeslice.Uint64SliceFromByteSlice(a)

	for i := range castDst {
		castDst[i] ^= castA[i]
	}

	// deal with excess bytes which could not be cast to uint64
	// in the conventional manner
	for j := 0; j < len(dst)%8; j++ {
		dst[len(dst)-j-1] ^= a[len(a)-j-1]
	}
}

// HammingDistance returns the number of bit positions in which
// a and b differ. Words that fit in uint64 are popcounted through
// an unsafe cast, the excess bytes one at a time.
// Only tested on x86-64.
func HammingDistance(a, b []byte) (int, error) {
	if len(a) != len(b) {
		return 0, ErrByteLengthMissMatch
	}
	if len(a) == 0 {
		return 0, nil
	}

	var d int
	castA := unsafeslice.Uint64SliceFromByteSlice(a)
	castB := unsafeslice.Uint64SliceFromByteSlice(b)
	for i := range castA {
		d += bits.OnesCount64(castA[i] ^ castB[i])
	}

	for j := 0; j < len(a)%8; j++ {
		d += bits.OnesCount8(a[len(a)-j-1] ^ b[len(b)-j-1])
	}

	return d, nil
}
