package util

import (
	"fmt"
)

var ErrByteLengthMissMatch = fmt.Errorf("provided bytes do not have the same length for XOR operations")

// XorBytes xors each byte from a with b and returns dst
// if a and b are the same length
func XorBytes(a, b []byte) (dst []byte, err error) {
	var n = len(b)
	if n != len(a) {
		return nil, ErrByteLengthMissMatch
	}

	dst = make([]byte, n)
	copy(dst, a)
	Xor(dst, b)

	return
}

// XorRepeating xors text with key, cycling whichever of the two is
// shorter until it covers the longer one. The result has the length
// of the longer input, or is empty if either input is empty.
func XorRepeating(text, key []byte) []byte {
	if len(text) == 0 || len(key) == 0 {
		return []byte{}
	}

	long, short := text, key
	if len(key) > len(text) {
		long, short = key, text
	}

	dst := make([]byte, len(long))
	for i := range long {
		dst[i] = long[i] ^ short[i%len(short)]
	}

	return dst
}

// Blocks cuts buf into contiguous blocks of size bytes. A trailing
// partial block is dropped. The blocks alias buf.
func Blocks(buf []byte, size int) [][]byte {
	if size < 1 {
		return nil
	}

	n := len(buf) / size
	blocks := make([][]byte, n)
	for i := range blocks {
		blocks[i] = buf[i*size : (i+1)*size]
	}

	return blocks
}

// TransposeBlocks returns the transpose of equal length blocks
// from (m x k) to (k x m): row i of the result holds byte i of
// every block, in block order.
func TransposeBlocks(blocks [][]byte) [][]byte {
	if len(blocks) == 0 {
		return nil
	}

	n := len(blocks)
	tr := make([][]byte, len(blocks[0]))

	for row := range tr {
		tr[row] = make([]byte, n)
		for col := range tr[row] {
			tr[row][col] = blocks[col][row]
		}
	}
	return tr
}
