package crypto

import (
	"fmt"

	"github.com/zeebo/blake3"
)

// ErrKeyLength is returned when asked for a key shorter than one byte.
var ErrKeyLength = fmt.Errorf("derived keys must be at least 1 byte long")

// DeriveKey stretches passphrase into n bytes of key material by
// reading the blake3 extendable output of the passphrase. The same
// passphrase always yields the same key, and a shorter key is a prefix
// of a longer one.
func DeriveKey(passphrase []byte, n int) ([]byte, error) {
	if n < 1 {
		return nil, ErrKeyLength
	}

	dst := make([]byte, n)
	if err := PseudorandomGenerate(dst, passphrase, blake3.New()); err != nil {
		return nil, err
	}

	return dst, nil
}

// PseudorandomGenerate fills dst with the blake3 XOF output of seed.
// h is reset first so it can be reused between calls.
func PseudorandomGenerate(dst []byte, seed []byte, h *blake3.Hasher) error {
	// reset internal state
	h.Reset()
	if _, err := h.Write(seed); err != nil {
		return err
	}

	drbg := h.Digest()

	_, err := drbg.Read(dst)

	return err
}
