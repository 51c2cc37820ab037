// Package ecb encrypts, decrypts and detects AES-128 in electronic
// codebook mode, where identical plaintext blocks always produce
// identical ciphertext blocks.
package ecb

import (
	"crypto/aes"
	"fmt"
)

const (
	// BlockSize is the AES block size in bytes
	BlockSize = aes.BlockSize
	// KeySize is the AES-128 key size in bytes
	KeySize = 16
)

var (
	ErrKeySize      = fmt.Errorf("ecb key must be %d bytes", KeySize)
	ErrPartialBlock = fmt.Errorf("ecb input must be a multiple of %d bytes", BlockSize)
)

// Decrypt decrypts ciphertext one block at a time under key.
func Decrypt(ciphertext, key []byte) ([]byte, error) {
	return crypt(ciphertext, key, false)
}

// Encrypt encrypts plaintext one block at a time under key. plaintext
// is not padded.
func Encrypt(plaintext, key []byte) ([]byte, error) {
	return crypt(plaintext, key, true)
}

func crypt(src, key []byte, encrypt bool) ([]byte, error) {
	if len(key) != KeySize {
		return nil, ErrKeySize
	}
	if len(src)%BlockSize != 0 {
		return nil, ErrPartialBlock
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, len(src))
	for i := 0; i < len(src); i += BlockSize {
		if encrypt {
			block.Encrypt(dst[i:i+BlockSize], src[i:i+BlockSize])
		} else {
			block.Decrypt(dst[i:i+BlockSize], src[i:i+BlockSize])
		}
	}

	return dst, nil
}
