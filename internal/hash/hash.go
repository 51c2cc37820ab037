package hash

import (
	"fmt"

	"github.com/minio/highwayhash"
	"github.com/twmb/murmur3"
)

const (
	SaltLength = 32

	Murmur3 = iota
	Highway
)

var (
	ErrUnknownHash        = fmt.Errorf("cannot create a hasher of unknown hash type")
	ErrSaltLengthMismatch = fmt.Errorf("provided salt is not %d length", SaltLength)
)

// Hasher implements different non cryptographic hashing functions
// used to fingerprint cipher blocks
type Hasher interface {
	Hash64([]byte) uint64
}

// New creates a hasher of type t
func New(t int, salt []byte) (Hasher, error) {
	switch t {
	case Murmur3:
		return NewMurmur3Hasher(salt)
	case Highway:
		return NewHighwayHasher(salt)
	default:
		return nil, ErrUnknownHash
	}
}

// Murmur3 implementation of Hasher
type murmur64 struct {
	seed uint64
}

// NewMurmur3Hasher returns a Murmur3 hasher seeded with the
// first 8 bytes of salt
func NewMurmur3Hasher(salt []byte) (murmur64, error) {
	if len(salt) != SaltLength {
		return murmur64{}, ErrSaltLengthMismatch
	}

	var seed uint64
	for _, b := range salt[:8] {
		seed = seed<<8 | uint64(b)
	}
	return murmur64{seed: seed}, nil
}

func (t murmur64) Hash64(p []byte) uint64 {
	return murmur3.SeedSum64(t.seed, p)
}

// HighwayHash implementation of Hasher
type highway struct {
	key []byte
}

// NewHighwayHasher returns a highwayhash hasher keyed with salt
func NewHighwayHasher(salt []byte) (highway, error) {
	if len(salt) != SaltLength {
		return highway{}, ErrSaltLengthMismatch
	}

	return highway{key: salt}, nil
}

func (h highway) Hash64(p []byte) uint64 {
	return highwayhash.Sum64(p, h.key)
}
