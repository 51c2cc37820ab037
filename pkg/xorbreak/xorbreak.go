// Package xorbreak recovers keys from single-byte and repeating-key XOR
// ciphertexts. Candidate plaintexts are ranked with the chi-squared
// letter frequency score from package score: the lowest score wins and
// ties go to the candidate enumerated first.
package xorbreak

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

var (
	ErrInsufficientData = fmt.Errorf("ciphertext is too short to sample a single key size")
	ErrCorpusExhausted  = fmt.Errorf("no line of the corpus could be broken")
	ErrInvalidOptions   = fmt.Errorf("invalid key size search options")
)

// Candidate is a recovered key together with the plaintext it
// decrypts to and the plaintext score.
type Candidate struct {
	Key       []byte
	Plaintext []byte
	Score     float64
	// Line is the position of the ciphertext in a scanned corpus,
	// 0 outside of ScanCorpus.
	Line int
}

// Options bound the repeating key search.
type Options struct {
	// MinKeySize and MaxKeySize are the inclusive range of key sizes tried
	MinKeySize, MaxKeySize int
	// SampleBlocks is the number of leading blocks compared per key size
	SampleBlocks int
	// Candidates is the number of best ranked key sizes fully solved
	Candidates int
}

// DefaultOptions tries key sizes 2 to 40 over 4 sample blocks and
// solves the 3 most likely sizes.
func DefaultOptions() Options {
	return Options{
		MinKeySize:   2,
		MaxKeySize:   40,
		SampleBlocks: 4,
		Candidates:   3,
	}
}

func (o Options) validate() error {
	if o.MinKeySize < 1 || o.MaxKeySize < o.MinKeySize || o.SampleBlocks < 2 || o.Candidates < 1 {
		return errors.Wrapf(ErrInvalidOptions, "%+v", o)
	}
	return nil
}

// best folds candidates in order and returns the first one with the
// lowest score. candidates must not be empty.
func best(candidates []Candidate) Candidate {
	b := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score < b.Score {
			b = c
		}
	}
	return b
}

// infinite is larger than any attainable score.
var infinite = math.Inf(1)
