package xorbreak

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/optable/crack/internal/util"
	"github.com/optable/crack/pkg/log"
	"github.com/optable/crack/pkg/score"
	"github.com/pkg/errors"
)

// BreakRepeatingXor breaks ciphertext with DefaultOptions.
func BreakRepeatingXor(ctx context.Context, ciphertext []byte) (Candidate, error) {
	return BreakRepeating(ctx, ciphertext, DefaultOptions())
}

// BreakRepeating recovers a repeating XOR key. The opts.Candidates best
// ranked key sizes are solved concurrently: for a size k the ciphertext
// is cut in k byte blocks, transposed into k columns, and every column is
// broken as single-byte XOR to give one key byte. The candidate whose
// full plaintext scores lowest is returned, ties going to the better
// ranked key size.
func BreakRepeating(ctx context.Context, ciphertext []byte, opts Options) (Candidate, error) {
	logger := log.GetLoggerFromContextWithName(ctx, "xorbreak")
	if err := ctx.Err(); err != nil {
		return Candidate{}, err
	}

	sizes, err := EstimateKeySizes(ciphertext, opts)
	if err != nil {
		return Candidate{}, err
	}
	if len(sizes) > opts.Candidates {
		sizes = sizes[:opts.Candidates]
	}
	logger.V(1).Info("key sizes ranked", "candidates", sizes)

	// each worker owns one slot, the fold below runs in rank order
	candidates := make([]Candidate, len(sizes))
	fs := make([]func() error, len(sizes))
	for i, ks := range sizes {
		i, size := i, ks.Size
		fs[i] = func() error {
			c, err := solve(logger, ciphertext, size)
			if err != nil {
				return errors.Wrapf(err, "solving key size %d", size)
			}
			candidates[i] = c
			return nil
		}
	}

	err = util.All(ctx, fs...)
	if err != nil {
		return Candidate{}, err
	}

	return best(candidates), nil
}

// solve recovers the key of the given size one column at a time and
// scores the whole plaintext it decrypts to.
func solve(logger logr.Logger, ciphertext []byte, size int) (Candidate, error) {
	columns := util.TransposeBlocks(util.Blocks(ciphertext, size))

	key := make([]byte, size)
	for i, column := range columns {
		c, err := BreakSingleByte(column)
		if err != nil {
			return Candidate{}, err
		}
		key[i] = c.Key[0]
		logger.V(2).Info("column broken", "size", size, "column", i, "key", c.Key[0], "score", c.Score)
	}

	plaintext := util.XorRepeating(ciphertext, key)
	s, err := score.ChiSquared(plaintext)
	if err != nil {
		// nothing but spaces, any other candidate is preferable
		s = infinite
	}
	logger.V(1).Info("candidate key", "size", size, "score", s)

	return Candidate{Key: key, Plaintext: plaintext, Score: s}, nil
}
