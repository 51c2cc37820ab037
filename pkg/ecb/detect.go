package ecb

import (
	"bytes"
	"context"
	"crypto/rand"

	bloom "github.com/bits-and-blooms/bloom/v3"
	"github.com/optable/crack/internal/hash"
	"github.com/optable/crack/internal/util"
	"github.com/optable/crack/pkg/log"
)

// FalsePositive is the false positive rate of the bloomfilter
// that screens blocks before they are compared byte for byte
const FalsePositive = 1e-3

// Detector finds repeated cipher blocks. Every repeat is confirmed by a
// full byte comparison, the bloomfilter and the fingerprint index only
// spare most blocks from being compared at all. Counts are the same with
// or without them. The filter is sized per call.
type Detector struct {
	h hash.Hasher
}

// Detection reports a corpus line that repeats at least one block.
type Detection struct {
	Line        int
	Repetitions int
	Ciphertext  []byte
}

var defaultDetector *Detector

func init() {
	var err error
	if defaultDetector, err = NewDetector(hash.Highway); err != nil {
		panic(err)
	}
}

// NewDetector returns a Detector fingerprinting blocks with the hash
// of type t keyed by a random salt.
func NewDetector(t int) (*Detector, error) {
	var salt = make([]byte, hash.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}

	h, err := hash.New(t, salt)
	if err != nil {
		return nil, err
	}

	return &Detector{h: h}, nil
}

// Repetitions returns how many full blocks of ciphertext are equal to
// an earlier block. A trailing partial block is ignored.
func (d *Detector) Repetitions(ciphertext []byte) int {
	blocks := util.Blocks(ciphertext, BlockSize)
	if len(blocks) < 2 {
		return 0
	}

	bf := bloom.NewWithEstimates(uint(len(blocks)), FalsePositive)
	seen := make(map[uint64][][]byte, len(blocks))

	var n int
	for _, b := range blocks {
		fp := d.h.Hash64(b)
		// only a possible repeat is worth the lookup
		if bf.Test(b) && contains(seen[fp], b) {
			n++
			continue
		}
		bf.Add(b)
		seen[fp] = append(seen[fp], b)
	}

	return n
}

// HasDuplicateBlocks reports whether two full blocks of ciphertext are
// byte identical.
func (d *Detector) HasDuplicateBlocks(ciphertext []byte) bool {
	return d.Repetitions(ciphertext) > 0
}

// DetectCorpus returns every line of the stream that repeats a block,
// in stream order.
func (d *Detector) DetectCorpus(ctx context.Context, lines <-chan []byte) ([]Detection, error) {
	logger := log.GetLoggerFromContextWithName(ctx, "ecb")

	var detections []Detection
	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case line, ok := <-lines:
			if !ok {
				logger.V(1).Info("corpus scanned", "lines", i, "detections", len(detections))
				return detections, nil
			}
			if n := d.Repetitions(line); n > 0 {
				logger.V(2).Info("repeated blocks", "line", i, "repetitions", n)
				detections = append(detections, Detection{Line: i, Repetitions: n, Ciphertext: line})
			}
		}
	}
}

// Repetitions counts repeated blocks with the default detector.
func Repetitions(ciphertext []byte) int {
	return defaultDetector.Repetitions(ciphertext)
}

// HasDuplicateBlocks reports repeated blocks with the default detector.
func HasDuplicateBlocks(ciphertext []byte) bool {
	return defaultDetector.HasDuplicateBlocks(ciphertext)
}

// DetectCorpus scans lines with the default detector.
func DetectCorpus(ctx context.Context, lines <-chan []byte) ([]Detection, error) {
	return defaultDetector.DetectCorpus(ctx, lines)
}

func contains(blocks [][]byte, b []byte) bool {
	for _, c := range blocks {
		if bytes.Equal(c, b) {
			return true
		}
	}
	return false
}
