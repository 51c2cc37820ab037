package xorbreak

import (
	"sort"

	"github.com/optable/crack/internal/util"
	"github.com/pkg/errors"
)

// KeyLength is a key size and the normalized Hamming distance measured
// for it. The smaller the distance, the more likely the size.
type KeyLength struct {
	Size     int
	Distance float64
}

// EstimateKeySizes ranks every key size of opts by normalized distance:
// the first opts.SampleBlocks blocks of that size are cut from the start
// of ciphertext, the Hamming distances of adjacent blocks are averaged
// and divided by the size. Sizes whose sample does not fit in ciphertext
// are left out rather than sampled with fewer blocks. Equal distances
// keep the smaller size first.
func EstimateKeySizes(ciphertext []byte, opts Options) ([]KeyLength, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	var sizes []KeyLength
	for k := opts.MinKeySize; k <= opts.MaxKeySize; k++ {
		if k*opts.SampleBlocks > len(ciphertext) {
			break
		}

		d, err := normalizedDistance(ciphertext[:k*opts.SampleBlocks], k)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, KeyLength{Size: k, Distance: d})
	}

	if len(sizes) == 0 {
		return nil, errors.Wrapf(ErrInsufficientData, "%d bytes do not hold %d blocks of %d bytes",
			len(ciphertext), opts.SampleBlocks, opts.MinKeySize)
	}

	sort.SliceStable(sizes, func(i, j int) bool {
		return sizes[i].Distance < sizes[j].Distance
	})

	return sizes, nil
}

// normalizedDistance averages the Hamming distance between each pair
// of adjacent size byte blocks of sample, per byte of key.
func normalizedDistance(sample []byte, size int) (float64, error) {
	blocks := util.Blocks(sample, size)

	var sum int
	for i := 0; i < len(blocks)-1; i++ {
		d, err := util.HammingDistance(blocks[i], blocks[i+1])
		if err != nil {
			return 0, err
		}
		sum += d
	}

	return float64(sum) / float64(len(blocks)-1) / float64(size), nil
}
