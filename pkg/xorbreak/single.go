package xorbreak

import (
	"github.com/optable/crack/internal/util"
	"github.com/optable/crack/pkg/score"
)

// BreakSingleByte tries every key byte from 0 to 255 against ciphertext
// and returns the one whose plaintext scores lowest. A key turning the
// whole ciphertext into spaces cannot be scored and is skipped. An empty
// ciphertext returns score.ErrEmptyText.
func BreakSingleByte(ciphertext []byte) (Candidate, error) {
	if len(ciphertext) == 0 {
		return Candidate{}, score.ErrEmptyText
	}

	candidates := make([]Candidate, 0, 256)
	for k := 0; k < 256; k++ {
		key := []byte{byte(k)}
		plaintext := util.XorRepeating(ciphertext, key)
		s, err := score.ChiSquared(plaintext)
		if err != nil {
			continue
		}
		candidates = append(candidates, Candidate{Key: key, Plaintext: plaintext, Score: s})
	}

	// at most one key maps every byte to a space
	return best(candidates), nil
}
