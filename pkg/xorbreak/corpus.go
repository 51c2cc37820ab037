package xorbreak

import (
	"context"

	"github.com/optable/crack/pkg/log"
	"github.com/optable/crack/pkg/score"
)

// ScanCorpus breaks every line of a corpus as single-byte XOR and
// returns the line whose plaintext scores lowest over the whole corpus,
// with Line set to its position in the stream. Lines are expected to be
// decoded already. Lines that cannot be broken are skipped;
// ErrCorpusExhausted is returned if none could.
func ScanCorpus(ctx context.Context, lines <-chan []byte) (Candidate, error) {
	logger := log.GetLoggerFromContextWithName(ctx, "xorbreak")

	winner := Candidate{Score: infinite}
	var found bool
	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return Candidate{}, ctx.Err()
		case line, ok := <-lines:
			if !ok {
				logger.V(1).Info("corpus scanned", "lines", i)
				if !found {
					return Candidate{}, ErrCorpusExhausted
				}
				return winner, nil
			}

			c, err := BreakSingleByte(line)
			if err != nil {
				logger.V(1).Info("skipping line", "line", i, "reason", err.Error())
				continue
			}

			// score the recovered plaintext on its own
			s, err := score.ChiSquared(c.Plaintext)
			if err != nil {
				continue
			}
			logger.V(2).Info("line broken", "line", i, "key", c.Key[0], "score", s)

			if s < winner.Score {
				c.Score, c.Line = s, i
				winner, found = c, true
			}
		}
	}
}
