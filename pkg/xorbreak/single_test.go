package xorbreak

import (
	"bytes"
	"context"
	"encoding/hex"
	"testing"

	"github.com/optable/crack/pkg/log"
	"github.com/optable/crack/pkg/score"
	"github.com/optable/crack/test/corpus"
)

func TestBreakSingleByte(t *testing.T) {
	c, _ := hex.DecodeString("1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736")

	got, err := BreakSingleByte(c)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(got.Key, []byte{'X'}) {
		t.Errorf("want key 'X', got %q", got.Key)
	}
	if want := "Cooking MC's like a pound of bacon"; string(got.Plaintext) != want {
		t.Errorf("want: %s, got: %s", want, got.Plaintext)
	}
}

func TestBreakSingleByteSentences(t *testing.T) {
	for i, s := range corpus.Sentences() {
		key := byte(31 * (i + 1))
		c := make([]byte, len(s))
		for j := range s {
			c[j] = s[j] ^ key
		}

		got, err := BreakSingleByte(c)
		if err != nil {
			t.Fatal(err)
		}
		if got.Key[0] != key || string(got.Plaintext) != s {
			t.Errorf("sentence %d: want key %#x, got %#x", i, key, got.Key[0])
		}
	}
}

func TestBreakSingleByteDegenerate(t *testing.T) {
	if _, err := BreakSingleByte(nil); err != score.ErrEmptyText {
		t.Errorf("expected ErrEmptyText, got %v", err)
	}

	// key 0x20 ^ 0x41 would decrypt to spaces only and is skipped
	got, err := BreakSingleByte([]byte{0x41})
	if err != nil {
		t.Fatal(err)
	}
	if string(got.Plaintext) == " " {
		t.Errorf("a plaintext of spaces cannot win")
	}
}

func TestScanCorpus(t *testing.T) {
	plaintext := []byte("Now that the party is jumping\n")
	ctx := log.ContextWithLogger(context.Background(), log.GetLogger(2))

	got, err := ScanCorpus(ctx, corpus.SingleByte(plaintext, 0x35, 200, 170))
	if err != nil {
		t.Fatal(err)
	}

	if got.Line != 170 {
		t.Errorf("expected line 170, got %d", got.Line)
	}
	if got.Key[0] != 0x35 || !bytes.Equal(got.Plaintext, plaintext) {
		t.Errorf("want %q under key 0x35, got %q under %#x", plaintext, got.Plaintext, got.Key[0])
	}
}

func TestScanCorpusExhausted(t *testing.T) {
	lines := make(chan []byte, 2)
	lines <- []byte{}
	lines <- nil
	close(lines)

	if _, err := ScanCorpus(context.Background(), lines); err != ErrCorpusExhausted {
		t.Errorf("expected ErrCorpusExhausted, got %v", err)
	}
}

func TestScanCorpusCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := ScanCorpus(ctx, make(chan []byte)); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func BenchmarkBreakSingleByte(b *testing.B) {
	c, _ := hex.DecodeString("1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736")
	for i := 0; i < b.N; i++ {
		BreakSingleByte(c)
	}
}
