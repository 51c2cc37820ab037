package crypto

import (
	"bytes"
	"testing"

	"github.com/zeebo/blake3"
)

var passphrase = []byte("Terminator X: Bring the noise")

func TestDeriveKey(t *testing.T) {
	k, err := DeriveKey(passphrase, 29)
	if err != nil {
		t.Fatal(err)
	}

	if len(k) != 29 {
		t.Fatalf("expected a 29 byte key, got %d", len(k))
	}

	if bytes.Equal(make([]byte, 29), k) {
		t.Fatalf("derived key should not be 0")
	}

	// is it deterministic?
	q, _ := DeriveKey(passphrase, 29)
	if !bytes.Equal(k, q) {
		t.Fatalf("key derivation is not deterministic")
	}

	// shorter keys are prefixes of longer ones
	short, _ := DeriveKey(passphrase, 5)
	if !bytes.Equal(short, k[:5]) {
		t.Errorf("expected %x to be a prefix of %x", short, k)
	}

	other, _ := DeriveKey([]byte("Vanilla's on the mike"), 29)
	if bytes.Equal(k, other) {
		t.Errorf("different passphrases should derive different keys")
	}
}

func TestDeriveKeyLength(t *testing.T) {
	if _, err := DeriveKey(passphrase, 0); err != ErrKeyLength {
		t.Errorf("expected ErrKeyLength, got %v", err)
	}
}

func TestPseudorandomGenerateReusesHasher(t *testing.T) {
	h := blake3.New()
	a := make([]byte, 64)
	b := make([]byte, 64)
	if err := PseudorandomGenerate(a, passphrase, h); err != nil {
		t.Fatal(err)
	}
	if err := PseudorandomGenerate(b, passphrase, h); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(a, b) {
		t.Fatalf("hasher state leaked between calls")
	}
}

func BenchmarkDeriveKey(b *testing.B) {
	for i := 0; i < b.N; i++ {
		DeriveKey(passphrase, 4096)
	}
}
