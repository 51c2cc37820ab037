package score

import (
	"math"
	"testing"
)

func TestFrequency(t *testing.T) {
	var total float64
	for c := byte('A'); c <= 'Z'; c++ {
		f, ok := Frequency(c)
		if !ok {
			t.Fatalf("missing frequency for %c", c)
		}
		if lower, _ := Frequency(c + 'a' - 'A'); lower != f {
			t.Errorf("lower case lookup of %c disagrees: %f != %f", c, lower, f)
		}
		total += f
	}

	// the table is rounded to three decimals
	if math.Abs(total-100) > 0.1 {
		t.Errorf("frequencies should add up to about 100%%, got %f", total)
	}

	if _, ok := Frequency('!'); ok {
		t.Errorf("punctuation has no letter frequency")
	}
}

func TestChiSquaredEmpty(t *testing.T) {
	for _, text := range [][]byte{nil, {}, []byte("    ")} {
		if _, err := ChiSquared(text); err != ErrEmptyText {
			t.Errorf("expected ErrEmptyText for %q, got %v", text, err)
		}
	}
}

func TestChiSquaredSingleLetter(t *testing.T) {
	// "e" alone: expected_i = pct_i * 1, actual_E = 1
	got, err := ChiSquared([]byte(" e "))
	if err != nil {
		t.Fatal(err)
	}

	var want float64
	for i, pct := range english {
		a := 0.0
		if i == 'E'-'A' {
			a = 1
		}
		want += (a - pct) * (a - pct) / pct
	}

	if math.Abs(got-want) > 1e-9 {
		t.Errorf("want %f, got %f", want, got)
	}
}

func TestChiSquaredCaseAndSpaces(t *testing.T) {
	a, _ := ChiSquared([]byte("Hello World"))
	b, _ := ChiSquared([]byte("HELLOWORLD"))
	if a != b {
		t.Errorf("case and spaces should not change the score: %f != %f", a, b)
	}

	// non ASCII bytes are not folded into letters
	c, _ := ChiSquared([]byte{0xe9, 0xe9})
	d, _ := ChiSquared([]byte("!!"))
	if c != d {
		t.Errorf("non letters should score alike: %f != %f", c, d)
	}
}

func TestChiSquaredPrefersEnglish(t *testing.T) {
	english, _ := ChiSquared([]byte("Cooking MC's like a pound of bacon"))
	garbage, _ := ChiSquared([]byte("\x1b77316?x\x15\x1b\x7f+x413=x9x(7-6<x7>x:9;76"))
	if english >= garbage {
		t.Errorf("english text should score lower than garbage: %f >= %f", english, garbage)
	}
}

func BenchmarkChiSquared(b *testing.B) {
	text := []byte("Now that the party is jumping with the bass kicked in and the Vega's are pumpin'")
	for i := 0; i < b.N; i++ {
		ChiSquared(text)
	}
}
