// Package score measures how much a byte sequence looks like English
// text using a chi-squared test over the uppercase letter distribution.
package score

import (
	"fmt"
)

// ErrEmptyText is returned when there is nothing left to score once
// spaces are removed; every expected count would be zero.
var ErrEmptyText = fmt.Errorf("cannot score text with no characters other than spaces")

// english holds the relative frequency, in percent, of A through Z
// in English text.
var english = [26]float64{
	8.167, 1.492, 2.782, 4.253, 12.702, 2.228, 2.015, 6.094, 6.966,
	0.153, 0.772, 4.025, 2.406, 6.749, 7.507, 1.929, 0.095, 5.987,
	6.327, 9.056, 2.758, 0.978, 2.360, 0.150, 1.974, 0.074,
}

// Frequency returns the expected percentage of letter in English text.
// letter may be upper or lower case ASCII.
func Frequency(letter byte) (float64, bool) {
	letter = upper(letter)
	if letter < 'A' || letter > 'Z' {
		return 0, false
	}
	return english[letter-'A'], true
}

// ChiSquared returns sum((actual-expected)^2/expected) over the 26
// letters, where expected is the letter percentage times the length of
// text without its spaces. Only ASCII letters are case folded, any other
// byte counts towards the length but never as a letter. Lower is more
// English like.
func ChiSquared(text []byte) (float64, error) {
	var (
		counts [26]int
		n      int
	)

	for _, c := range text {
		if c == ' ' {
			continue
		}
		n++
		if c = upper(c); c >= 'A' && c <= 'Z' {
			counts[c-'A']++
		}
	}

	if n == 0 {
		return 0, ErrEmptyText
	}

	var chi float64
	for i, pct := range english {
		expected := pct * float64(n)
		d := float64(counts[i]) - expected
		chi += d * d / expected
	}

	return chi, nil
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
