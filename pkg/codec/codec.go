// Package codec converts between raw bytes and their hex and base64
// text forms.
package codec

import (
	"encoding/base64"
	"encoding/hex"

	"github.com/pkg/errors"
)

// DecodeHex returns the bytes represented by the hex string s.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "decoding hex")
	}
	return b, nil
}

// EncodeHex returns the lower case hex encoding of b.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// DecodeBase64 returns the bytes represented by the standard, padded
// base64 string s. Line breaks are ignored so wrapped files can be
// decoded in one go.
func DecodeBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "decoding base64")
	}
	return b, nil
}

// EncodeBase64 returns the standard, padded base64 encoding of b.
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// HexToBase64 re-encodes a hex string as base64.
func HexToBase64(s string) (string, error) {
	b, err := DecodeHex(s)
	if err != nil {
		return "", err
	}
	return EncodeBase64(b), nil
}
