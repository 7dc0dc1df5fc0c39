package utils

import (
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"
)

var ErrInvalidUTF8 = errors.New("decoded component is not valid UTF-8")

const upperhex = "0123456789ABCDEF"

// EncodeURIComponent escapes s the way browsers do for encodeURIComponent:
// everything except A-Z a-z 0-9 and - _ . ! ~ * ' ( ) is percent-encoded as UTF-8.
// Stored keys were produced with this encoding, so it must not change.
func EncodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreservedComponent(c) {
			b.WriteByte(c)

			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}

	return b.String()
}

// DecodeURIComponent reverses EncodeURIComponent. Unlike query decoding a '+'
// stays a '+'. Escapes that decode to invalid UTF-8 are rejected, as browsers do.
func DecodeURIComponent(s string) (string, error) {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return "", err
	}
	if !utf8.ValidString(decoded) {
		return "", ErrInvalidUTF8
	}

	return decoded, nil
}

func isUnreservedComponent(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}

	return false
}
