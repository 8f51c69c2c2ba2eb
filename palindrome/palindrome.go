package palindrome

import "strings"

// Clean keeps the ASCII letters and digits of s, lower-cased.
func Clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + ('a' - 'A'))
		}
	}

	return b.String()
}

// IsPalindrome reports whether the cleaned form of s equals its reversal.
func IsPalindrome(s string) bool {
	c := Clean(s)
	for i, j := 0, len(c)-1; i < j; i, j = i+1, j-1 {
		if c[i] != c[j] {
			return false
		}
	}

	return true
}
