// Package palindrome reports whether a phrase reads the same in both directions.
//
// Only ASCII letters and digits take part in the comparison, and letters are
// compared case-insensitively. Spaces, punctuation and any non-ASCII rune are
// dropped first, so "A man, a plan, a canal: Panama" is a palindrome.
//
// A phrase with nothing left after cleaning ("", "!!", "  ") is a palindrome.
package palindrome
