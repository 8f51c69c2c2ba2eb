// Package charcount tallies the letters of a text.
//
// CountCharacters folds A–Z to a–z and counts only those 26 letters. Digits,
// spaces, punctuation and non-ASCII letters (é, ñ, ß, ...) are skipped, so the
// result holds exactly the letters observed and nothing else.
//
// Go maps have no order; Sorted turns a count map into a slice ordered by
// letter for stable printing.
package charcount
