package charcount

import (
	"fmt"
	"sort"
)

// Count is one (letter, occurrences) entry.
type Count struct {
	Char rune
	N    int
}

// String renders "c=N".
func (c Count) String() string { return fmt.Sprintf("%c=%d", c.Char, c.N) }

// CountCharacters maps each lower-case ASCII letter found in s to its number
// of occurrences, ignoring case.
func CountCharacters(s string) map[rune]int {
	counts := make(map[rune]int)
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if r < 'a' || r > 'z' {
			continue
		}
		counts[r]++
	}

	return counts
}

// Sorted returns counts as a slice ordered by letter.
func Sorted(counts map[rune]int) []Count {
	out := make([]Count, 0, len(counts))
	for r, n := range counts {
		out = append(out, Count{Char: r, N: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Char < out[j].Char })

	return out
}
