package reverse

// Reverse reverses s in place.
func Reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// String returns s with its runes in reverse order.
func String(s string) string {
	r := []rune(s)
	Reverse(r)

	return string(r)
}
