// Package reverse reverses sequences in place with two converging indices.
//
// Reverse swaps s[i] and s[j] while moving i forward from the start and j
// backward from the end, stopping when they meet. Odd lengths leave the middle
// element where it is; empty and one-element slices are untouched.
// Reversing twice restores the original order.
//
// String is a convenience for text: it reverses by rune, so multi-byte
// characters survive intact (combining sequences are not kept together).
package reverse
