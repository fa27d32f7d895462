//go:build gofuzz
// +build gofuzz

package fuzz

import "github.com/tdewolff/fontfuzz"

// Fuzz is a fuzz test.
func Fuzz(data []byte) int {
	return fontfuzz.Fuzz(data)
}
