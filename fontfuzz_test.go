package fontfuzz

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestFuzzEmpty(t *testing.T) {
	test.T(t, Fuzz(nil), 0)
	test.T(t, Fuzz([]byte{}), 0)
}

func TestFuzzNotAFont(t *testing.T) {
	test.T(t, Fuzz([]byte("rubbish that is not a font")), 0)
	test.T(t, Fuzz([]byte{0x00, 0x01, 0x00, 0x00}), 0) // truncated sfntVersion-only input
	test.T(t, Fuzz([]byte("ttcf")), 0)
	test.T(t, Fuzz([]byte("OTTO\x00\x00\x00\x00\x00\x00\x00\x00")), 0)
}

func TestFuzzSeeds(t *testing.T) {
	for i, seed := range Seeds() {
		test.T(t, Fuzz(seed), 1, fmt.Sprintf("seed %d", i))
	}
}

// Trials are independent: the same input must give the same result twice.
func TestFuzzDeterministic(t *testing.T) {
	inputs := Seeds()
	inputs = append(inputs, nil, []byte("not a font"))
	for i, input := range inputs {
		test.T(t, Fuzz(input), Fuzz(input), fmt.Sprintf("input %d", i))
	}
}

// Every truncation of a valid font must run to completion, parsed or not.
func TestFuzzTruncated(t *testing.T) {
	b := BuildTTF(WindowsName(NameFontFamily, "Sans Serif"))
	for n := 0; n < len(b); n++ {
		_ = Fuzz(b[:n])
	}
}

func FuzzName(f *testing.F) {
	for _, seed := range Seeds() {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		_ = Fuzz(data)
	})
}
