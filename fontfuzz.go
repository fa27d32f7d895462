// Package fontfuzz is a fuzzing harness for the SFNT name table. It feeds
// arbitrary byte sequences to the font parser and, for inputs that parse,
// probes the name accessors. All results are discarded; a crash or hang is
// the fuzzer's to catch.
package fontfuzz

import "github.com/tdewolff/font"

// Fuzz is a fuzz test. It parses data as an OpenType font (the first font for
// collections) and looks up the family name, the PostScript name, and the
// number of name records. It returns 1 when the input parses as a font and 0
// otherwise.
func Fuzz(data []byte) int {
	sfnt, err := font.ParseSFNT(data, 0)
	if err != nil {
		return 0
	}
	_, _ = FamilyName(sfnt)
	_, _ = PostScriptName(sfnt)
	_ = NumNames(sfnt)
	return 1
}
