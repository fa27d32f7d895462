package fontfuzz

import (
	"testing"

	"github.com/tdewolff/font"
	"github.com/tdewolff/test"
)

func TestBuildTTF(t *testing.T) {
	b := BuildTTF()
	sfnt, err := font.ParseSFNT(b, 0)
	test.Error(t, err)
	test.That(t, sfnt.IsTrueType, "is TrueType")
	test.T(t, sfnt.NumGlyphs(), uint16(1))

	// table record offsets and lengths must slice the exact table contents
	test.T(t, len(sfnt.Tables["head"]), 54)
	test.T(t, len(sfnt.Tables["hhea"]), 36)
	test.T(t, len(sfnt.Tables["maxp"]), 32)
	test.T(t, len(sfnt.Tables["cmap"]), 274)

	// a single font is index 0 only
	_, err = font.ParseSFNT(b, 1)
	test.That(t, err != nil, "index out of range")
}

func TestBuildTTC(t *testing.T) {
	b := BuildTTC(
		[]Name{WindowsName(NameFontFamily, "First")},
		[]Name{WindowsName(NameFontFamily, "Second")},
		[]Name{WindowsName(NameFontFamily, "Third")},
	)

	sfnt, err := font.ParseSFNT(b, 0)
	test.Error(t, err)
	family, ok := FamilyName(sfnt)
	test.That(t, ok, "family name present")
	test.T(t, family, "First")

	sfnt, err = font.ParseSFNT(b, 1)
	test.Error(t, err)
	family, ok = FamilyName(sfnt)
	test.That(t, ok, "family name present")
	test.T(t, family, "Second")

	// ParseSFNT's length bounds check rejects the last collection entry
	_, err = font.ParseSFNT(b, 2)
	test.That(t, err != nil, "last entry rejected")

	_, err = font.ParseSFNT(b, 3)
	test.That(t, err != nil, "index out of range")

	// the fuzz target reads the first font only
	test.T(t, Fuzz(b), 1)
}

func TestSeeds(t *testing.T) {
	seeds := Seeds()
	test.T(t, len(seeds), 4)
	for _, seed := range seeds {
		_, err := font.ParseSFNT(seed, 0)
		test.Error(t, err)
	}
}
