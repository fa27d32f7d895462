package fontfuzz

import (
	"github.com/tdewolff/font"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Name IDs of the OpenType name table. See https://learn.microsoft.com/en-us/typography/opentype/spec/name
const (
	NameFontFamily     font.NameID = 1
	NameFontSubfamily  font.NameID = 2
	NamePostScriptName font.NameID = 6
)

// FamilyName returns the font family name, or false when the font has no
// decodable family name record.
func FamilyName(sfnt *font.SFNT) (string, bool) {
	return lookupName(sfnt, NameFontFamily)
}

// PostScriptName returns the PostScript name, or false when the font has no
// decodable PostScript name record.
func PostScriptName(sfnt *font.SFNT) (string, bool) {
	return lookupName(sfnt, NamePostScriptName)
}

// NumNames returns the number of records in the name table.
func NumNames(sfnt *font.SFNT) int {
	if sfnt.Name == nil {
		return 0
	}
	return len(sfnt.Name.NameRecord)
}

// lookupName returns the first record with the given name ID that decodes to
// a string. The name table may be nil for fonts read through lenient entry
// points such as ParseEmbeddedSFNT.
func lookupName(sfnt *font.SFNT, name font.NameID) (string, bool) {
	if sfnt.Name == nil {
		return "", false
	}
	for _, record := range sfnt.Name.Get(name) {
		if s, ok := decodeName(record.Platform, record.Encoding, record.Value); ok {
			return s, true
		}
	}
	return "", false
}

// decodeName decodes a name record value. Unicode and Windows records are
// UTF-16BE, Macintosh Roman records are MacRoman; other platform/encoding
// combinations are skipped.
func decodeName(platform font.PlatformID, enc font.EncodingID, value []byte) (string, bool) {
	var decoder *encoding.Decoder
	if platform == font.PlatformUnicode || platform == font.PlatformWindows {
		decoder = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	} else if platform == font.PlatformMacintosh && enc == font.EncodingMacintoshRoman {
		decoder = charmap.Macintosh.NewDecoder()
	} else {
		return "", false
	}
	s, _, err := transform.String(decoder, string(value))
	if err != nil {
		return "", false
	}
	return s, true
}
