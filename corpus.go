package fontfuzz

import (
	"encoding/binary"
	"math"
	"sort"

	"github.com/tdewolff/font"
	"github.com/tdewolff/parse/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Name is a single name table record for a built font.
type Name struct {
	Platform font.PlatformID
	Encoding font.EncodingID
	Language uint16
	ID       font.NameID
	Value    string
}

// WindowsName returns a name record for the Windows platform in US English.
func WindowsName(id font.NameID, value string) Name {
	return Name{
		Platform: font.PlatformWindows,
		Encoding: font.EncodingID(1), // Unicode BMP
		Language: 0x0409,
		ID:       id,
		Value:    value,
	}
}

// MacintoshName returns a name record for the Macintosh platform in English.
func MacintoshName(id font.NameID, value string) Name {
	return Name{
		Platform: font.PlatformMacintosh,
		Encoding: font.EncodingMacintoshRoman,
		ID:       id,
		Value:    value,
	}
}

func (name Name) encode() []byte {
	var encoder *encoding.Encoder
	if name.Platform == font.PlatformMacintosh {
		encoder = charmap.Macintosh.NewEncoder()
	} else {
		encoder = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	}
	s, _, err := transform.String(encoder, name.Value)
	if err != nil {
		return []byte(name.Value)
	}
	return []byte(s)
}

// Seeds returns the initial corpus for the fuzzer: a bare font, a fully named
// font, a font with a Macintosh-encoded name, and a two-font collection.
func Seeds() [][]byte {
	return [][]byte{
		BuildTTF(),
		BuildTTF(
			WindowsName(NameFontFamily, "Sans Serif"),
			WindowsName(NameFontSubfamily, "Regular"),
			WindowsName(NamePostScriptName, "SansSerif-Regular"),
		),
		BuildTTF(MacintoshName(NameFontFamily, "Sans Serif")),
		BuildTTC(nil, []Name{WindowsName(NameFontFamily, "Sans Serif Two")}),
	}
}

// BuildTTF returns a minimal valid TrueType font with a single empty glyph
// and the given name table records.
func BuildTTF(names ...Name) []byte {
	return writeSFNT(0, buildTables(names))
}

// BuildTTC returns a font collection with one minimal TrueType font per
// entry, each with its own name table records.
func BuildTTC(fonts ...[]Name) []byte {
	w := parse.NewBinaryWriter([]byte{})
	w.WriteString("ttcf")
	w.WriteUint16(1) // majorVersion
	w.WriteUint16(0) // minorVersion
	w.WriteUint32(uint32(len(fonts)))

	// table offsets inside each font are absolute file offsets
	offset := uint32(12 + 4*len(fonts))
	blobs := make([][]byte, len(fonts))
	for i, names := range fonts {
		blobs[i] = writeSFNT(offset, buildTables(names))
		w.WriteUint32(offset)
		offset += uint32(len(blobs[i]))
	}
	for _, blob := range blobs {
		w.WriteBytes(blob)
	}
	return w.Bytes()
}

// writeSFNT writes the table directory and tables the way they appear in a
// font file, with table offsets relative to base. Tables are padded to four
// bytes and get their checksum in the table record.
func writeSFNT(base uint32, tables map[string][]byte) []byte {
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	w := parse.NewBinaryWriter([]byte{})
	numTables := uint16(len(tags))
	entrySelector := uint16(math.Log2(float64(numTables)))
	searchRange := uint16(1 << (entrySelector + 4))
	w.WriteUint32(0x00010000)                 // sfntVersion
	w.WriteUint16(numTables)                  // numTables
	w.WriteUint16(searchRange)                // searchRange
	w.WriteUint16(entrySelector)              // entrySelector
	w.WriteUint16(numTables<<4 - searchRange) // rangeShift

	// we'll write the table records at the end
	w.WriteBytes(make([]byte, numTables<<4))

	offsets, lengths := make([]uint32, numTables), make([]uint32, numTables)
	for i, tag := range tags {
		offsets[i] = uint32(w.Len())
		w.WriteBytes(tables[tag])
		lengths[i] = uint32(w.Len()) - offsets[i]

		padding := (4 - lengths[i]&3) & 3
		for j := 0; j < int(padding); j++ {
			w.WriteByte(0)
		}
	}

	buf := w.Bytes()
	for i, tag := range tags {
		pos := 12 + i<<4
		copy(buf[pos:], []byte(tag))
		padding := (4 - lengths[i]&3) & 3
		checksum := calcChecksum(buf[offsets[i] : offsets[i]+lengths[i]+padding])
		binary.BigEndian.PutUint32(buf[pos+4:], checksum)
		binary.BigEndian.PutUint32(buf[pos+8:], base+offsets[i])
		binary.BigEndian.PutUint32(buf[pos+12:], lengths[i])
	}
	return buf
}

// buildTables returns the smallest table set that parses as a regular
// TrueType font: one glyph without an outline and one format 0 cmap subtable.
func buildTables(names []Name) map[string][]byte {
	head := parse.NewBinaryWriter([]byte{})
	head.WriteUint16(1)          // majorVersion
	head.WriteUint16(0)          // minorVersion
	head.WriteUint32(0x00010000) // fontRevision
	head.WriteUint32(0)          // checksumAdjustment
	head.WriteUint32(0x5F0F3CF5) // magicNumber
	head.WriteUint16(0x0003)     // flags
	head.WriteUint16(1000)       // unitsPerEm
	head.WriteUint32(0)          // created
	head.WriteUint32(0)
	head.WriteUint32(0) // modified
	head.WriteUint32(0)
	head.WriteInt16(0)  // xMin
	head.WriteInt16(0)  // yMin
	head.WriteInt16(0)  // xMax
	head.WriteInt16(0)  // yMax
	head.WriteUint16(0) // macStyle
	head.WriteUint16(8) // lowestRecPPEM
	head.WriteInt16(2)  // fontDirectionHint
	head.WriteInt16(0)  // indexToLocFormat
	head.WriteInt16(0)  // glyphDataFormat

	hhea := parse.NewBinaryWriter([]byte{})
	hhea.WriteUint16(1)   // majorVersion
	hhea.WriteUint16(0)   // minorVersion
	hhea.WriteInt16(800)  // ascender
	hhea.WriteInt16(-200) // descender
	hhea.WriteInt16(0)    // lineGap
	hhea.WriteUint16(500) // advanceWidthMax
	hhea.WriteInt16(0)    // minLeftSideBearing
	hhea.WriteInt16(0)    // minRightSideBearing
	hhea.WriteInt16(0)    // xMaxExtent
	hhea.WriteInt16(1)    // caretSlopeRise
	hhea.WriteInt16(0)    // caretSlopeRun
	hhea.WriteInt16(0)    // caretOffset
	hhea.WriteInt16(0)    // reserved
	hhea.WriteInt16(0)    // reserved
	hhea.WriteInt16(0)    // reserved
	hhea.WriteInt16(0)    // reserved
	hhea.WriteInt16(0)    // metricDataFormat
	hhea.WriteUint16(1)   // numberOfHMetrics

	maxp := parse.NewBinaryWriter([]byte{})
	maxp.WriteUint32(0x00010000) // version
	maxp.WriteUint16(1)          // numGlyphs
	for i := 0; i < 13; i++ { // maxPoints through maxComponentDepth
		maxp.WriteUint16(0)
	}

	hmtx := parse.NewBinaryWriter([]byte{})
	hmtx.WriteUint16(500) // advanceWidth
	hmtx.WriteInt16(0)    // leftSideBearing

	post := parse.NewBinaryWriter([]byte{})
	post.WriteUint32(0x00030000) // version, no glyph names
	post.WriteUint32(0)          // italicAngle
	post.WriteInt16(0)           // underlinePosition
	post.WriteInt16(0)           // underlineThickness
	post.WriteUint32(0)          // isFixedPitch
	post.WriteUint32(0)          // minMemType42
	post.WriteUint32(0)          // maxMemType42
	post.WriteUint32(0)          // minMemType1
	post.WriteUint32(0)          // maxMemType1

	loca := parse.NewBinaryWriter([]byte{})
	loca.WriteUint16(0) // glyph 0 has no outline
	loca.WriteUint16(0)

	glyf := parse.NewBinaryWriter([]byte{})
	glyf.WriteUint32(0)

	cmap := parse.NewBinaryWriter([]byte{})
	cmap.WriteUint16(0)  // version
	cmap.WriteUint16(1)  // numTables
	cmap.WriteUint16(1)  // platformID Macintosh
	cmap.WriteUint16(0)  // encodingID Roman
	cmap.WriteUint32(12) // subtableOffset
	cmap.WriteUint16(0)  // format
	cmap.WriteUint16(262)
	cmap.WriteUint16(0) // language
	cmap.WriteBytes(make([]byte, 256))

	name := parse.NewBinaryWriter([]byte{})
	name.WriteUint16(0) // version
	name.WriteUint16(uint16(len(names)))
	name.WriteUint16(uint16(6 + 12*len(names))) // storageOffset
	storage := parse.NewBinaryWriter([]byte{})
	for _, record := range names {
		value := record.encode()
		name.WriteUint16(uint16(record.Platform))
		name.WriteUint16(uint16(record.Encoding))
		name.WriteUint16(record.Language)
		name.WriteUint16(uint16(record.ID))
		name.WriteUint16(uint16(len(value)))
		name.WriteUint16(uint16(storage.Len()))
		storage.WriteBytes(value)
	}
	name.WriteBytes(storage.Bytes())

	return map[string][]byte{
		"cmap": cmap.Bytes(),
		"glyf": glyf.Bytes(),
		"head": head.Bytes(),
		"hhea": hhea.Bytes(),
		"hmtx": hmtx.Bytes(),
		"loca": loca.Bytes(),
		"maxp": maxp.Bytes(),
		"name": name.Bytes(),
		"post": post.Bytes(),
	}
}

func calcChecksum(b []byte) uint32 {
	if len(b)%4 != 0 {
		panic("data not multiple of four bytes")
	}
	var sum uint32
	for i := 0; i < len(b); i += 4 {
		sum += binary.BigEndian.Uint32(b[i : i+4])
	}
	return sum
}
