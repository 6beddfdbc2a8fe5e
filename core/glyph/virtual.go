package glyph

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"golang.org/x/text/unicode/norm"
)

// VirtualID derives a stable negative id for an IPA character.
//
// The character is NFC-normalized before hashing, so canonically equivalent
// spellings (composed vs. decomposed diacritics) map to the same id. The id
// is deterministic across calls and processes, but not guaranteed unique:
// distinct characters may collide. Virtual ids live only for the duration of
// one layout pass and are never persisted, so collisions are accepted.
func VirtualID(char string) int64 {
	h := xxhash.Sum64String(norm.NFC.String(char))
	return -(int64(h%0x7fffffff) + 1)
}

// Virtual synthesizes a placeholder glyph for an IPA character that has no
// grapheme mapping. The payload instructs renderers to draw a dashed box
// with the character inside.
func Virtual(char string, srcIndex int) Renderable {
	id := VirtualID(char)
	tracer().Debugf("synthesizing virtual glyph %d for IPA %q", id, char)
	return Renderable{
		ID:          id,
		Name:        "ipa:" + char,
		Payload:     Payload{Kind: PlaceholderPayload, Char: char},
		IsVirtual:   true,
		IPAChar:     char,
		SourceIndex: srcIndex,
	}
}

// SplitIPA splits a run of IPA text into user-perceived characters, i.e.
// grapheme clusters. Combining diacritics stay attached to their base, so
// "ə̃" comes out as a single character.
func SplitIPA(s string) []string {
	if s == "" {
		return nil
	}
	grapheme.SetupGraphemeClasses()
	splitter := segment.NewSegmenter(grapheme.NewBreaker(1))
	splitter.Init(strings.NewReader(s))
	var chars []string
	for splitter.Next() {
		chars = append(chars, string(splitter.Bytes()))
	}
	return chars
}
