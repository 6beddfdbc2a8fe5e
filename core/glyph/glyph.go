package glyph

import "fmt"

// Record is a stored glyph as supplied by the glyph database collaborator.
// Path holds the drawable content (e.g. SVG path data); the engine never
// interprets it. A record with a non-empty IPA field is a stored virtual
// placeholder: some databases persist placeholder entries under negative
// ids, and those resolve through the same lookup as real glyphs.
type Record struct {
	ID   int64
	Name string
	Path string
	IPA  string
}

// PayloadKind discriminates the drawable content of a glyph.
type PayloadKind int

// Payload kinds.
const (
	StoredPayload      PayloadKind = iota // a drawing from the glyph database
	PlaceholderPayload                    // dashed box plus a rendered character
)

// Payload is the opaque drawable content of a glyph. Renderers draw Path
// for stored glyphs; for placeholders they draw a dashed box with Char
// centered in it.
type Payload struct {
	Kind PayloadKind
	Path string
	Char string
}

// Renderable is a glyph ready for layout.
//
// Renderables are immutable once produced. The same glyph id may occur more
// than once in a sequence, so identity for rendering purposes is the pair
// (ID, position in sequence). SourceIndex is a monotonic counter assigned by
// the normalizer over the output sequence, starting at 0.
//
// Invariant: IsVirtual implies IPAChar is non-empty.
type Renderable struct {
	ID          int64
	Name        string
	Payload     Payload
	IsVirtual   bool
	IPAChar     string
	SourceIndex int
}

func (g Renderable) String() string {
	if g.IsVirtual {
		return fmt.Sprintf("(glyph %d ipa=%q)", g.ID, g.IPAChar)
	}
	return fmt.Sprintf("(glyph %d %q)", g.ID, g.Name)
}

// FromRecord wraps a stored glyph record into a renderable glyph.
// Records carrying an IPA character are re-materialized as virtual
// placeholders, keeping their stored id and name if present.
func FromRecord(rec Record, srcIndex int) Renderable {
	if rec.IPA != "" {
		g := Virtual(rec.IPA, srcIndex)
		if rec.ID != 0 {
			g.ID = rec.ID
		}
		if rec.Name != "" {
			g.Name = rec.Name
		}
		return g
	}
	return Renderable{
		ID:          rec.ID,
		Name:        rec.Name,
		Payload:     Payload{Kind: StoredPayload, Path: rec.Path},
		SourceIndex: srcIndex,
	}
}
