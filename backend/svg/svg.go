package svg

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/conscript/glyphlayout/core/glyph"
	"github.com/conscript/glyphlayout/engine/layout"
)

// Options controls the visual styling of an emitted document.
type Options struct {
	Stroke        string  // stroke color for glyph boxes and paths
	VirtualStroke string  // stroke color for virtual placeholder boxes
	StrokeWidth   float64 // stroke width in layout units
	ShowBoxes     bool    // draw the glyph box around stored glyphs too
}

// DefaultOptions returns the styling used when callers pass the zero value.
func DefaultOptions() Options {
	return Options{
		Stroke:        "#222",
		VirtualStroke: "#888",
		StrokeWidth:   1,
	}
}

// ViewBox renders bounds as an SVG viewBox attribute value,
// "minX minY width height".
func ViewBox(b layout.Bounds) string {
	return num(b.MinX) + " " + num(b.MinY) + " " + num(b.Width) + " " + num(b.Height)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Document renders a layout result as a complete SVG document.
func Document(res layout.Result, opts Options) string {
	var sb strings.Builder
	Write(&sb, res, opts) // strings.Builder never errors
	return sb.String()
}

// Write renders a layout result as a complete SVG document onto w.
func Write(w io.Writer, res layout.Result, opts Options) error {
	if opts == (Options{}) {
		opts = DefaultOptions()
	}
	tracer().Debugf("writing SVG document with %d glyphs", len(res.Positions))
	b := res.Bounds
	_, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%s\" width=\"%s\" height=\"%s\">\n",
		ViewBox(b), num(b.Width), num(b.Height))
	if err != nil {
		return err
	}
	for _, pos := range res.Positions {
		if err := writeGlyph(w, pos, opts); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w, "</svg>")
	return err
}

func writeGlyph(w io.Writer, pos layout.PositionedGlyph, opts Options) error {
	transform := fmt.Sprintf("translate(%s %s)", num(pos.X), num(pos.Y))
	if pos.Rotation != 0 {
		transform += fmt.Sprintf(" rotate(%s %s %s)",
			num(pos.Rotation), num(pos.Width/2), num(pos.Height/2))
	}
	if _, err := fmt.Fprintf(w, "  <g transform=%q>\n", transform); err != nil {
		return err
	}
	if pos.Glyph.IsVirtual {
		if err := writePlaceholder(w, pos, opts); err != nil {
			return err
		}
	} else if err := writeStored(w, pos, opts); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "  </g>")
	return err
}

// writePlaceholder draws a dashed box with the IPA character centered in it.
func writePlaceholder(w io.Writer, pos layout.PositionedGlyph, opts Options) error {
	_, err := fmt.Fprintf(w,
		"    <rect width=\"%s\" height=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\" stroke-dasharray=\"3 2\"/>\n",
		num(pos.Width), num(pos.Height), opts.VirtualStroke, num(opts.StrokeWidth))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w,
		"    <text x=\"%s\" y=\"%s\" font-size=\"%s\" text-anchor=\"middle\" dominant-baseline=\"central\">%s</text>\n",
		num(pos.Width/2), num(pos.Height/2), num(pos.Height*0.6), escape(pos.Glyph.Payload.Char))
	return err
}

func writeStored(w io.Writer, pos layout.PositionedGlyph, opts Options) error {
	if opts.ShowBoxes {
		_, err := fmt.Fprintf(w,
			"    <rect width=\"%s\" height=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\"/>\n",
			num(pos.Width), num(pos.Height), opts.Stroke, num(opts.StrokeWidth))
		if err != nil {
			return err
		}
	}
	if pos.Glyph.Payload.Kind == glyph.StoredPayload && pos.Glyph.Payload.Path != "" {
		_, err := fmt.Fprintf(w,
			"    <path d=%q fill=\"none\" stroke=\"%s\" stroke-width=\"%s\"/>\n",
			pos.Glyph.Payload.Path, opts.Stroke, num(opts.StrokeWidth))
		return err
	}
	// a stored glyph without path data keeps its box visible
	_, err := fmt.Fprintf(w,
		"    <rect width=\"%s\" height=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\"><title>%s</title></rect>\n",
		num(pos.Width), num(pos.Height), opts.Stroke, num(opts.StrokeWidth), escape(pos.Glyph.Name))
	return err
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\"", "&quot;")

func escape(s string) string {
	return escaper.Replace(s)
}
