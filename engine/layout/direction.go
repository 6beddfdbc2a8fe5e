package layout

// Direction is a directional axis of a writing system.
type Direction int

// Directions to lay glyphs out in.
const (
	LeftToRight Direction = iota
	RightToLeft
	TopToBottom
	BottomToTop
)

func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "ltr"
	case RightToLeft:
		return "rtl"
	case TopToBottom:
		return "ttb"
	case BottomToTop:
		return "btt"
	}
	return "ltr"
}

// ParseDirection maps a direction name to its Direction. Unknown names
// resolve to left-to-right.
func ParseDirection(s string) Direction {
	switch s {
	case "rtl":
		return RightToLeft
	case "ttb":
		return TopToBottom
	case "btt":
		return BottomToTop
	}
	return LeftToRight
}

// IsHorizontal reports whether d runs along the x-axis.
func (d Direction) IsHorizontal() bool {
	return d == LeftToRight || d == RightToLeft
}

// IsReversed reports whether d runs against the positive axis, i.e.
// right-to-left or bottom-to-top.
func (d Direction) IsReversed() bool {
	return d == RightToLeft || d == BottomToTop
}
