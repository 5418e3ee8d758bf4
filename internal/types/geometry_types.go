package types

// Alignment determines which dimension cycles and how position is anchored
type Alignment string

const (
	AlignLeft   Alignment = "l"
	AlignRight  Alignment = "r"
	AlignCenter Alignment = "c"
	AlignTop    Alignment = "t"
	AlignBottom Alignment = "b"
)

// AlignmentClass groups alignments by the axis they cycle
type AlignmentClass int

const (
	ClassHorizontal AlignmentClass = iota // l/r/c cycle width
	ClassVertical                         // t/b cycle height
)

// ParseAlignment converts a CLI token to an Alignment
func ParseAlignment(s string) (Alignment, bool) {
	switch s {
	case "l", "left":
		return AlignLeft, true
	case "r", "right":
		return AlignRight, true
	case "c", "center":
		return AlignCenter, true
	case "t", "top":
		return AlignTop, true
	case "b", "bottom":
		return AlignBottom, true
	default:
		return "", false
	}
}

// Class returns the axis class for an alignment
func (a Alignment) Class() AlignmentClass {
	switch a {
	case AlignTop, AlignBottom:
		return ClassVertical
	default:
		return ClassHorizontal
	}
}

// String returns the long-form name of an alignment
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	case AlignTop:
		return "top"
	case AlignBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Valid reports whether a is one of the five alignment modes
func (a Alignment) Valid() bool {
	switch a {
	case AlignLeft, AlignRight, AlignCenter, AlignTop, AlignBottom:
		return true
	}
	return false
}

// Rect represents pixel bounds on screen
type Rect struct {
	X      float64 // Left edge (pixels from screen left)
	Y      float64 // Top edge (pixels from screen top)
	Width  float64 // Width in pixels
	Height float64 // Height in pixels
}

// Point represents a 2D coordinate
type Point struct {
	X float64
	Y float64
}

// Origin returns the top-left corner of a Rect
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// SameOrigin reports whether two rects share a top-left corner
func (r Rect) SameOrigin(other Rect) bool {
	return r.X == other.X && r.Y == other.Y
}

// SameSize reports whether two rects have identical dimensions
func (r Rect) SameSize(other Rect) bool {
	return r.Width == other.Width && r.Height == other.Height
}

// PositiveSize reports whether the rect has usable dimensions.
// Cached geometry that fails this check is discarded.
func (r Rect) PositiveSize() bool {
	return r.Width > 0 && r.Height > 0
}

// Process identifies an application process reported by the automation bridge
type Process struct {
	Name      string `json:"name"`
	PID       int    `json:"pid"`
	Frontmost bool   `json:"frontmost"`
}
