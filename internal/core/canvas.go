package core

// Align controls horizontal text placement relative to the anchor point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Canvas is the drawing surface handed to entities each frame. Coordinates are
// world units (WorldWidth x WorldHeight); implementations scale as needed.
// Drawing never fails: surfaces that cannot represent a primitive skip it.
type Canvas interface {
	// Clear fills the whole surface with c.
	Clear(c Color)
	// FillCircle draws a solid disc.
	FillCircle(center Vec2, radius float64, c Color)
	// StrokeCircle draws a ring of the given line width.
	StrokeCircle(center Vec2, radius, width float64, c Color)
	// FillRect draws a solid rectangle.
	FillRect(r Rect, c Color)
	// StrokeRect draws a rectangle outline.
	StrokeRect(r Rect, width float64, c Color)
	// Line draws a straight segment.
	Line(from, to Vec2, width float64, c Color)
	// Polygon draws a filled closed polygon.
	Polygon(points []Vec2, c Color)
	// Text draws a single line of text anchored at pos.
	Text(pos Vec2, s string, c Color, align Align)
	// Tint blends c over the whole surface with the given opacity in [0, 1].
	Tint(c Color, alpha float64)
}
