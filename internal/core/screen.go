package core

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Cell is one character position of the terminal screen.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

var blankCell = Cell{Rune: ' '}

// Screen is a 2D character buffer for rendering the game in a terminal.
// It implements Canvas by rasterizing world-space primitives into cells, so the
// game draws once and every adapter decides how to present it.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 1),
		height: max(height, 1),
	}
	s.allocate()
	s.Fill(blankCell)
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded; the next frame
// repaints everything anyway.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Fill(blankCell)
}

// Fill sets every cell to c.
func (s *Screen) Fill(c Cell) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = c
		}
	}
}

// Set places a rune at the given cell, keeping the background.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, fg Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].Rune = r
	s.cells[y][x].Fg = fg
}

// SetBg paints the background of a cell and blanks its glyph.
func (s *Screen) SetBg(x, y int, bg Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: ' ', Bg: bg}
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// Get returns the rune at the given position.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// DrawText writes a string horizontally starting at cell (x, y).
func (s *Screen) DrawText(x, y int, text string, fg Color) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r, fg)
		i++
	}
}

// String converts the screen buffer to plain text, one row per line.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the glyphs of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Contains reports whether any row contains text.
func (s *Screen) Contains(text string) bool {
	for y := 0; y < s.height; y++ {
		if strings.Contains(s.Row(y), text) {
			return true
		}
	}
	return false
}

// world <-> cell mapping

func (s *Screen) scaleX() float64 { return float64(s.width) / WorldWidth }
func (s *Screen) scaleY() float64 { return float64(s.height) / WorldHeight }

// ToCell maps a world point to the cell containing it.
func (s *Screen) ToCell(p Vec2) (int, int) {
	return int(math.Floor(p.X * s.scaleX())), int(math.Floor(p.Y * s.scaleY()))
}

// cellCenter maps a cell back to the world point at its centre.
func (s *Screen) cellCenter(x, y int) Vec2 {
	return Vec2{
		X: (float64(x) + 0.5) / s.scaleX(),
		Y: (float64(y) + 0.5) / s.scaleY(),
	}
}

// cellBounds returns the inclusive cell range covering a world rectangle.
func (s *Screen) cellBounds(r Rect) (x0, y0, x1, y1 int) {
	x0, y0 = s.ToCell(Vec2{X: r.X, Y: r.Y})
	x1, y1 = s.ToCell(Vec2{X: r.Right(), Y: r.Bottom()})
	return Clamp(x0, 0, s.width-1), Clamp(y0, 0, s.height-1),
		Clamp(x1, 0, s.width-1), Clamp(y1, 0, s.height-1)
}

// Clear implements Canvas.
func (s *Screen) Clear(c Color) {
	s.Fill(Cell{Rune: ' ', Bg: c})
}

// FillCircle implements Canvas. Discs smaller than a cell become a glyph.
func (s *Screen) FillCircle(center Vec2, radius float64, c Color) {
	if radius*s.scaleX() < 1 || radius*s.scaleY() < 1 {
		x, y := s.ToCell(center)
		s.Set(x, y, '●', c)
		return
	}
	x0, y0, x1, y1 := s.cellBounds(RectAround(center, radius*2, radius*2))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if Distance(s.cellCenter(x, y), center) <= radius {
				s.SetBg(x, y, c)
			}
		}
	}
}

// StrokeCircle implements Canvas by marking cells near the ring.
func (s *Screen) StrokeCircle(center Vec2, radius, width float64, c Color) {
	// Half a cell of tolerance so the ring stays continuous.
	tol := math.Max(width/2, 0.5/math.Min(s.scaleX(), s.scaleY()))
	x0, y0, x1, y1 := s.cellBounds(RectAround(center, (radius+tol)*2, (radius+tol)*2))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if math.Abs(Distance(s.cellCenter(x, y), center)-radius) <= tol {
				s.Set(x, y, '·', c)
			}
		}
	}
}

// FillRect implements Canvas.
func (s *Screen) FillRect(r Rect, c Color) {
	if r.W*s.scaleX() < 1 && r.H*s.scaleY() < 1 {
		x, y := s.ToCell(r.Center())
		s.Set(x, y, '█', c)
		return
	}
	x0, y0, x1, y1 := s.cellBounds(r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.SetBg(x, y, c)
		}
	}
}

// StrokeRect implements Canvas with box-drawing characters.
func (s *Screen) StrokeRect(r Rect, _ float64, c Color) {
	x0, y0, x1, y1 := s.cellBounds(r)
	for x := x0 + 1; x < x1; x++ {
		s.Set(x, y0, '─', c)
		s.Set(x, y1, '─', c)
	}
	for y := y0 + 1; y < y1; y++ {
		s.Set(x0, y, '│', c)
		s.Set(x1, y, '│', c)
	}
	s.Set(x0, y0, '┌', c)
	s.Set(x1, y0, '┐', c)
	s.Set(x0, y1, '└', c)
	s.Set(x1, y1, '┘', c)
}

// Line implements Canvas using Bresenham in cell space.
func (s *Screen) Line(from, to Vec2, _ float64, c Color) {
	x0, y0 := s.ToCell(from)
	x1, y1 := s.ToCell(to)
	glyph := lineGlyph(to.X-from.X, to.Y-from.Y)

	dx := Abs(x1 - x0)
	dy := -Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		s.Set(x0, y0, glyph, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// lineGlyph picks a character matching the segment's slope.
func lineGlyph(dx, dy float64) rune {
	switch {
	case math.Abs(dy) < math.Abs(dx)/3:
		return '─'
	case math.Abs(dx) < math.Abs(dy)/3:
		return '│'
	case dx*dy > 0:
		return '\\'
	default:
		return '/'
	}
}

// Polygon implements Canvas. Polygons smaller than a cell become a star glyph.
func (s *Screen) Polygon(points []Vec2, c Color) {
	if len(points) < 3 {
		return
	}
	minP, maxP := points[0], points[0]
	for _, p := range points[1:] {
		minP.X, minP.Y = math.Min(minP.X, p.X), math.Min(minP.Y, p.Y)
		maxP.X, maxP.Y = math.Max(maxP.X, p.X), math.Max(maxP.Y, p.Y)
	}
	bounds := Rect{X: minP.X, Y: minP.Y, W: maxP.X - minP.X, H: maxP.Y - minP.Y}
	if bounds.W*s.scaleX() < 2 || bounds.H*s.scaleY() < 2 {
		x, y := s.ToCell(bounds.Center())
		s.Set(x, y, '*', c)
		return
	}
	x0, y0, x1, y1 := s.cellBounds(bounds)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if pointInPolygon(s.cellCenter(x, y), points) {
				s.SetBg(x, y, c)
			}
		}
	}
}

// pointInPolygon is the even-odd ray casting test.
func pointInPolygon(p Vec2, poly []Vec2) bool {
	inside := false
	j := len(poly) - 1
	for i := range poly {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// Text implements Canvas.
func (s *Screen) Text(pos Vec2, text string, c Color, align Align) {
	x, y := s.ToCell(pos)
	switch align {
	case AlignCenter:
		x -= utf8.RuneCountInString(text) / 2
	case AlignRight:
		x -= utf8.RuneCountInString(text)
	}
	s.DrawText(x, y, text, c)
}

// Tint implements Canvas. A terminal cannot blend, so only strong tints
// (at least half opaque) are shown, by repainting every background.
func (s *Screen) Tint(c Color, alpha float64) {
	if alpha < 0.5 {
		return
	}
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x].Bg = c
			if s.cells[y][x].Fg == c {
				s.cells[y][x].Rune = ' '
			}
		}
	}
}

var _ Canvas = (*Screen)(nil)
