package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/cricket-arcade/internal/core"
)

// textScale enlarges the 7x13 bitmap font to HUD size.
const textScale = 2

var (
	fontFace = text.NewGoXFace(basicfont.Face7x13)

	whiteImage = ebiten.NewImage(3, 3)
	// whiteSubImage avoids bleeding at the texture edge when filling paths.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas draws onto an ebiten image sized to the world, one pixel per unit.
type Canvas struct {
	dst *ebiten.Image
}

// NewCanvas wraps dst.
func NewCanvas(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst}
}

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Clear implements core.Canvas.
func (c *Canvas) Clear(col core.Color) {
	c.dst.Fill(rgba(col))
}

// FillCircle implements core.Canvas.
func (c *Canvas) FillCircle(center core.Vec2, radius float64, col core.Color) {
	vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), rgba(col), true)
}

// StrokeCircle implements core.Canvas.
func (c *Canvas) StrokeCircle(center core.Vec2, radius, width float64, col core.Color) {
	vector.StrokeCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), float32(width), rgba(col), true)
}

// FillRect implements core.Canvas.
func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(col), false)
}

// StrokeRect implements core.Canvas.
func (c *Canvas) StrokeRect(r core.Rect, width float64, col core.Color) {
	vector.StrokeRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(width), rgba(col), false)
}

// Line implements core.Canvas.
func (c *Canvas) Line(from, to core.Vec2, width float64, col core.Color) {
	vector.StrokeLine(c.dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(width), rgba(col), true)
}

// Polygon implements core.Canvas.
func (c *Canvas) Polygon(points []core.Vec2, col core.Color) {
	if len(points) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b := col.RGB()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 255
		vs[i].ColorG = float32(g) / 255
		vs[i].ColorB = float32(b) / 255
		vs[i].ColorA = 1
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	c.dst.DrawTriangles(vs, is, whiteSubImage, op)
}

// Text implements core.Canvas. Left and right aligned text hangs below pos;
// centred text is centred on it in both directions.
func (c *Canvas) Text(pos core.Vec2, s string, col core.Color, align core.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(rgba(col))

	switch align {
	case core.AlignCenter:
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	case core.AlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	text.Draw(c.dst, s, fontFace, op)
}

// Tint implements core.Canvas.
func (c *Canvas) Tint(col core.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	r, g, b := col.RGB()
	a := uint8(min(alpha, 1) * 255)
	bounds := c.dst.Bounds()
	vector.DrawFilledRect(c.dst, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()),
		color.NRGBA{R: r, G: g, B: b, A: a}, false)
}

var _ core.Canvas = (*Canvas)(nil)
