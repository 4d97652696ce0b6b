// Package render rasterizes the visible cards of a stack into an image.
package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/go-drift/cardstack/pkg/cardstack"
	"github.com/go-drift/cardstack/pkg/graphics"
)

// Options controls the output image.
type Options struct {
	Width, Height int
	// CardWidth and CardHeight are fractions of the canvas.
	CardWidth, CardHeight float64
	Background            graphics.Color
	TopCard               graphics.Color
	NextCard              graphics.Color
	Text                  graphics.Color
}

// DefaultOptions returns options for a canvas of the given size.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:      width,
		Height:     height,
		CardWidth:  0.8,
		CardHeight: 0.7,
		Background: graphics.RGB(0xF2, 0xF2, 0xF5),
		TopCard:    graphics.RGB(0x3D, 0x5A, 0xFE),
		NextCard:   graphics.RGB(0x9F, 0xA8, 0xDA),
		Text:       graphics.White,
	}
}

// Labeler returns the text drawn on a card.
type Labeler[T any] func(T) string

// Stack draws the stack's visible cards, the card beneath first. The top
// card is translated and rotated about its center; the card beneath is
// scaled about its center.
func Stack[T any](stack *cardstack.Stack[T], label Labeler[T], opts Options) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("render: invalid canvas %dx%d", opts.Width, opts.Height)
	}
	dst := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	for _, card := range stack.VisibleCards() {
		fill := opts.NextCard
		if card.IsTop {
			fill = opts.TopCard
		}
		corners := cardCorners(card.Offset, card.Rotation, card.Scale, opts)
		fillPolygon(dst, corners, fill)
		if label != nil {
			drawLabel(dst, label(card.Item), center(opts).Add(card.Offset), opts.Text)
		}
	}
	return dst, nil
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	return f.Close()
}

func center(opts Options) graphics.Offset {
	return graphics.Offset{X: float64(opts.Width) / 2, Y: float64(opts.Height) / 2}
}

// cardCorners returns the card rectangle's corners after scaling and
// rotating about the card center, then translating by offset.
func cardCorners(offset graphics.Offset, rotationDeg, scale float64, opts Options) [4]graphics.Offset {
	halfW := float64(opts.Width) * opts.CardWidth / 2 * scale
	halfH := float64(opts.Height) * opts.CardHeight / 2 * scale
	rad := rotationDeg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	c := center(opts).Add(offset)

	local := [4]graphics.Offset{
		{X: -halfW, Y: -halfH},
		{X: halfW, Y: -halfH},
		{X: halfW, Y: halfH},
		{X: -halfW, Y: halfH},
	}
	var out [4]graphics.Offset
	for i, p := range local {
		out[i] = graphics.Offset{
			X: c.X + p.X*cos - p.Y*sin,
			Y: c.Y + p.X*sin + p.Y*cos,
		}
	}
	return out
}

func fillPolygon(dst *image.RGBA, pts [4]graphics.Offset, fill graphics.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(fill), image.Point{})
}

func drawLabel(dst *image.RGBA, text string, at graphics.Offset, c graphics.Color) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(int(at.X)-width/2, int(at.Y)+face.Ascent/2),
	}
	d.DrawString(text)
}
