// Package export renders game snapshots to PNG images.
package export

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/vovakirdan/tui-stack/internal/games/stack"
)

// Options configures the image.
type Options struct {
	Width, Height int
	Scale         float64 // Pixels per world unit
	FontSize      float64
	Style         stack.RampStyle
}

// DefaultOptions returns a portrait 650x1000 canvas at scale 25.
func DefaultOptions() Options {
	return Options{
		Width:    650,
		Height:   1000,
		Scale:    25,
		FontSize: 48,
		Style:    stack.RampStyle{Lightening: 1.4, Desaturation: 0.4, GroupSize: 5},
	}
}

// Render draws the background ramp, every visible face and the score.
func Render(snap stack.Snapshot, opts Options) (image.Image, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", opts.Width, opts.Height)
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetColor(color.Black)
	dc.Clear()

	group := opts.Style.GroupSize
	if group < 1 {
		group = 1
	}
	for i, c := range stack.Ramp(snap.Background, opts.Height, opts.Style) {
		dc.SetColor(c)
		dc.DrawRectangle(0, float64(i*group), float64(opts.Width), float64(group))
		dc.Fill()
	}

	vp := stack.Viewport{Width: opts.Width, Height: opts.Height, ScaleX: opts.Scale, ScaleY: opts.Scale}
	for _, q := range snap.Faces() {
		pts := vp.Polygon(q)
		dc.NewSubPath()
		dc.MoveTo(pts[0][0], pts[0][1])
		for _, p := range pts[1:] {
			dc.LineTo(p[0], p[1])
		}
		dc.ClosePath()
		dc.SetColor(q.Color)
		dc.Fill()
	}

	if opts.FontSize > 0 {
		ttf, err := truetype.Parse(gomono.TTF)
		if err != nil {
			return nil, fmt.Errorf("parse font: %w", err)
		}
		dc.SetFontFace(truetype.NewFace(ttf, &truetype.Options{
			Size:    opts.FontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		}))
		dc.SetColor(color.White)
		dc.DrawStringAnchored(fmt.Sprintf("%d", snap.Score), float64(opts.Width)/2, opts.FontSize, 0.5, 0.5)
		if snap.GameOver {
			dc.DrawStringAnchored("GAME OVER", float64(opts.Width)/2, float64(opts.Height)-opts.FontSize, 0.5, 0.5)
		}
	}

	return dc.Image(), nil
}

// WritePNG renders snap and encodes it to w.
func WritePNG(w io.Writer, snap stack.Snapshot, opts Options) error {
	img, err := Render(snap, opts)
	if err != nil {
		return err
	}
	dc := gg.NewContextForImage(img)
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG renders snap to a PNG file.
func SavePNG(path string, snap stack.Snapshot, opts Options) error {
	img, err := Render(snap, opts)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}
