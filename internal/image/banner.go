package imagepkg

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/youruser/pengdeck/internal/deck"
)

// cssToNRGBA covers the CSS color names the gradient deriver emits.
var cssToNRGBA = map[string]color.NRGBA{
	"blue":   {R: 0x1e, G: 0x3a, B: 0x8a, A: 0xff},
	"red":    {R: 0x7f, G: 0x1d, B: 0x1d, A: 0xff},
	"yellow": {R: 0xa1, G: 0x62, B: 0x07, A: 0xff},
	"green":  {R: 0x14, G: 0x53, B: 0x2d, A: 0xff},
	"purple": {R: 0x58, G: 0x1c, B: 0x87, A: 0xff},
	"gray":   {R: 0x4b, G: 0x55, B: 0x63, A: 0xff},
}

func bandColor(name string) color.NRGBA {
	if c, ok := cssToNRGBA[name]; ok {
		return c
	}
	return cssToNRGBA["gray"]
}

// RenderGradientBanner paints a deck's gradient bands onto a
// width x height canvas and returns it as PNG bytes. Space past the
// last band (a part-filled deck under a fixed scale) stays the
// background color.
func RenderGradientBanner(bands []deck.GradientBand, width, height int) ([]byte, error) {
	canvas := imaging.New(width, height, color.NRGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff})

	for _, band := range bands {
		x0 := int(band.Start / 100 * float64(width))
		x1 := int(band.End / 100 * float64(width))
		if x1 <= x0 {
			continue
		}
		stripe := imaging.New(x1-x0, height, bandColor(band.Color))
		canvas = imaging.Paste(canvas, stripe, image.Pt(x0, 0))
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, canvas); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
