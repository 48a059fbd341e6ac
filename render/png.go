package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// WriteImage encodes img as a PNG. Raster encoding is a one-line stdlib
// call with no corpus library doing it better, so this is the one
// ambient concern this module leaves on the standard library.
func WriteImage(img *Image, w io.Writer) error {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			px := img.At(x, y)
			out.Set(x, y, color.RGBA{R: px[0], G: px[1], B: px[2], A: 255})
		}
	}
	return png.Encode(w, out)
}
