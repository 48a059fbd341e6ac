package render

import (
	"runtime"
	"sync"

	"github.com/udd-raytracer/udd/grid"
	"github.com/udd-raytracer/udd/kernel"
	"github.com/udd-raytracer/udd/scene"
	"github.com/udd-raytracer/udd/shade"
	"github.com/udd-raytracer/udd/trace"
)

// backgroundColor is the pixel value for primary rays that miss every
// triangle.
var backgroundColor = [3]uint8{10, 10, 16}

// Image is a row-major RGB pixel buffer.
type Image struct {
	Width, Height int
	Pixels        [][3]uint8
}

// At returns the pixel at (x, y).
func (im *Image) At(x, y int) [3]uint8 { return im.Pixels[y*im.Width+x] }

// RenderImage traces one primary ray per pixel against scn/g, shading
// each hit with shade.Shade. Rows are distributed across a bounded pool
// of runtime.GOMAXPROCS(0) worker goroutines; grid and trace hold no
// locks and allow concurrent read-only queries, so no synchronization
// beyond the row channel is needed.
func RenderImage(scn *scene.Scene, g *grid.Grid, cam Camera) *Image {
	img := &Image{Width: cam.Width, Height: cam.Height, Pixels: make([][3]uint8, cam.Width*cam.Height)}

	rows := make(chan int)
	var wg sync.WaitGroup

	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				renderRow(scn, g, cam, img, y)
			}
		}()
	}

	for y := 0; y < cam.Height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	return img
}

func renderRow(scn *scene.Scene, g *grid.Grid, cam Camera, img *Image, y int) {
	for x := 0; x < cam.Width; x++ {
		r := cam.PrimaryRay(float32(x), float32(y))

		entry, ok := trace.Locate(g, r)
		if !ok {
			img.Pixels[y*cam.Width+x] = backgroundColor
			continue
		}

		hit, ok := trace.Traverse(g, scn, r, entry, -1, kernel.MollerTrumbore)
		if !ok {
			img.Pixels[y*cam.Width+x] = backgroundColor
			continue
		}

		img.Pixels[y*cam.Width+x] = shade.Shade(scn, hit.Triangle)
	}
}

// Stylize runs a whole-image palette-matching pass over img, optionally
// with Floyd-Steinberg error diffusion, returning a new Image.
func Stylize(img *Image, palette *shade.Palette, config shade.DitherConfig) *Image {
	out := shade.Dither(img.Pixels, img.Width, img.Height, palette, config)
	return &Image{Width: img.Width, Height: img.Height, Pixels: out}
}
