package shade

// DitherConfig controls the whole-image palette-matching post-process.
type DitherConfig struct {
	Enabled   bool
	Algorithm string // "floyd-steinberg" is the only one implemented; "" defaults to it
}

// Dither quantizes every pixel of img (row-major, width*height RGB
// triples) to the nearest palette swatch, diffusing each pixel's
// quantization error to its neighbors per config.Algorithm. With
// config.Enabled false it falls back to plain nearest-swatch matching,
// no error diffusion.
func Dither(img [][3]uint8, width, height int, palette *Palette, config DitherConfig) [][3]uint8 {
	matcher := NewMatcher(palette)
	result := make([][3]uint8, len(img))

	if !config.Enabled {
		for i, px := range img {
			if m := matcher.Match(px); m != nil {
				result[i] = m.RGB
			} else {
				result[i] = px
			}
		}
		return result
	}

	errBuf := make(map[[2]int][3]float64)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			pos := [2]int{x, y}
			errIn := errBuf[pos]

			matched, quantErr := matcher.MatchWithError(img[i], errIn)
			if matched == nil {
				result[i] = img[i]
				continue
			}
			result[i] = matched.RGB
			distributeError(errBuf, x, y, width, height, quantErr, config.Algorithm)
		}
	}

	return result
}

// distributeError spreads a pixel's quantization error to its
// not-yet-visited neighbors using the named diffusion pattern.
func distributeError(buf map[[2]int][3]float64, x, y, width, height int, quantErr [3]float64, algorithm string) {
	if algorithm == "floyd-steinberg" || algorithm == "" {
		addError(buf, x+1, y, width, height, quantErr, 7.0/16.0)
		addError(buf, x-1, y+1, width, height, quantErr, 3.0/16.0)
		addError(buf, x, y+1, width, height, quantErr, 5.0/16.0)
		addError(buf, x+1, y+1, width, height, quantErr, 1.0/16.0)
	}
}

func addError(buf map[[2]int][3]float64, x, y, width, height int, quantErr [3]float64, weight float64) {
	if x < 0 || x >= width || y < 0 || y >= height {
		return
	}
	pos := [2]int{x, y}
	current := buf[pos]
	for i := 0; i < 3; i++ {
		current[i] += quantErr[i] * weight
	}
	buf[pos] = current
}
