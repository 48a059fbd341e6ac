package shade

import "math"

// Matcher finds the best matching palette swatch for an RGB color.
type Matcher struct {
	palette *Palette
}

// NewMatcher creates a CIELAB-distance matcher against palette.
func NewMatcher(palette *Palette) *Matcher {
	return &Matcher{palette: palette}
}

// Match returns the nearest swatch to rgb by CIEDE2000 distance, or nil
// if the matcher's palette is nil or has no swatches.
func (m *Matcher) Match(rgb [3]uint8) *Swatch {
	if m.palette == nil || len(m.palette.Colors) == 0 {
		return nil
	}

	target := RGBToLAB(rgb)
	var best *Swatch
	bestDist := math.MaxFloat64
	for i := range m.palette.Colors {
		if m.palette.Colors[i].RGB == rgb {
			// Exact RGB match: CIEDE2000 of identical Lab values is
			// necessarily 0 and cannot be beaten, so skip computing it.
			return &m.palette.Colors[i]
		}
		d := DeltaE(target, m.palette.Colors[i].LAB)
		if d < bestDist {
			bestDist = d
			best = &m.palette.Colors[i]
		}
	}
	return best
}

// MatchWithError matches rgb after adding accumulated dithering error,
// returning the match and the resulting quantization error to diffuse
// to neighboring pixels.
func (m *Matcher) MatchWithError(rgb [3]uint8, errIn [3]float64) (*Swatch, [3]float64) {
	adjusted := [3]uint8{
		clampByte(float64(rgb[0]) + errIn[0]),
		clampByte(float64(rgb[1]) + errIn[1]),
		clampByte(float64(rgb[2]) + errIn[2]),
	}

	matched := m.Match(adjusted)
	if matched == nil {
		return nil, [3]float64{}
	}

	quantErr := [3]float64{
		float64(adjusted[0]) - float64(matched.RGB[0]),
		float64(adjusted[1]) - float64(matched.RGB[1]),
		float64(adjusted[2]) - float64(matched.RGB[2]),
	}
	return matched, quantErr
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
