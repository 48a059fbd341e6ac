package shade

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Swatch is one named color entry in a Palette.
type Swatch struct {
	Name string
	RGB  [3]uint8
	LAB  LABColor
}

// Palette is a named collection of colors rendered pixels can be
// quantized to.
type Palette struct {
	Colors []Swatch
}

// NewPalette builds a Palette from a name->RGB map, precomputing each
// swatch's LAB value once up front.
func NewPalette(swatches map[string][3]uint8) *Palette {
	p := &Palette{Colors: make([]Swatch, 0, len(swatches))}
	for name, rgb := range swatches {
		p.Colors = append(p.Colors, Swatch{Name: name, RGB: rgb, LAB: RGBToLAB(rgb)})
	}
	return p
}

// paletteData / swatchData are the wire-format mirrors of
// Palette/Swatch, msgpack-tagged for on-disk (de)serialization.
type paletteData struct {
	Version string        `msgpack:"version"`
	Colors  []swatchData `msgpack:"colors"`
}

type swatchData struct {
	Name string     `msgpack:"name"`
	RGB  [3]uint8   `msgpack:"rgb"`
	LAB  [3]float64 `msgpack:"lab"`
}

// Export writes a palette to msgpack format.
func Export(p *Palette, w io.Writer) error {
	data := paletteData{Version: "1.0", Colors: make([]swatchData, len(p.Colors))}
	for i, c := range p.Colors {
		data.Colors[i] = swatchData{Name: c.Name, RGB: c.RGB, LAB: [3]float64{c.LAB.L, c.LAB.A, c.LAB.B}}
	}
	return msgpack.NewEncoder(w).Encode(&data)
}

// Import reads a palette from msgpack format.
func Import(r io.Reader) (*Palette, error) {
	var data paletteData
	if err := msgpack.NewDecoder(r).Decode(&data); err != nil {
		return nil, err
	}
	p := &Palette{Colors: make([]Swatch, len(data.Colors))}
	for i, c := range data.Colors {
		p.Colors[i] = Swatch{Name: c.Name, RGB: c.RGB, LAB: LABColor{L: c.LAB[0], A: c.LAB[1], B: c.LAB[2]}}
	}
	return p, nil
}

// DefaultPalette is a small named swatch set used when the CLI is not
// given a palette file: a handful of primaries plus grayscale steps.
func DefaultPalette() *Palette {
	return NewPalette(map[string][3]uint8{
		"white":   {236, 236, 236},
		"black":   {20, 20, 20},
		"red":     {160, 39, 34},
		"orange":  {224, 97, 1},
		"yellow":  {240, 175, 21},
		"green":   {73, 91, 36},
		"cyan":    {21, 119, 136},
		"blue":    {44, 46, 143},
		"purple":  {100, 32, 156},
		"gray25":  {64, 64, 64},
		"gray50":  {128, 128, 128},
		"gray75":  {192, 192, 192},
	})
}
