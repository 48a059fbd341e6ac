package shade

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBToLABRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		rgb  [3]uint8
	}{
		{"white", [3]uint8{255, 255, 255}},
		{"black", [3]uint8{0, 0, 0}},
		{"red", [3]uint8{255, 0, 0}},
		{"green", [3]uint8{0, 255, 0}},
		{"blue", [3]uint8{0, 0, 255}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lab := RGBToLAB(c.rgb)
			assert.True(t, lab.L >= -0.01 && lab.L <= 100)

			rgb := LABToRGB(lab)
			for i := 0; i < 3; i++ {
				diff := int(c.rgb[i]) - int(rgb[i])
				if diff < 0 {
					diff = -diff
				}
				assert.LessOrEqual(t, diff, 2)
			}
		})
	}
}

func TestDeltaEIdenticalIsZero(t *testing.T) {
	lab := RGBToLAB([3]uint8{128, 128, 128})
	assert.InDelta(t, 0, DeltaE(lab, lab), 1e-6)
}

func TestDeltaEDistinctIsPositive(t *testing.T) {
	white := RGBToLAB([3]uint8{255, 255, 255})
	black := RGBToLAB([3]uint8{0, 0, 0})
	assert.Greater(t, DeltaE(white, black), 0.0)
}

func TestPaletteExportImportRoundTrip(t *testing.T) {
	p := DefaultPalette()

	var buf bytes.Buffer
	require.NoError(t, Export(p, &buf))

	got, err := Import(&buf)
	require.NoError(t, err)
	require.Len(t, got.Colors, len(p.Colors))

	byName := make(map[string]Swatch, len(got.Colors))
	for _, c := range got.Colors {
		byName[c.Name] = c
	}
	for _, want := range p.Colors {
		c, ok := byName[want.Name]
		require.True(t, ok)
		assert.Equal(t, want.RGB, c.RGB)
		assert.InDelta(t, want.LAB.L, c.LAB.L, 1e-9)
	}
}

func TestMatcherFindsExactSwatch(t *testing.T) {
	p := DefaultPalette()
	m := NewMatcher(p)

	target := p.Colors[0].RGB
	matched := m.Match(target)
	require.NotNil(t, matched)
	assert.Equal(t, target, matched.RGB)
}

func TestMatcherEmptyPaletteReturnsNil(t *testing.T) {
	m := NewMatcher(&Palette{})
	assert.Nil(t, m.Match([3]uint8{1, 2, 3}))
}

func TestDitherDeterministic(t *testing.T) {
	p := DefaultPalette()
	img := make([][3]uint8, 4*4)
	for i := range img {
		img[i] = [3]uint8{uint8(i * 7 % 255), uint8(i * 13 % 255), uint8(i * 29 % 255)}
	}

	out1 := Dither(img, 4, 4, p, DitherConfig{Enabled: true})
	out2 := Dither(img, 4, 4, p, DitherConfig{Enabled: true})
	assert.Equal(t, out1, out2)
}

func TestDitherDisabledMatchesPlainMatch(t *testing.T) {
	p := DefaultPalette()
	m := NewMatcher(p)
	img := [][3]uint8{{10, 200, 50}, {5, 5, 5}}

	out := Dither(img, 2, 1, p, DitherConfig{Enabled: false})
	for i, px := range img {
		want := m.Match(px)
		require.NotNil(t, want)
		assert.Equal(t, want.RGB, out[i])
	}
}
