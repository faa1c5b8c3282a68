package deck

import "fmt"

// RGB is a color triple.
type RGB struct {
	R, G, B uint8
}

// ARGB returns the color as an opaque AARRGGBB hex string.
func (c RGB) ARGB() string {
	return fmt.Sprintf("FF%02X%02X%02X", c.R, c.G, c.B)
}

// Density governs how much text and visual detail a theme packs per slide.
type Density string

const (
	DensitySparse   Density = "sparse"
	DensityStandard Density = "standard"
	DensityDense    Density = "dense"
)

// Theme is the color/typography bundle applied uniformly across a deck.
// Themes come from a static table and are immutable after lookup.
type Theme struct {
	Style      Style
	Primary    RGB
	Secondary  RGB
	Accent     RGB
	Text       RGB
	Subtext    RGB
	Background RGB
	FontFamily string
	Density    Density
}

// themes holds the canonical palette per style. Primaries follow the
// consulting color conventions: McKinsey navy, BCG green, Bain red.
var themes = map[Style]Theme{
	StyleMcKinsey: {
		Style:      StyleMcKinsey,
		Primary:    RGB{0, 32, 96},
		Secondary:  RGB{0, 102, 204},
		Accent:     RGB{0, 145, 220},
		Text:       RGB{51, 51, 51},
		Subtext:    RGB{117, 117, 117},
		Background: RGB{248, 248, 248},
		FontFamily: "Arial",
		Density:    DensityStandard,
	},
	StyleBCG: {
		Style:      StyleBCG,
		Primary:    RGB{0, 128, 0},
		Secondary:  RGB{0, 155, 119},
		Accent:     RGB{0, 176, 80},
		Text:       RGB{33, 33, 33},
		Subtext:    RGB{97, 97, 97},
		Background: RGB{250, 250, 250},
		FontFamily: "Arial",
		Density:    DensityStandard,
	},
	StyleBain: {
		Style:      StyleBain,
		Primary:    RGB{237, 28, 36},
		Secondary:  RGB{255, 102, 102},
		Accent:     RGB{255, 138, 128},
		Text:       RGB{66, 66, 66},
		Subtext:    RGB{117, 117, 117},
		Background: RGB{253, 253, 253},
		FontFamily: "Arial",
		Density:    DensityStandard,
	},
	StyleRichVisual: {
		Style:      StyleRichVisual,
		Primary:    RGB{0, 32, 96},
		Secondary:  RGB{0, 102, 204},
		Accent:     RGB{255, 103, 31},
		Text:       RGB{51, 51, 51},
		Subtext:    RGB{128, 128, 128},
		Background: RGB{241, 241, 241},
		FontFamily: "Calibri",
		Density:    DensityDense,
	},
	StyleUltraClean: {
		Style:      StyleUltraClean,
		Primary:    RGB{0, 150, 170},
		Secondary:  RGB{0, 83, 159},
		Accent:     RGB{0, 180, 130},
		Text:       RGB{30, 30, 30},
		Subtext:    RGB{100, 100, 100},
		Background: RGB{245, 245, 245},
		FontFamily: "Calibri",
		Density:    DensitySparse,
	},
	StyleProfessional: {
		Style:      StyleProfessional,
		Primary:    RGB{0, 51, 141},
		Secondary:  RGB{0, 114, 206},
		Accent:     RGB{0, 176, 240},
		Text:       RGB{64, 64, 64},
		Subtext:    RGB{117, 117, 117},
		Background: RGB{248, 248, 248},
		FontFamily: "Arial",
		Density:    DensityStandard,
	},
}

// ResolveTheme looks up the theme for a style. Pure lookup, no computation.
func ResolveTheme(s Style) (Theme, error) {
	t, ok := themes[s]
	if !ok {
		return Theme{}, fmt.Errorf("unknown style %q", s)
	}
	return t, nil
}
