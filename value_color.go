package sass

import (
	"fmt"
	"math"

	"github.com/mazznoer/csscolorparser"
)

// Color stores RGBA channels plus an optional original spelling (spec
// §4.3: "colors carry RGBA plus an optional original name/notation for
// round-tripping"). R/G/B are 0-255 integers; A is 0-1.
//
// Parsing/serialization of the wire formats (hex, rgb(), hsl(), named
// colors) is delegated to github.com/mazznoer/csscolorparser rather than a
// hand-rolled table — grounded on
// bennypowers-design-tokens-language-server/lsp/methods/textDocument/documentColor,
// the one repo in the pack that handles CSS color text, which explicitly
// prefers csscolorparser over a hand-rolled parser ("battle-tested library
// that handles all CSS color formats correctly").
type Color struct {
	R, G, B int
	A       float64
	// Original, when non-empty, is the exact source spelling (e.g. "red",
	// "#FF0000", "rgba(0,0,0,.5)") used for round-tripping in nested output
	// style (spec §4.3).
	Original string
}

// ParseColor parses any CSS color syntax csscolorparser understands (hex,
// rgb[a](), hsl[a](), hwb(), named colors, "transparent", "currentColor" is
// rejected — it is not a constant color and must be handled upstream as an
// identifier) and records the exact input as Original for round-tripping.
func ParseColor(text string) (Color, error) {
	parsed, err := csscolorparser.Parse(text)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", text, err)
	}
	return Color{
		R:        int(math.Round(parsed.R * 255)),
		G:        int(math.Round(parsed.G * 255)),
		B:        int(math.Round(parsed.B * 255)),
		A:        parsed.A,
		Original: text,
	}, nil
}

func RGBA(r, g, b int, a float64) Color {
	return Color{R: clampByte(r), G: clampByte(g), B: clampByte(b), A: clampUnit(a)}
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ColorsEqual compares all four channels (spec §4.3), ignoring Original —
// two colors with different spellings but the same resolved channels are
// the same value.
func ColorsEqual(a, b Color) bool {
	return a.R == b.R && a.G == b.G && a.B == b.B && a.A == b.A
}

// asLib adapts Color to csscolorparser.Color for reuse of its
// HexString()/named-color-aware formatting helpers.
func (c Color) asLib() csscolorparser.Color {
	return csscolorparser.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255, A: c.A}
}

// String renders the inspect/debug form: hex when opaque, rgba() otherwise.
// The serialiser (out of scope) picks the shortest-of-named/hex form per
// spec §4.3's serialization rule and the "nested output retains original
// spelling" rule; this is the internal round-trip form used by inspect()
// and error messages only.
func (c Color) String() string {
	if c.A >= 1 {
		return c.asLib().HexString()
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatFloat(c.A))
}

// HSL decomposes the color into hue/saturation/lightness, used by
// color.adjust/color.scale/hsl() builtins.
func (c Color) HSL() (h, s, l float64) {
	r, g, b := float64(c.R)/255, float64(c.G)/255, float64(c.B)/255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2
	if max == min {
		return 0, 0, l
	}
	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	h *= 60
	return h, s, l
}

// FromHSL builds a Color from hue (degrees), saturation and lightness
// (0-1), keeping alpha. Grounded on the HSL<->RGB round-trip used by
// bennypowers-design-tokens-language-server/lsp/color.go, adapted to build
// (not just read) colors.
func FromHSL(h, s, l, a float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if s == 0 {
		v := clampByte(int(math.Round(l * 255)))
		return RGBA(v, v, v, a)
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hk := h / 360
	r := hueToRGB(p, q, hk+1.0/3)
	g := hueToRGB(p, q, hk)
	b := hueToRGB(p, q, hk-1.0/3)
	return RGBA(
		clampByte(int(math.Round(r*255))),
		clampByte(int(math.Round(g*255))),
		clampByte(int(math.Round(b*255))),
		a,
	)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}
