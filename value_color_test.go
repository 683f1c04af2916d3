package sass

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseColorHex(t *testing.T) {
	c, err := ParseColor("#ff0000")
	require.NoError(t, err)
	require.Equal(t, 255, c.R)
	require.Equal(t, 0, c.G)
	require.Equal(t, 0, c.B)
	require.Equal(t, float64(1), c.A)
}

func TestParseColorNamed(t *testing.T) {
	c, err := ParseColor("rebeccapurple")
	require.NoError(t, err)
	require.Equal(t, 102, c.R)
	require.Equal(t, 51, c.G)
	require.Equal(t, 153, c.B)
}

func TestParseColorInvalid(t *testing.T) {
	_, err := ParseColor("not-a-color")
	require.Error(t, err)
}

func TestColorsEqualIgnoresOriginalSpelling(t *testing.T) {
	a := Color{R: 255, G: 0, B: 0, A: 1, Original: "red"}
	b := Color{R: 255, G: 0, B: 0, A: 1, Original: "#ff0000"}
	require.True(t, ColorsEqual(a, b))
}

func TestColorHSLRoundTrip(t *testing.T) {
	orig := RGBA(51, 102, 204, 1)
	h, s, l := orig.HSL()
	back := FromHSL(h, s, l, 1)
	require.InDelta(t, orig.R, back.R, 1)
	require.InDelta(t, orig.G, back.G, 1)
	require.InDelta(t, orig.B, back.B, 1)
}

func TestRGBAClamps(t *testing.T) {
	c := RGBA(300, -10, 128, 2)
	require.Equal(t, 255, c.R)
	require.Equal(t, 0, c.G)
	require.Equal(t, float64(1), c.A)
}

func TestColorStringHexWhenOpaque(t *testing.T) {
	c := RGBA(255, 0, 0, 1)
	require.Equal(t, "#ff0000", c.String())
}

func TestColorStringRGBAWhenTransparent(t *testing.T) {
	c := RGBA(255, 0, 0, 0.5)
	require.Contains(t, c.String(), "rgba(255, 0, 0,")
}
