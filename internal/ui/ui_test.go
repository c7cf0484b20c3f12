package ui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSS(t *testing.T) {
	sheet := ParseCSS(`
/* comment { ignored } */
.panel { width: 320px; background: #abc }
div { color: #fff; }
#editor{padding:4}
.panel { width: 280 }
`)
	require.Len(t, sheet.Rules, 3)
	assert.Equal(t, ".panel", sheet.Rules[0].Selector)
	assert.Equal(t, "#editor", sheet.Rules[1].Selector)
	assert.Equal(t, map[string]string{"width": "280", "background": "#abc"}, sheet.Props(".panel"))
	assert.Empty(t, sheet.Props(".missing"))
}

func TestParseHexColor(t *testing.T) {
	c, ok := ParseHexColor("#abc")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{0xaa, 0xbb, 0xcc, 255}, c)

	c, ok = ParseHexColor(" #1e1e23 ")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{0x1e, 0x1e, 0x23, 255}, c)

	for _, bad := range []string{"", "1e1e23", "#12345", "#zzzzzz"} {
		_, ok := ParseHexColor(bad)
		assert.False(t, ok, bad)
	}
}

func TestResolveOverridesDefaults(t *testing.T) {
	th := Resolve(ParseCSS(`.row { height: 30px } .label { color: #f00; font-size: nope } .button { background-hover: #010203 }`))
	def := DefaultTheme()
	assert.Equal(t, int32(30), th.RowHeight)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, th.Text)
	assert.Equal(t, def.TextSize, th.TextSize)
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, th.BaseFocused)
	assert.Equal(t, def.PanelWidth, th.PanelWidth)
}

func TestEditorTheme(t *testing.T) {
	th := EditorTheme()
	assert.Equal(t, int32(300), th.PanelWidth)
	assert.Equal(t, int32(22), th.RowHeight)
	assert.Equal(t, color.RGBA{0x1e, 0x1e, 0x23, 255}, th.Background)
}
