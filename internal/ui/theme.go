package ui

import (
	_ "embed"
	"image/color"
	"strconv"
	"strings"
)

//go:embed editor.css
var editorCSS string

// Theme is the resolved look of the editor panel.
type Theme struct {
	Background    color.RGBA
	Line          color.RGBA
	Base          color.RGBA
	BaseFocused   color.RGBA
	BasePressed   color.RGBA
	Border        color.RGBA
	BorderFocused color.RGBA
	Text          color.RGBA
	TextFocused   color.RGBA
	TextPressed   color.RGBA
	TextSize      int32
	PanelWidth    int32
	Padding       int32
	RowHeight     int32
}

func gray(v uint8) color.RGBA { return color.RGBA{v, v, v, 255} }

// DefaultTheme is used for anything the stylesheet leaves unset.
func DefaultTheme() Theme {
	return Theme{
		Background:    gray(30),
		Line:          gray(60),
		Base:          gray(45),
		BaseFocused:   gray(60),
		BasePressed:   gray(80),
		Border:        gray(80),
		BorderFocused: gray(110),
		Text:          gray(200),
		TextFocused:   gray(255),
		TextPressed:   color.RGBA{253, 249, 0, 255},
		TextSize:      14,
		PanelWidth:    300,
		Padding:       8,
		RowHeight:     22,
	}
}

// EditorTheme resolves the embedded editor stylesheet.
func EditorTheme() Theme {
	return Resolve(ParseCSS(editorCSS))
}

// Resolve applies the .panel, .button, .label and .row rules of sheet over DefaultTheme.
// Values that do not parse are ignored.
func Resolve(sheet *Stylesheet) Theme {
	t := DefaultTheme()
	colors := map[string]map[string]*color.RGBA{
		".panel":  {"background": &t.Background, "border": &t.Line},
		".button": {"background": &t.Base, "background-hover": &t.BaseFocused, "background-active": &t.BasePressed, "border": &t.Border, "border-hover": &t.BorderFocused},
		".label":  {"color": &t.Text, "color-hover": &t.TextFocused, "color-active": &t.TextPressed},
	}
	for sel, fields := range colors {
		for k, v := range sheet.Props(sel) {
			if dst, ok := fields[k]; ok {
				if c, ok := ParseHexColor(v); ok {
					*dst = c
				}
			}
		}
	}
	sizes := map[string]map[string]*int32{
		".panel": {"width": &t.PanelWidth, "padding": &t.Padding},
		".label": {"font-size": &t.TextSize},
		".row":   {"height": &t.RowHeight},
	}
	for sel, fields := range sizes {
		for k, v := range sheet.Props(sel) {
			if dst, ok := fields[k]; ok {
				if n, ok := ParsePx(v); ok && n > 0 {
					*dst = n
				}
			}
		}
	}
	return t
}

// ParseHexColor parses #RGB or #RRGGBB, opaque.
func ParseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, false
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, true
}

// ParsePx parses a whole number with an optional "px" suffix.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}
