package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"tfeditor/internal/editor"
)

// EditorTheme provides the application theme with a fixed light or dark
// variant, independent of the desktop setting.
type EditorTheme struct {
	Dark bool
}

var _ fyne.Theme = (*EditorTheme)(nil)

func (t *EditorTheme) variant() fyne.ThemeVariant {
	if t.Dark {
		return theme.VariantDark
	}
	return theme.VariantLight
}

func (t *EditorTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x21, G: 0x91, B: 0x8c, A: 0xFF} // viridis teal
	case theme.ColorNameScrollBar:
		return color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	default:
		return theme.DefaultTheme().Color(name, t.variant())
	}
}

func (t *EditorTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *EditorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *EditorTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}

// Canvas returns the curve editor tokens matching this theme. Background and
// text follow the fyne palette so the canvas blends into the window.
func (t *EditorTheme) Canvas() editor.Theme {
	et := editor.LightTheme()
	if t.Dark {
		et = editor.DarkTheme()
	}
	v := t.variant()
	et.Background = toNRGBA(theme.DefaultTheme().Color(theme.ColorNameInputBackground, v))
	et.Text = toNRGBA(theme.DefaultTheme().Color(theme.ColorNameForeground, v))
	et.TextSize = float64(theme.DefaultTheme().Size(theme.SizeNameCaptionText))
	return et
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
