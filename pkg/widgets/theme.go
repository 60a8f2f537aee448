package widgets

import "github.com/go-drift/lattice/pkg/renderer"

// Theme holds the colors used by the widgets in this package. Pass a *Theme
// as the theme argument of Draw; any other value selects DefaultTheme.
type Theme struct {
	Background  renderer.Color
	Surface     renderer.Color
	Primary     renderer.Color
	OnPrimary   renderer.Color
	Text        renderer.Color
	Placeholder renderer.Color
	Border      renderer.Color
	Focus       renderer.Color
	Selection   renderer.Color
}

// DefaultTheme returns the light theme.
func DefaultTheme() *Theme {
	return &Theme{
		Background:  renderer.ColorWhite,
		Surface:     renderer.RGB(0xF2, 0xF2, 0xF5),
		Primary:     renderer.RGB(0x34, 0x63, 0xD9),
		OnPrimary:   renderer.ColorWhite,
		Text:        renderer.ColorBlack,
		Placeholder: renderer.RGB(0x8A, 0x8A, 0x93),
		Border:      renderer.RGB(0xC8, 0xC8, 0xD0),
		Focus:       renderer.RGB(0x34, 0x63, 0xD9),
		Selection:   renderer.RGBA(0x34, 0x63, 0xD9, 0x55),
	}
}

func themeOf(theme any) *Theme {
	if t, ok := theme.(*Theme); ok && t != nil {
		return t
	}
	return DefaultTheme()
}

// textSize returns size, or the renderer default when size is zero.
func textSize(r renderer.TextMeasurer, size float64) float64 {
	if size > 0 {
		return size
	}
	return r.DefaultTextSize()
}
