package renderer

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/svanari/edi/internal/config"
)

// Theme holds the resolved tcell styles for the UI chrome.
type Theme struct {
	Text    tcell.Style
	Status  tcell.Style
	Message tcell.Style
	Error   tcell.Style
	LineNum tcell.Style
}

// NewTheme resolves the hex colors in cfg. Unparseable colors fall back to
// the terminal defaults rather than failing startup.
func NewTheme(cfg config.UIConfig) Theme {
	statusFG := parseColor(cfg.StatusFG, tcell.ColorWhite)
	statusBG := parseColor(cfg.StatusBG, tcell.ColorDarkSlateGray)

	return Theme{
		Text:    tcell.StyleDefault,
		Status:  tcell.StyleDefault.Foreground(statusFG).Background(statusBG),
		Message: tcell.StyleDefault.Foreground(parseColor(cfg.MessageFG, tcell.ColorGreen)),
		Error:   tcell.StyleDefault.Foreground(parseColor(cfg.ErrorFG, tcell.ColorRed)).Bold(true),
		LineNum: tcell.StyleDefault.Foreground(tcell.ColorGray),
	}
}

func parseColor(hex string, fallback tcell.Color) tcell.Color {
	if hex == "" {
		return fallback
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
