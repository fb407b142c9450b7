package renderer

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestParseColor(t *testing.T) {
	if got := parseColor("#ff0000", tcell.ColorBlack); got != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("parseColor(#ff0000) = %v", got)
	}
	if got := parseColor("", tcell.ColorBlue); got != tcell.ColorBlue {
		t.Errorf("empty color should fall back, got %v", got)
	}
	if got := parseColor("not-a-color", tcell.ColorBlue); got != tcell.ColorBlue {
		t.Errorf("invalid color should fall back, got %v", got)
	}
}

func TestGutterWidth(t *testing.T) {
	tests := []struct {
		lines int
		want  int
	}{
		{1, 4},
		{999, 4},
		{1000, 5},
		{123456, 7},
	}
	for _, tt := range tests {
		if got := gutterWidth(tt.lines); got != tt.want {
			t.Errorf("gutterWidth(%d) = %d, want %d", tt.lines, got, tt.want)
		}
	}
}
