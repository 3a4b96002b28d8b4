package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-racer/internal/core"
)

func testScreen() *core.Screen {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "Score: 00010")
	s.DrawTextColor(0, 1, "Lives: 3", core.ColorRed)
	s.SetColor(10, 2, '█', core.ColorOrange)
	return s
}

func TestPaletteRenderPlainProfile(t *testing.T) {
	// A renderer writing to a non-terminal has no color support
	p := NewPalette(lipgloss.NewRenderer(io.Discard))
	s := testScreen()

	if got, want := p.Render(s), s.String(); got != want {
		t.Errorf("Render() =\n%q\nexpected\n%q", got, want)
	}
}

func TestPaletteRenderColors(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	p := NewPalette(r)

	lines := strings.Split(p.Render(testScreen()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if strings.Contains(lines[0], "\x1b[") {
		t.Errorf("default-colored row should carry no escapes: %q", lines[0])
	}
	if !strings.Contains(lines[1], "\x1b[") || !strings.Contains(lines[1], "Lives: 3") {
		t.Errorf("red row should be styled and keep its text: %q", lines[1])
	}
	if !strings.Contains(lines[2], "█") {
		t.Errorf("orange cell missing: %q", lines[2])
	}
}

func TestPaletteUnknownColor(t *testing.T) {
	p := NewPalette(lipgloss.NewRenderer(io.Discard))
	s := core.NewScreen(3, 1)
	s.SetColor(0, 0, 'x', core.Color(250))

	if got := p.Render(s); got != "x  " {
		t.Errorf("unknown color should render unstyled, got %q", got)
	}
}
