package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	ColorCyan   = lipgloss.Color("14")
	ColorGreen  = lipgloss.Color("82")
	ColorYellow = lipgloss.Color("220")
	ColorRed    = lipgloss.Color("204")
)

// Component status words used in the run summary
const (
	StatusCreated = "created"
	StatusExisted = "existed"
	StatusFailed  = "failed"
)

// Styles renders summary lines for a single writer
type Styles struct {
	renderer *lipgloss.Renderer
}

func NewStyles(w io.Writer, noColor bool) *Styles {
	renderer := lipgloss.NewRenderer(w)
	if noColor {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &Styles{renderer: renderer}
}

// Status returns the style for a status word, unknown statuses are left unstyled
func (s *Styles) Status(status string) lipgloss.Style {
	style := s.renderer.NewStyle()

	switch status {
	case StatusCreated:
		return style.Foreground(ColorGreen)
	case StatusExisted:
		return style.Foreground(ColorYellow)
	case StatusFailed:
		return style.Bold(true).Foreground(ColorRed)
	default:
		return style
	}
}

// Noun styles identifiable names, such as component names
func (s *Styles) Noun() lipgloss.Style {
	return s.renderer.NewStyle().Foreground(ColorCyan)
}

// StatusLine formats a single summary line, for example "  MyComponent  created"
func (s *Styles) StatusLine(name string, status string) string {
	return fmt.Sprintf("  %s  %s", s.Noun().Width(24).Render(name), s.Status(status).Render(status))
}
