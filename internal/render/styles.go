package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // Cyan: hexagram headers
	colorAccent  = lipgloss.Color("#FFD700") // Gold: changing lines
	colorMuted   = lipgloss.Color("#8C8C8C") // Gray: trigram decomposition
)

// styles applies terminal styling to report fragments. Build one with
// newStyles.
type styles struct {
	header   func(...string) string
	changing func(...string) string
	muted    func(...string) string
}

func plain(s ...string) string { return strings.Join(s, " ") }

// newStyles binds lipgloss styles to w so colour is only emitted when w is a
// terminal that supports it.
func newStyles(w io.Writer, color bool) styles {
	if !color {
		return styles{header: plain, changing: plain, muted: plain}
	}
	r := lipgloss.NewRenderer(w)
	return styles{
		header:   r.NewStyle().Foreground(colorPrimary).Bold(true).Render,
		changing: r.NewStyle().Foreground(colorAccent).Render,
		muted:    r.NewStyle().Foreground(colorMuted).Render,
	}
}
