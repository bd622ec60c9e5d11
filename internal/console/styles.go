package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains styling for the game display
type Styles struct {
	Title     lipgloss.Style
	Label     lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Total     lipgloss.Style
	Money     lipgloss.Style
	Win       lipgloss.Style
	Lose      lipgloss.Style
	Draw      lipgloss.Style
	Prompt    lipgloss.Style
	Warning   lipgloss.Style
	Muted     lipgloss.Style
}

// NewRenderer returns a renderer for w. With color disabled every style
// renders as plain text.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// NewStyles creates the display styles bound to a renderer
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Label: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		CardRed: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Total: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Money: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Win: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Lose: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Draw: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Warning: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		Muted: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
