package console

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen         = lipgloss.Color("2")
	colorYellow        = lipgloss.Color("3")
	colorBlue          = lipgloss.Color("4")
	colorMagenta       = lipgloss.Color("5")
	colorCyan          = lipgloss.Color("6")
	colorRed           = lipgloss.Color("1")
	colorBrightGreen   = lipgloss.Color("10")
	colorBrightMagenta = lipgloss.Color("13")
	colorSlate         = lipgloss.Color("#667085")
)

// styles are bound to the renderer of the output they are written to, so color
// detection follows that writer rather than the process stdout.
type styles struct {
	info     lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
	output   lipgloss.Style
	warning  lipgloss.Style
	plan     lipgloss.Style
	heading  lipgloss.Style
	summary  lipgloss.Style
	done     lipgloss.Style
	key      lipgloss.Style
	muted    lipgloss.Style
	missing  lipgloss.Style
	keyWidth int
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		info:     r.NewStyle().Foreground(colorGreen),
		success:  r.NewStyle().Foreground(colorCyan),
		failure:  r.NewStyle().Foreground(colorRed),
		output:   r.NewStyle().Foreground(colorYellow),
		warning:  r.NewStyle().Foreground(colorYellow),
		plan:     r.NewStyle().Foreground(colorBlue),
		heading:  r.NewStyle().Foreground(colorBrightGreen),
		summary:  r.NewStyle().Foreground(colorBrightMagenta),
		done:     r.NewStyle().Foreground(colorMagenta),
		key:      r.NewStyle().Foreground(colorBlue).Bold(true),
		muted:    r.NewStyle().Foreground(colorSlate),
		missing:  r.NewStyle().Foreground(colorRed).Bold(true),
		keyWidth: 16,
	}
}
