// Package styles provides Lipgloss styling for the TUI.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	Primary     = lipgloss.Color("#00BFFF") // Deep Sky Blue
	Accent      = lipgloss.Color("#FFD700") // Gold
	Danger      = lipgloss.Color("#FF6347") // Tomato
	Muted       = lipgloss.Color("#808080") // Gray
	BorderColor = lipgloss.Color("#0f3460") // Border color

	// Box around the whole window
	BoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	// Title style
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	// Label above a control
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	LabelFocusedStyle = lipgloss.NewStyle().
				Foreground(Primary).
				Bold(true)

	// Input box border
	InputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(Muted).
			Padding(0, 1)

	InputFocusedStyle = InputStyle.
				BorderForeground(Primary)

	// Slider styles
	SliderEmpty = lipgloss.NewStyle().
			Foreground(Muted)

	SliderFilled = lipgloss.NewStyle().
			Foreground(Primary)

	SliderKnob = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// Preview of the current title
	PreviewStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Italic(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	// Footer style
	FooterStyle = lipgloss.NewStyle().
			Foreground(Muted).
			MarginTop(1)

	// Help key style
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Accent)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// Slider returns a horizontal slider of the given width with the knob at
// value within [lo, hi].
func Slider(value, lo, hi, width int) string {
	if width < 2 {
		width = 2
	}
	if hi <= lo {
		hi = lo + 1
	}
	value = min(max(value, lo), hi)

	knob := (value - lo) * (width - 1) / (hi - lo)

	var sb strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i < knob:
			sb.WriteString(SliderFilled.Render("━"))
		case i == knob:
			sb.WriteString(SliderKnob.Render("●"))
		default:
			sb.WriteString(SliderEmpty.Render("─"))
		}
	}

	return sb.String()
}

// Binding is one entry of the help line.
type Binding struct {
	Key  string
	Desc string
}

// RenderHelp renders a help line with key bindings.
func RenderHelp(bindings []Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, HelpKeyStyle.Render("["+b.Key+"]")+" "+HelpDescStyle.Render(b.Desc))
	}
	return strings.Join(parts, "  ")
}
