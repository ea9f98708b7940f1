package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the colors for one theme.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Danger     lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color
	Background lipgloss.Color
}

var (
	LightPalette = Palette{
		Primary:    lipgloss.Color("#5B3CC4"),
		Secondary:  lipgloss.Color("#038C5A"),
		Accent:     lipgloss.Color("#B8860B"),
		Danger:     lipgloss.Color("#C2185B"),
		Text:       lipgloss.Color("#1F1F1F"),
		Muted:      lipgloss.Color("#6B6B6B"),
		Surface:    lipgloss.Color("#E4E4E4"),
		Background: lipgloss.Color("#FAFAFA"),
	}

	DarkPalette = Palette{
		Primary:    lipgloss.Color("#7D56F4"),
		Secondary:  lipgloss.Color("#04B575"),
		Accent:     lipgloss.Color("#FFD700"),
		Danger:     lipgloss.Color("#F25D94"),
		Text:       lipgloss.Color("#FAFAFA"),
		Muted:      lipgloss.Color("#8B8B8B"),
		Surface:    lipgloss.Color("#383838"),
		Background: lipgloss.Color("#282828"),
	}
)

// Current is the palette the styles below were last built from.
var Current = LightPalette

var (
	TitleStyle            lipgloss.Style
	SubtitleStyle         lipgloss.Style
	BorderStyle           lipgloss.Style
	FocusedBorderStyle    lipgloss.Style
	MenuItemStyle         lipgloss.Style
	SelectedMenuItemStyle lipgloss.Style
	StatusBarStyle        lipgloss.Style
	HelpStyle             lipgloss.Style
	ErrorStyle            lipgloss.Style
	WarningStyle          lipgloss.Style
	FieldStyle            lipgloss.Style
	FocusedFieldStyle     lipgloss.Style
	BallStyle             lipgloss.Style
	WinnerStyle           lipgloss.Style
	GroupStyle            lipgloss.Style
)

func init() {
	UseDark(false)
}

// UseDark rebuilds every style from the dark or light palette.
func UseDark(dark bool) {
	p := LightPalette
	if dark {
		p = DarkPalette
	}
	Current = p

	TitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		Align(lipgloss.Center).
		Padding(1, 2)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true).
		Padding(0, 1)

	BorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Muted).
		Padding(1)

	FocusedBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(1)

	MenuItemStyle = lipgloss.NewStyle().
		Foreground(p.Text).
		Padding(0, 2)

	SelectedMenuItemStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(p.Primary).
		Bold(true).
		Padding(0, 2)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.Surface).
		Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true).
		Padding(1)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(p.Danger).
		Bold(true)

	WarningStyle = lipgloss.NewStyle().
		Foreground(p.Accent)

	FieldStyle = lipgloss.NewStyle().
		Foreground(p.Text).
		Padding(0, 1)

	FocusedFieldStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(p.Primary).
		Padding(0, 1)

	BallStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Secondary).
		Foreground(p.Text).
		Bold(true).
		Padding(0, 1).
		MarginRight(1)

	WinnerStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	GroupStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(0, 1).
		MarginRight(1)
}

// Layout helpers
func CenterText(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(text)
}

func LeftText(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Left).Render(text)
}
