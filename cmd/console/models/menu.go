package models

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"

	"github.com/sorteio/api/cmd/console/components"
	"github.com/sorteio/api/internal/prefs"
)

// MenuModel handles the main menu view
type MenuModel struct {
	choices  []MenuChoice
	cursor   int
	width    int
	height   int
	theme    prefs.Theme
	language prefs.Language
}

// MenuChoice represents a menu option
type MenuChoice struct {
	Title       string
	Description string
	Icon        string
	View        ViewType
}

// NewMenuModel creates a new menu model
func NewMenuModel() MenuModel {
	choices := []MenuChoice{
		{
			Title:       "Names",
			Description: "Draw names from the roster",
			Icon:        "🎟️",
			View:        NamesDrawView,
		},
		{
			Title:       "Numbers",
			Description: "Draw numbers from a range",
			Icon:        "🎲",
			View:        NumbersDrawView,
		},
		{
			Title:       "Sequence",
			Description: "Generate an ordered lottery sequence",
			Icon:        "🔢",
			View:        SequenceDrawView,
		},
		{
			Title:       "Groups",
			Description: "Split the roster into random groups",
			Icon:        "👥",
			View:        GroupsDrawView,
		},
		{
			Title:       "Elimination",
			Description: "Knock names out until one remains",
			Icon:        "🏆",
			View:        EliminationView,
		},
		{
			Title:       "Names & Lists",
			Description: "Manage names and saved lists",
			Icon:        "📋",
			View:        RosterView,
		},
	}

	return MenuModel{
		choices:  choices,
		cursor:   0,
		theme:    prefs.ThemeLight,
		language: prefs.LanguagePortuguese,
	}
}

// Init initializes the menu
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles menu messages
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case prefsLoadedMsg:
		if msg.err == nil {
			m.theme = msg.prefs.Theme
			m.language = msg.prefs.Language
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			} else {
				m.cursor = len(m.choices) - 1
			}

		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			} else {
				m.cursor = 0
			}

		case "enter", " ", "space":
			// Switch to selected view
			selected := m.choices[m.cursor]
			return m, func() tea.Msg {
				return NewSwitchViewMsg(selected.View)
			}

		case "1", "2", "3", "4", "5", "6":
			// Direct number selection
			choice := int(msg.String()[0] - '1')
			if choice >= 0 && choice < len(m.choices) {
				m.cursor = choice
				selected := m.choices[m.cursor]
				return m, func() tea.Msg {
					return NewSwitchViewMsg(selected.View)
				}
			}

		case "t":
			return m, func() tea.Msg { return toggleThemeMsg{} }

		case "l":
			return m, func() tea.Msg { return toggleLanguageMsg{} }
		}
	}

	return m, nil
}

// View renders the menu
func (m MenuModel) View() string {
	var s strings.Builder

	// Title
	title := components.TitleStyle.Render("Sorteio")
	s.WriteString(title + "\n\n")

	// Menu items
	menuStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(components.Current.Primary).
		Padding(1, 2).
		Width(64)

	var menuItems []string
	for i, choice := range m.choices {
		// Format menu item
		number := fmt.Sprintf("%d.", i+1)
		title := fmt.Sprintf("%s %s", choice.Icon, choice.Title)

		var itemStyle lipgloss.Style
		if i == m.cursor {
			itemStyle = components.SelectedMenuItemStyle
		} else {
			itemStyle = components.MenuItemStyle
		}

		item := fmt.Sprintf("%-3s %-18s %s", number, title, choice.Description)
		menuItems = append(menuItems, itemStyle.Render(item))
	}

	menu := menuStyle.Render(strings.Join(menuItems, "\n"))
	s.WriteString(menu + "\n\n")

	// Instructions
	instructions := components.HelpStyle.Render(
		"Use ↑/↓ or j/k to navigate • Enter or number to select • t theme • l language • ? for help • q to quit",
	)
	s.WriteString(instructions)

	footer := "\n\n" + components.StatusBarStyle.Render(
		fmt.Sprintf("Theme: %s • Language: %s", m.theme, m.language),
	)
	s.WriteString(footer)

	// Center the content
	content := s.String()
	if m.width > 0 {
		contentWidth := lipgloss.Width(content)
		if contentWidth < m.width {
			leftPadding := (m.width - contentWidth) / 2
			content = lipgloss.NewStyle().PaddingLeft(leftPadding).Render(content)
		}
	}

	return content
}

// SetSize updates the menu size
func (m *MenuModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
