package models

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"

	"github.com/sorteio/api/cmd/console/components"
	"github.com/sorteio/api/internal/roster"
)

type rosterPane int

const (
	namesPane rosterPane = iota
	listsPane
)

type inputMode int

const (
	inputNone inputMode = iota
	inputNames
	inputTitle
)

type rosterLoadedMsg struct {
	names []roster.Name
	lists []roster.ListSummary
	err   error
}

type rosterActionMsg struct {
	status string
	err    error
}

// RosterModel manages the loose names and saved lists the draws read from.
type RosterModel struct {
	manager *roster.Manager

	names  []roster.Name
	lists  []roster.ListSummary
	pane   rosterPane
	cursor int
	width  int
	height int

	mode  inputMode
	input string

	isLoading   bool
	status      string
	errorMsg    string
	lastUpdated time.Time
}

func NewRosterModel(manager *roster.Manager) RosterModel {
	return RosterModel{manager: manager}
}

func (m RosterModel) Init() tea.Cmd {
	return m.loadCmd()
}

// Editing reports whether keystrokes belong to the text prompt.
func (m RosterModel) Editing() bool {
	return m.mode != inputNone
}

func (m RosterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case rosterLoadedMsg:
		m.isLoading = false
		if msg.err != nil {
			m.errorMsg = msg.err.Error()
			return m, nil
		}
		m.names = msg.names
		m.lists = msg.lists
		m.lastUpdated = time.Now()
		m.cursor = min(m.cursor, max(m.paneLen()-1, 0))
		return m, nil

	case rosterActionMsg:
		if msg.err != nil {
			m.errorMsg = msg.err.Error()
			m.status = ""
		} else {
			m.errorMsg = ""
			m.status = msg.status
		}
		return m, m.loadCmd()

	case tea.KeyMsg:
		if m.Editing() {
			return m.updateInput(msg)
		}

		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < m.paneLen()-1 {
				m.cursor++
			}
		case "left", "right", "h", "l":
			if m.pane == namesPane {
				m.pane = listsPane
			} else {
				m.pane = namesPane
			}
			m.cursor = 0
		case "a":
			m.mode = inputNames
			m.input = ""
		case "s":
			m.mode = inputTitle
			m.input = ""
		case "x", "delete":
			return m, m.removeCmd()
		case "c":
			return m, m.clearCmd()
		case "enter":
			if m.pane == listsPane {
				return m, m.loadListCmd()
			}
		case "r":
			m.isLoading = true
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m RosterModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "esc":
		m.mode = inputNone
		m.input = ""
	case "enter":
		mode, text := m.mode, m.input
		m.mode = inputNone
		m.input = ""
		if mode == inputNames {
			return m, m.importCmd(text)
		}
		return m, m.saveListCmd(text)
	case "backspace":
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case "space":
		m.input += " "
	default:
		if utf8.RuneCountInString(key) == 1 {
			m.input += key
		}
	}
	return m, nil
}

func (m RosterModel) paneLen() int {
	if m.pane == listsPane {
		return len(m.lists)
	}
	return len(m.names)
}

func (m RosterModel) loadCmd() tea.Cmd {
	manager := m.manager
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		names, err := manager.ListNames(ctx)
		if err != nil {
			return rosterLoadedMsg{err: err}
		}
		lists, err := manager.ListLists(ctx)
		if err != nil {
			return rosterLoadedMsg{err: err}
		}
		return rosterLoadedMsg{names: names, lists: lists}
	}
}

// action runs fn against the roster and reports status on success.
func (m RosterModel) action(fn func(ctx context.Context, manager *roster.Manager) (string, error)) tea.Cmd {
	manager := m.manager
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		status, err := fn(ctx, manager)
		return rosterActionMsg{status: status, err: err}
	}
}

func (m RosterModel) importCmd(text string) tea.Cmd {
	return m.action(func(ctx context.Context, manager *roster.Manager) (string, error) {
		added, err := manager.ImportNames(ctx, text)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Added %d names", len(added)), nil
	})
}

func (m RosterModel) saveListCmd(title string) tea.Cmd {
	return m.action(func(ctx context.Context, manager *roster.Manager) (string, error) {
		list, err := manager.SaveList(ctx, title)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Saved %q with %d names", list.Title, len(list.Names)), nil
	})
}

func (m RosterModel) removeCmd() tea.Cmd {
	if m.cursor >= m.paneLen() {
		return nil
	}
	if m.pane == listsPane {
		list := m.lists[m.cursor]
		return m.action(func(ctx context.Context, manager *roster.Manager) (string, error) {
			return fmt.Sprintf("Removed list %q", list.Title), manager.RemoveList(ctx, list.ID)
		})
	}
	name := m.names[m.cursor]
	return m.action(func(ctx context.Context, manager *roster.Manager) (string, error) {
		return fmt.Sprintf("Removed %s", name.Value), manager.RemoveName(ctx, name.ID)
	})
}

func (m RosterModel) clearCmd() tea.Cmd {
	return m.action(func(ctx context.Context, manager *roster.Manager) (string, error) {
		n, err := manager.ClearNames(ctx)
		return fmt.Sprintf("Cleared %d names", n), err
	})
}

func (m RosterModel) loadListCmd() tea.Cmd {
	if m.cursor >= len(m.lists) {
		return nil
	}
	list := m.lists[m.cursor]
	return m.action(func(ctx context.Context, manager *roster.Manager) (string, error) {
		added, err := manager.LoadList(ctx, list.ID)
		return fmt.Sprintf("Loaded %d names from %q", len(added), list.Title), err
	})
}

func (m RosterModel) View() string {
	var s strings.Builder

	s.WriteString(components.TitleStyle.Render("Names & Lists") + "\n")

	namesBox := m.renderPane(namesPane, fmt.Sprintf("Names (%d)", len(m.names)), func(i int) string {
		return m.names[i].Value
	}, len(m.names))
	listsBox := m.renderPane(listsPane, fmt.Sprintf("Saved lists (%d)", len(m.lists)), func(i int) string {
		return fmt.Sprintf("%s (%d)", m.lists[i].Title, m.lists[i].NameCount)
	}, len(m.lists))
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, namesBox, listsBox) + "\n\n")

	switch m.mode {
	case inputNames:
		s.WriteString("Names (comma separated): " + m.input + "█\n")
	case inputTitle:
		s.WriteString("List title: " + m.input + "█\n")
	}

	if m.errorMsg != "" {
		s.WriteString(components.ErrorStyle.Render("Error: "+m.errorMsg) + "\n")
	} else if m.status != "" {
		s.WriteString(components.SubtitleStyle.Render(m.status) + "\n")
	}
	if m.isLoading {
		s.WriteString("Loading...\n")
	}

	help := "a add • s save as list • x remove • c clear names • enter load list • ←/→ switch • r refresh • q back"
	if m.Editing() {
		help = "enter confirm • esc cancel"
	}
	if !m.lastUpdated.IsZero() {
		help += " • updated " + m.lastUpdated.Format("15:04:05")
	}
	s.WriteString("\n" + components.StatusBarStyle.Width(m.width).Render(help))

	return s.String()
}

func (m RosterModel) renderPane(pane rosterPane, title string, label func(int) string, n int) string {
	style := components.BorderStyle
	if m.pane == pane {
		style = components.FocusedBorderStyle
	}

	rows := []string{components.SubtitleStyle.Render(title)}
	if n == 0 {
		rows = append(rows, components.HelpStyle.Render("empty"))
	}
	for i := 0; i < n; i++ {
		item := components.MenuItemStyle
		if m.pane == pane && i == m.cursor {
			item = components.SelectedMenuItemStyle
		}
		rows = append(rows, item.Render(label(i)))
	}
	return style.Width(36).Render(strings.Join(rows, "\n"))
}

// SetSize updates the view size
func (m *RosterModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
