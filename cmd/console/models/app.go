package models

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/sorteio/api/cmd/console/components"
	"github.com/sorteio/api/internal/draw"
	"github.com/sorteio/api/internal/prefs"
	"github.com/sorteio/api/internal/roster"
)

// ViewType represents the different views in the console
type ViewType int

const (
	MenuView ViewType = iota
	NamesDrawView
	NumbersDrawView
	SequenceDrawView
	GroupsDrawView
	EliminationView
	RosterView

	viewCount
)

var drawViews = map[ViewType]draw.Kind{
	NamesDrawView:    draw.KindNames,
	NumbersDrawView:  draw.KindNumbers,
	SequenceDrawView: draw.KindSequence,
	GroupsDrawView:   draw.KindGroups,
	EliminationView:  draw.KindElimination,
}

// Deps are the services the console drives.
type Deps struct {
	Roster         *roster.Manager
	Prefs          *prefs.Manager
	Draws          *draw.Service
	RevealInterval time.Duration
}

type prefsLoadedMsg struct {
	prefs *prefs.Preferences
	err   error
}

type toggleThemeMsg struct{}

type toggleLanguageMsg struct{}

// App is the main application model
type App struct {
	prefs *prefs.Manager

	// Current state
	currentView ViewType
	width       int
	height      int

	// View models
	menu   MenuModel
	draws  map[draw.Kind]*DrawModel
	roster RosterModel

	// UI state
	showHelp bool
	errorMsg string
}

// NewApp creates a new application instance
func NewApp(deps Deps, startView string) *App {
	app := &App{
		prefs:       deps.Prefs,
		currentView: MenuView,
		menu:        NewMenuModel(),
		roster:      NewRosterModel(deps.Roster),
		draws:       make(map[draw.Kind]*DrawModel, len(drawViews)),
	}
	for _, kind := range drawViews {
		model := NewDrawModel(kind, deps.Draws, deps.RevealInterval)
		app.draws[kind] = &model
	}

	// Set starting view based on parameter
	switch startView {
	case "names":
		app.currentView = NamesDrawView
	case "numbers":
		app.currentView = NumbersDrawView
	case "sequence":
		app.currentView = SequenceDrawView
	case "groups":
		app.currentView = GroupsDrawView
	case "elimination":
		app.currentView = EliminationView
	case "roster":
		app.currentView = RosterView
	default:
		app.currentView = MenuView
	}

	return app
}

// Init initializes the application
func (m *App) Init() tea.Cmd {
	log.Debug("Initializing console", "view", m.currentView)
	return tea.Batch(m.loadPrefsCmd(), m.getCurrentViewModel().Init())
}

// Update handles messages and updates the application state
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Update all view models with new size
		m.menu.SetSize(msg.Width, msg.Height)
		m.roster.SetSize(msg.Width, msg.Height)
		for _, d := range m.draws {
			d.SetSize(msg.Width, msg.Height)
		}

		return m, nil

	case tea.KeyMsg:
		if m.currentView == RosterView && m.roster.Editing() {
			break
		}

		// Global key bindings
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.currentView == MenuView {
				return m, tea.Quit
			}
			// If not in menu, go back to menu instead of quitting
			m.currentView = MenuView
			return m, m.menu.Init()

		case "?":
			m.showHelp = !m.showHelp
			return m, nil

		case "tab":
			// Cycle through views
			m.currentView = (m.currentView + 1) % viewCount
			return m, m.getCurrentViewModel().Init()
		}

	case SwitchViewMsg:
		m.currentView = msg.View
		return m, m.getCurrentViewModel().Init()

	case prefsLoadedMsg:
		if msg.err != nil {
			m.errorMsg = msg.err.Error()
		} else {
			m.errorMsg = ""
			components.UseDark(msg.prefs.Theme == prefs.ThemeDark)
		}
		newModel, cmd := m.menu.Update(msg)
		m.menu = newModel.(MenuModel)
		return m, cmd

	case toggleThemeMsg:
		return m, m.togglePrefCmd(func(ctx context.Context) error {
			_, err := m.prefs.ToggleTheme(ctx)
			return err
		})

	case toggleLanguageMsg:
		return m, m.togglePrefCmd(func(ctx context.Context) error {
			_, err := m.prefs.ToggleLanguage(ctx)
			return err
		})

	// Draw results and reveal ticks go to the view that started them, even
	// after the user has moved on.
	case drawResultMsg:
		return m, m.updateDraw(msg.kind, msg)

	case revealTickMsg:
		return m, m.updateDraw(msg.kind, msg)

	case rosterLoadedMsg, rosterActionMsg:
		newModel, cmd := m.roster.Update(msg)
		m.roster = newModel.(RosterModel)
		return m, cmd
	}

	// Handle help view
	if m.showHelp {
		return m, nil
	}

	// Route message to current view
	switch m.currentView {
	case MenuView:
		newModel, cmd := m.menu.Update(msg)
		m.menu = newModel.(MenuModel)
		return m, cmd
	case RosterView:
		newModel, cmd := m.roster.Update(msg)
		m.roster = newModel.(RosterModel)
		return m, cmd
	default:
		if kind, ok := drawViews[m.currentView]; ok {
			return m, m.updateDraw(kind, msg)
		}
	}

	return m, nil
}

func (m *App) updateDraw(kind draw.Kind, msg tea.Msg) tea.Cmd {
	d, ok := m.draws[kind]
	if !ok {
		return nil
	}
	newModel, cmd := d.Update(msg)
	*d = newModel.(DrawModel)
	return cmd
}

func (m *App) loadPrefsCmd() tea.Cmd {
	manager := m.prefs
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		p, err := manager.Get(ctx)
		return prefsLoadedMsg{prefs: p, err: err}
	}
}

// togglePrefCmd flips a preference and reloads all of them.
func (m *App) togglePrefCmd(toggle func(ctx context.Context) error) tea.Cmd {
	manager := m.prefs
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := toggle(ctx); err != nil {
			return prefsLoadedMsg{err: err}
		}
		p, err := manager.Get(ctx)
		return prefsLoadedMsg{prefs: p, err: err}
	}
}

// View renders the application
func (m *App) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	var view string
	switch m.currentView {
	case MenuView:
		view = m.menu.View()
	case RosterView:
		view = m.roster.View()
	default:
		if d, ok := m.draws[drawViews[m.currentView]]; ok {
			view = d.View()
		} else {
			view = "Unknown view"
		}
	}

	if m.errorMsg != "" {
		view += "\n" + components.ErrorStyle.Render("Preferences: "+m.errorMsg)
	}
	return view
}

// getCurrentViewModel returns the current view's model
func (m *App) getCurrentViewModel() tea.Model {
	switch m.currentView {
	case MenuView:
		return &m.menu
	case RosterView:
		return &m.roster
	}
	if d, ok := m.draws[drawViews[m.currentView]]; ok {
		return d
	}
	return &m.menu
}

// renderHelp renders the help screen
func (m *App) renderHelp() string {
	help := `Sorteio - Help

Global Keys:
  q            Quit (from menu) / Back to menu
  Ctrl+C       Quit
  ?            Toggle this help
  Tab          Cycle through views
  1-6          Select view (from menu)
  t / l        Toggle theme / language (from menu)

Draw views:
  ↑/↓          Select a setting
  ←/→ or -/+   Change the selected setting
  Space        Toggle an on/off setting
  Enter        Draw
  s            Show the whole result at once
  Esc          Clear the result

Names & Lists:
  a            Add names (comma separated)
  s            Save current names as a list
  x            Remove the selected name or list
  c            Clear all names
  Enter        Append the selected list to the names

Press ? again to close this help`

	return components.BorderStyle.Render(help)
}

// SwitchViewMsg is a message to switch views
type SwitchViewMsg struct {
	View ViewType
}

// NewSwitchViewMsg creates a new switch view message
func NewSwitchViewMsg(view ViewType) SwitchViewMsg {
	return SwitchViewMsg{View: view}
}
