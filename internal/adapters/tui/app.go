package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"edet/internal/adapters/tui/views"
	"edet/internal/application/facade"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPanel ViewState = iota
	ViewHelp
)

// App is the main TUI application model
type App struct {
	state ViewState
	panel *views.PanelModel
	help  *views.HelpModel
}

// NewApp creates a new TUI application
func NewApp(f *facade.ConfigurationFacade) *App {
	return &App{
		state: ViewPanel,
		panel: views.NewPanelModel(f),
		help:  views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.panel.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.panel.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToPanelMsg:
		a.state = ViewPanel
		return a, a.panel.Reload()

	case tea.KeyMsg:
		var cmd tea.Cmd
		switch a.state {
		case ViewHelp:
			_, cmd = a.help.Update(msg)
		default:
			_, cmd = a.panel.Update(msg)
		}
		return a, cmd
	}

	// Async results always belong to the panel
	_, cmd := a.panel.Update(msg)
	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	if a.state == ViewHelp {
		return a.help.View()
	}
	return a.panel.View()
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}
