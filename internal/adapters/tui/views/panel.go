package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"edet/internal/adapters/tui/styles"
	"edet/internal/application"
	"edet/internal/application/facade"
	"edet/internal/domain"
)

// PanelKeyMap defines key bindings for the configuration panel
type PanelKeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Initialize   key.Binding
	Connect      key.Binding
	AutoOrganize key.Binding
	EnableRAG    key.Binding
	SyncDrive    key.Binding
	Save         key.Binding
	Copy         key.Binding
	Help         key.Binding
	Quit         key.Binding
}

var PanelKeys = PanelKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Initialize: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "initialize"),
	),
	Connect: key.NewBinding(
		key.WithKeys("c", "enter"),
		key.WithHelp("c", "connect"),
	),
	AutoOrganize: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "auto-organize"),
	),
	EnableRAG: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rag"),
	),
	SyncDrive: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "sync drive"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy id"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// PanelModel shows the structure status, the seminar list and the settings
type PanelModel struct {
	ViewState

	facade *facade.ConfigurationFacade
	clip   func(string) error

	loaded       bool
	status       domain.StatusSnapshot
	settings     domain.Settings
	dirty        bool
	integrations map[int]domain.IntegrationConfig
	cursor       int
}

// NewPanelModel creates the panel over the facade
func NewPanelModel(f *facade.ConfigurationFacade) *PanelModel {
	return &PanelModel{
		facade:       f,
		clip:         clipboard.WriteAll,
		integrations: map[int]domain.IntegrationConfig{},
	}
}

type panelLoadedMsg struct {
	status       domain.StatusSnapshot
	settings     domain.Settings
	integrations map[int]domain.IntegrationConfig
}

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}

// Init loads the current state
func (m *PanelModel) Init() tea.Cmd {
	return m.load
}

// Reload fetches the state again
func (m *PanelModel) Reload() tea.Cmd {
	return m.load
}

func (m *PanelModel) load() tea.Msg {
	ctx := context.Background()

	status, err := m.facade.GetStatus(ctx).Unwrap()
	if err != nil {
		return errMsg{err}
	}
	settings, err := m.facade.LoadSettings(ctx).Unwrap()
	if err != nil {
		return errMsg{err}
	}

	integrations := map[int]domain.IntegrationConfig{}
	for _, s := range status.Seminars {
		res := m.facade.GetIntegration(ctx, s.ID)
		switch {
		case res.Success:
			integrations[s.ID] = res.Data
		case res.Kind != application.KindNotInitialized:
			return errMsg{fmt.Errorf("%s", res.Error)}
		}
	}

	return panelLoadedMsg{status: status, settings: settings, integrations: integrations}
}

// Update handles messages for the panel
func (m *PanelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case panelLoadedMsg:
		m.loaded = true
		m.status = msg.status
		m.integrations = msg.integrations
		if !m.dirty {
			m.settings = msg.settings
		}
		m.clampCursor()
		return m, nil

	case errMsg:
		return m, m.SetMessage(msg.err.Error(), true)

	case successMsg:
		return m, tea.Batch(m.SetMessage(msg.message, false), m.Reload())

	case settingsSavedMsg:
		m.dirty = false
		return m, tea.Batch(m.SetMessage("Settings saved", false), m.Reload())

	case dismissMsg:
		m.dismiss(msg)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, PanelKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, PanelKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, PanelKeys.Down):
			if m.cursor < len(m.status.Seminars)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, PanelKeys.Initialize):
			return m, m.initialize

		case key.Matches(msg, PanelKeys.Connect):
			if s, ok := m.selected(); ok {
				return m, m.connect(s.ID)
			}
			return m, nil

		case key.Matches(msg, PanelKeys.AutoOrganize):
			m.settings.AutoOrganize = !m.settings.AutoOrganize
			m.dirty = true
			return m, nil

		case key.Matches(msg, PanelKeys.EnableRAG):
			m.settings.EnableRAG = !m.settings.EnableRAG
			m.dirty = true
			return m, nil

		case key.Matches(msg, PanelKeys.SyncDrive):
			m.settings.SyncDrive = !m.settings.SyncDrive
			m.dirty = true
			return m, nil

		case key.Matches(msg, PanelKeys.Save):
			return m, m.saveSettings(m.settings)

		case key.Matches(msg, PanelKeys.Copy):
			return m, m.copySelected()

		case key.Matches(msg, PanelKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *PanelModel) initialize() tea.Msg {
	res, err := m.facade.Initialize(context.Background()).Unwrap()
	if err != nil {
		return errMsg{err}
	}
	return successMsg{res.Message}
}

func (m *PanelModel) connect(seminarID int) tea.Cmd {
	return func() tea.Msg {
		res, err := m.facade.ConnectIntegration(context.Background(), seminarID).Unwrap()
		if err != nil {
			return errMsg{err}
		}
		return successMsg{res.Message}
	}
}

func (m *PanelModel) saveSettings(s domain.Settings) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.facade.SaveSettings(context.Background(), s).Unwrap(); err != nil {
			return errMsg{err}
		}
		return settingsSavedMsg{}
	}
}

type settingsSavedMsg struct{}

func (m *PanelModel) copySelected() tea.Cmd {
	s, ok := m.selected()
	if !ok {
		return nil
	}
	cfg, connected := m.integrations[s.ID]
	if !connected {
		return m.SetMessage(fmt.Sprintf("%s is not connected", s.FolderName), true)
	}
	if err := m.clip(cfg.FolderID); err != nil {
		return m.SetMessage(fmt.Sprintf("copy failed: %v", err), true)
	}
	return m.SetMessage(fmt.Sprintf("Copied %s", cfg.FolderID), false)
}

func (m *PanelModel) selected() (domain.SeminarEntry, bool) {
	if m.cursor >= 0 && m.cursor < len(m.status.Seminars) {
		return m.status.Seminars[m.cursor], true
	}
	return domain.SeminarEntry{}, false
}

func (m *PanelModel) clampCursor() {
	if m.cursor >= len(m.status.Seminars) {
		m.cursor = len(m.status.Seminars) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the panel
func (m *PanelModel) View() string {
	if !m.loaded {
		if m.Message != "" {
			return styles.App.Render(RenderMessage(m.Message, m.MessageErr))
		}
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("EDET"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Seminar folders and knowledge-base integration"))
	b.WriteString("\n\n")

	b.WriteString(styles.StatusBox.Render(m.renderStatus()))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Seminars"))
	b.WriteString("\n")
	for i, s := range m.status.Seminars {
		b.WriteString(m.renderSeminar(s, i == m.cursor))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Settings"))
	if m.dirty {
		b.WriteString(styles.MutedText.Render(" (unsaved)"))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s auto-organize  %s rag  %s sync drive\n",
		styles.Toggle(m.settings.AutoOrganize),
		styles.Toggle(m.settings.EnableRAG),
		styles.Toggle(m.settings.SyncDrive),
	))

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(
		PanelKeys.Initialize,
		PanelKeys.Connect,
		PanelKeys.Save,
		PanelKeys.Copy,
		PanelKeys.Help,
		PanelKeys.Quit,
	))

	return styles.App.Render(b.String())
}

func (m *PanelModel) renderStatus() string {
	lines := []string{
		RenderLabelValue("Structure", styles.Flag(m.status.Initialized, "initialized", "not initialized")),
	}
	if m.status.MainFolderID != "" {
		lines = append(lines, RenderLabelValue("Main folder", m.status.MainFolderID))
	}
	if m.status.LastSync != nil {
		lines = append(lines, RenderLabelValue("Last sync", m.status.LastSync.Local().Format(time.DateTime)))
	}
	lines = append(lines, RenderLabelValue("Connected",
		fmt.Sprintf("%d/%d", len(m.integrations), m.status.TotalSeminars)))
	return strings.Join(lines, "\n")
}

func (m *PanelModel) renderSeminar(s domain.SeminarEntry, selected bool) string {
	cursor := styles.NoCursor
	if selected {
		cursor = styles.Cursor
	}

	text := padRight(s.DisplayName, 36) + s.FolderName
	_, connected := m.integrations[s.ID]

	switch {
	case selected:
		text = styles.SeminarSelected.Render(text)
	case connected:
		text = styles.SeminarConnected.Render(text)
	default:
		text = styles.SeminarRow.Render(text)
	}
	if connected {
		text += styles.StatusOn.Render(" ●")
	}
	return cursor + text
}
