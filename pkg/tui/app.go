package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quillforge/sidekick/pkg/models"
	"github.com/quillforge/sidekick/pkg/workflow"
)

// StatusMsg updates the transient status bar at the bottom of the screen.
type StatusMsg string

// App is the root Bubble Tea model. It owns the single workspace view and
// the shared status bar.
type App struct {
	workspace *WorkspaceModel
	width     int
	height    int
	statusMsg string
}

// NewApp creates the application around a populated store, the working
// document, and loaded settings.
func NewApp(store *workflow.Store, documentText string, settings *models.Settings) *App {
	return &App{
		workspace: NewWorkspaceModel(store, documentText, settings),
	}
}

func (a *App) Init() tea.Cmd {
	return a.workspace.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.workspace.SetSize(msg.Width, msg.Height-1) // reserve the status bar row

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, clearStatusLater()

	case clearStatusMsg:
		a.statusMsg = ""
		return a, nil
	}

	var cmd tea.Cmd
	var m tea.Model
	m, cmd = a.workspace.Update(msg)
	if ws, ok := m.(*WorkspaceModel); ok {
		a.workspace = ws
	}
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	content := a.workspace.View()

	statusBar := a.statusMsg
	if statusBar != "" {
		statusBar = statusBarStyle.Render(statusBar)
	}
	return lipgloss.JoinVertical(lipgloss.Top, content, statusBar)
}
