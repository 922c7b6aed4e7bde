package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skapa-labs/offerta-cli/internal/adapters/driving/tui/messages"
	"github.com/skapa-labs/offerta-cli/internal/adapters/driving/tui/styles"
	"github.com/skapa-labs/offerta-cli/internal/adapters/driving/tui/views/archive"
	"github.com/skapa-labs/offerta-cli/internal/adapters/driving/tui/views/editor"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// editorView is the draft editor.
	editorView *editor.View

	// archiveView lists saved documents.
	archiveView *archive.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		editorView:  editor.NewView(s, ports.Draft, ports.Export),
		archiveView: archive.NewView(s, ports.Archive),
		currentView: messages.ViewEditor,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// CurrentView returns the active view.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Ready reports whether the app has received its initial window size.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions directly.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("offerta"),
		a.editorView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.editorView, _ = a.editorView.Update(msg)
		a.archiveView, _ = a.archiveView.Update(msg)
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewArchive {
			return a, a.archiveView.Reload()
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "ctrl+a":
			if a.currentView == messages.ViewEditor {
				a.currentView = messages.ViewArchive
				return a, a.archiveView.Reload()
			}
			return a, nil
		case "esc":
			if a.currentView == messages.ViewArchive {
				a.currentView = messages.ViewEditor
				return a, nil
			}
			return a, tea.Quit
		}
	}

	// Everything else goes to the active view.
	switch a.currentView {
	case messages.ViewEditor:
		a.editorView, cmd = a.editorView.Update(msg)
	case messages.ViewArchive:
		a.archiveView, cmd = a.archiveView.Update(msg)
	}

	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Startar..."
	}

	switch a.currentView {
	case messages.ViewArchive:
		return a.archiveView.View()
	default:
		return a.editorView.View()
	}
}
