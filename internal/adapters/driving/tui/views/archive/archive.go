// Package archive provides the saved-documents list view for the TUI.
package archive

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skapa-labs/offerta-cli/internal/adapters/driving/tui/messages"
	"github.com/skapa-labs/offerta-cli/internal/adapters/driving/tui/styles"
	"github.com/skapa-labs/offerta-cli/internal/core/domain"
	"github.com/skapa-labs/offerta-cli/internal/core/ports/driving"
)

// listLimit caps how many saved documents the view loads.
const listLimit = 50

// View lists saved documents, newest first.
type View struct {
	styles         *styles.Styles
	archiveService driving.ArchiveService

	records  []domain.ArtifactRecord
	selected int
	status   string
	err      error
	loading  bool

	width  int
	height int
	ready  bool
}

// NewView creates a new archive view.
func NewView(s *styles.Styles, archiveService driving.ArchiveService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:         s,
		archiveService: archiveService,
		records:        []domain.ArtifactRecord{},
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Records returns the currently loaded records.
func (v *View) Records() []domain.ArtifactRecord {
	return v.records
}

// Err returns the last error, if any.
func (v *View) Err() error {
	return v.err
}

// Reload returns a command that loads the archive contents.
func (v *View) Reload() tea.Cmd {
	v.loading = true
	v.status = ""
	return func() tea.Msg {
		if v.archiveService == nil {
			return messages.ArchiveLoaded{Err: fmt.Errorf("archive service not available")}
		}
		records, err := v.archiveService.ListRecent(context.Background(), listLimit)
		return messages.ArchiveLoaded{Records: records, Err: err}
	}
}

// Update handles messages for the archive view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.ArchiveLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.records = msg.Records
			v.err = nil
			if v.selected >= len(v.records) {
				v.selected = 0
			}
		}
		return v, nil

	case messages.FileWritten:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.err = nil
			v.status = fmt.Sprintf("Skrev %s", msg.Path)
		}
		return v, nil

	case messages.ArtifactDeleted:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.status = "Borttagen."
		return v, v.Reload()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.records)-1 {
			v.selected++
		}
	case "r":
		return v, v.Reload()
	case "e", "enter":
		return v, v.writeSelected()
	case "d":
		return v, v.deleteSelected()
	}

	return v, nil
}

// writeSelected returns a command that writes the selected document's
// PDF to the current working directory.
func (v *View) writeSelected() tea.Cmd {
	if v.selected >= len(v.records) {
		return nil
	}
	id := v.records[v.selected].ID
	return func() tea.Msg {
		path, err := v.archiveService.WriteFile(context.Background(), id, ".")
		return messages.FileWritten{Path: path, Err: err}
	}
}

// deleteSelected returns a command that deletes the selected document.
func (v *View) deleteSelected() tea.Cmd {
	if v.selected >= len(v.records) {
		return nil
	}
	id := v.records[v.selected].ID
	return func() tea.Msg {
		err := v.archiveService.Delete(context.Background(), id)
		return messages.ArtifactDeleted{ID: id, Err: err}
	}
}

// View renders the archive view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Arkiv (%d)", len(v.records))))
	b.WriteString("\n\n")

	if v.loading {
		b.WriteString(v.styles.Muted.Render("Laddar..."))
		b.WriteString("\n")
	} else if len(v.records) == 0 {
		b.WriteString(v.styles.Muted.Render("Inga sparade dokument."))
		b.WriteString("\n")
	}

	for i := range v.records {
		rec := v.records[i]
		line := fmt.Sprintf("%-8s %-40s %s",
			rec.Type, rec.Title, rec.CreatedAt.Format("2006-01-02 15:04"))
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Fel: %v", v.err)))
		b.WriteString("\n")
	} else if v.status != "" {
		b.WriteString(v.styles.Success.Render(v.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render(
		"↑/↓: navigera • Enter/e: skriv PDF • d: ta bort • r: uppdatera • Esc: tillbaka"))

	return b.String()
}
