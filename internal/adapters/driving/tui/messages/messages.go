// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/skapa-labs/offerta-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewEditor is the draft editor view.
	ViewEditor ViewType = iota
	// ViewArchive lists saved documents.
	ViewArchive
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewEditor:
		return "editor"
	case ViewArchive:
		return "archive"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ExportCompleted signals that a draft was rendered and archived.
type ExportCompleted struct {
	Record *domain.ArtifactRecord
	Err    error
}

// ArchiveLoaded carries the list of saved documents.
type ArchiveLoaded struct {
	Records []domain.ArtifactRecord
	Err     error
}

// FileWritten signals that a saved document's PDF was written to disk.
type FileWritten struct {
	Path string
	Err  error
}

// ArtifactDeleted signals a saved document was removed from the archive.
type ArtifactDeleted struct {
	ID  string
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
