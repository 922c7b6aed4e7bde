// Package tui provides the interactive terminal editor for offerta.
// It implements a driving adapter following hexagonal architecture.
package tui

import (
	"github.com/skapa-labs/offerta-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Draft manages the editable receipt and offer drafts.
	Draft driving.DraftService

	// Export renders a draft and archives the result.
	Export driving.ExportService

	// Archive provides access to saved documents.
	Archive driving.ArchiveService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	draft driving.DraftService,
	export driving.ExportService,
	archive driving.ArchiveService,
) *Ports {
	return &Ports{
		Draft:   draft,
		Export:  export,
		Archive: archive,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Draft == nil {
		return ErrMissingDraftService
	}
	if p.Export == nil {
		return ErrMissingExportService
	}
	if p.Archive == nil {
		return ErrMissingArchiveService
	}
	return nil
}
