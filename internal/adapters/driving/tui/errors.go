package tui

import "errors"

// ErrMissingDraftService is returned when the draft service is not provided.
var ErrMissingDraftService = errors.New("tui: draft service is required")

// ErrMissingExportService is returned when the export service is not provided.
var ErrMissingExportService = errors.New("tui: export service is required")

// ErrMissingArchiveService is returned when the archive service is not provided.
var ErrMissingArchiveService = errors.New("tui: archive service is required")
