package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown document type.
	ErrUnsupportedType = errors.New("unsupported document type")

	// ErrStoreUnavailable indicates the artifact store could not be opened.
	// Exports must not proceed while the store is unavailable.
	ErrStoreUnavailable = errors.New("artifact store unavailable")

	// ErrRenderFailed indicates the PDF renderer rejected the draft.
	// The export is abandoned and nothing is written to the store.
	ErrRenderFailed = errors.New("render failed")
)
