package domain

import "time"

// ArtifactRecord is the persisted unit of the archive: the rendered binary
// document plus the metadata frozen at export time.
//
// Once written, ID, Type and CreatedAt never change, and there is no
// update-in-place operation; a record is replaced wholesale or not at all.
type ArtifactRecord struct {
	// ID is the globally unique identifier, generated at save time.
	ID string

	// Type is the document kind that produced this artifact.
	Type DocumentType

	// Title is the human-readable summary derived from the draft metadata.
	Title string

	// FileName is the suggested file name for the rendered document.
	FileName string

	// CreatedAt is the save time. Non-decreasing across records.
	// Persisted as integer epoch milliseconds.
	CreatedAt time.Time

	// Meta is the metadata snapshot: non-ledger fields plus computed totals.
	Meta map[string]any

	// Blob is the rendered binary payload. Opaque to the core.
	Blob []byte
}
