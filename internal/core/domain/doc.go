// Package domain defines the core business entities for Offerta.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - LineItem: One row of a document draft
//   - Ledger: An ordered collection of line items with derived totals
//   - Draft: The editable state of one receipt or offer
//   - ArtifactRecord: A rendered document persisted in the archive
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
