package driven

import (
	"context"

	"github.com/skapa-labs/offerta-cli/internal/core/domain"
)

// Renderer turns a frozen draft snapshot into a binary document.
// The core never inspects the payload's internal format.
type Renderer interface {
	// Render produces the binary artifact for a snapshot.
	// A failure is fatal to the export attempt; no record is created.
	Render(ctx context.Context, snap domain.DraftSnapshot) ([]byte, error)
}
