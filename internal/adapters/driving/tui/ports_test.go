package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPorts(t *testing.T) {
	p := newTestPorts()

	require.NotNil(t, p)
	assert.NotNil(t, p.Draft)
	assert.NotNil(t, p.Export)
	assert.NotNil(t, p.Archive)
}

func TestPorts_Validate_Success(t *testing.T) {
	p := newTestPorts()

	assert.NoError(t, p.Validate())
}

func TestPorts_Validate_MissingDraft(t *testing.T) {
	p := newTestPorts()
	p.Draft = nil

	assert.ErrorIs(t, p.Validate(), ErrMissingDraftService)
}

func TestPorts_Validate_MissingExport(t *testing.T) {
	p := newTestPorts()
	p.Export = nil

	assert.ErrorIs(t, p.Validate(), ErrMissingExportService)
}

func TestPorts_Validate_MissingArchive(t *testing.T) {
	p := newTestPorts()
	p.Archive = nil

	assert.ErrorIs(t, p.Validate(), ErrMissingArchiveService)
}
