// Package cli implements the cobra command tree. Commands talk to the
// core exclusively through the driving ports; main wires concrete
// services in via SetServices before Execute runs.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/skapa-labs/offerta-cli/internal/core/ports/driving"
	"github.com/skapa-labs/offerta-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// verbose enables debug logging for all commands.
var verbose bool

// Core services, injected by main before Execute.
var (
	draftService   driving.DraftService
	exportService  driving.ExportService
	archiveService driving.ArchiveService
)

// Services holds the core services the commands depend on.
type Services struct {
	Draft   driving.DraftService
	Export  driving.ExportService
	Archive driving.ArchiveService
}

// SetServices injects core services into the command tree.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	draftService = s.Draft
	exportService = s.Export
	archiveService = s.Archive
}

var rootCmd = &cobra.Command{
	Use:   "offerta",
	Short: "Create receipts and offers from the terminal",
	Long: `Offerta is a terminal tool for putting together simple receipts
and offers, exporting them as PDF files and keeping every exported
document in a local archive.

Run "offerta tui" to open the interactive editor, or use the archive
subcommands to browse and re-export previously saved documents.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}
