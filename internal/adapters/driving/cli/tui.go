package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/skapa-labs/offerta-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive document editor",
	Long: `Launch the interactive terminal editor for receipts and offers.

The editor keeps one draft per document type. Fill in the header
fields and line items, watch the totals update as you type, and save
the document as a PDF into the local archive.

Controls:
  Tab/Shift+Tab - Move between fields
  Ctrl+N        - Add a line item
  Ctrl+D        - Remove the current line item
  Ctrl+R        - Reset the draft
  Ctrl+S        - Save as PDF
  Ctrl+T        - Switch between receipt and offer
  Ctrl+A        - Open the archive view
  Esc/Ctrl+C    - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Panic recovery keeps a stack trace visible after the alternate
	// screen is torn down.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Draft:   draftService,
		Export:  exportService,
		Archive: archiveService,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
