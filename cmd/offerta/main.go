// Command offerta is a terminal tool for creating receipts and offers,
// exporting them as PDFs and keeping every export in a local archive.
package main

import (
	"fmt"
	"os"

	configfile "github.com/skapa-labs/offerta-cli/internal/adapters/driven/config/file"
	"github.com/skapa-labs/offerta-cli/internal/adapters/driven/render/pdf"
	"github.com/skapa-labs/offerta-cli/internal/adapters/driven/storage/sqlite"
	"github.com/skapa-labs/offerta-cli/internal/adapters/driving/cli"
	"github.com/skapa-labs/offerta-cli/internal/core/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The store opens lazily on first use; construction never fails.
	store := sqlite.NewStore(cfg.GetString("storage.data_dir"))
	defer func() { _ = store.Close() }()

	renderer := pdf.NewRenderer(cfg.GetString("pdf.logo_path"))

	drafts := services.NewDraftService(cfg)
	export := services.NewExportService(drafts, renderer, store.Artifacts())
	archive := services.NewArchiveService(store.Artifacts())

	cli.SetServices(&cli.Services{
		Draft:   drafts,
		Export:  export,
		Archive: archive,
	})

	return cli.Execute()
}
