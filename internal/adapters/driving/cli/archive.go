package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skapa-labs/offerta-cli/internal/core/domain"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Browse saved documents",
	Long:  `List, inspect, export, or delete documents saved to the local archive.`,
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved documents",
	RunE:  runArchiveList,
}

var archiveShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show document info",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchiveShow,
}

var archiveExportCmd = &cobra.Command{
	Use:   "export [id] [dir]",
	Short: "Write a saved document's PDF to disk",
	Long: `Writes the stored PDF payload of a saved document to a directory,
using the file name recorded at save time. The directory defaults to
the current working directory.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runArchiveExport,
}

var archiveDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a saved document",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchiveDelete,
}

// Flags for the list command.
var (
	archiveListType  string
	archiveListLimit int
)

func init() {
	archiveListCmd.Flags().StringVarP(&archiveListType, "type", "t", "", "Filter by document type (receipt or offer)")
	archiveListCmd.Flags().IntVarP(&archiveListLimit, "limit", "n", 20, "Maximum number of documents to list")

	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archiveShowCmd)
	archiveCmd.AddCommand(archiveExportCmd)
	archiveCmd.AddCommand(archiveDeleteCmd)
	rootCmd.AddCommand(archiveCmd)
}

func runArchiveList(cmd *cobra.Command, _ []string) error {
	if archiveService == nil {
		return errors.New("archive service not configured")
	}

	ctx := context.Background()

	var (
		records []domain.ArtifactRecord
		err     error
	)
	if archiveListType != "" {
		records, err = archiveService.ListByType(ctx, domain.DocumentType(archiveListType))
	} else {
		records, err = archiveService.ListRecent(ctx, archiveListLimit)
	}
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("No saved documents.")
		return nil
	}

	for i := range records {
		cmd.Printf("  %s\n", records[i].ID)
		cmd.Printf("    Type:    %s\n", records[i].Type)
		cmd.Printf("    Title:   %s\n", records[i].Title)
		cmd.Printf("    Saved:   %s\n", records[i].CreatedAt.Format("2006-01-02 15:04:05"))
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(records))
	return nil
}

func runArchiveShow(cmd *cobra.Command, args []string) error {
	if archiveService == nil {
		return errors.New("archive service not configured")
	}

	id := args[0]
	ctx := context.Background()

	record, err := archiveService.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	cmd.Printf("Document: %s\n\n", record.ID)
	cmd.Printf("  Type:      %s\n", record.Type)
	cmd.Printf("  Title:     %s\n", record.Title)
	cmd.Printf("  File:      %s\n", record.FileName)
	cmd.Printf("  Saved:     %s\n", record.CreatedAt.Format("2006-01-02 15:04:05"))
	cmd.Printf("  Size:      %d bytes\n", len(record.Blob))

	if len(record.Meta) > 0 {
		cmd.Println("\n  Metadata:")
		for k, v := range record.Meta {
			cmd.Printf("    %s: %v\n", k, v)
		}
	}

	return nil
}

func runArchiveExport(cmd *cobra.Command, args []string) error {
	if archiveService == nil {
		return errors.New("archive service not configured")
	}

	id := args[0]
	dir := "."
	if len(args) > 1 {
		dir = args[1]
	}
	ctx := context.Background()

	path, err := archiveService.WriteFile(ctx, id, dir)
	if err != nil {
		return fmt.Errorf("failed to export document: %w", err)
	}

	cmd.Printf("Wrote %s\n", path)
	return nil
}

func runArchiveDelete(cmd *cobra.Command, args []string) error {
	if archiveService == nil {
		return errors.New("archive service not configured")
	}

	id := args[0]
	ctx := context.Background()

	if err := archiveService.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	cmd.Printf("Document %s deleted.\n", id)
	return nil
}
