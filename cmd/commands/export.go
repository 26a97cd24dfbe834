package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quillforge/sidekick/pkg/files"
)

var exportFilename string

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a copy of the working document",
		Long: `Write a timestamped copy of the working document under .sidekick/exports.

Examples:
  # Export with a generated filename
  sidekick export

  # Export under a specific name
  sidekick export --filename memo-draft.md`,
		Args:    cobra.NoArgs,
		PreRunE: requireWorkspace,
		RunE:    runExport,
	}
	cmd.Flags().StringVar(&exportFilename, "filename", "", "export filename (default: memo-<date>.md)")
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	content, err := files.ReadDocument()
	if err != nil {
		return err
	}

	filename := exportFilename
	if filename == "" {
		filename = fmt.Sprintf("memo-%s.md", time.Now().Format("2006-01-02"))
	}
	path, err := files.ExportDocument(filename, content)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Exported document to %s\n", path)
	return nil
}
