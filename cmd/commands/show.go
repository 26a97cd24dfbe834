package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillforge/sidekick/pkg/files"
	"github.com/quillforge/sidekick/pkg/utils"
)

var showStats bool

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the working document",
		Long: `Print the working document to stdout.

Useful for piping the memo into other tools without opening the TUI.

Examples:
  # Print the document
  sidekick show

  # Print with word-count stats
  sidekick show --stats`,
		Args:    cobra.NoArgs,
		PreRunE: requireWorkspace,
		RunE:    runShow,
	}
	cmd.Flags().BoolVar(&showStats, "stats", false, "append word-count stats")
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	content, err := files.ReadDocument()
	if err != nil {
		return err
	}
	fmt.Print(content)
	if showStats {
		fmt.Printf("\n---\n%d words, %s\n", utils.CountWords(content), utils.FormatByteSize(int64(len(content))))
	}
	return nil
}

func requireWorkspace(cmd *cobra.Command, args []string) error {
	if !files.WorkspaceExists() {
		return fmt.Errorf("no .sidekick directory found. Run 'sidekick init' first")
	}
	return nil
}
