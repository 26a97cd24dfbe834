package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/quillforge/sidekick/cmd/commands"
	"github.com/quillforge/sidekick/pkg/files"
	"github.com/quillforge/sidekick/pkg/seed"
	"github.com/quillforge/sidekick/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "sidekick",
	Short: "Terminal workspace for AI-assisted document drafting",
	Long:  `Sidekick is a terminal workspace for drafting documents with an AI assistant at your side: a memo editor flanked by a source library and an assistant panel that walks queued actions through sources, generation, and validation.`,
	Run: func(cmd *cobra.Command, args []string) {
		if !files.WorkspaceExists() {
			fmt.Fprintf(os.Stderr, "Error: No .sidekick directory found in the current directory.\n")
			fmt.Fprintf(os.Stderr, "Please run 'sidekick init' first to initialize a workspace.\n")
			os.Exit(1)
		}

		settings, err := files.ReadSettings()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to load settings: %v\n", err)
			os.Exit(1)
		}
		documentText, err := files.ReadDocument()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to load the document: %v\n", err)
			os.Exit(1)
		}

		store := seed.NewStore(settings.Validation.InitialScore, settings.Validation.FixScoreDelta)
		app := tui.NewApp(store, documentText, settings)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new Sidekick workspace",
	Long:  `Creates the .sidekick folder structure in the current directory with a seed memo and default settings`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Initializing Sidekick workspace in %s...\n", cwd)

		if err := files.InitWorkspace(seed.Document()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize workspace: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure you have write permissions in the current directory.\n")
			os.Exit(1)
		}

		fmt.Println("✓ Created .sidekick folder structure")
		fmt.Println("✓ Seed memo and settings in place")
		fmt.Println("\nRun 'sidekick' to start the workspace.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Sidekick",
	Long:  `Display the current version of the Sidekick CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Sidekick version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Command execution failed: %v\n", err)
		os.Exit(1)
	}
}
