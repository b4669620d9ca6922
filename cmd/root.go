package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the meetmint application
var rootCmd = &cobra.Command{
	Use:   "meetmint",
	Short: "Mints Google Meet links and tracks created meetings",
	Long: `meetmint creates Google Meet links through the Google Calendar API and keeps
a local record of every meeting it created, with a completion toggle.

It can run as:
  - A standalone CLI tool (default: list stored meetings)
  - An HTTP JSON API server (serve)
  - An MCP (Model Context Protocol) server for AI assistants (mcp)`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "meetmint version %s\n" .Version}}`)

	// If no subcommand is provided, show the stored meetings by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "list")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newInstantCmd())
	rootCmd.AddCommand(newScheduleCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newDoneCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMCPCmd())
	rootCmd.AddCommand(newVersionCmd())
}
