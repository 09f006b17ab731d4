package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the tripscout application
var rootCmd = &cobra.Command{
	Use:   "tripscout",
	Short: "MCP server for event and place discovery",
	Long: `tripscout is an MCP (Model Context Protocol) server that gives AI
assistants trip-planning tools: event search by city and date range,
place search with rating and price filters, place details, and Google
Calendar URL generation.

It aggregates the Ticketmaster Discovery API and the Google Places and
Geocoding APIs behind a small set of callable tools.`,
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
	rootCmd.SetVersionTemplate(`{{printf "tripscout version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}
