package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JulioAlmeida83/atilog/internal/db"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "atilog",
	Short: "A CLI work activity logger",
	Long: `atilog is a command-line tool for logging discrete work events:
meetings, calls, and documents produced. Records live in local storage and
can be exported to CSV or JSON, summarized, and restored from backups.`,
}

// initDB initializes the local store and panics on error
func initDB() {
	if err := db.Initialize(); err != nil {
		panic(err)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("atilog %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
