package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JulioAlmeida83/atilog/internal/db"
	"github.com/JulioAlmeida83/atilog/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <csv|json|options> [file]",
	Short: "Export records or pick-lists to a file",
	Long: `Export data to a file.

  atilog export csv records.csv        CSV with the fixed column layout
  atilog export json backup.json       Pretty-printed JSON record backup
  atilog export options options.json   Pick-lists backup

Without a file argument a default name in the current directory is used.
Audio attachments are only included in JSON backups.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		format := args[0]
		path := ""
		if len(args) == 2 {
			path = args[1]
		}

		switch format {
		case "csv":
			if path == "" {
				path = "atilog-records.csv"
			}
			records, err := db.LoadRecords()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if err := export.WriteCSV(path, records); err != nil {
				fmt.Printf("Error writing CSV: %v\n", err)
				return
			}
			fmt.Printf("Exported %d records to %s\n", len(records), path)

		case "json":
			if path == "" {
				path = "atilog-backup.json"
			}
			records, err := db.LoadRecords()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if err := export.WriteJSON(path, records); err != nil {
				fmt.Printf("Error writing backup: %v\n", err)
				return
			}
			fmt.Printf("Exported %d records to %s\n", len(records), path)

		case "options":
			if path == "" {
				path = "atilog-options.json"
			}
			options, err := db.LoadOptions()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if err := export.WriteOptionsJSON(path, options); err != nil {
				fmt.Printf("Error writing options: %v\n", err)
				return
			}
			fmt.Printf("Exported pick-lists to %s\n", path)

		default:
			fmt.Printf("Error: unknown export format '%s' (use csv, json, or options)\n", format)
		}
	},
}
