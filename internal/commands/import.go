package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JulioAlmeida83/atilog/internal/db"
	"github.com/JulioAlmeida83/atilog/internal/export"
)

var importCmd = &cobra.Command{
	Use:   "import <records|options> <file>",
	Short: "Restore records or pick-lists from a JSON backup",
	Long: `Restore data from a JSON backup file.

  atilog import records backup.json    Replace all records with the backup
  atilog import options options.json   Merge pick-lists over the defaults

Record backups in the immediately prior schema are migrated on import. An
invalid file aborts the import and leaves existing data untouched.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		kind, path := args[0], args[1]

		switch kind {
		case "records":
			records, err := export.ReadJSON(path)
			if err != nil {
				fmt.Printf("Import failed: %v\n", err)
				return
			}
			if err := db.SaveRecords(records); err != nil {
				fmt.Printf("Error saving records: %v\n", err)
				return
			}
			fmt.Printf("Imported %d records from %s\n", len(records), path)

		case "options":
			options, err := export.ReadOptionsJSON(path)
			if err != nil {
				fmt.Printf("Import failed: %v\n", err)
				return
			}
			if err := db.SaveOptions(options); err != nil {
				fmt.Printf("Error saving options: %v\n", err)
				return
			}
			fmt.Printf("Imported pick-lists from %s\n", path)

		default:
			fmt.Printf("Error: unknown import kind '%s' (use records or options)\n", kind)
		}
	},
}
