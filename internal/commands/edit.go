package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JulioAlmeida83/atilog/internal/db"
)

var editCmd = &cobra.Command{
	Use:   "edit <record-id>",
	Short: "Edit an existing record",
	Long: `Edit an existing record in interactive mode.

Opens the same form as 'atilog add' with all fields pre-populated. Saving
keeps the record's id (edit-then-upsert). A unique id prefix is enough:

  atilog edit 3f2a`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		record, err := db.GetRecordByID(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		draft := *record
		audioPath, _ := cmd.Flags().GetString("audio")
		transcriptPath, _ := cmd.Flags().GetString("transcript")
		if err := attachFiles(&draft, audioPath, transcriptPath); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		runInteractiveForm(draft, true)
	},
}

func init() {
	editCmd.Flags().String("audio", "", "Replace the attached audio file")
	editCmd.Flags().String("transcript", "", "Attach a transcript text file")
}
