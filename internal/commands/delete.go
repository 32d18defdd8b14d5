package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JulioAlmeida83/atilog/internal/db"
)

var deleteCmd = &cobra.Command{
	Use:     "rm <record-id>",
	Aliases: []string{"delete"},
	Short:   "Delete a record",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		record, err := db.GetRecordByID(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Printf("Delete record %s (%s %s, %s)? [y/N] ",
				clip(record.ID, 8), record.Date, record.Time, classification(*record))
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" && answer != "s" && answer != "sim" {
				fmt.Println("Aborted.")
				return
			}
		}

		deleted, err := db.DeleteRecord(record.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Deleted record %s (%s %s)\n", clip(deleted.ID, 8), deleted.Date, deleted.Time)
	},
}

func init() {
	deleteCmd.Flags().BoolP("force", "f", false, "Delete without confirmation")
}
