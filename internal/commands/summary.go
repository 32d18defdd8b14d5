package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JulioAlmeida83/atilog/internal/db"
	"github.com/JulioAlmeida83/atilog/internal/models"
	"github.com/JulioAlmeida83/atilog/internal/policy"
	"github.com/JulioAlmeida83/atilog/internal/summary"
	"github.com/JulioAlmeida83/atilog/internal/tui"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show record counts per classification and total estimated hours",
	Long: `Show a bar chart of record counts grouped by classification, plus the
total estimated time. Estimates come from the duration buckets, not measured
time.

By default records group by manifestation, falling back to activity. Use
--by activity or --by manifestation to group by one field only.`,
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		records, err := db.LoadRecords()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		by, _ := cmd.Flags().GetString("by")
		groups, err := groupRecords(records, by)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		totalMinutes := summary.TotalEstimatedMinutes(records)

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			if len(groups) == 0 {
				fmt.Println("No records yet.")
				return
			}
			fmt.Print(tui.RenderChart(groups, 30))
			fmt.Printf("\n%d records, estimated %s h total\n",
				len(records), summary.FormatHours(totalMinutes))
			return
		}

		if err := tui.RunSummary(groups, totalMinutes, len(records)); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}

// groupRecords buckets the records per the --by flag, defaulting to the
// deployed policy's grouping priority.
func groupRecords(records []models.Record, by string) ([]summary.Group, error) {
	switch by {
	case "":
		return summary.CountByGroup(records, policy.Default()), nil
	case "activity":
		return summary.GroupBy(records, func(r models.Record) string {
			return policy.GroupKeyBy(r, policy.FieldActivity)
		}), nil
	case "manifestation":
		return summary.GroupBy(records, func(r models.Record) string {
			return policy.GroupKeyBy(r, policy.FieldManifestation)
		}), nil
	}
	return nil, fmt.Errorf("unknown grouping '%s' (use activity or manifestation)", by)
}

func init() {
	summaryCmd.Flags().String("by", "", "Group by a single field: activity or manifestation")
	summaryCmd.Flags().Bool("no-ui", false, "Plain text output")
}
