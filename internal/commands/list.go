package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JulioAlmeida83/atilog/internal/db"
	"github.com/JulioAlmeida83/atilog/internal/export"
	"github.com/JulioAlmeida83/atilog/internal/models"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List records",
	Long:    "List logged records with optional filters for unit and date",
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		records, err := db.LoadRecords()
		if err != nil {
			fmt.Printf("Error fetching records: %v\n", err)
			return
		}

		unit, _ := cmd.Flags().GetString("unit")
		date, _ := cmd.Flags().GetString("date")
		records = filterRecords(records, unit, date)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			data, err := export.MarshalRecords(records)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			os.Stdout.Write(data)
			fmt.Println()
			return
		}

		if len(records) == 0 {
			fmt.Println("No records found. Use 'atilog add' to log your first activity.")
			return
		}

		fmt.Printf("%-10s %-12s %-6s %-6s %-22s %-22s %-12s %s\n",
			"ID", "DATE", "TIME", "UNIT", "CLASSIFICATION", "WITH", "DURATION", "URG")
		fmt.Println(strings.Repeat("-", 100))

		for _, r := range records {
			urgent := ""
			if r.Urgent {
				urgent = "Sim"
			}
			fmt.Printf("%-10s %-12s %-6s %-6s %-22s %-22s %-12s %s\n",
				clip(r.ID, 8),
				r.Date,
				r.Time,
				clip(r.Unit, 6),
				clip(classification(r), 22),
				clip(strings.Join(r.Companions, "; "), 22),
				clip(r.DurationLabel, 12),
				urgent)
		}
	},
}

// classification shows whichever classification field is set
func classification(r models.Record) string {
	if r.ManifestationType != "" {
		return r.ManifestationType
	}
	return r.ActivityType
}

// clip truncates s to fit a table column
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

func init() {
	listCmd.Flags().StringP("unit", "u", "", "Filter by unit")
	listCmd.Flags().String("date", "", "Filter by date (YYYY-MM-DD)")
	listCmd.Flags().Bool("json", false, "JSON output")
}

// filterRecords applies the ls filters
func filterRecords(records []models.Record, unit, date string) []models.Record {
	if unit == "" && date == "" {
		return records
	}
	var out []models.Record
	for _, r := range records {
		if unit != "" && !strings.EqualFold(r.Unit, unit) {
			continue
		}
		if date != "" && r.Date != date {
			continue
		}
		out = append(out, r)
	}
	return out
}
