package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JulioAlmeida83/atilog/internal/db"
	"github.com/JulioAlmeida83/atilog/internal/models"
)

var optionsCmd = &cobra.Command{
	Use:     "options",
	Aliases: []string{"opts"},
	Short:   "Manage the pick-lists",
	Long: `Manage the user-editable pick-lists backing the record form.

  atilog options ls
  atilog options add units "SEC"
  atilog options rm contacts "Maria"

List names: units, activities, manifestations, contacts, durations.`,
}

var optionsListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "Show all pick-lists",
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		options, err := db.LoadOptions()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		for _, name := range []string{
			models.ListUnits, models.ListActivityTypes,
			models.ListManifestationTypes, models.ListContacts,
			models.ListDurations,
		} {
			fmt.Printf("%s:\n", name)
			if len(options[name]) == 0 {
				fmt.Println("  (empty)")
				continue
			}
			for _, value := range options[name] {
				fmt.Printf("  - %s\n", value)
			}
		}
	},
}

var optionsAddCmd = &cobra.Command{
	Use:   "add <list> <value>",
	Short: "Add a value to a pick-list",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		listName, err := resolveListName(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		changed, err := db.AddOptionValue(listName, args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if !changed {
			fmt.Printf("'%s' is already in %s\n", strings.TrimSpace(args[1]), listName)
			return
		}
		fmt.Printf("Added '%s' to %s\n", strings.TrimSpace(args[1]), listName)
	},
}

var optionsRemoveCmd = &cobra.Command{
	Use:     "rm <list> <value>",
	Aliases: []string{"remove"},
	Short:   "Remove a value from a pick-list",
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		listName, err := resolveListName(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		changed, err := db.RemoveOptionValue(listName, args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if !changed {
			fmt.Printf("'%s' is not in %s\n", args[1], listName)
			return
		}
		fmt.Printf("Removed '%s' from %s\n", args[1], listName)
	},
}

// resolveListName accepts friendly aliases for the pick-list names
func resolveListName(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "units", "unit", strings.ToLower(models.ListUnits):
		return models.ListUnits, nil
	case "activities", "activity", strings.ToLower(models.ListActivityTypes):
		return models.ListActivityTypes, nil
	case "manifestations", "manifestation", strings.ToLower(models.ListManifestationTypes):
		return models.ListManifestationTypes, nil
	case "contacts", "contact", strings.ToLower(models.ListContacts):
		return models.ListContacts, nil
	case "durations", "duration", strings.ToLower(models.ListDurations):
		return models.ListDurations, nil
	}
	return "", fmt.Errorf("unknown list '%s' (use units, activities, manifestations, contacts, or durations)", name)
}

func init() {
	optionsCmd.AddCommand(optionsListCmd)
	optionsCmd.AddCommand(optionsAddCmd)
	optionsCmd.AddCommand(optionsRemoveCmd)
}
