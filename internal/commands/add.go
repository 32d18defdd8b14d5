package commands

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/JulioAlmeida83/atilog/internal/db"
	"github.com/JulioAlmeida83/atilog/internal/models"
	"github.com/JulioAlmeida83/atilog/internal/policy"
	"github.com/JulioAlmeida83/atilog/internal/tui"
)

// transcriptTag marks the transcript block appended to a record's notes
const transcriptTag = "[Transcrição]"

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a new activity record",
	Long: `Log a new activity record.

Modes:
  Interactive: atilog add (or atilog add -i)
  Quick: atilog add --unit CJ --activity "Reunião" --duration "15 a 30 min"

A record needs a unit, a duration bucket, and at least one classification
(activity or manifestation). Setting a manifestation requires at least one
companion (--with, up to 3).`,
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		interactive, _ := cmd.Flags().GetBool("interactive")

		draft, err := draftFromFlags(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		// Without any classification flag there is nothing to save
		// directly, so fall back to the form.
		if !interactive && draft.ActivityType == "" && draft.ManifestationType == "" {
			interactive = true
		}

		if interactive {
			runInteractiveForm(draft, false)
			return
		}

		runDirectAdd(draft)
	},
}

// draftFromFlags builds a draft record from the command flags
func draftFromFlags(cmd *cobra.Command) (models.Record, error) {
	draft := models.Record{}

	draft.Unit, _ = cmd.Flags().GetString("unit")
	draft.DurationLabel, _ = cmd.Flags().GetString("duration")
	draft.Difficulty, _ = cmd.Flags().GetString("difficulty")
	draft.Urgent, _ = cmd.Flags().GetBool("urgent")
	draft.Date, _ = cmd.Flags().GetString("date")
	draft.Time, _ = cmd.Flags().GetString("time")
	draft.Notes, _ = cmd.Flags().GetString("notes")

	with, _ := cmd.Flags().GetStringSlice("with")
	draft.Companions = models.NormalizeCompanions(with)

	// Classification flags go through the policy so exclusivity side
	// effects apply in flag mode exactly as in the form.
	pol := policy.Default()
	if activity, _ := cmd.Flags().GetString("activity"); activity != "" {
		pol.ApplySelection(&draft, policy.FieldActivity, activity)
	}
	if manifestation, _ := cmd.Flags().GetString("manifestation"); manifestation != "" {
		pol.ApplySelection(&draft, policy.FieldManifestation, manifestation)
		// Companions were cleared if the policy demanded it; reapply the
		// explicit flag value.
		draft.Companions = models.NormalizeCompanions(with)
	}

	audioPath, _ := cmd.Flags().GetString("audio")
	transcriptPath, _ := cmd.Flags().GetString("transcript")
	if err := attachFiles(&draft, audioPath, transcriptPath); err != nil {
		return draft, err
	}

	return draft, nil
}

// attachFiles loads the optional audio clip and transcript into the draft.
// A transcript also lands in the notes as a tagged block.
func attachFiles(draft *models.Record, audioPath, transcriptPath string) error {
	if audioPath != "" {
		data, err := os.ReadFile(audioPath)
		if err != nil {
			return fmt.Errorf("failed to read audio file: %w", err)
		}
		draft.Audio = base64.StdEncoding.EncodeToString(data)
	}
	if transcriptPath != "" {
		data, err := os.ReadFile(transcriptPath)
		if err != nil {
			return fmt.Errorf("failed to read transcript file: %w", err)
		}
		draft.Transcript = strings.TrimSpace(string(data))
		if draft.Transcript != "" && !strings.Contains(draft.Notes, transcriptTag) {
			block := transcriptTag + "\n" + draft.Transcript
			if draft.Notes != "" {
				draft.Notes += "\n\n"
			}
			draft.Notes += block
		}
	}
	return nil
}

// runInteractiveForm opens the record form TUI
func runInteractiveForm(draft models.Record, editMode bool) {
	options, err := db.LoadOptions()
	if err != nil {
		fmt.Printf("Error loading options: %v\n", err)
		return
	}
	if err := tui.RunRecordForm(draft, options, policy.Default(), editMode); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

// runDirectAdd validates and saves the record without the TUI
func runDirectAdd(draft models.Record) {
	if draft.Unit == "" {
		fmt.Println("Error: --unit is required")
		return
	}
	if draft.DurationLabel == "" {
		fmt.Println("Error: --duration is required")
		return
	}
	if draft.Date == "" {
		draft.Date = time.Now().Format("2006-01-02")
	}
	if draft.Time == "" {
		draft.Time = time.Now().Format("15:04")
	}

	if err := policy.Default().Validate(draft); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	draft.ID = models.NewID()
	if err := db.UpsertRecord(draft); err != nil {
		fmt.Printf("Error saving record: %v\n", err)
		return
	}

	fmt.Printf("Record saved - id %s\n", draft.ID[:8])
	fmt.Printf("  Unit: %s\n", draft.Unit)
	if draft.ActivityType != "" {
		fmt.Printf("  Activity: %s\n", draft.ActivityType)
	}
	if draft.ManifestationType != "" {
		fmt.Printf("  Manifestation: %s\n", draft.ManifestationType)
	}
	if len(draft.Companions) > 0 {
		fmt.Printf("  With: %s\n", strings.Join(draft.Companions, "; "))
	}
	fmt.Printf("  Duration: %s\n", draft.DurationLabel)
	if draft.Urgent {
		fmt.Println("  Urgent: Sim")
	}
	fmt.Printf("  When: %s %s\n", draft.Date, draft.Time)
}

func init() {
	addCmd.Flags().BoolP("interactive", "i", false, "Interactive mode with TUI")
	addCmd.Flags().StringP("unit", "u", "", "Unit")
	addCmd.Flags().StringP("activity", "a", "", "Activity type")
	addCmd.Flags().StringP("manifestation", "m", "", "Manifestation type")
	addCmd.Flags().StringSliceP("with", "w", []string{}, "Companion names (repeatable, max 3)")
	addCmd.Flags().StringP("duration", "d", "", "Duration bucket (e.g. \"15 a 30 min\")")
	addCmd.Flags().String("difficulty", "", "Difficulty: Baixa, Média, Alta, Muito alta")
	addCmd.Flags().Bool("urgent", false, "Mark the record as urgent")
	addCmd.Flags().String("date", "", "Event date (YYYY-MM-DD, default today)")
	addCmd.Flags().String("time", "", "Event time (HH:MM, default now)")
	addCmd.Flags().String("notes", "", "Free-text notes")
	addCmd.Flags().String("audio", "", "Attach an audio file (stored base64-encoded)")
	addCmd.Flags().String("transcript", "", "Attach a transcript text file")
}
