package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JulioAlmeida83/atilog/internal/models"
	"github.com/JulioAlmeida83/atilog/internal/policy"
	"github.com/JulioAlmeida83/atilog/internal/summary"
)

// RunRecordForm starts the interactive add/edit form
func RunRecordForm(draft models.Record, options models.Options, pol policy.Policy, editMode bool) error {
	model := NewRecordFormModel(draft, options, pol, editMode)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Exit messages after the TUI closes
	if m, ok := finalModel.(RecordFormModel); ok {
		switch {
		case m.cancelled:
			fmt.Println("Cancelled, nothing saved.")
		case m.completed && m.isEditMode:
			fmt.Printf("Record %s updated.\n", shortID(m.savedID))
		case m.completed:
			fmt.Printf("Record saved - id %s\n", shortID(m.savedID))
		case m.err != nil:
			fmt.Printf("Error: %v\n", m.err)
		}
	}

	return nil
}

// RunSummary shows the summary chart in an alt-screen view
func RunSummary(groups []summary.Group, totalMinutes, totalRecords int) error {
	model := NewSummaryModel(groups, totalMinutes, totalRecords)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
