package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JulioAlmeida83/atilog/internal/db"
	"github.com/JulioAlmeida83/atilog/internal/models"
	"github.com/JulioAlmeida83/atilog/internal/policy"
)

// Step represents the current step in the record form wizard
type Step int

const (
	StepUnit Step = iota
	StepActivity
	StepManifestation
	StepCompanions
	StepDuration
	StepDifficulty
	StepUrgent
	StepDate
	StepTime
	StepNotes
	StepSave
)

var stepLabels = []string{
	"Unit", "Activity", "Manifestation", "Companions", "Duration",
	"Difficulty", "Urgent", "Date", "Time", "Notes", "Save",
}

// formField maps a wizard step to the policy's form field name
func (s Step) formField() policy.FormField {
	switch s {
	case StepUnit:
		return policy.FormUnit
	case StepActivity:
		return policy.FormActivity
	case StepManifestation:
		return policy.FormManifestation
	case StepCompanions:
		return policy.FormCompanions
	case StepDuration:
		return policy.FormDuration
	case StepDifficulty:
		return policy.FormDifficulty
	case StepUrgent:
		return policy.FormUrgent
	case StepDate:
		return policy.FormDate
	case StepTime:
		return policy.FormTime
	case StepNotes:
		return policy.FormNotes
	}
	return ""
}

// RecordFormModel is the TUI model for adding and editing records
type RecordFormModel struct {
	currentStep Step
	inputs      []textinput.Model
	width       int
	height      int

	record  models.Record // the draft being edited
	initial models.Record
	options models.Options
	pol     policy.Policy

	isEditMode bool

	// State
	err           error
	completed     bool
	cancelled     bool
	validationErr string
	savedID       string

	// Exit confirmation modal
	showExitModal   bool
	exitModalChoice bool // true for Yes (save), false for No
}

// NewRecordFormModel creates the form model, prefilled from draft
func NewRecordFormModel(draft models.Record, options models.Options, pol policy.Policy, editMode bool) RecordFormModel {
	inputs := make([]textinput.Model, StepSave)

	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 60
		inputs[i].CharLimit = 200

		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[StepUnit].Placeholder = "Number or name (required)"
	inputs[StepActivity].Placeholder = "Number or name (Enter to skip)"
	inputs[StepManifestation].Placeholder = "Number or name (Enter to skip)"
	inputs[StepCompanions].Placeholder = "Name (Enter to finish, max 3)"
	inputs[StepDuration].Placeholder = "Number or bucket label (required)"
	inputs[StepDifficulty].Placeholder = "1-4 or Baixa/Média/Alta/Muito alta (Enter to skip)"
	inputs[StepUrgent].Placeholder = "y/N"
	inputs[StepDate].Placeholder = "YYYY-MM-DD (Enter = today)"
	inputs[StepTime].Placeholder = "HH:MM (Enter = now)"
	inputs[StepNotes].Placeholder = "Free text (Enter to skip)"
	inputs[StepNotes].CharLimit = 2000

	inputs[StepUnit].SetValue(draft.Unit)
	inputs[StepActivity].SetValue(draft.ActivityType)
	inputs[StepManifestation].SetValue(draft.ManifestationType)
	inputs[StepDuration].SetValue(draft.DurationLabel)
	inputs[StepDifficulty].SetValue(draft.Difficulty)
	if draft.Urgent {
		inputs[StepUrgent].SetValue("y")
	}
	inputs[StepDate].SetValue(draft.Date)
	inputs[StepTime].SetValue(draft.Time)
	inputs[StepNotes].SetValue(draft.Notes)

	inputs[StepUnit].Focus()

	return RecordFormModel{
		currentStep: StepUnit,
		inputs:      inputs,
		record:      draft,
		initial:     draft,
		options:     options,
		pol:         pol,
		isEditMode:  editMode,
	}
}

// Init initializes the model
func (m RecordFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// stepVisible reports whether the step applies to the current draft
func (m RecordFormModel) stepVisible(step Step) bool {
	if step == StepSave {
		return true
	}
	return m.pol.VisibleFields(m.record).IsVisible(step.formField())
}

// Update handles messages
func (m RecordFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		maxInputWidth := m.width - 12
		if maxInputWidth < 30 {
			maxInputWidth = 30
		}
		if maxInputWidth > 80 {
			maxInputWidth = 80
		}
		for i := range m.inputs {
			m.inputs[i].Width = maxInputWidth
		}
		return m, nil

	case tea.KeyMsg:
		if m.showExitModal {
			switch msg.String() {
			case "left", "right":
				m.exitModalChoice = !m.exitModalChoice
				return m, nil
			case "y", "Y":
				m.exitModalChoice = true
				return m.handleExitChoice()
			case "n", "N":
				m.exitModalChoice = false
				return m.handleExitChoice()
			case "enter":
				return m.handleExitChoice()
			case "esc":
				m.showExitModal = false
				return m, nil
			case "ctrl+c":
				m.cancelled = true
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit

		case "esc":
			if m.currentStep == StepSave {
				return m.prevStep()
			}
			if !m.hasChanges() {
				m.cancelled = true
				return m, tea.Quit
			}
			m.showExitModal = true
			m.exitModalChoice = true
			return m, nil

		case "enter":
			return m.handleEnter()

		case "tab", "down":
			return m.nextStep()

		case "shift+tab", "up":
			return m.prevStep()
		}
	}

	var cmd tea.Cmd
	if m.currentStep < StepSave {
		m.inputs[m.currentStep], cmd = m.inputs[m.currentStep].Update(msg)
		if m.currentStep == StepNotes {
			m.record.Notes = m.inputs[StepNotes].Value()
		}
	}
	return m, cmd
}

// handleEnter commits the current step's input and advances
func (m RecordFormModel) handleEnter() (RecordFormModel, tea.Cmd) {
	m.validationErr = ""

	switch m.currentStep {
	case StepUnit:
		value := m.resolvePick(m.inputs[StepUnit].Value(), models.ListUnits)
		if value == "" {
			m.validationErr = "unit is required"
			return m, nil
		}
		m.record.Unit = value
		return m.nextStep()

	case StepActivity:
		value := m.resolvePick(m.inputs[StepActivity].Value(), models.ListActivityTypes)
		m.pol.ApplySelection(&m.record, policy.FieldActivity, value)
		if value != "" {
			m.inputs[StepManifestation].SetValue("")
		}
		return m.nextStep()

	case StepManifestation:
		value := m.resolvePick(m.inputs[StepManifestation].Value(), models.ListManifestationTypes)
		m.pol.ApplySelection(&m.record, policy.FieldManifestation, value)
		if value != "" {
			m.inputs[StepActivity].SetValue("")
		}
		return m.nextStep()

	case StepCompanions:
		name := strings.TrimSpace(m.inputs[StepCompanions].Value())
		if name == "" || name == "q" || name == "Q" {
			return m.nextStep()
		}
		if len(m.record.Companions) >= models.MaxCompanions {
			m.validationErr = fmt.Sprintf("at most %d companions", models.MaxCompanions)
			return m, nil
		}
		m.record.Companions = models.NormalizeCompanions(append(m.record.Companions, name))
		m.inputs[StepCompanions].SetValue("")
		m.inputs[StepCompanions].Placeholder = fmt.Sprintf("Name (%d added, Enter to finish)", len(m.record.Companions))
		return m, nil

	case StepDuration:
		value := m.resolvePick(m.inputs[StepDuration].Value(), models.ListDurations)
		if value == "" {
			m.validationErr = "duration is required"
			return m, nil
		}
		if !m.isListValue(models.ListDurations, value) {
			m.validationErr = "pick one of the duration buckets"
			return m, nil
		}
		m.record.DurationLabel = value
		return m.nextStep()

	case StepDifficulty:
		input := strings.TrimSpace(m.inputs[StepDifficulty].Value())
		if input == "" {
			m.record.Difficulty = ""
			return m.nextStep()
		}
		difficulty, ok := parseDifficulty(input)
		if !ok {
			m.validationErr = "invalid difficulty. Use: Baixa, Média, Alta, Muito alta, or 1-4"
			return m, nil
		}
		m.record.Difficulty = difficulty
		m.inputs[StepDifficulty].SetValue(difficulty)
		return m.nextStep()

	case StepUrgent:
		input := strings.ToLower(strings.TrimSpace(m.inputs[StepUrgent].Value()))
		switch input {
		case "", "n", "no", "não", "nao":
			m.record.Urgent = false
		case "y", "yes", "s", "sim":
			m.record.Urgent = true
		default:
			m.validationErr = "answer y or n"
			return m, nil
		}
		return m.nextStep()

	case StepDate:
		input := strings.TrimSpace(m.inputs[StepDate].Value())
		if input == "" {
			input = time.Now().Format("2006-01-02")
			m.inputs[StepDate].SetValue(input)
		}
		if _, err := time.Parse("2006-01-02", input); err != nil {
			m.validationErr = "invalid date, expected YYYY-MM-DD"
			return m, nil
		}
		m.record.Date = input
		return m.nextStep()

	case StepTime:
		input := strings.TrimSpace(m.inputs[StepTime].Value())
		if input == "" {
			input = time.Now().Format("15:04")
			m.inputs[StepTime].SetValue(input)
		}
		if _, err := time.Parse("15:04", input); err != nil {
			m.validationErr = "invalid time, expected HH:MM"
			return m, nil
		}
		m.record.Time = input
		return m.nextStep()

	case StepNotes:
		m.record.Notes = m.inputs[StepNotes].Value()
		return m.nextStep()

	case StepSave:
		return m.saveRecord()
	}

	return m, nil
}

// resolvePick turns a numeric choice into the list value at that position.
// Names match the list case-insensitively; anything else passes through as
// free text, since pick-lists are user-extensible.
func (m RecordFormModel) resolvePick(input, listName string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	list := m.options[listName]
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(list) {
		return list[n-1]
	}
	for _, value := range list {
		if strings.EqualFold(value, input) {
			return value
		}
	}
	return input
}

// isListValue reports whether value is an entry of the named list
func (m RecordFormModel) isListValue(listName, value string) bool {
	for _, v := range m.options[listName] {
		if v == value {
			return true
		}
	}
	return false
}

// parseDifficulty maps user input to a canonical difficulty value
func parseDifficulty(input string) (string, bool) {
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(models.Difficulties) {
		return models.Difficulties[n-1], true
	}
	for _, d := range models.Difficulties {
		if strings.EqualFold(d, input) {
			return d, true
		}
	}
	return "", false
}

// nextStep advances to the next visible step
func (m RecordFormModel) nextStep() (RecordFormModel, tea.Cmd) {
	if m.currentStep >= StepSave {
		return m, nil
	}
	m.inputs[m.currentStep].Blur()
	m.currentStep++
	for m.currentStep < StepSave && !m.stepVisible(m.currentStep) {
		m.currentStep++
	}
	if m.currentStep < StepSave {
		m.inputs[m.currentStep].Focus()
	}
	return m, textinput.Blink
}

// prevStep moves back to the previous visible step
func (m RecordFormModel) prevStep() (RecordFormModel, tea.Cmd) {
	if m.currentStep == StepUnit {
		return m, nil
	}
	if m.currentStep < StepSave {
		m.inputs[m.currentStep].Blur()
	}
	m.currentStep--
	for m.currentStep > StepUnit && !m.stepVisible(m.currentStep) {
		m.currentStep--
	}
	m.inputs[m.currentStep].Focus()
	return m, textinput.Blink
}

// saveRecord validates the draft and persists it
func (m RecordFormModel) saveRecord() (RecordFormModel, tea.Cmd) {
	if err := m.pol.Validate(m.record); err != nil {
		// Keep the form open with entered values intact
		m.validationErr = err.Error()
		return m, nil
	}

	if m.record.ID == "" {
		m.record.ID = models.NewID()
	}

	if err := db.UpsertRecord(m.record); err != nil {
		m.err = err
		return m, nil
	}

	m.completed = true
	m.savedID = m.record.ID
	return m, tea.Quit
}

// handleExitChoice handles the exit confirmation modal response
func (m RecordFormModel) handleExitChoice() (RecordFormModel, tea.Cmd) {
	m.showExitModal = false

	if m.exitModalChoice {
		return m.saveRecord()
	}
	m.cancelled = true
	return m, tea.Quit
}

// hasChanges reports whether the draft differs from the initial record
func (m RecordFormModel) hasChanges() bool {
	a, b := m.record, m.initial
	if a.Unit != b.Unit || a.ActivityType != b.ActivityType ||
		a.ManifestationType != b.ManifestationType ||
		a.DurationLabel != b.DurationLabel || a.Difficulty != b.Difficulty ||
		a.Urgent != b.Urgent || a.Date != b.Date || a.Time != b.Time ||
		a.Notes != b.Notes {
		return true
	}
	if len(a.Companions) != len(b.Companions) {
		return true
	}
	for i := range a.Companions {
		if a.Companions[i] != b.Companions[i] {
			return true
		}
	}
	return false
}

// View renders the TUI
func (m RecordFormModel) View() string {
	if m.cancelled || m.completed {
		return "" // Exit message is printed after the program closes
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1)
	if m.width > 4 {
		style = style.Width(m.width - 2)
	}

	content := m.renderWizard() + "\n" + m.renderPreview()
	main := style.Render(content)

	if m.showExitModal {
		return m.renderExitModal(main)
	}
	return main
}

// renderWizard renders the step list and the current input
func (m RecordFormModel) renderWizard() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright)).
		MarginBottom(1)

	titleText := "New record"
	if m.isEditMode {
		titleText = fmt.Sprintf("Edit record %s", shortID(m.record.ID))
	}
	b.WriteString(titleStyle.Render(titleText))
	b.WriteString("\n\n")

	currentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	skippedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	futureStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	for step := StepUnit; step <= StepSave; step++ {
		if !m.stepVisible(step) {
			continue
		}
		label := stepLabels[step]
		if step == StepSave {
			b.WriteString("\n")
		}
		switch {
		case step == m.currentStep:
			b.WriteString(currentStyle.Render("> " + label))
		case step < m.currentStep && m.stepHasValue(step):
			b.WriteString(doneStyle.Render("* " + label))
		case step < m.currentStep:
			b.WriteString(skippedStyle.Render("  " + label))
		default:
			b.WriteString(futureStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Current input with the relevant pick-list, when there is one
	if m.currentStep < StepSave {
		if listName := m.stepList(m.currentStep); listName != "" {
			b.WriteString(m.renderList(listName))
		}
		b.WriteString(stepLabels[m.currentStep] + "\n")
		b.WriteString(m.inputs[m.currentStep].View())
	} else {
		b.WriteString("Press Enter to save the record")
	}

	if m.validationErr != "" {
		errorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Bold(true).
			MarginTop(1)
		b.WriteString("\n" + errorStyle.Render(m.validationErr))
	}
	if m.err != nil {
		errorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Bold(true).
			MarginTop(1)
		b.WriteString("\n" + errorStyle.Render(m.err.Error()))
	}

	b.WriteString("\n\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	b.WriteString(helpStyle.Render("Enter: Next | Tab/↓: Next | Shift+Tab/↑: Back | Esc: Cancel"))

	return b.String()
}

// stepList returns the pick-list backing the step, if any
func (m RecordFormModel) stepList(step Step) string {
	switch step {
	case StepUnit:
		return models.ListUnits
	case StepActivity:
		return models.ListActivityTypes
	case StepManifestation:
		return models.ListManifestationTypes
	case StepDuration:
		return models.ListDurations
	}
	return ""
}

// renderList prints the numbered values of a pick-list
func (m RecordFormModel) renderList(listName string) string {
	var b strings.Builder
	listStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	for i, value := range m.options[listName] {
		b.WriteString(listStyle.Render(fmt.Sprintf("%d. %s", i+1, value)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// stepHasValue checks if a step has been filled with a value (not skipped)
func (m RecordFormModel) stepHasValue(step Step) bool {
	switch step {
	case StepUnit:
		return m.record.Unit != ""
	case StepActivity:
		return m.record.ActivityType != ""
	case StepManifestation:
		return m.record.ManifestationType != ""
	case StepCompanions:
		return len(m.record.Companions) > 0
	case StepDuration:
		return m.record.DurationLabel != ""
	case StepDifficulty:
		return m.record.Difficulty != ""
	case StepUrgent:
		return m.record.Urgent
	case StepDate:
		return m.record.Date != ""
	case StepTime:
		return m.record.Time != ""
	case StepNotes:
		return strings.TrimSpace(m.record.Notes) != ""
	}
	return false
}

// renderPreview renders a compact live preview of the draft
func (m RecordFormModel) renderPreview() string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain))
	b.WriteString(headerStyle.Render("─── Preview ───"))
	b.WriteString("\n")

	if m.record.Unit != "" {
		b.WriteString(fmt.Sprintf("Unit: %s\n", m.record.Unit))
	}
	if m.record.ActivityType != "" {
		b.WriteString(fmt.Sprintf("Activity: %s\n", m.record.ActivityType))
	}
	if m.record.ManifestationType != "" {
		b.WriteString(fmt.Sprintf("Manifestation: %s\n", m.record.ManifestationType))
	}
	if len(m.record.Companions) > 0 {
		b.WriteString(fmt.Sprintf("With: %s\n", strings.Join(m.record.Companions, "; ")))
	}
	if m.record.DurationLabel != "" {
		b.WriteString(fmt.Sprintf("Duration: %s (~%d min)\n", m.record.DurationLabel, m.record.EstimatedMinutes()))
	}
	if m.record.Difficulty != "" {
		b.WriteString(fmt.Sprintf("Difficulty: %s\n", m.record.Difficulty))
	}
	if m.record.Urgent {
		urgentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Bold(true)
		b.WriteString(urgentStyle.Render("URGENT"))
		b.WriteString("\n")
	}
	if m.record.Date != "" || m.record.Time != "" {
		b.WriteString(fmt.Sprintf("When: %s %s\n", m.record.Date, m.record.Time))
	}
	if strings.TrimSpace(m.record.Notes) != "" {
		noteStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Italic(true)
		b.WriteString(fmt.Sprintf("Notes: %s\n", noteStyle.Render(truncate(m.record.Notes, 60))))
	}

	return b.String()
}

// renderExitModal renders the save confirmation overlay
func (m RecordFormModel) renderExitModal(background string) string {
	var content strings.Builder
	content.WriteString("Save changes?\n\n")

	yesStyle := lipgloss.NewStyle().Padding(0, 2)
	noStyle := lipgloss.NewStyle().Padding(0, 2)

	if m.exitModalChoice {
		yesStyle = yesStyle.
			Background(lipgloss.Color(ColorAccentBright)).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)
	} else {
		noStyle = noStyle.
			Background(lipgloss.Color(ColorError)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)
	}

	content.WriteString(lipgloss.JoinHorizontal(
		lipgloss.Center,
		yesStyle.Render("Yes"),
		"   ",
		noStyle.Render("No"),
	))
	content.WriteString("\n\n")
	content.WriteString("← → or Y/N to choose, Enter to confirm\nEsc to keep editing")

	modalStyle := lipgloss.NewStyle().
		Width(50).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentBright)).
		Padding(1).
		Align(lipgloss.Center)

	modal := modalStyle.Render(content.String())

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}

// shortID abbreviates a record id for display
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// truncate shortens s for single-line display
func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
