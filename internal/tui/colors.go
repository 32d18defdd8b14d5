package tui

// Color constants for the atilog TUI theme
const (
	// Base Colors
	ColorAppBackground = ""        // Use terminal default background
	ColorBorder        = "#3A4A55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Field labels, user input, titles
	ColorSecondaryText = "#ADB8C2" // Secondary text
	ColorDisabledText  = "#6D7883" // Skipped/muted steps
	ColorPlaceholder   = "#ADB8C2" // Input placeholders
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (teal theme)
	ColorAccentMain   = "#0D9488" // Accent elements, active borders
	ColorAccentBright = "#2DD4BF" // Highlights, current step

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#F59E0B" // Warnings
)
