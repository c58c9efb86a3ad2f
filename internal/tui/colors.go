package tui

// Color constants for the meatdairy theme
const (
	// Base Colors
	ColorBorder = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Clock digits, titles
	ColorSecondaryText = "#B1B8C7" // Picker rows, captions
	ColorDisabledText  = "#6D7383" // Locked picker while running
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (meat red to dairy blue)
	ColorMeat        = "#B91C1C" // Countdown start, progress bar head
	ColorDairy       = "#60A5FA" // Finished state, progress bar tail
	ColorAccentMain  = "#7C3AED" // Selected preset, active borders
	ColorAccentLight = "#A78BFA" // Cursor, highlights

	// State Colors
	ColorError   = "#EF4444" // Prompts and failures
	ColorSuccess = "#22C55E" // Finished countdown
	ColorWarning = "#F59E0B" // Banner
)
