package ui

// Window dimensions
const (
	WindowWidth  = 560
	WindowHeight = 580
)

// Vertical split between the settings panel and the correction journal.
const MainSplitOffset = 0.45

// Journal file base name used for export defaults.
const JournalBaseName = "ratio_corrections"
