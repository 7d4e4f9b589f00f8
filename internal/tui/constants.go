package tui

// Package-level constants to avoid magic numbers and improve readability.
const (
	// renderer frame rate; bubbletea caps this at 120.
	maxFPS = 100

	// column split of the three panels, in percent of the terminal width.
	listPanelPercent  = 30
	timerPanelPercent = 50

	// used until the first tea.WindowSizeMsg arrives.
	fallbackWidth  = 100
	fallbackHeight = 30

	// timer box inset inside the centre column.
	timerMarginVertical   = 10
	timerMarginHorizontal = 30
	timerBoxMinWidth      = 20
	timerBoxMinHeight     = 5

	// legend categories are left-aligned to this width.
	categoryWidth = 9

	// border plus title line consumed by each panel.
	panelChromeLines = 3

	selectionMarker = ">> "
	fillerText      = "Lorem ipsum dolor sit amet, consectetur adipiscing elit."
)
