package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the date column and
	// store path are hidden.
	LayoutCompactWidth = 70
)

// Overlay sizes.
const (
	HelpModalWidth = 40
	DialogWidth    = 50
)

// List and editor geometry.
const (
	// listChromeHeight covers the header and command bar.
	listChromeHeight = 2

	// editorChromeHeight covers the header, command bar, title and palette rows.
	editorChromeHeight = 6

	dateLayout = "2006-01-02 15:04"
)
