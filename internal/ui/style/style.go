// Package style holds the palette and icons shared by terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)

// Badge is the icon and color a log line is rendered with.
// An empty Icon renders the message alone.
type Badge struct {
	Icon  string
	Color lipgloss.Color
}

// Badges per log severity.
var (
	ErrorBadge = Badge{Icon: Cross, Color: Red}
	WarnBadge  = Badge{Icon: Warning, Color: Yellow}
	InfoBadge  = Badge{Color: Slate}
	DebugBadge = Badge{Icon: Dot, Color: Iris}
)
