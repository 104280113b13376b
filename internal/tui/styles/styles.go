// Package styles centralizes the lipgloss colors and styles shared by the
// storefront and admin TUIs.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	PrimaryColor   = lipgloss.Color("#F59E0B") // Amber - storefront accent
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#FBBF24") // Yellow
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray
	AdminColor     = lipgloss.Color("#A78BFA") // Purple - admin console accent

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)
	Admin     = lipgloss.NewStyle().Foreground(AdminColor)

	// Order status colors
	StatusPlaced     = lipgloss.Color("#60A5FA") // Blue
	StatusProcessing = lipgloss.Color("#FBBF24") // Yellow
	StatusShipped    = lipgloss.Color("#A78BFA") // Purple
	StatusDelivered  = lipgloss.Color("#10B981") // Green
	StatusCancelled  = lipgloss.Color("#F87171") // Red
	StatusPending    = lipgloss.Color("#9CA3AF") // Gray

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	AdminTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AdminColor).
			MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Tab styles for the screen switcher
	TabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 2)

	// Selected row in tables and pickers
	RowSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	RowNormal = lipgloss.NewStyle().
			Foreground(TextColor)

	// Content area
	ContentBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	// Modal overlay box (confirm dialogs, status pickers)
	ModalBox = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(PrimaryColor).
			Padding(1, 3)

	// Stat cards on the dashboard
	StatCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 2).
			MarginRight(1)

	// Help bar
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	// Inline notices
	ErrorNotice = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	SuccessNotice = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	// Price and badge rendering
	Price = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)
)

// StatusColor maps an order status to its display color.
func StatusColor(status string) lipgloss.Color {
	switch status {
	case "PLACED":
		return StatusPlaced
	case "PROCESSING":
		return StatusProcessing
	case "SHIPPED":
		return StatusShipped
	case "DELIVERED":
		return StatusDelivered
	case "CANCELLED":
		return StatusCancelled
	default:
		return StatusPending
	}
}

// StatusBadge renders an order status in its color.
func StatusBadge(status string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(StatusColor(status)).Render(status)
}
