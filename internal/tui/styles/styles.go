package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	Indigo     = lipgloss.Color("#6366F1")
	Purple     = lipgloss.Color("#9333EA")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
	Amber      = lipgloss.Color("#F59E0B")
	Pink       = lipgloss.Color("#EC4899")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Indigo)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	PriceStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	StarStyle = lipgloss.NewStyle().
			Foreground(Amber)

	FavoriteStyle = lipgloss.NewStyle().
			Foreground(Pink)
)

// Header and banner styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Indigo).
			Bold(true).
			Padding(0, 1)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(Amber).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Amber).
			Padding(0, 1)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Indigo).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			MarginBottom(1)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Indigo)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Badge styles
var (
	BadgeStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Indigo).
			Padding(0, 1)

	DimBadgeStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Background(SlateLight).
			Padding(0, 1)

	OwnedBadgeStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Green).
			Padding(0, 1)
)

// List item styles
var (
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(SlateLight).
				Padding(0, 1)

	NormalItemStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)
)

// Grid cell styles
var (
	GridCellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray).
			Padding(0, 1)

	GridCellSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Indigo).
				Padding(0, 1)
)

// Spinner style
var (
	SpinnerStyle = lipgloss.NewStyle().
		Foreground(Indigo)
)

// Filter and input styles
var (
	FilterStyle = lipgloss.NewStyle().
			Foreground(Indigo)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(Indigo).
				Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(Indigo).
				Bold(true)
)

// Match highlight styles for filtered results
var (
	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(Indigo).
				Bold(true)

	MatchHighlightSelectedStyle = lipgloss.NewStyle().
					Foreground(Indigo).
					Background(SlateLight).
					Bold(true)
)

// Truncate shortens s to width runes, ending with "..." when cut
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// Pad pads or cuts s to exactly width runes
func Pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}

// RenderStars renders a 0-5 rating as filled and empty stars
func RenderStars(rating float64) string {
	filled := int(rating + 0.5)
	if filled > 5 {
		filled = 5
	}
	if filled < 0 {
		filled = 0
	}
	return StarStyle.Render(strings.Repeat("★", filled)) + DimStyle.Render(strings.Repeat("☆", 5-filled))
}

// RenderPrice formats an amount with its currency symbol
func RenderPrice(amount float64, currency string) string {
	return PriceStyle.Render(FormatPrice(amount, currency))
}

// FormatPrice formats an amount with its currency symbol, unstyled
func FormatPrice(amount float64, currency string) string {
	symbol := "$"
	switch currency {
	case "EUR":
		symbol = "€"
	case "GBP":
		symbol = "£"
	}
	return fmt.Sprintf("%s%.2f", symbol, amount)
}
