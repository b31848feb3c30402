package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

// StyleTheme defines the color scheme for the TUI
type StyleTheme struct {
	Name          string
	Cyan          lipgloss.Color // Primary UI accent and focus
	Purple        lipgloss.Color // Metadata
	VibrantPurple lipgloss.Color // Gradient accent
	Green         lipgloss.Color // Real verdicts
	Red           lipgloss.Color // Fake verdicts and errors
	Orange        lipgloss.Color // Loading indicator
	Gray          lipgloss.Color // Muted text
	DarkGray      lipgloss.Color // Borders and backgrounds
	White         lipgloss.Color // Main text
}

// CleanCyberTheme is the default theme
var CleanCyberTheme = StyleTheme{
	Name:          "clean_cyber",
	Cyan:          lipgloss.Color("#00D9FF"),
	Purple:        lipgloss.Color("#E6CCFF"),
	VibrantPurple: lipgloss.Color("#9F4DFF"),
	Green:         lipgloss.Color("#00FF88"),
	Red:           lipgloss.Color("#FF0066"),
	Orange:        lipgloss.Color("#FF8800"),
	Gray:          lipgloss.Color("#666666"),
	DarkGray:      lipgloss.Color("#333333"),
	White:         lipgloss.Color("#EEEEEE"),
}

// MonokaiProTheme provides warm dark colors inspired by Monokai Pro
var MonokaiProTheme = StyleTheme{
	Name:          "monokai_pro",
	Cyan:          lipgloss.Color("#78DCE8"),
	Purple:        lipgloss.Color("#AB9DF2"),
	VibrantPurple: lipgloss.Color("#FF6188"),
	Green:         lipgloss.Color("#A9DC76"),
	Red:           lipgloss.Color("#FF6188"),
	Orange:        lipgloss.Color("#FC9867"),
	Gray:          lipgloss.Color("#727072"),
	DarkGray:      lipgloss.Color("#403E41"),
	White:         lipgloss.Color("#FCFCFA"),
}

// LightTheme provides softer tones that stay readable on dark terminals
var LightTheme = StyleTheme{
	Name:          "light",
	Cyan:          lipgloss.Color("#06B6D4"),
	Purple:        lipgloss.Color("#8B5CF6"),
	VibrantPurple: lipgloss.Color("#EC4899"),
	Green:         lipgloss.Color("#22C55E"),
	Red:           lipgloss.Color("#F43F5E"),
	Orange:        lipgloss.Color("#FB923C"),
	Gray:          lipgloss.Color("#64748B"),
	DarkGray:      lipgloss.Color("#475569"),
	White:         lipgloss.Color("#F1F5F9"),
}

// AvailableThemes lists the themes selectable from config
var AvailableThemes = []StyleTheme{
	CleanCyberTheme,
	MonokaiProTheme,
	LightTheme,
}

// ThemeByName returns the named theme, falling back to CleanCyberTheme
func ThemeByName(name string) StyleTheme {
	for _, t := range AvailableThemes {
		if t.Name == name {
			return t
		}
	}
	return CleanCyberTheme
}

func (t StyleTheme) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Cyan).
		Bold(true)
}

func (t StyleTheme) LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Purple)
}

func (t StyleTheme) InputBorderStyle(focused bool) lipgloss.Style {
	color := t.DarkGray
	if focused {
		color = t.Cyan
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1)
}

// FakeStyle is the warning styling for fake verdicts
func (t StyleTheme) FakeStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Red).
		Bold(true)
}

// RealStyle is the success styling for real verdicts
func (t StyleTheme) RealStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Green).
		Bold(true)
}

func (t StyleTheme) LoadingStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Orange)
}

func (t StyleTheme) TextStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.White)
}

func (t StyleTheme) MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Gray)
}

func (t StyleTheme) ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Red).
		Bold(true)
}

func (t StyleTheme) DimmedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Gray).
		Faint(true)
}

func (t StyleTheme) SelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Cyan).
		Bold(true)
}

// ToGlamourStyle converts the theme to a glamour style config for the reader
func (t StyleTheme) ToGlamourStyle() ansi.StyleConfig {
	style := styles.DraculaStyleConfig

	// No document margin inside the modal
	style.Document.Margin = uintPtr(0)

	style.Document.StylePrimitive.Color = stringPtr(string(t.White))
	style.Heading.StylePrimitive.Color = stringPtr(string(t.Cyan))
	style.Heading.StylePrimitive.Bold = boolPtr(true)

	style.H1.StylePrimitive.Color = stringPtr(string(t.Cyan))
	style.H1.StylePrimitive.Bold = boolPtr(true)
	style.H1.StylePrimitive.Prefix = ""
	style.H1.Prefix = "▸ "
	style.H1.Suffix = ""
	style.H1.Format = ""

	style.H2.StylePrimitive.Color = stringPtr(string(t.Cyan))
	style.H2.Prefix = "▸ "
	style.H2.Suffix = ""
	style.H2.Format = ""

	style.Link.Color = stringPtr(string(t.Purple))
	style.LinkText.Color = stringPtr(string(t.Purple))
	style.Code.Color = stringPtr(string(t.Green))
	style.CodeBlock.StylePrimitive.Color = stringPtr(string(t.Green))
	style.Emph.Color = stringPtr(string(t.Orange))
	style.Strong.Color = stringPtr(string(t.Red))

	style.BlockQuote.StylePrimitive.Color = stringPtr("#999999")
	style.BlockQuote.StylePrimitive.Italic = boolPtr(true)

	return style
}

// Helper functions for creating pointers
func stringPtr(s string) *string { return &s }
func uintPtr(u uint) *uint       { return &u }
func boolPtr(b bool) *bool       { return &b }

// RenderWithGradientBackground renders text padded to width over a gradient background
func RenderWithGradientBackground(text string, width int, startColor, endColor string) string {
	textRunes := []rune(text)
	if len(textRunes) < width {
		textRunes = append(textRunes, []rune(strings.Repeat(" ", width-len(textRunes)))...)
	} else {
		textRunes = textRunes[:width]
	}

	var result strings.Builder
	for i, r := range textRunes {
		position := float64(i) / float64(max(width-1, 1))
		bgColor := InterpolateColor(startColor, endColor, position)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(bgColor)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}

// InterpolateColor interpolates between two hex colors at the given position
func InterpolateColor(startColor, endColor string, position float64) string {
	startR, startG, startB, err := parseHexColor(startColor)
	if err != nil {
		return startColor
	}
	endR, endG, endB, err := parseHexColor(endColor)
	if err != nil {
		return startColor
	}

	if position < 0 {
		position = 0
	}
	if position > 1 {
		position = 1
	}

	r := int(float64(startR) + (float64(endR-startR) * position))
	g := int(float64(startG) + (float64(endG-startG) * position))
	b := int(float64(startB) + (float64(endB-startB) * position))

	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// parseHexColor parses a #RRGGBB color string into RGB values
func parseHexColor(hexColor string) (int, int, int, error) {
	hexColor = strings.TrimPrefix(hexColor, "#")
	if len(hexColor) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex color format")
	}

	r, err := strconv.ParseInt(hexColor[0:2], 16, 0)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid red component: %w", err)
	}
	g, err := strconv.ParseInt(hexColor[2:4], 16, 0)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid green component: %w", err)
	}
	b, err := strconv.ParseInt(hexColor[4:6], 16, 0)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid blue component: %w", err)
	}

	return int(r), int(g), int(b), nil
}
