package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPurple      lipgloss.Color = "#6C3FC5"
	colorPurpleLight lipgloss.Color = "#8B6AD9"
	colorPurpleDark  lipgloss.Color = "#4A2A8A"
	colorPurpleGlow  lipgloss.Color = "#DBC8FF"
	colorWarm        lipgloss.Color = "#FF8F5C"
	colorWarmDark    lipgloss.Color = "#E86F3A"
	colorText        lipgloss.Color = "#FAFAFE"
	colorTextSoft    lipgloss.Color = "#B9B3CC"
	colorTextMuted   lipgloss.Color = "#A09AAE"
	colorBorder      lipgloss.Color = "#4A4560"
	colorSuccess     lipgloss.Color = "#34C77B"
	colorSuccessDark lipgloss.Color = "#2F855A"
	colorGold        lipgloss.Color = "#FFB830"
	colorBackdrop    lipgloss.Color = "#1E1633"
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPurpleLight).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	backStyle   = lipgloss.NewStyle().Foreground(colorPurpleGlow).Bold(true)
	ruleStyle   = lipgloss.NewStyle().Foreground(colorBorder)

	titleStyle    = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	brandStyle    = lipgloss.NewStyle().Foreground(colorPurpleGlow).Bold(true)
	softStyle     = lipgloss.NewStyle().Foreground(colorTextSoft)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorTextMuted)
	accentStyle   = lipgloss.NewStyle().Foreground(colorPurpleLight).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(colorTextSoft).Bold(true)
	priceStyle    = lipgloss.NewStyle().Foreground(colorPurpleGlow).Bold(true)
	warmStyle     = lipgloss.NewStyle().Foreground(colorWarm).Bold(true)
	warnStyle     = lipgloss.NewStyle().Foreground(colorWarmDark).Bold(true)
	successStyle  = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	goldStyle     = lipgloss.NewStyle().Foreground(colorGold)
	focusStyle    = lipgloss.NewStyle().Foreground(colorPurpleGlow).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(colorText).Background(colorPurpleDark).Bold(true)
	chipStyle     = lipgloss.NewStyle().Foreground(colorTextSoft).Padding(0, 1)
	chipOnStyle   = lipgloss.NewStyle().Foreground(colorText).Background(colorPurple).Bold(true).Padding(0, 1)
	badgeStyle    = lipgloss.NewStyle().Foreground(colorSuccess)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	cardOnStyle = cardStyle.BorderForeground(colorPurpleLight)

	primaryButton  = lipgloss.NewStyle().Foreground(colorText).Background(colorPurple).Bold(true).Padding(0, 2)
	warmButton     = lipgloss.NewStyle().Foreground(colorText).Background(colorWarmDark).Bold(true).Padding(0, 2)
	disabledButton = lipgloss.NewStyle().Foreground(colorTextMuted).Background(colorBorder).Padding(0, 2)

	statusErrStyle = lipgloss.NewStyle().Foreground(colorWarm)
)
