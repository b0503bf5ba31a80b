package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Vitacoach theme (CLI + TUI).

const (
	IconHeart   = "💚"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconFire    = "🔥"
	IconBolt    = "⚡"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "❌"
	IconLock    = "🔒"
	IconDoctor  = "🩺"
	IconPatient = "🧑"
	IconUpload  = "📤"
	IconBook    = "📚"
	IconPill    = "💊"
	IconDNA     = "🧬"
	IconCal     = "📅"
	IconFlag    = "🚩"
)

var (
	cPrimary = lipgloss.Color("35")  // teal
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// RiskText colours a patient risk level.
func RiskText(risk string) string {
	switch strings.ToLower(strings.TrimSpace(risk)) {
	case "high":
		return Bad.Render("high")
	case "moderate":
		return Warn.Render("moderate")
	case "low":
		return Good.Render("low")
	default:
		return Muted.Render(risk)
	}
}

// LabText colours a lab classification.
func LabText(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "high", "low":
		return Bad.Render(status)
	case "normal":
		return Good.Render(status)
	default:
		return Muted.Render(status)
	}
}

func RoleIcon(role string) string {
	if role == "doctor" {
		return IconDoctor
	}
	return IconPatient
}

// ProgressBar renders value/total as a fixed-width bar.
func ProgressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := int(float64(value) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// Cents formats a stake amount.
func Cents(c int64) string {
	return fmt.Sprintf("$%d.%02d", c/100, c%100)
}
