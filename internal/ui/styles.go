package ui

import "github.com/charmbracelet/lipgloss"

// Icon constants
const (
	NapoleonIcon   = "👑"
	LieutenantIcon = "🎖"
	CoalitionIcon  = "🛡"
	UnknownIcon    = "❔"
	FaceDownGlyph  = "🂠"
)

// Lipgloss styles shared by every view.
var (
	docStyle    = lipgloss.NewStyle().Margin(1, 2)
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	blackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	jokerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("91")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	promptStyle = lipgloss.NewStyle().MarginTop(1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	turnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
)
