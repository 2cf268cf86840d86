package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"napoleon/internal/game/card"
	"napoleon/internal/game/engine"
)

func (m *Model) View() string {
	if m.splash || m.eng.Stage == engine.StageIdle {
		return m.splashView()
	}
	if m.eng.Stage == engine.StageDone {
		return m.scoreView()
	}
	return m.gameView()
}

func (m *Model) splashView() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle("♠ N A P O L E O N ♠"),
		"",
		"Four seats, twelve tricks, twenty picture cards.",
		"",
		hintStyle.Render("Enter to deal · Esc to quit"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) gameView() string {
	var sb strings.Builder

	bar := m.statusBar()
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, bar))
	sb.WriteString("\n\n")

	middle := m.seatsView()
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, middle))
	sb.WriteString("\n")

	if m.showMount() {
		mount := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Center, "Mount", renderCards(m.eng.Mount)))
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, mount))
		sb.WriteString("\n")
	}

	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.handView()))
	sb.WriteString("\n")

	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.promptView()))

	if m.notice != "" {
		sb.WriteString("\n" + lipgloss.PlaceHorizontal(m.width, lipgloss.Center, noticeStyle.Render(m.notice)))
	}
	if m.errMsg != "" {
		sb.WriteString("\n" + lipgloss.PlaceHorizontal(m.width, lipgloss.Center, errorStyle.Render(m.errMsg)))
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, docStyle.Render(sb.String()))
}

// showMount reports whether the human may see the mount right now: only a
// human napoleon during the call and exchange stages.
func (m *Model) showMount() bool {
	if m.eng.NapoleonSeat != humanSeat {
		return false
	}
	return m.eng.Stage == engine.StageLieut || m.eng.Stage == engine.StageExchange
}

func (m *Model) statusBar() string {
	parts := []string{fmt.Sprintf("Stage: %s", m.eng.Stage)}
	if m.eng.Declaration != "" {
		parts = append(parts, m.eng.Declaration)
	}
	if m.eng.Stage >= engine.StageExchange && m.eng.LieutCard != (card.Card{}) {
		parts = append(parts, "call: "+m.eng.LieutCard.String())
	}
	if m.eng.Stage == engine.StagePlay {
		parts = append(parts, fmt.Sprintf("trick %d/%d", m.eng.TurnNo, engine.TotalTricks))
	}
	return titleStyle(strings.Join(parts, "  ·  "))
}

func (m *Model) seatsView() string {
	var parts []string
	for _, p := range m.eng.Players {
		if p.ID == humanSeat {
			continue
		}

		name := fmt.Sprintf("Seat %d", p.ID)
		if m.eng.Stage == engine.StagePlay && m.cur == p.ID {
			name = turnStyle.Render(name)
		}
		info := fmt.Sprintf("%s %s\n🃏 %d cards\n🖼 %d picts",
			m.roleIcon(p), name, len(p.Hand), m.eng.PictCount(p.ID))
		parts = append(parts, boxStyle.Width(16).Render(info))
	}

	parts = append(parts, m.trickView())
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) roleIcon(p *engine.Player) string {
	if p.ID == m.eng.NapoleonSeat {
		return NapoleonIcon
	}
	if !p.Revealed {
		return UnknownIcon
	}
	if p.Role == engine.RoleLieutenant {
		return LieutenantIcon
	}
	return CoalitionIcon
}

func (m *Model) trickView() string {
	if m.eng.Trick.Empty() {
		return boxStyle.Width(24).Render("(waiting for the lead)")
	}

	var parts []string
	for _, p := range m.eng.Trick.Plays {
		label := fmt.Sprintf("%d: %s", p.Seat, p.Card)
		if p.FaceDown {
			if engine.Seat(p.Seat) == humanSeat {
				label += "↓"
			} else {
				label = fmt.Sprintf("%d: %s", p.Seat, FaceDownGlyph)
			}
		}
		parts = append(parts, label)
	}
	return boxStyle.Render(strings.Join(parts, "   "))
}

func (m *Model) handView() string {
	me := m.eng.Player(humanSeat)
	title := fmt.Sprintf("%s Your hand (%d)", m.roleIcon(me), len(me.Hand))
	if n := m.eng.PictCount(humanSeat); n > 0 {
		title += fmt.Sprintf(" · 🖼 %d picts", n)
	}
	content := lipgloss.JoinVertical(lipgloss.Center, title, renderCards(me.Hand))
	return boxStyle.Render(content)
}

// renderCards prints cards as a rank row over a suit row, red suits in red.
func renderCards(cards []card.Card) string {
	if len(cards) == 0 {
		return "(no cards)"
	}

	var rankStr, suitStr strings.Builder
	for _, c := range cards {
		style := blackStyle
		switch {
		case c.IsJoker():
			style = jokerStyle
		case c.Suit.Red():
			style = redStyle
		}
		style = style.Align(lipgloss.Center).Margin(0, 1)

		if c.IsJoker() {
			rankStr.WriteString(style.Render("Jo"))
			suitStr.WriteString(style.Render("★ "))
			continue
		}
		rankStr.WriteString(style.Render(fmt.Sprintf("%-2s", c.Rank.String())))
		suitStr.WriteString(style.Render(fmt.Sprintf("%-2s", c.Suit.String())))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rankStr.String(), suitStr.String())
}

func (m *Model) promptView() string {
	var sb strings.Builder

	switch m.eng.Stage {
	case engine.StageBid, engine.StageLieut, engine.StageExchange:
		if m.eng.NapoleonSeat == humanSeat {
			sb.WriteString(m.input.View())
		} else {
			sb.WriteString(hintStyle.Render("The table is preparing the deal..."))
		}
	case engine.StagePlay:
		if m.cur == humanSeat {
			sb.WriteString(m.input.View())
		} else {
			sb.WriteString(hintStyle.Render(fmt.Sprintf("Waiting for seat %d...", m.cur)))
		}
	}
	return promptStyle.Render(sb.String())
}

func (m *Model) scoreView() string {
	report := m.eng.Score()

	verdict := "NAPOLEON SIDE LOSES"
	if report.NapoleonWin {
		verdict = "NAPOLEON SIDE WINS"
	}

	var sb strings.Builder
	sb.WriteString(titleStyle("Game over") + "\n\n")
	fmt.Fprintf(&sb, "Napoleon side  %2d picts (target %d)\n", report.NapoleonPicts, report.Target)
	fmt.Fprintf(&sb, "Coalition      %2d picts\n\n", report.CoalitionPicts)
	sb.WriteString(verdict + "\n")
	sb.WriteString(report.Reason + "\n\n")

	for _, p := range m.eng.Players {
		fmt.Fprintf(&sb, "%s Seat %d: %s, %d picts\n", m.roleIcon(p), p.ID, p.Role, m.eng.PictCount(p.ID))
	}
	sb.WriteString("\n" + hintStyle.Render("Enter for a new deal · Esc to quit"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxStyle.Render(sb.String()))
}
