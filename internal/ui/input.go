package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"napoleon/internal/game/bot"
	"napoleon/internal/game/card"
	"napoleon/internal/game/engine"
)

// submit consumes the input line and routes it to the stage handler.
func (m *Model) submit() tea.Cmd {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	m.errMsg = ""

	if m.splash || m.eng.Stage == engine.StageIdle || m.eng.Stage == engine.StageDone {
		return m.deal()
	}

	switch m.eng.Stage {
	case engine.StageBid:
		if m.eng.NapoleonSeat == humanSeat {
			return m.handleDeclare(line)
		}
	case engine.StageLieut:
		if m.eng.NapoleonSeat == humanSeat {
			return m.handleLieut(line)
		}
	case engine.StageExchange:
		if m.eng.NapoleonSeat == humanSeat {
			return m.handleExchange(line)
		}
	case engine.StagePlay:
		if m.cur == humanSeat {
			return m.handlePlay(line)
		}
	}
	return nil
}

func (m *Model) handleDeclare(line string) tea.Cmd {
	var suit card.Suit
	var target int

	if line == "" {
		bid := bot.SuggestBid(humanSeat, m.eng.Player(humanSeat).Hand, true)
		suit, target = bid.Suit, bid.Target
	} else {
		var err error
		suit, target, err = parseDeclare(line)
		if err != nil {
			m.errMsg = err.Error()
			return nil
		}
	}

	if err := m.eng.Declare(suit, target); err != nil {
		m.errMsg = err.Error()
		return nil
	}
	m.notice = "You declare " + m.eng.Declaration
	logDeclaration(m.eng)
	m.input.Placeholder = "call lieutenant card, e.g. sA (empty = suggested)"
	return nil
}

func (m *Model) handleLieut(line string) tea.Cmd {
	var c card.Card
	if line == "" {
		c = bot.SuggestLieutenant(m.eng.Player(humanSeat).Hand)
	} else {
		var err error
		c, err = card.Parse(line)
		if err != nil {
			m.errMsg = err.Error()
			return nil
		}
	}

	if err := m.eng.SetLieutenant(c); err != nil {
		m.errMsg = err.Error()
		return nil
	}
	m.notice = fmt.Sprintf("You call %s as lieutenant card", c)
	m.input.Placeholder = "swap <hand> <mount> | auto | done"
	return nil
}

func (m *Model) handleExchange(line string) tea.Cmd {
	switch line {
	case "done", "":
		if err := m.eng.FinishExchange(); err != nil {
			m.errMsg = err.Error()
			return nil
		}
		m.cur = m.eng.Leader
		m.notice = "Play begins. You lead."
		m.input.Placeholder = "play a card code, e.g. sA (empty = hint)"
		return m.next()

	case "auto":
		swaps := bot.AutoExchange(m.eng)
		m.notice = fmt.Sprintf("Exchanged %d cards", swaps)
		return nil
	}

	handCard, mountCard, err := parseSwap(line)
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}
	if err := m.eng.Swap(handCard, mountCard); err != nil {
		m.errMsg = err.Error()
		return nil
	}
	m.notice = fmt.Sprintf("Swapped %s for %s", handCard, mountCard)
	return nil
}

func (m *Model) handlePlay(line string) tea.Cmd {
	var c card.Card
	if line == "" {
		var ok bool
		c, ok = m.eng.ChooseMove(humanSeat)
		if !ok {
			m.errMsg = "no playable card"
			return nil
		}
	} else {
		var err error
		c, err = card.Parse(line)
		if err != nil {
			m.errMsg = err.Error()
			return nil
		}
	}

	if err := m.applyPlay(humanSeat, c); err != nil {
		m.errMsg = err.Error()
		return nil
	}
	return m.next()
}

func parseDeclare(line string) (card.Suit, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected <suit> <target>, e.g. h 15")
	}
	if len(fields[0]) != 1 {
		return 0, 0, fmt.Errorf("suit must be one of s h d c")
	}
	suit, ok := card.SuitFromCode(fields[0][0])
	if !ok {
		return 0, 0, fmt.Errorf("suit must be one of s h d c")
	}
	target, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("target must be a number")
	}
	return suit, target, nil
}

func parseSwap(line string) (card.Card, card.Card, error) {
	fields := strings.Fields(line)
	if len(fields) == 3 && fields[0] == "swap" {
		fields = fields[1:]
	}
	if len(fields) != 2 {
		return card.Card{}, card.Card{}, fmt.Errorf("expected swap <hand> <mount>, e.g. swap c3 sA")
	}
	handCard, err := card.Parse(fields[0])
	if err != nil {
		return card.Card{}, card.Card{}, err
	}
	mountCard, err := card.Parse(fields[1])
	if err != nil {
		return card.Card{}, card.Card{}, err
	}
	return handCard, mountCard, nil
}
