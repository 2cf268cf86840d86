// Package ui is the terminal client: a single bubbletea model that walks one
// human seat and three advisor-driven seats through a full deal.
package ui

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"napoleon/internal/config"
	"napoleon/internal/game/bot"
	"napoleon/internal/game/card"
	"napoleon/internal/game/engine"
	"napoleon/internal/logger"
	"napoleon/internal/protocol"
)

// humanSeat 玩家座位号
const humanSeat engine.Seat = 1

// cpuMsg asks the update loop to perform the next automated action.
type cpuMsg struct{}

// Model drives one game at a time. The engine stage is the source of truth;
// the model only adds whose turn it is and the transient status lines.
type Model struct {
	cfg *config.Config
	eng *engine.Engine

	input  textinput.Model
	width  int
	height int

	cur    engine.Seat // seat to act during the play stage
	notice string
	errMsg string
	splash bool
}

func New(cfg *config.Config) *Model {
	input := textinput.New()
	input.CharLimit = 16
	input.Width = 40
	input.Focus()

	eng := engine.New(engine.Options{
		TargetMin:      cfg.Rules.TargetMin,
		TargetMax:      cfg.Rules.TargetMax,
		TwoRuleMinTurn: cfg.Rules.TwoRuleMinTurn,
	})
	return &Model{cfg: cfg, eng: eng, input: input, splash: true}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case cpuMsg:
		return m, m.stepCPU()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) cpuTick() tea.Cmd {
	return tea.Tick(m.cfg.Client.CPUDelay(), func(time.Time) tea.Msg {
		return cpuMsg{}
	})
}

// next schedules the following automated action, or yields to the human.
func (m *Model) next() tea.Cmd {
	if m.eng.Stage != engine.StagePlay || m.cur == humanSeat {
		return nil
	}
	return m.cpuTick()
}

// deal starts a fresh game: shuffle, run the bid contest and either hand
// control to the human napoleon or let the advisors prepare the deal.
func (m *Model) deal() tea.Cmd {
	m.splash = false
	m.errMsg = ""
	m.eng.NewGame()

	bid := bot.BestBid(m.eng)
	if err := m.eng.SetNapoleon(bid.Seat); err != nil {
		m.errMsg = err.Error()
		return nil
	}
	logger.Infof("game %s: seat %d takes the deal, suggested %s %d",
		m.eng.GameID, bid.Seat, bid.Suit.Label(), bid.Target)

	if bid.Seat == humanSeat {
		m.notice = fmt.Sprintf("You are Napoleon. Suggested: %s %d", bid.Suit.Label(), bid.Target)
		m.input.Placeholder = "declare <suit> <target>, e.g. h 15 (empty = suggested)"
		return nil
	}
	m.notice = fmt.Sprintf("Seat %d is Napoleon", bid.Seat)
	return m.cpuTick()
}

// stepCPU performs one automated action for the current stage.
func (m *Model) stepCPU() tea.Cmd {
	switch m.eng.Stage {
	case engine.StageBid:
		nap := m.eng.Player(m.eng.NapoleonSeat)
		bid := bot.SuggestBid(nap.ID, nap.Hand, nap.Human)
		if err := m.eng.Declare(bid.Suit, bid.Target); err != nil {
			m.errMsg = err.Error()
			return nil
		}
		m.notice = fmt.Sprintf("Seat %d declares %s", nap.ID, m.eng.Declaration)
		logDeclaration(m.eng)
		return m.cpuTick()

	case engine.StageLieut:
		c := bot.SuggestLieutenant(m.eng.Player(m.eng.NapoleonSeat).Hand)
		if err := m.eng.SetLieutenant(c); err != nil {
			m.errMsg = err.Error()
			return nil
		}
		m.notice = fmt.Sprintf("Seat %d calls %s as lieutenant card", m.eng.NapoleonSeat, c)
		return m.cpuTick()

	case engine.StageExchange:
		swaps := bot.AutoExchange(m.eng)
		if err := m.eng.FinishExchange(); err != nil {
			m.errMsg = err.Error()
			return nil
		}
		logger.Infof("game %s: napoleon exchanged %d cards", m.eng.GameID, swaps)
		m.cur = m.eng.Leader
		m.input.Placeholder = "play a card code, e.g. sA (empty = hint)"
		return m.next()

	case engine.StagePlay:
		if m.cur == humanSeat {
			return nil
		}
		c, ok := m.eng.ChooseMove(m.cur)
		if !ok {
			return nil
		}
		if err := m.applyPlay(m.cur, c); err != nil {
			logger.Errorf("game %s: cpu seat %d played %s: %v", m.eng.GameID, m.cur, c, err)
			return nil
		}
		return m.next()
	}
	return nil
}

// applyPlay commits one card for seat and advances the turn pointer.
func (m *Model) applyPlay(seat engine.Seat, c card.Card) error {
	wasRevealed := m.eng.LieutRevealed

	res, err := m.eng.Play(seat, c)
	if err != nil {
		return err
	}

	if !wasRevealed && m.eng.LieutRevealed {
		m.notice = fmt.Sprintf("Seat %d reveals as the lieutenant!", m.eng.LieutSeat)
	}

	if res.TrickComplete {
		payload := protocol.NewTrickResult(int(res.Winner), res.WinningCard, res.TwoRuleFired, res.Pictures, res.HadFaceDown)
		if body, err := json.Marshal(payload); err == nil {
			logger.Infof("game %s trick %d: %s", m.eng.GameID, m.eng.TurnNo-1, body)
		}

		summary := fmt.Sprintf("Seat %d takes the trick with %s", res.Winner, res.WinningCard)
		if res.TwoRuleFired {
			summary += " (two rule)"
		}
		if n := len(res.Pictures); n > 0 {
			summary += fmt.Sprintf(", %d pict", n)
		}
		m.notice = summary
		m.cur = res.Winner
	} else {
		m.cur = m.cur%engine.NumSeats + 1
	}

	if m.eng.Stage == engine.StageDone {
		report := m.eng.Score()
		payload := protocol.ScorePayload{
			Done:           report.Done,
			NapoleonPicts:  report.NapoleonPicts,
			CoalitionPicts: report.CoalitionPicts,
			Target:         report.Target,
			NapoleonWin:    report.NapoleonWin,
			Reason:         report.Reason,
		}
		if body, err := json.Marshal(payload); err == nil {
			logger.Infof("game %s over: %s", m.eng.GameID, body)
		}
	}
	return nil
}

func logDeclaration(e *engine.Engine) {
	payload := protocol.DeclarationPayload{
		Suit:   strings.ToLower(e.Trump.Label()[:1]),
		Target: e.Target,
	}
	if body, err := json.Marshal(payload); err == nil {
		logger.Infof("game %s declaration: %s", e.GameID, body)
	}
}
