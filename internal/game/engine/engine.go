// Package engine holds the mutable state of one Napoleon game and the
// operation surface a front-end drives: dealing, declaration, lieutenant
// selection, the mount exchange, trick play and scoring. Every operation
// either fully validates and commits, or mutates nothing and returns a
// typed error.
package engine

import (
	"github.com/google/uuid"

	"napoleon/internal/game/card"
	"napoleon/internal/game/rule"
)

// NumSeats 玩家数量
const NumSeats = 4

// Seat 玩家座位号 (1..4)
type Seat int

// Role is a player's side, published only when the lieutenant card is played.
type Role int

const (
	RoleUnknown Role = iota
	RoleNapoleon
	RoleLieutenant
	RoleCoalition
)

var roleNames = map[Role]string{
	RoleUnknown:    "unknown",
	RoleNapoleon:   "napoleon",
	RoleLieutenant: "lieutenant",
	RoleCoalition:  "coalition",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// Stage is the game's phase. Transitions run strictly
// idle → bid → lieut → exchange → play → done, reset only by NewGame.
type Stage int

const (
	StageIdle Stage = iota
	StageBid
	StageLieut
	StageExchange
	StagePlay
	StageDone
)

var stageNames = map[Stage]string{
	StageIdle:     "idle",
	StageBid:      "bid",
	StageLieut:    "lieut",
	StageExchange: "exchange",
	StagePlay:     "play",
	StageDone:     "done",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

// Player 定义一个玩家
type Player struct {
	ID       Seat
	Human    bool
	Hand     []card.Card
	Role     Role
	Revealed bool
}

// Options are the overridable rule knobs.
type Options struct {
	// TargetMin and TargetMax bound the declarable picture-card target.
	TargetMin int
	TargetMax int
	// TwoRuleMinTurn is the first trick number on which the rank-reversal
	// rule may fire; 1 means no gate.
	TwoRuleMinTurn int
}

// DefaultOptions returns the historical engine bounds.
func DefaultOptions() Options {
	return Options{TargetMin: 1, TargetMax: 20, TwoRuleMinTurn: 1}
}

// Engine owns the full state of one game. It is not safe for concurrent
// use; one driver calls its operations sequentially.
type Engine struct {
	opts Options

	GameID  string
	Players [NumSeats]*Player
	Mount   []card.Card

	Trump       card.Suit
	Target      int
	Declaration string

	LieutCard     card.Card
	LieutSeat     Seat // 0 while unknown or when the card sits in the mount
	LieutInMount  bool
	LieutRevealed bool

	Stage        Stage
	TurnNo       int
	Leader       Seat
	NapoleonSeat Seat

	// Trick in progress, including face-down flags; Trump is mirrored
	// into it at exchange end.
	Trick rule.Trick

	// PictWon collects the picture cards each seat has taken.
	PictWon [NumSeats][]card.Card
}

// New creates an idle engine. Seat 1 is the interactive seat.
func New(opts Options) *Engine {
	e := &Engine{opts: opts, Stage: StageIdle, NapoleonSeat: 1, Leader: 1}
	for i := range e.Players {
		e.Players[i] = &Player{ID: Seat(i + 1), Human: i == 0}
	}
	return e
}

// Player returns the player at seat (1..4). Seats outside that range are
// outside the engine's contract.
func (e *Engine) Player(seat Seat) *Player {
	return e.Players[seat-1]
}

func (e *Engine) napoleon() *Player {
	return e.Player(e.NapoleonSeat)
}

// NewGame shuffles a fresh 53-card deck, deals 5 cards to the mount and 12
// to each seat, resets every counter and role, and enters the bid stage.
func (e *Engine) NewGame() {
	deck := card.NewDeck()
	deck.Shuffle()

	e.GameID = uuid.NewString()
	e.Mount = nil
	e.Trump = card.Joker
	e.Target = 0
	e.Declaration = ""

	e.LieutCard = card.Card{}
	e.LieutSeat = 0
	e.LieutInMount = false
	e.LieutRevealed = false

	e.Stage = StageBid
	e.TurnNo = 0
	e.Leader = 1
	e.NapoleonSeat = 1

	e.Trick = rule.Trick{}
	for i := range e.PictWon {
		e.PictWon[i] = nil
	}

	for _, p := range e.Players {
		p.Hand = nil
		p.Role = RoleUnknown
		p.Revealed = false
	}

	e.Mount = append(e.Mount, deck[:5]...)
	deck = deck[5:]
	for _, p := range e.Players {
		p.Hand = append(p.Hand, deck[:12]...)
		deck = deck[12:]
	}

	for _, p := range e.Players {
		card.Sort(p.Hand)
	}
	card.Sort(e.Mount)
}

// PictCount returns how many picture cards seat has taken so far.
func (e *Engine) PictCount(seat Seat) int {
	return len(e.PictWon[seat-1])
}

// napoleonSide returns the seats currently counted on the napoleon's side:
// the napoleon, plus the lieutenant once revealed and not in the mount.
func (e *Engine) napoleonSide() map[Seat]bool {
	side := map[Seat]bool{e.NapoleonSeat: true}
	if e.LieutRevealed && !e.LieutInMount && e.LieutSeat != 0 {
		side[e.LieutSeat] = true
	}
	return side
}
