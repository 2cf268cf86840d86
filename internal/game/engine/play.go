package engine

import (
	"napoleon/internal/apperrors"
	"napoleon/internal/game/card"
	"napoleon/internal/game/rule"
)

// TotalTricks is the number of tricks in one game (12 cards per hand).
const TotalTricks = 12

// PlayResult reports the outcome of one accepted play. The trick fields
// are meaningful only when TrickComplete is set.
type PlayResult struct {
	// FaceDown records whether this play was shown face-down.
	FaceDown bool

	TrickComplete bool
	Winner        Seat
	WinningCard   card.Card
	TwoRuleFired  bool
	Pictures      []card.Card
	HadFaceDown   bool
}

// LegalMoves computes the subset of seat's hand playable into the current
// trick.
func (e *Engine) LegalMoves(seat Seat) []card.Card {
	return rule.LegalMoves(e.Player(seat).Hand, e.Trick, e.TurnNo, seat == e.NapoleonSeat)
}

// Play lays one card from seat's hand into the trick. On the fourth card
// the trick is resolved: pictures go to the winner, the winner leads next,
// and after the twelfth trick the game is done.
func (e *Engine) Play(seat Seat, c card.Card) (PlayResult, error) {
	if e.Stage != StagePlay {
		return PlayResult{}, apperrors.ErrNotPlayStage
	}

	p := e.Player(seat)
	if !card.Contains(p.Hand, c) {
		return PlayResult{}, apperrors.ErrCardNotInHand
	}

	// Opening-trick bans get their own messages ahead of the generic
	// legality check.
	if e.TurnNo == 1 {
		if !c.IsJoker() && c.Suit == e.Trump {
			return PlayResult{}, apperrors.ErrObverseOnFirstTurn
		}
		if seat == e.NapoleonSeat && e.Trick.Empty() && c.IsJoker() {
			return PlayResult{}, apperrors.ErrJokerLeadFirstTurn
		}
	}

	if !card.Contains(e.LegalMoves(seat), c) {
		return PlayResult{}, apperrors.ErrIllegalMove
	}

	// The facing decision reads the hand before the card leaves it.
	faceDown := rule.PlaysFaceDown(p.Hand, e.Trick)
	p.Hand, _ = card.Remove(p.Hand, c)

	if !e.LieutInMount && !e.LieutRevealed && c == e.LieutCard {
		e.revealRoles()
	}

	e.Trick.Plays = append(e.Trick.Plays, rule.Play{Seat: int(seat), Card: c, FaceDown: faceDown})

	result := PlayResult{FaceDown: faceDown}
	if len(e.Trick.Plays) == NumSeats {
		e.resolveTrick(&result)
	}
	return result, nil
}

// resolveTrick ranks the four plays, credits pictures, advances the leader
// and either starts the next trick or finishes the game.
func (e *Engine) resolveTrick(result *PlayResult) {
	winnerIdx, winCard, twoRule := rule.Resolve(e.Trick, e.TurnNo >= e.opts.TwoRuleMinTurn)
	winner := Seat(e.Trick.Plays[winnerIdx].Seat)

	picts := e.Trick.Pictures()
	e.PictWon[winner-1] = append(e.PictWon[winner-1], picts...)
	e.Leader = winner

	result.TrickComplete = true
	result.Winner = winner
	result.WinningCard = winCard
	result.TwoRuleFired = twoRule
	result.Pictures = picts
	result.HadFaceDown = e.Trick.FaceDownShown()

	if e.TurnNo >= TotalTricks {
		e.Stage = StageDone
		return
	}
	e.TurnNo++
	e.Trick.Plays = nil
}

// revealRoles publishes every role at once the moment the lieutenant's
// identifying card hits the table.
func (e *Engine) revealRoles() {
	e.LieutRevealed = true
	for _, p := range e.Players {
		switch {
		case p.ID == e.NapoleonSeat:
			p.Role = RoleNapoleon
		case p.ID == e.LieutSeat:
			p.Role = RoleLieutenant
		default:
			p.Role = RoleCoalition
		}
		p.Revealed = true
	}
}
