package engine

import (
	"fmt"

	"napoleon/internal/apperrors"
	"napoleon/internal/game/card"
)

// SetNapoleon records which seat won the bid contest. The front-end runs
// the contest itself; the engine only needs the winner before Declare.
func (e *Engine) SetNapoleon(seat Seat) error {
	if e.Stage != StageBid {
		return apperrors.ErrNotBidStage
	}
	e.NapoleonSeat = seat
	e.Leader = seat
	return nil
}

// Declare finalizes the napoleon's declaration: the trump (obverse) suit
// and the picture-card target. On success the game moves to lieutenant
// selection.
func (e *Engine) Declare(trump card.Suit, target int) error {
	if e.Stage != StageBid {
		return apperrors.ErrNotBidStage
	}
	if trump < card.Spade || trump > card.Club {
		return apperrors.ErrInvalidSuit
	}
	if target < e.opts.TargetMin || target > e.opts.TargetMax {
		return apperrors.ErrTargetRange(e.opts.TargetMin, e.opts.TargetMax)
	}

	e.Trump = trump
	e.Target = target
	e.Declaration = fmt.Sprintf("%s %d", trump.Label(), target)
	e.Stage = StageLieut
	return nil
}
