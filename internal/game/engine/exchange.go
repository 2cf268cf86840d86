package engine

import (
	"slices"

	"napoleon/internal/apperrors"
	"napoleon/internal/game/card"
	"napoleon/internal/game/rule"
)

// Swap trades one card of the napoleon's hand for one card of the mount.
// It may be repeated any number of times before FinishExchange.
func (e *Engine) Swap(handCard, mountCard card.Card) error {
	if e.Stage != StageExchange {
		return apperrors.ErrNotExchangeStage
	}

	nap := e.napoleon()
	hi := slices.Index(nap.Hand, handCard)
	if hi < 0 {
		return apperrors.ErrHandCardMissing
	}
	mi := slices.Index(e.Mount, mountCard)
	if mi < 0 {
		return apperrors.ErrMountCardMissing
	}

	nap.Hand[hi], e.Mount[mi] = e.Mount[mi], nap.Hand[hi]
	card.Sort(nap.Hand)
	card.Sort(e.Mount)
	return nil
}

// FinishExchange seals the mount and opens play: the napoleon leads the
// first trick.
func (e *Engine) FinishExchange() error {
	if e.Stage != StageExchange {
		return apperrors.ErrNotExchangeStage
	}

	e.Stage = StagePlay
	e.TurnNo = 1
	e.Leader = e.NapoleonSeat
	e.Trick = rule.Trick{Trump: e.Trump}
	return nil
}
