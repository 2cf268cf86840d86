package engine

import (
	"napoleon/internal/apperrors"
	"napoleon/internal/game/card"
)

// SetLieutenant picks the card identifying the secret ally. It must lie
// outside the napoleon's own hand; by convention even the napoleon may not
// know the ally. If the card sits in the mount the napoleon plays alone.
func (e *Engine) SetLieutenant(c card.Card) error {
	if e.Stage != StageLieut {
		return apperrors.ErrNotLieutStage
	}
	if card.Contains(e.napoleon().Hand, c) {
		return apperrors.ErrLieutInsideHand
	}

	e.LieutCard = c
	e.LieutSeat = 0
	e.LieutInMount = false
	e.LieutRevealed = false

	if card.Contains(e.Mount, c) {
		e.LieutInMount = true
	} else {
		for _, p := range e.Players {
			if card.Contains(p.Hand, c) {
				e.LieutSeat = p.ID
				break
			}
		}
	}

	e.Stage = StageExchange
	return nil
}
