package engine

import (
	"napoleon/internal/game/card"
	"napoleon/internal/game/rule"
)

// Joker costs: the Joker is by far the most expensive card to spend, and
// leading it is worse than following with it.
const (
	jokerFollowCost = 50000
	jokerLeadCost   = 60000
)

// ChooseMove picks a card for an automated seat: the legal move maximizing
// strength minus resource cost. Single-ply greedy, no lookahead. Returns
// false when the seat has no legal move.
func (e *Engine) ChooseMove(seat Seat) (card.Card, bool) {
	legal := e.LegalMoves(seat)
	estimate := func(c card.Card) int { return rule.Estimate(e.Trick, c) }
	cost := func(c card.Card) int {
		if !c.IsJoker() {
			return 0
		}
		if e.Trick.Empty() {
			return jokerLeadCost
		}
		return jokerFollowCost
	}
	return Choose(legal, estimate, cost)
}

// Choose is the pure greedy selection: the first card maximizing
// estimate(c) − cost(c). Factored out so the policy can be tested and
// swapped independently of the engine.
func Choose(legal []card.Card, estimate, cost func(card.Card) int) (card.Card, bool) {
	if len(legal) == 0 {
		return card.Card{}, false
	}

	best := legal[0]
	bestScore := estimate(best) - cost(best)
	for _, c := range legal[1:] {
		if s := estimate(c) - cost(c); s > bestScore {
			best = c
			bestScore = s
		}
	}
	return best, true
}
