package bot

import (
	"napoleon/internal/game/card"
	"napoleon/internal/game/rule"
)

const lieutJokerScore = 1000

// SuggestLieutenant picks the lieutenant card to call for a napoleon
// holding napHand. The Mighty is called whenever the napoleon lacks it;
// otherwise the strongest card outside the hand, with pictures weighted
// well above plain ranks.
func SuggestLieutenant(napHand []card.Card) card.Card {
	if !card.Contains(napHand, rule.Mighty) {
		return rule.Mighty
	}

	best := card.Card{}
	bestScore := -1
	for _, c := range card.NewDeck() {
		if card.Contains(napHand, c) {
			continue
		}
		score := lieutJokerScore
		if !c.IsJoker() {
			score = c.Value()
			if c.IsPicture() {
				score += 30
			}
		}
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best
}
