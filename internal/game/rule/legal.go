package rule

import (
	"slices"

	"napoleon/internal/game/card"
)

// LegalMoves computes the subset of hand the acting player may play into the
// trick. The trick carries the trump suit and the plays so far; turnNo is the
// 1-based trick number and isNapoleon marks the napoleon seat, whose Joker
// lead is banned on the opening trick.
func LegalMoves(hand []card.Card, t Trick, turnNo int, isNapoleon bool) []card.Card {
	legal := slices.Clone(hand)

	// Opening trick: trump cards are banned for everyone, and the napoleon
	// may not lead the Joker.
	if turnNo == 1 {
		legal = slices.DeleteFunc(legal, func(c card.Card) bool {
			return !c.IsJoker() && c.Suit == t.Trump
		})
		if t.Empty() && isNapoleon {
			legal = slices.DeleteFunc(legal, card.Card.IsJoker)
		}
	}

	// Leading: anything that survived the filter.
	if t.Empty() {
		return legal
	}

	leadSuit := t.LeadSuit()
	hasJoker := card.Contains(legal, card.TheJoker)

	var suited []card.Card
	for _, c := range legal {
		if !c.IsJoker() && c.Suit == leadSuit {
			suited = append(suited, c)
		}
	}

	if leadSuit == card.Spade {
		others := slices.DeleteFunc(slices.Clone(suited), func(c card.Card) bool {
			return c == Mighty
		})
		if len(others) > 0 {
			// The Mighty is never a forced follow, but always a legal one.
			if hasJoker {
				others = append(others, card.TheJoker)
			}
			if card.Contains(suited, Mighty) {
				others = append(others, Mighty)
			}
			return others
		}
		if card.Contains(suited, Mighty) {
			// The Mighty is the player's only spade: follow-suit is waived.
			return legal
		}
	}

	if len(suited) > 0 {
		// The Joker may always accompany a suit-following group.
		if hasJoker {
			suited = append(suited, card.TheJoker)
		}
		return suited
	}

	// No card of the lead suit: free discard.
	return legal
}

// PlaysFaceDown reports whether a play from hand would be shown face-down:
// the player is not leading and holds no card of the lead suit. The hand is
// inspected before the played card is removed.
func PlaysFaceDown(hand []card.Card, t Trick) bool {
	if t.Empty() {
		return false
	}
	return !card.HasSuit(hand, t.LeadSuit())
}
