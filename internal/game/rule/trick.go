package rule

import "napoleon/internal/game/card"

// Strength tiers. Specials sit far above any rank value (2..14) so the
// ordinary comparisons can never cross into them.
const (
	strengthMighty       = 4500 // Mighty alone
	strengthYoromeki     = 4400 // Yoromeki with the Mighty in the same trick
	strengthMightyCombo  = 4350 // Mighty when the Yoromeki is also in the trick
	strengthTrumpJack    = 4300
	strengthReverseJack  = 4200
	strengthJokerLead    = 4100 // Joker under its lead-dominance condition
	twoRuleBonus         = 3000
	faceDownTrumpBase    = 2000
	strengthJokerWeak    = 1 // below every numeric card
	offSuitPenalty       = -10000
	initialResolverScore = -1 << 30
)

// Play is one card laid into a trick, with whether it was shown face-down.
type Play struct {
	Seat     int
	Card     card.Card
	FaceDown bool
}

// Trick is the in-progress or completed trick handed to the resolver,
// in play order, together with the declared trump suit.
type Trick struct {
	Trump card.Suit
	Plays []Play
}

func (t Trick) Empty() bool {
	return len(t.Plays) == 0
}

// LeadIsJoker reports whether the Joker led the trick.
func (t Trick) LeadIsJoker() bool {
	return !t.Empty() && t.Plays[0].Card.IsJoker()
}

// LeadSuit is the suit to follow: the lead card's suit, or trump when the
// Joker led.
func (t Trick) LeadSuit() card.Suit {
	if t.Empty() {
		return card.Joker
	}
	if t.LeadIsJoker() {
		return t.Trump
	}
	return t.Plays[0].Card.Suit
}

func (t Trick) contains(c card.Card) bool {
	for _, p := range t.Plays {
		if p.Card == c {
			return true
		}
	}
	return false
}

// ComboActive reports whether both the Mighty and the Yoromeki are in the
// trick, which flips the Yoromeki above the Mighty.
func (t Trick) ComboActive() bool {
	return t.contains(Mighty) && t.contains(Yoromeki)
}

// hasForbiddenSpecial reports whether the trick holds any special that
// suppresses both the Joker's lead dominance and the two rule: the Mighty
// or either rank-shifted Jack.
func (t Trick) hasForbiddenSpecial() bool {
	return t.contains(Mighty) || t.contains(TrumpJack(t.Trump)) || t.contains(ReverseJack(t.Trump))
}

func (t Trick) FaceDownShown() bool {
	for _, p := range t.Plays {
		if p.FaceDown {
			return true
		}
	}
	return false
}

// singleNonJokerSuit reports whether all non-Joker cards share one suit.
func (t Trick) singleNonJokerSuit() bool {
	seen := card.Joker
	for _, p := range t.Plays {
		if p.Card.IsJoker() {
			continue
		}
		if seen == card.Joker {
			seen = p.Card.Suit
		} else if p.Card.Suit != seen {
			return false
		}
	}
	return seen != card.Joker
}

func (t Trick) allNonJoker() bool {
	for _, p := range t.Plays {
		if p.Card.IsJoker() {
			return false
		}
	}
	return true
}

// jokerDominant is the Joker's winning condition: it led the trick, no
// forbidden special showed up, and every other card shares one suit.
func (t Trick) jokerDominant() bool {
	return t.LeadIsJoker() && !t.hasForbiddenSpecial() && t.singleNonJokerSuit()
}

// twoRuleActive reports whether the rank-reversal bonus applies: a non-Joker
// lead, no forbidden special, four same-suit non-Joker cards, and nothing
// shown face-down. The allowed flag carries the configurable turn gate.
func (t Trick) twoRuleActive(allowed bool) bool {
	return allowed &&
		!t.Empty() && !t.LeadIsJoker() &&
		!t.hasForbiddenSpecial() &&
		t.allNonJoker() && t.singleNonJokerSuit() &&
		!t.FaceDownShown()
}

// isSpecial reports whether c scores on the special tier in this trick.
// The Yoromeki is special only while the combo is active.
func (t Trick) isSpecial(c card.Card) bool {
	if c.IsJoker() || c == Mighty {
		return true
	}
	if c == Yoromeki {
		return t.ComboActive()
	}
	return c == TrumpJack(t.Trump) || c == ReverseJack(t.Trump)
}

// Estimate is the context-aware strength of a single card, as used by the
// greedy chooser. The Joker's exceptional win is handled by Resolve, so it
// estimates low here.
func Estimate(t Trick, c card.Card) int {
	switch {
	case c == Mighty:
		if t.ComboActive() {
			return strengthMightyCombo
		}
		return strengthMighty
	case c == Yoromeki:
		if t.ComboActive() {
			return strengthYoromeki
		}
		return c.Value()
	case c == TrumpJack(t.Trump):
		return strengthTrumpJack
	case c == ReverseJack(t.Trump):
		return strengthReverseJack
	case c.IsJoker():
		return strengthJokerWeak
	}
	return c.Value()
}

// playScore computes the resolver score of one play within the full trick.
func (t Trick) playScore(p Play, jokerDominant, twoActive bool) int {
	var score int
	switch {
	case p.Card.IsJoker():
		if jokerDominant {
			score = strengthJokerLead
		} else {
			score = strengthJokerWeak
		}
	case !t.isSpecial(p.Card):
		switch {
		case p.FaceDown && !t.LeadIsJoker() && p.Card.Suit == t.Trump:
			// A face-down trump competes as trump unless the Joker led.
			score = faceDownTrumpBase + p.Card.Value()
		case p.Card.Suit != t.LeadSuit():
			score = offSuitPenalty + p.Card.Value()
		default:
			score = p.Card.Value()
		}
	default:
		score = Estimate(t, p.Card)
	}

	if twoActive && !p.Card.IsJoker() && p.Card.Rank == card.Rank2 {
		score += twoRuleBonus
	}
	return score
}

// Resolve ranks the plays of a completed trick and returns the index of the
// winning play, the winning card and whether the rank-reversal rule fired.
// The first play reaching the maximum score wins.
func Resolve(t Trick, twoRuleAllowed bool) (winner int, winCard card.Card, twoRule bool) {
	jokerDom := t.jokerDominant()
	twoRule = t.twoRuleActive(twoRuleAllowed)

	best := initialResolverScore
	for i, p := range t.Plays {
		if s := t.playScore(p, jokerDom, twoRule); s > best {
			best = s
			winner = i
			winCard = p.Card
		}
	}
	return winner, winCard, twoRule
}

// Pictures lists the picture cards laid into the trick, in play order.
func (t Trick) Pictures() []card.Card {
	var picts []card.Card
	for _, p := range t.Plays {
		if p.Card.IsPicture() {
			picts = append(picts, p.Card)
		}
	}
	return picts
}
