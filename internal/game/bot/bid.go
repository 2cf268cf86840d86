// Package bot provides the CPU-side advisors that drive automated seats
// through the pre-play stages: proposing a declaration, calling the
// lieutenant card and working the mount exchange. All of it is single-ply
// heuristics; trick play itself uses the engine's greedy chooser.
package bot

import (
	"napoleon/internal/game/card"
	"napoleon/internal/game/engine"
)

// Bid is one seat's best declaration proposal.
type Bid struct {
	Seat   engine.Seat
	Suit   card.Suit
	Target int
	Score  int
	Human  bool
}

var suitOrder = map[card.Suit]int{
	card.Spade:   4,
	card.Heart:   3,
	card.Diamond: 2,
	card.Club:    1,
}

var trumpHonorBonus = map[card.Rank]int{
	card.RankA:  6,
	card.RankK:  5,
	card.RankQ:  4,
	card.RankJ:  3,
	card.Rank10: 2,
}

// suitStrength scores hand as a napoleon hand with the given trump suit.
func suitStrength(hand []card.Card, trump card.Suit) int {
	score := 0
	suitCount := 0
	for _, c := range hand {
		switch {
		case c.IsJoker():
			score += 5
		case c.Suit == trump:
			suitCount++
			score += 2 + trumpHonorBonus[c.Rank]
		case c.Rank == card.RankA || c.Rank == card.RankK:
			score++
		}
	}

	switch {
	case suitCount >= 6:
		score += 3
	case suitCount >= 5:
		score += 2
	case suitCount >= 4:
		score += 1
	}
	return score
}

// targetForScore maps hand strength to a declared target in 13..16.
func targetForScore(score int) int {
	switch {
	case score >= 29:
		return 16
	case score >= 23:
		return 15
	case score >= 17:
		return 14
	}
	return 13
}

// SuggestBid returns the strongest declaration the hand supports.
func SuggestBid(seat engine.Seat, hand []card.Card, human bool) Bid {
	best := Bid{Seat: seat, Suit: card.Spade, Target: 13, Score: -1 << 30, Human: human}
	for s := card.Spade; s <= card.Club; s++ {
		if sc := suitStrength(hand, s); sc > best.Score {
			best.Score = sc
			best.Suit = s
		}
	}
	best.Target = targetForScore(best.Score)
	return best
}

// Beats orders bids: higher target, then suit priority, then raw score,
// then the human seat.
func (b Bid) Beats(o Bid) bool {
	if b.Target != o.Target {
		return b.Target > o.Target
	}
	if suitOrder[b.Suit] != suitOrder[o.Suit] {
		return suitOrder[b.Suit] > suitOrder[o.Suit]
	}
	if b.Score != o.Score {
		return b.Score > o.Score
	}
	return b.Human && !o.Human
}

// BestBid runs the whole-table bid contest and returns the winning proposal.
func BestBid(e *engine.Engine) Bid {
	var best Bid
	for i, p := range e.Players {
		b := SuggestBid(p.ID, p.Hand, p.Human)
		if i == 0 || b.Beats(best) {
			best = b
		}
	}
	return best
}
