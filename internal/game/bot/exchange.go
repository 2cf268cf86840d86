package bot

import (
	"napoleon/internal/game/card"
	"napoleon/internal/game/engine"
	"napoleon/internal/game/rule"
)

const (
	swapGain = 2.5
	maxSwaps = 64
)

// aggression scales the exchange appetite with the declared target,
// clamped to the 13..16 band.
func aggression(target int) int {
	if target < 13 {
		target = 13
	}
	if target > 16 {
		target = 16
	}
	return target - 13
}

// exchangeValue scores one card for keeping. Specials sit far above any
// plain card; plain cards weigh rank, picture status, trump membership,
// and how long the card's suit already runs in the hand.
func exchangeValue(c card.Card, trump card.Suit, suitLen, aggr int) float64 {
	switch {
	case c == rule.Mighty:
		return 200
	case c == rule.TrumpJack(trump):
		return 185
	case c == rule.ReverseJack(trump):
		return 178
	case c.IsJoker():
		return float64(165 + aggr*3)
	case c == rule.Yoromeki:
		return 150
	}

	v := float64(c.Value())
	if c.IsPicture() {
		v += float64(22 + aggr*6)
	}
	if c.Suit == trump {
		v += float64(10 + aggr*2)
	}
	v += float64(suitLen) * 1.6
	if c.Rank <= card.Rank6 && c.Suit != trump {
		v -= 6
	}
	return v
}

// AutoExchange runs the greedy mount exchange for the napoleon: while the
// best mount card clearly outvalues the worst hand card, swap them. The
// called lieutenant card is never pulled out of the mount; the napoleon
// playing it would expose the call as a bluff.
func AutoExchange(e *engine.Engine) int {
	if e.Stage != engine.StageExchange {
		return 0
	}

	nap := e.Player(e.NapoleonSeat)
	aggr := aggression(e.Target)
	swaps := 0

	for swaps < maxSwaps {
		counts := make(map[card.Suit]int)
		for _, c := range nap.Hand {
			counts[c.Suit]++
		}

		worst, worstVal := card.Card{}, 0.0
		for i, c := range nap.Hand {
			v := exchangeValue(c, e.Trump, counts[c.Suit], aggr)
			if i == 0 || v < worstVal {
				worst, worstVal = c, v
			}
		}

		found := false
		best, bestVal := card.Card{}, 0.0
		for _, c := range e.Mount {
			if e.LieutInMount && c == e.LieutCard {
				continue
			}
			v := exchangeValue(c, e.Trump, counts[c.Suit], aggr)
			if !found || v > bestVal {
				best, bestVal = c, v
				found = true
			}
		}

		if !found || bestVal <= worstVal+swapGain {
			break
		}
		if err := e.Swap(worst, best); err != nil {
			break
		}
		swaps++
	}
	return swaps
}
