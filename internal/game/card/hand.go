package card

import "slices"

// Contains reports whether hand holds c.
func Contains(hand []Card, c Card) bool {
	return slices.Contains(hand, c)
}

// Remove returns hand without the first occurrence of c and whether it was found.
func Remove(hand []Card, c Card) ([]Card, bool) {
	i := slices.Index(hand, c)
	if i < 0 {
		return hand, false
	}
	return slices.Delete(slices.Clone(hand), i, i+1), true
}

// HasSuit reports whether hand holds any non-Joker card of suit s.
func HasSuit(hand []Card, s Suit) bool {
	for _, c := range hand {
		if !c.IsJoker() && c.Suit == s {
			return true
		}
	}
	return false
}

// CountSuit counts the non-Joker cards of suit s in hand.
func CountSuit(hand []Card, s Suit) int {
	n := 0
	for _, c := range hand {
		if !c.IsJoker() && c.Suit == s {
			n++
		}
	}
	return n
}

// Pictures returns the picture cards in cards, in input order.
func Pictures(cards []Card) []Card {
	var picts []Card
	for _, c := range cards {
		if c.IsPicture() {
			picts = append(picts, c)
		}
	}
	return picts
}
