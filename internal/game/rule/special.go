// Package rule implements the pure rules of four-player Napoleon:
// move legality, card strength and trick resolution. It has no game
// state of its own; the engine passes trick context in.
package rule

import "napoleon/internal/game/card"

// The two fixed special cards of the game.
var (
	// Mighty, the spade Ace, outranks everything except the Yoromeki
	// when both land in the same trick.
	Mighty = card.Card{Suit: card.Spade, Rank: card.RankA}

	// Yoromeki, the heart Queen, beats the Mighty when both are in the
	// trick and is an ordinary queen otherwise.
	Yoromeki = card.Card{Suit: card.Heart, Rank: card.RankQ}
)

// TrumpJack returns the Jack of the trump suit.
func TrumpJack(trump card.Suit) card.Card {
	return card.Card{Suit: trump, Rank: card.RankJ}
}

// ReverseJack returns the Jack of the suit pairing with trump.
func ReverseJack(trump card.Suit) card.Card {
	return card.Card{Suit: trump.Partner(), Rank: card.RankJ}
}
