package card

import (
	"math/rand/v2"
	"slices"
)

// Suit identifies one of the four French suits, or Joker for the single
// wild card of the 53-card deck.
type Suit int

const (
	Spade Suit = iota
	Heart
	Diamond
	Club
	Joker
)

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Spade:   "♠",
	Heart:   "♥",
	Diamond: "♦",
	Club:    "♣",
	Joker:   "",
}

// suitPriority orders suits for display: spade > heart > diamond > club.
var suitPriority = map[Suit]int{
	Spade:   4,
	Heart:   3,
	Diamond: 2,
	Club:    1,
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

// Label returns the English suit name used in declaration strings.
func (s Suit) Label() string {
	switch s {
	case Spade:
		return "Spade"
	case Heart:
		return "Heart"
	case Diamond:
		return "Diamond"
	case Club:
		return "Club"
	}
	return ""
}

// Red reports whether the suit prints in red.
func (s Suit) Red() bool {
	return s == Heart || s == Diamond
}

// Partner returns the same-color suit paired with s: spade↔club, heart↔diamond.
func (s Suit) Partner() Suit {
	switch s {
	case Spade:
		return Club
	case Club:
		return Spade
	case Heart:
		return Diamond
	case Diamond:
		return Heart
	}
	return Joker
}

// Rank is the face value of a suited card, 2 through Ace.
type Rank int

const (
	Rank2 Rank = iota + 2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ // Jack
	RankQ // Queen
	RankK // King
	RankA // Ace
)

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	Rank2:  "2",
	Rank3:  "3",
	Rank4:  "4",
	Rank5:  "5",
	Rank6:  "6",
	Rank7:  "7",
	Rank8:  "8",
	Rank9:  "9",
	Rank10: "10",
	RankJ:  "J",
	RankQ:  "Q",
	RankK:  "K",
	RankA:  "A",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return "?"
}

// Card is an immutable card value: either the Joker or a (suit, rank) pair.
// The Joker carries no rank.
type Card struct {
	Suit Suit
	Rank Rank
}

// TheJoker is the single wild card of the deck.
var TheJoker = Card{Suit: Joker}

func (c Card) IsJoker() bool {
	return c.Suit == Joker
}

// IsPicture reports whether the card counts toward the declared target
// (rank ten or higher).
func (c Card) IsPicture() bool {
	return !c.IsJoker() && c.Rank >= Rank10
}

// Value returns the numeric rank value (2..14), 0 for the Joker.
func (c Card) Value() int {
	if c.IsJoker() {
		return 0
	}
	return int(c.Rank)
}

func (c Card) String() string {
	if c.IsJoker() {
		return "Joker"
	}
	return c.Suit.String() + c.Rank.String()
}

// Deck 定义一副牌
type Deck []Card

// NewDeck builds the 53-card deck: 13 ranks in 4 suits plus the Joker.
func NewDeck() Deck {
	deck := make(Deck, 0, 53)
	deck = append(deck, TheJoker)
	for s := Spade; s <= Club; s++ {
		for r := Rank2; r <= RankA; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

func (d Deck) Shuffle() {
	rand.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// Sort orders cards canonically for display: spades, hearts, diamonds, clubs,
// rank ascending within each suit, Joker last. Gameplay never depends on it.
func Sort(cards []Card) {
	slices.SortFunc(cards, func(a, b Card) int {
		if a.IsJoker() != b.IsJoker() {
			if a.IsJoker() {
				return 1
			}
			return -1
		}
		if a.Suit != b.Suit {
			return suitPriority[b.Suit] - suitPriority[a.Suit]
		}
		return int(a.Rank) - int(b.Rank)
	})
}
