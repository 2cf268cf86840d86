package card

import "fmt"

// Two-character wire codes are the interchange format with front-ends:
// suit letter (s/h/d/c) plus rank character, "0" standing for ten.
// The Joker is encoded as "Jo".

var suitCodes = map[Suit]string{
	Spade:   "s",
	Heart:   "h",
	Diamond: "d",
	Club:    "c",
}

var rankCodes = map[Rank]string{
	Rank2:  "2",
	Rank3:  "3",
	Rank4:  "4",
	Rank5:  "5",
	Rank6:  "6",
	Rank7:  "7",
	Rank8:  "8",
	Rank9:  "9",
	Rank10: "0",
	RankJ:  "J",
	RankQ:  "Q",
	RankK:  "K",
	RankA:  "A",
}

// SuitFromCode maps a suit letter to its Suit.
func SuitFromCode(ch byte) (Suit, bool) {
	switch ch {
	case 's':
		return Spade, true
	case 'h':
		return Heart, true
	case 'd':
		return Diamond, true
	case 'c':
		return Club, true
	}
	return Joker, false
}

func rankFromCode(ch byte) (Rank, bool) {
	switch {
	case ch >= '2' && ch <= '9':
		return Rank(ch - '0'), true
	case ch == '0':
		return Rank10, true
	case ch == 'J':
		return RankJ, true
	case ch == 'Q':
		return RankQ, true
	case ch == 'K':
		return RankK, true
	case ch == 'A':
		return RankA, true
	}
	return 0, false
}

// Code returns the two-character wire code of the card.
func (c Card) Code() string {
	if c.IsJoker() {
		return "Jo"
	}
	return suitCodes[c.Suit] + rankCodes[c.Rank]
}

// Codes encodes a slice of cards.
func Codes(cards []Card) []string {
	codes := make([]string, len(cards))
	for i, c := range cards {
		codes[i] = c.Code()
	}
	return codes
}

// Parse decodes a two-character wire code.
func Parse(code string) (Card, error) {
	if code == "Jo" {
		return TheJoker, nil
	}
	if len(code) != 2 {
		return Card{}, fmt.Errorf("invalid card code: %q", code)
	}
	s, ok := SuitFromCode(code[0])
	if !ok {
		return Card{}, fmt.Errorf("invalid suit in card code: %q", code)
	}
	r, ok := rankFromCode(code[1])
	if !ok {
		return Card{}, fmt.Errorf("invalid rank in card code: %q", code)
	}
	return Card{Suit: s, Rank: r}, nil
}

// MustParse is Parse for trusted literals; it panics on a bad code.
func MustParse(code string) Card {
	c, err := Parse(code)
	if err != nil {
		panic(err)
	}
	return c
}
