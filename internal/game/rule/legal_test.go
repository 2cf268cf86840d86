package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"napoleon/internal/game/card"
)

func hand(codes ...string) []card.Card {
	cards := make([]card.Card, len(codes))
	for i, code := range codes {
		cards[i] = card.MustParse(code)
	}
	return cards
}

func trick(trump string, plays ...string) Trick {
	t := Trick{Trump: card.MustParse(trump + "2").Suit}
	for i, code := range plays {
		t.Plays = append(t.Plays, Play{Seat: i + 1, Card: card.MustParse(code)})
	}
	return t
}

func TestLegalMovesFirstTrickBansTrump(t *testing.T) {
	t.Parallel()

	// Trump is diamond: no diamond may be played on turn 1.
	empty := trick("d")
	legal := LegalMoves(hand("dA", "d3", "s5", "h9", "Jo"), empty, 1, false)
	assert.ElementsMatch(t, hand("s5", "h9", "Jo"), legal)

	// The napoleon additionally may not lead the Joker on turn 1.
	legal = LegalMoves(hand("dA", "s5", "Jo"), empty, 1, true)
	assert.ElementsMatch(t, hand("s5"), legal)

	// Other players may lead the Joker on turn 1.
	legal = LegalMoves(hand("dA", "s5", "Jo"), empty, 1, false)
	assert.ElementsMatch(t, hand("s5", "Jo"), legal)

	// From turn 2 on trump may be led.
	legal = LegalMoves(hand("dA", "s5", "Jo"), trick("d"), 2, true)
	assert.ElementsMatch(t, hand("dA", "s5", "Jo"), legal)
}

func TestLegalMovesFollowing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		hand  []card.Card
		trick Trick
		want  []card.Card
	}{
		{
			name:  "must follow lead suit",
			hand:  hand("h5", "h9", "c2", "d7"),
			trick: trick("s", "h8"),
			want:  hand("h5", "h9"),
		},
		{
			name:  "joker accompanies suited group",
			hand:  hand("h5", "h9", "c2", "Jo"),
			trick: trick("s", "h8"),
			want:  hand("h5", "h9", "Jo"),
		},
		{
			name:  "no suited card means free discard",
			hand:  hand("c2", "d7", "Jo"),
			trick: trick("s", "h8"),
			want:  hand("c2", "d7", "Jo"),
		},
		{
			name:  "mighty optional beside other spades",
			hand:  hand("sA", "s9", "h3"),
			trick: trick("h", "s8"),
			want:  hand("s9", "sA"),
		},
		{
			name:  "mighty as only spade waives follow",
			hand:  hand("sA", "h3", "d4"),
			trick: trick("h", "s8"),
			want:  hand("sA", "h3", "d4"),
		},
		{
			name:  "joker joins spade group with mighty",
			hand:  hand("sA", "s9", "Jo", "h3"),
			trick: trick("h", "s8"),
			want:  hand("s9", "Jo", "sA"),
		},
		{
			name:  "joker effective lead suit is trump",
			hand:  hand("h5", "c2", "Jo"),
			trick: trick("h", "Jo"),
			want:  hand("h5", "Jo"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			legal := LegalMoves(tt.hand, tt.trick, 5, false)
			assert.ElementsMatch(t, tt.want, legal)
		})
	}
}

func TestPlaysFaceDown(t *testing.T) {
	t.Parallel()

	// Leading is always face-up.
	assert.False(t, PlaysFaceDown(hand("c2"), trick("s")))

	// Holding no card of the lead suit hides the discard.
	assert.True(t, PlaysFaceDown(hand("c2", "d7"), trick("s", "h8")))

	// Any lead-suit card in hand keeps the play face-up.
	assert.False(t, PlaysFaceDown(hand("h2", "c2"), trick("s", "h8")))

	// The Joker does not count as a lead-suit holding.
	assert.True(t, PlaysFaceDown(hand("Jo", "c2"), trick("s", "h8")))
}
