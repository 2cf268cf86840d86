package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"napoleon/internal/game/card"
)

func TestResolveTwoRule(t *testing.T) {
	t.Parallel()

	// Four same-suit cards, no specials, nothing face-down: the two wins.
	tr := trick("h", "s8", "s2", "sK", "s9")
	winner, winCard, twoRule := Resolve(tr, true)
	assert.True(t, twoRule)
	assert.Equal(t, 1, winner)
	assert.Equal(t, card.MustParse("s2"), winCard)

	// The Mighty anywhere in the trick disables the rule and wins.
	tr = trick("h", "s8", "s2", "sA", "s9")
	winner, winCard, twoRule = Resolve(tr, true)
	assert.False(t, twoRule)
	assert.Equal(t, Mighty, winCard)
	assert.Equal(t, 2, winner)

	// A Joker lead disables the rule.
	tr = trick("h", "Jo", "s2", "sK", "s9")
	_, _, twoRule = Resolve(tr, true)
	assert.False(t, twoRule)

	// Mighty plus Yoromeki together still count as a forbidden special.
	tr = trick("h", "s8", "s2", "sA", "hQ")
	_, _, twoRule = Resolve(tr, true)
	assert.False(t, twoRule)

	// A face-down card disables the rule.
	tr = trick("h", "s8", "s2", "sK", "d9")
	tr.Plays[3].FaceDown = true
	_, winCard, twoRule = Resolve(tr, true)
	assert.False(t, twoRule)
	assert.Equal(t, card.MustParse("sK"), winCard)

	// The turn gate suppresses the rule even when every condition holds.
	tr = trick("h", "s8", "s2", "sK", "s9")
	_, winCard, twoRule = Resolve(tr, false)
	assert.False(t, twoRule)
	assert.Equal(t, card.MustParse("sK"), winCard)
}

func TestResolveJokerDominance(t *testing.T) {
	t.Parallel()

	// Joker led, all non-Joker cards share a suit, no special: Joker wins.
	tr := trick("s", "Jo", "s2", "sK", "s9")
	winner, winCard, _ := Resolve(tr, true)
	assert.Equal(t, card.TheJoker, winCard)
	assert.Equal(t, 0, winner)

	// The Mighty anywhere defeats the led Joker.
	tr = trick("s", "Jo", "sA", "sK", "s9")
	winner, winCard, _ = Resolve(tr, true)
	assert.Equal(t, Mighty, winCard)
	assert.Equal(t, 1, winner)

	// The trump Jack is also a forbidden special for the Joker.
	tr = trick("s", "Jo", "s2", "sJ", "s9")
	_, winCard, _ = Resolve(tr, true)
	assert.Equal(t, card.MustParse("sJ"), winCard)

	// Mixed suits: the Joker is weaker than any numeric card.
	tr = trick("s", "Jo", "s2", "h3", "s4")
	_, winCard, _ = Resolve(tr, true)
	assert.NotEqual(t, card.TheJoker, winCard)
	assert.Equal(t, card.MustParse("s4"), winCard)
}

func TestResolveSpecialTiers(t *testing.T) {
	t.Parallel()

	// Yoromeki outranks the Mighty only when both are in the trick.
	tr := trick("d", "s8", "sA", "hQ", "s9")
	_, winCard, _ := Resolve(tr, true)
	assert.Equal(t, Yoromeki, winCard)

	// Alone, the Yoromeki is an ordinary queen.
	tr = trick("d", "h3", "hQ", "h9", "h5")
	winner, winCard, _ := Resolve(tr, true)
	assert.Equal(t, Yoromeki, winCard)
	assert.Equal(t, 1, winner)
	tr = trick("d", "h3", "hQ", "hK", "h5")
	_, winCard, _ = Resolve(tr, true)
	assert.Equal(t, card.MustParse("hK"), winCard)

	// Trump Jack beats the reverse Jack beats plain cards.
	tr = trick("h", "c5", "hJ", "dJ", "cA")
	_, winCard, _ = Resolve(tr, true)
	assert.Equal(t, card.MustParse("hJ"), winCard)
	tr = trick("h", "c5", "c9", "dJ", "cA")
	_, winCard, _ = Resolve(tr, true)
	assert.Equal(t, card.MustParse("dJ"), winCard)
}

func TestResolveFaceDownTrump(t *testing.T) {
	t.Parallel()

	// A face-down trump competes as trump and beats the led suit.
	tr := trick("h", "s9", "h5", "s0", "s3")
	tr.Plays[1].FaceDown = true
	winner, winCard, _ := Resolve(tr, true)
	assert.Equal(t, card.MustParse("h5"), winCard)
	assert.Equal(t, 1, winner)

	// Highest face-down trump wins among several.
	tr = trick("h", "s9", "h5", "h8", "s3")
	tr.Plays[1].FaceDown = true
	tr.Plays[2].FaceDown = true
	_, winCard, _ = Resolve(tr, true)
	assert.Equal(t, card.MustParse("h8"), winCard)

	// After a Joker lead the exception is off: the face-down heart scores
	// as an ordinary lead-suit card and loses to the higher heart.
	tr = trick("h", "Jo", "h5", "hK", "s3")
	tr.Plays[1].FaceDown = true
	_, winCard, _ = Resolve(tr, true)
	assert.Equal(t, card.MustParse("hK"), winCard)
}

func TestResolveOffSuitNeverWins(t *testing.T) {
	t.Parallel()

	// An off-suit ace loses to the lowest card of the lead suit. The trick
	// is not single-suited, so the two rule stays off.
	tr := trick("h", "s3", "dA", "cK", "s4")
	_, winCard, twoRule := Resolve(tr, true)
	assert.False(t, twoRule)
	assert.Equal(t, card.MustParse("s4"), winCard)
}

func TestEstimate(t *testing.T) {
	t.Parallel()

	empty := trick("h")
	assert.Equal(t, 4500, Estimate(empty, Mighty))
	assert.Equal(t, 4300, Estimate(empty, card.MustParse("hJ")))
	assert.Equal(t, 4200, Estimate(empty, card.MustParse("dJ")))
	assert.Equal(t, 12, Estimate(empty, Yoromeki))
	assert.Equal(t, 1, Estimate(empty, card.TheJoker))
	assert.Equal(t, 14, Estimate(empty, card.MustParse("cA")))

	// Inside a combo trick the tiers flip.
	combo := trick("h", "sA", "hQ")
	assert.Equal(t, 4350, Estimate(combo, Mighty))
	assert.Equal(t, 4400, Estimate(combo, Yoromeki))
}

func TestTrickPictures(t *testing.T) {
	t.Parallel()

	tr := trick("h", "s0", "s2", "sK", "Jo")
	assert.Equal(t, hand("s0", "sK"), tr.Pictures())
}
