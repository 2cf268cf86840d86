package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"napoleon/internal/game/card"
)

func cc(code string) card.Card {
	return card.MustParse(code)
}

func hand(codes ...string) []card.Card {
	cards := make([]card.Card, len(codes))
	for i, code := range codes {
		cards[i] = cc(code)
	}
	return cards
}

func TestNewGameDealsExhaustively(t *testing.T) {
	t.Parallel()

	e := New(DefaultOptions())
	e.NewGame()

	assert.Equal(t, StageBid, e.Stage)
	assert.NotEmpty(t, e.GameID)
	require.Len(t, e.Mount, 5)

	seen := make(map[card.Card]bool)
	for _, c := range e.Mount {
		seen[c] = true
	}
	for _, p := range e.Players {
		require.Len(t, p.Hand, 12)
		assert.Equal(t, RoleUnknown, p.Role)
		assert.False(t, p.Revealed)
		for _, c := range p.Hand {
			assert.False(t, seen[c], "card %v dealt twice", c)
			seen[c] = true
		}
	}
	assert.Len(t, seen, 53)
}

func TestDeclare(t *testing.T) {
	t.Parallel()

	e := New(DefaultOptions())
	e.NewGame()

	err := e.Declare(card.Joker, 13)
	assert.ErrorContains(t, err, "Invalid obverse suit")

	err = e.Declare(card.Heart, 0)
	assert.ErrorContains(t, err, "Target must be 1..20")
	err = e.Declare(card.Heart, 21)
	assert.ErrorContains(t, err, "Target must be 1..20")
	assert.Equal(t, StageBid, e.Stage, "failed declare must not advance the stage")

	require.NoError(t, e.Declare(card.Heart, 15))
	assert.Equal(t, card.Heart, e.Trump)
	assert.Equal(t, 15, e.Target)
	assert.Equal(t, "Heart 15", e.Declaration)
	assert.Equal(t, StageLieut, e.Stage)

	// Declaring twice is a stage violation.
	err = e.Declare(card.Spade, 14)
	assert.ErrorContains(t, err, "Not in bid stage")

	// Before any trick the score is a partial snapshot without a verdict.
	report := e.Score()
	assert.False(t, report.Done)
	assert.Equal(t, 15, report.Target)
	assert.Zero(t, report.TotalPicts)
}

func TestDeclareCustomTargetBounds(t *testing.T) {
	t.Parallel()

	e := New(Options{TargetMin: 13, TargetMax: 16, TwoRuleMinTurn: 1})
	e.NewGame()

	err := e.Declare(card.Spade, 12)
	assert.ErrorContains(t, err, "Target must be 13..16")
	assert.NoError(t, e.Declare(card.Spade, 16))
}

func TestSetNapoleon(t *testing.T) {
	t.Parallel()

	e := New(DefaultOptions())
	e.NewGame()

	require.NoError(t, e.SetNapoleon(3))
	assert.Equal(t, Seat(3), e.NapoleonSeat)
	assert.Equal(t, Seat(3), e.Leader)

	require.NoError(t, e.Declare(card.Club, 13))
	assert.ErrorContains(t, e.SetNapoleon(2), "Not in bid stage")
}

func TestSetLieutenant(t *testing.T) {
	t.Parallel()

	e := New(DefaultOptions())
	e.Stage = StageLieut
	e.NapoleonSeat = 1
	e.Players[0].Hand = hand("sA", "h3", "d4", "c5")
	e.Players[1].Hand = hand("hA", "dA", "cA", "s3")
	e.Mount = hand("hK", "dK", "cK", "sK", "hQ")

	// A card in the napoleon's own hand is rejected.
	err := e.SetLieutenant(cc("sA"))
	assert.ErrorContains(t, err, "outside Napoleon")
	assert.Equal(t, StageLieut, e.Stage)

	// A card held by another player resolves to that seat.
	require.NoError(t, e.SetLieutenant(cc("hA")))
	assert.Equal(t, Seat(2), e.LieutSeat)
	assert.False(t, e.LieutInMount)
	assert.Equal(t, StageExchange, e.Stage)

	// In the mount: the napoleon plays alone.
	e.Stage = StageLieut
	require.NoError(t, e.SetLieutenant(cc("hK")))
	assert.True(t, e.LieutInMount)
	assert.Equal(t, Seat(0), e.LieutSeat)

	e.Stage = StagePlay
	assert.ErrorContains(t, e.SetLieutenant(cc("hK")), "Not in lieut stage")
}

func TestSwapAndFinishExchange(t *testing.T) {
	t.Parallel()

	e := New(DefaultOptions())
	e.NapoleonSeat = 1
	e.Players[0].Hand = hand("s2", "h3", "d4", "c5")
	e.Mount = hand("hK", "dK", "cK", "sK", "hQ")

	// Outside the exchange stage every swap fails.
	e.Stage = StageLieut
	err := e.Swap(cc("s2"), cc("hK"))
	assert.ErrorContains(t, err, "Not in exchange stage")

	e.Stage = StageExchange
	err = e.Swap(cc("sA"), cc("hK"))
	assert.ErrorContains(t, err, "not in Napoleon hand")
	err = e.Swap(cc("s2"), cc("hA"))
	assert.ErrorContains(t, err, "not in Mount")

	require.NoError(t, e.Swap(cc("s2"), cc("hK")))
	assert.True(t, card.Contains(e.Players[0].Hand, cc("hK")))
	assert.True(t, card.Contains(e.Mount, cc("s2")))
	require.Len(t, e.Players[0].Hand, 4)
	require.Len(t, e.Mount, 5)

	// Swaps are repeatable.
	require.NoError(t, e.Swap(cc("h3"), cc("dK")))
	assert.True(t, card.Contains(e.Players[0].Hand, cc("dK")))

	e.Trump = card.Spade
	require.NoError(t, e.FinishExchange())
	assert.Equal(t, StagePlay, e.Stage)
	assert.Equal(t, 1, e.TurnNo)
	assert.Equal(t, e.NapoleonSeat, e.Leader)
	assert.True(t, e.Trick.Empty())
	assert.Equal(t, card.Spade, e.Trick.Trump)

	assert.ErrorContains(t, e.FinishExchange(), "Not in exchange stage")
}
