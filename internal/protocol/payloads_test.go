package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"napoleon/internal/game/card"
)

func TestNewTrickResult(t *testing.T) {
	t.Parallel()

	p := NewTrickResult(2,
		card.MustParse("s2"),
		true,
		[]card.Card{card.MustParse("sK"), card.MustParse("s0")},
		false,
	)

	assert.Equal(t, 2, p.Winner)
	assert.Equal(t, "s2", p.WinCard)
	assert.True(t, p.TwoRule)
	assert.Equal(t, []string{"sK", "s0"}, p.Pictures)
	assert.False(t, p.HadFaceDown)
}

func TestErrorMessagesCoverAllCodes(t *testing.T) {
	t.Parallel()

	for _, code := range []int{ErrCodeUnknown, ErrCodeWrongStage, ErrCodeOwnership, ErrCodeIllegalMove, ErrCodeInvalidDeclaration} {
		assert.NotEmpty(t, ErrorMessages[code], "code %d", code)
	}
}
