package apperrors

import (
	"fmt"

	"napoleon/internal/protocol"
)

// GameError 游戏错误
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrNotBidStage      = &GameError{Code: protocol.ErrCodeWrongStage, Message: "Not in bid stage."}
	ErrNotLieutStage    = &GameError{Code: protocol.ErrCodeWrongStage, Message: "Not in lieut stage."}
	ErrNotExchangeStage = &GameError{Code: protocol.ErrCodeWrongStage, Message: "Not in exchange stage."}
	ErrNotPlayStage     = &GameError{Code: protocol.ErrCodeWrongStage, Message: "Not in play stage."}

	ErrInvalidSuit = &GameError{Code: protocol.ErrCodeInvalidDeclaration, Message: "Invalid obverse suit."}

	ErrLieutInsideHand  = &GameError{Code: protocol.ErrCodeOwnership, Message: "Lieut card must be outside Napoleon's hand."}
	ErrHandCardMissing  = &GameError{Code: protocol.ErrCodeOwnership, Message: "Selected hand card not in Napoleon hand."}
	ErrMountCardMissing = &GameError{Code: protocol.ErrCodeOwnership, Message: "Selected mount card not in Mount."}
	ErrCardNotInHand    = &GameError{Code: protocol.ErrCodeOwnership, Message: "Card not in hand."}

	ErrIllegalMove        = &GameError{Code: protocol.ErrCodeIllegalMove, Message: "Illegal move."}
	ErrObverseOnFirstTurn = &GameError{Code: protocol.ErrCodeIllegalMove, Message: "Turn 1: Obverse suit cards cannot be played."}
	ErrJokerLeadFirstTurn = &GameError{Code: protocol.ErrCodeIllegalMove, Message: "Turn 1: Napoleon cannot lead Joker."}
)

// ErrTargetRange builds the range error for the configured target bounds.
func ErrTargetRange(min, max int) *GameError {
	return &GameError{
		Code:    protocol.ErrCodeInvalidDeclaration,
		Message: fmt.Sprintf("Target must be %d..%d.", min, max),
	}
}
