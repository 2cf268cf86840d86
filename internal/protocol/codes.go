// Package protocol defines the interchange surface between the rules engine
// and front-ends: stable error codes and JSON payloads carrying cards as
// their two-character wire codes.
package protocol

// 错误码
const (
	ErrCodeUnknown            = 1000
	ErrCodeWrongStage         = 3001
	ErrCodeOwnership          = 3002
	ErrCodeIllegalMove        = 3003
	ErrCodeInvalidDeclaration = 3004
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:            "unknown error",
	ErrCodeWrongStage:         "operation not valid in the current stage",
	ErrCodeOwnership:          "referenced card is not where it should be",
	ErrCodeIllegalMove:        "card is not a legal move",
	ErrCodeInvalidDeclaration: "invalid declaration parameters",
}
