package protocol

import "napoleon/internal/game/card"

// TrickResultPayload reports one resolved trick to a front-end.
type TrickResultPayload struct {
	Winner      int      `json:"winner"`
	WinCard     string   `json:"win_card"`
	TwoRule     bool     `json:"two_rule"`
	Pictures    []string `json:"pictures"`
	HadFaceDown bool     `json:"had_face_down"`
}

// ScorePayload reports the running or final score.
type ScorePayload struct {
	Done           bool   `json:"done"`
	NapoleonPicts  int    `json:"napoleon_picts"`
	CoalitionPicts int    `json:"coalition_picts"`
	Target         int    `json:"target"`
	NapoleonWin    bool   `json:"napoleon_win,omitempty"`
	Reason         string `json:"reason,omitempty"`
}

// DeclarationPayload carries a finalized declaration.
type DeclarationPayload struct {
	Suit   string `json:"suit"` // s/h/d/c
	Target int    `json:"target"`
}

// NewTrickResult builds a TrickResultPayload from resolved trick data.
func NewTrickResult(winner int, winCard card.Card, twoRule bool, pictures []card.Card, hadFaceDown bool) TrickResultPayload {
	return TrickResultPayload{
		Winner:      winner,
		WinCard:     winCard.Code(),
		TwoRule:     twoRule,
		Pictures:    card.Codes(pictures),
		HadFaceDown: hadFaceDown,
	}
}
