package models

// Player is one token on the board.
type Player struct {
	Index int `json:"index"`

	// Position is the token's board progress. It starts at 0 and may exceed
	// the last space index once the token wraps past the finish.
	Position int `json:"position"`
}
