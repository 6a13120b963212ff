package models

import "github.com/google/uuid"

// GameResult records the outcome of a single finished game. It is written
// once by the simulator and never mutated afterwards.
type GameResult struct {
	GameID uuid.UUID `json:"game_id"`
	Winner int       `json:"winner"` // player index in [0, numPlayers)
	Turns  int       `json:"turns"`  // 1-based; the winning turn counts
}

// SimulationStats summarizes a full batch of games.
type SimulationStats struct {
	// WinsPerPlayer maps player index to win count. Players who never won
	// are absent; their count is implicitly zero.
	WinsPerPlayer map[int]int `json:"wins_per_player"`

	AvgTurns float64 `json:"avg_turns"`
	MinTurns int     `json:"min_turns"`
	MaxTurns int     `json:"max_turns"`
}
