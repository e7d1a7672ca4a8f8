package redis

import "Yatzler/services/yahtzee"

// RoomPlayer represents one seat in a room during its lifetime.
type RoomPlayer struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	PlayerIndex int               `json:"player_index"`
	IsBot       bool              `json:"is_bot"`
	IsConnected bool              `json:"is_connected"`
	HasLeft     bool              `json:"has_left"` // quit mid-game; kept for final scoring
	Scorecard   yahtzee.Scorecard `json:"scorecard"`
}
