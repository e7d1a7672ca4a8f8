package redis

import (
	"time"

	"Yatzler/services/yahtzee"
)

type RoomStatus string

const (
	StatusLobby    RoomStatus = "lobby"
	StatusPlaying  RoomStatus = "playing"
	StatusFinished RoomStatus = "finished"
)

// GameRoom is the authoritative ephemeral state of one room, stored as a
// single Redis key so that every mutation inside the per-room critical
// section is saved atomically.
type GameRoom struct {
	Code         string        `json:"code"`
	HostPlayerID string        `json:"host_player_id"`
	Status       RoomStatus    `json:"status"`
	MaxPlayers   int           `json:"max_players"`
	Players      []*RoomPlayer `json:"players"`

	// Turn state; meaningful only while Status == playing
	CurrentTurnIndex int    `json:"current_turn_index"`
	CurrentRound     int    `json:"current_round"`
	Dice             []int  `json:"dice"`
	Held             []bool `json:"held"`
	RollCount        int    `json:"roll_count"`

	// Version increases on every accepted command; clients reconcile
	// against it and discard stale broadcasts.
	Version int64 `json:"version"`

	// TurnTimeout is the deadline of a pending auto-skip. Zero means no
	// skip is pending; cancellation works by zeroing the field.
	TurnTimeout time.Time `json:"turn_timeout"`

	CreatedAt  time.Time `json:"created_at"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func (r *GameRoom) Bump() {
	r.Version++
}

func (r *GameRoom) PlayerByID(id string) *RoomPlayer {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *GameRoom) PlayerByIndex(idx int) *RoomPlayer {
	for _, p := range r.Players {
		if p.PlayerIndex == idx {
			return p
		}
	}
	return nil
}

func (r *GameRoom) CurrentPlayer() *RoomPlayer {
	return r.PlayerByIndex(r.CurrentTurnIndex)
}

// ActivePlayers returns the players still in the turn rotation.
func (r *GameRoom) ActivePlayers() []*RoomPlayer {
	out := make([]*RoomPlayer, 0, len(r.Players))
	for _, p := range r.Players {
		if !p.HasLeft {
			out = append(out, p)
		}
	}
	return out
}

// ResetTurn clears dice, held flags and roll count for the next player.
func (r *GameRoom) ResetTurn() {
	r.Dice = make([]int, yahtzee.NumDice)
	r.Held = make([]bool, yahtzee.NumDice)
	r.RollCount = 0
}
