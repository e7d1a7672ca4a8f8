package game_flow

import (
	game_constants "Yatzler/constants/game"
	redis_models "Yatzler/models/redis"
	"Yatzler/services/redis"
	socketio_types "Yatzler/services/socket_io/types"
	"Yatzler/services/yahtzee"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HandlePlayerDisconnect marks the player offline and, if they held the
// turn, arms the grace timer. The deadline lives in the shared room state so
// a later reconnect (possibly served by another instance) can disarm it.
func HandlePlayerDisconnect(db *gorm.DB, rc *redis.RedisClient, sio *socketio_types.SocketServer,
	roomCode string, playerID string) {

	unlock := lockRoom(roomCode)
	defer unlock()

	room, err := rc.GetGameRoom(roomCode)
	if err != nil {
		return
	}
	player := room.PlayerByID(playerID)
	if player == nil || player.HasLeft {
		return
	}

	deadline, armed := disconnectLocked(room, player)
	log.Printf("[DISCONNECT] Player %s disconnected from room %s", player.Name, roomCode)
	if armed {
		go watchTurnTimeout(db, rc, sio, roomCode, playerID, deadline)
	}

	if err := rc.SaveGameRoom(room); err != nil {
		log.Printf("[DISCONNECT-ERROR] Could not save room %s: %v", roomCode, err)
	}
}

// disconnectLocked marks the player offline and, when they hold the turn in a
// live game, records the skip deadline in the room state. Returns the
// deadline and whether a watcher should be spawned for it.
func disconnectLocked(room *redis_models.GameRoom, player *redis_models.RoomPlayer) (time.Time, bool) {
	player.IsConnected = false
	room.Bump()

	if room.Status != redis_models.StatusPlaying || room.CurrentTurnIndex != player.PlayerIndex {
		return time.Time{}, false
	}
	deadline := time.Now().Add(game_constants.TurnGracePeriod)
	room.TurnTimeout = deadline
	return deadline, true
}

// HandlePlayerReconnect marks the player online again and disarms any
// pending skip by zeroing the stored deadline.
func HandlePlayerReconnect(rc *redis.RedisClient, roomCode string, playerID string) {
	unlock := lockRoom(roomCode)
	defer unlock()

	room, err := rc.GetGameRoom(roomCode)
	if err != nil {
		return
	}
	player := room.PlayerByID(playerID)
	if player == nil || player.HasLeft {
		return
	}

	reconnectLocked(room, player)
	log.Printf("[RECONNECT] Player %s reconnected to room %s", player.Name, roomCode)

	if err := rc.SaveGameRoom(room); err != nil {
		log.Printf("[RECONNECT-ERROR] Could not save room %s: %v", roomCode, err)
	}
}

// reconnectLocked marks the player online again and disarms the pending skip
// by zeroing the stored deadline, but only when the timer is theirs.
func reconnectLocked(room *redis_models.GameRoom, player *redis_models.RoomPlayer) {
	player.IsConnected = true
	if room.CurrentTurnIndex == player.PlayerIndex {
		room.TurnTimeout = time.Time{}
	}
	room.Bump()
}

// watchTurnTimeout sleeps until the grace deadline and then re-validates the
// room before skipping. Each check guards against a state change while we
// slept: the player came back, already moved on, the game ended, or a fresh
// timer replaced this one.
func watchTurnTimeout(db *gorm.DB, rc *redis.RedisClient, sio *socketio_types.SocketServer,
	roomCode string, playerID string, deadline time.Time) {

	time.Sleep(time.Until(deadline))

	unlock := lockRoom(roomCode)
	defer unlock()

	room, err := rc.GetGameRoom(roomCode)
	if err != nil {
		return
	}
	if !turnTimeoutDue(room, playerID, deadline) {
		return
	}
	player := room.CurrentPlayer()

	log.Printf("[TIMEOUT] Player %s did not return in time, skipping turn in room %s",
		player.Name, roomCode)
	if _, err := skipLocked(db, rc, sio, room, player, "timeout"); err != nil {
		log.Printf("[TIMEOUT-ERROR] Could not skip turn in room %s: %v", roomCode, err)
		return
	}
	if err := rc.SaveGameRoom(room); err != nil {
		log.Printf("[TIMEOUT-ERROR] Could not save room %s: %v", roomCode, err)
	}
}

// turnTimeoutDue reports whether an armed deadline is still live: the game is
// running, no fresh timer replaced this one, and the same player still holds
// the turn while offline.
func turnTimeoutDue(room *redis_models.GameRoom, playerID string, deadline time.Time) bool {
	if room.Status != redis_models.StatusPlaying {
		return false
	}
	if !room.TurnTimeout.Equal(deadline) {
		return false
	}
	player := room.CurrentPlayer()
	if player == nil || player.ID != playerID || player.IsConnected || player.HasLeft {
		return false
	}
	return true
}

// SkipOutcome reports a forced turn skip, host initiated or timed out.
type SkipOutcome struct {
	PlayerIndex     int              `json:"player_index"`
	Category        yahtzee.Category `json:"category"`
	Score           int              `json:"score"`
	NextPlayerIndex int              `json:"next_player_index"`
	Round           int              `json:"round"`
	GameFinished    bool             `json:"game_finished"`
	BotTurns        []BotTurn        `json:"bot_turns"`
	Final           *FinalResult     `json:"final,omitempty"`
	Version         int64            `json:"version"`
}

// SkipTurn lets the host force past a stalled player's turn without waiting
// out the grace period.
func SkipTurn(db *gorm.DB, rc *redis.RedisClient, sio *socketio_types.SocketServer,
	code string, requesterID string) (*SkipOutcome, error) {

	unlock := lockRoom(code)
	defer unlock()

	room, err := rc.GetGameRoom(code)
	if err != nil {
		return nil, ErrRoomNotFound
	}
	if room.HostPlayerID != requesterID {
		return nil, ErrNotHost
	}
	if room.Status != redis_models.StatusPlaying {
		return nil, ErrGameNotInProgress
	}
	player := room.CurrentPlayer()
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	outcome, err := skipLocked(db, rc, sio, room, player, "host")
	if err != nil {
		return nil, err
	}
	if err := rc.SaveGameRoom(room); err != nil {
		return nil, fmt.Errorf("error saving room state: %v", err)
	}
	return outcome, nil
}

// skipLocked resolves the stalled turn on the player's behalf. A turn with
// no roll yet scratches the cheapest open category for 0; a turn with dice
// on the table banks the heuristic's pick so partial luck is not thrown
// away.
func skipLocked(db *gorm.DB, rc *redis.RedisClient, sio *socketio_types.SocketServer,
	room *redis_models.GameRoom, player *redis_models.RoomPlayer, reason string) (*SkipOutcome, error) {

	var category yahtzee.Category
	var score int
	if room.RollCount == 0 {
		category = cheapestOpenCategory(player.Scorecard)
		score = 0
	} else {
		category, score = yahtzee.BestCategory(room.Dice, player.Scorecard)
	}
	player.Scorecard[category] = score
	room.Bump()

	emitToRoom(sio, room.Code, "turn_skipped", gin.H{
		"player_index": player.PlayerIndex,
		"category":     category,
		"score":        score,
		"reason":       reason,
		"version":      room.Version,
	})
	log.Printf("[SKIP] Player %s skipped (%s), %s scored %d in room %s",
		player.Name, reason, category, score, room.Code)

	progress, err := progressLocked(db, rc, sio, room, &scoreEvent{
		PlayerIndex: player.PlayerIndex,
		Category:    category,
		Score:       score,
	})
	if err != nil {
		return nil, err
	}

	return &SkipOutcome{
		PlayerIndex:     player.PlayerIndex,
		Category:        category,
		Score:           score,
		NextPlayerIndex: progress.NextPlayerIndex,
		Round:           progress.Round,
		GameFinished:    progress.Finished,
		BotTurns:        progress.BotTurns,
		Final:           progress.Final,
		Version:         room.Version,
	}, nil
}

// cheapestOpenCategory picks the open category with the lowest ceiling, so a
// forfeited turn burns the least potential.
func cheapestOpenCategory(card yahtzee.Scorecard) yahtzee.Category {
	best := yahtzee.Category("")
	bestMax := 0
	for _, c := range yahtzee.Categories {
		if card.Filled(c) {
			continue
		}
		max := yahtzee.CategoryMax[c]
		if best == "" || max < bestMax {
			best = c
			bestMax = max
		}
	}
	return best
}
