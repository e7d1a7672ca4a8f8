package game_flow

import (
	game_constants "Yatzler/constants/game"
	models "Yatzler/models/postgres"
	redis_models "Yatzler/models/redis"
	"Yatzler/services/redis"
	socketio_types "Yatzler/services/socket_io/types"
	"Yatzler/services/yahtzee"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateRoom seeds a lobby with the creator as player index 0. The join code
// is generated (collision-checked) by the GameRoom BeforeCreate hook.
func CreateRoom(db *gorm.DB, rc *redis.RedisClient, hostName string) (*redis_models.GameRoom, *redis_models.RoomPlayer, error) {
	name, err := validateName(hostName)
	if err != nil {
		return nil, nil, err
	}

	// 1. Persist the room row; this assigns the unique code
	roomRow := models.GameRoom{
		Status:     string(redis_models.StatusLobby),
		MaxPlayers: game_constants.MaxPlayers,
		ExpiresAt:  time.Now().Add(game_constants.RoomStateTTL),
	}
	if err := db.Create(&roomRow).Error; err != nil {
		log.Printf("[ROOM-CREATE-ERROR] Error creating room row: %v", err)
		return nil, nil, fmt.Errorf("error creating room: %v", err)
	}

	host := &redis_models.RoomPlayer{
		ID:          uuid.NewString(),
		Name:        name,
		PlayerIndex: 0,
		IsConnected: true,
		Scorecard:   yahtzee.Scorecard{},
	}

	// 2. Persist the host seat
	if err := db.Create(&models.Player{
		ID:          host.ID,
		RoomCode:    roomRow.Code,
		DisplayName: host.Name,
		PlayerIndex: 0,
	}).Error; err != nil {
		log.Printf("[ROOM-CREATE-ERROR] Error creating host row: %v", err)
		return nil, nil, fmt.Errorf("error creating room: %v", err)
	}

	// 3. Seed the authoritative ephemeral state
	room := &redis_models.GameRoom{
		Code:         roomRow.Code,
		HostPlayerID: host.ID,
		Status:       redis_models.StatusLobby,
		MaxPlayers:   game_constants.MaxPlayers,
		Players:      []*redis_models.RoomPlayer{host},
		CreatedAt:    time.Now(),
		ExpiresAt:    roomRow.ExpiresAt,
		Version:      1,
	}
	room.ResetTurn()
	if err := rc.SaveGameRoom(room); err != nil {
		log.Printf("[ROOM-CREATE-ERROR] Error saving room state: %v", err)
		return nil, nil, fmt.Errorf("error creating room: %v", err)
	}

	log.Printf("[ROOM-CREATE] Room %s created by %s", room.Code, host.Name)
	return room, host, nil
}

// JoinRoom adds a player to a lobby, or returns the existing identity when a
// known player id rejoins (idempotent).
func JoinRoom(db *gorm.DB, rc *redis.RedisClient, sio *socketio_types.SocketServer,
	code, name, rejoinPlayerID string) (*redis_models.GameRoom, *redis_models.RoomPlayer, error) {

	unlock := lockRoom(code)
	defer unlock()

	room, err := rc.GetGameRoom(code)
	if err != nil {
		return nil, nil, ErrRoomNotFound
	}

	// Rejoin with a known identity resumes the existing seat regardless of
	// room status
	if rejoinPlayerID != "" {
		if p := room.PlayerByID(rejoinPlayerID); p != nil {
			p.IsConnected = true
			room.Bump()
			if err := rc.SaveGameRoom(room); err != nil {
				return nil, nil, fmt.Errorf("error saving room state: %v", err)
			}
			log.Printf("[JOIN] Player %s rejoined room %s", p.Name, code)
			return room, p, nil
		}
	}

	if room.Status != redis_models.StatusLobby {
		return nil, nil, ErrGameStarted
	}
	if len(room.Players) >= room.MaxPlayers {
		return nil, nil, ErrRoomFull
	}
	cleanName, err := validateName(name)
	if err != nil {
		return nil, nil, err
	}

	player := &redis_models.RoomPlayer{
		ID:          uuid.NewString(),
		Name:        dedupName(room, cleanName),
		PlayerIndex: lowestFreeIndex(room),
		IsConnected: true,
		Scorecard:   yahtzee.Scorecard{},
	}
	room.Players = append(room.Players, player)
	room.Bump()

	if err := db.Create(&models.Player{
		ID:          player.ID,
		RoomCode:    code,
		DisplayName: player.Name,
		PlayerIndex: player.PlayerIndex,
	}).Error; err != nil {
		log.Printf("[JOIN-ERROR] Error creating player row: %v", err)
		return nil, nil, fmt.Errorf("error joining room: %v", err)
	}
	if err := rc.SaveGameRoom(room); err != nil {
		return nil, nil, fmt.Errorf("error saving room state: %v", err)
	}

	emitToRoom(sio, code, "player_joined", gin.H{
		"player_index": player.PlayerIndex,
		"name":         player.Name,
		"is_bot":       false,
		"players":      playerSummaries(room),
		"version":      room.Version,
	})
	log.Printf("[JOIN] Player %s joined room %s as index %d", player.Name, code, player.PlayerIndex)
	return room, player, nil
}

// AddBot seats a computer opponent. Host only; same capacity and lifecycle
// checks as a human join.
func AddBot(db *gorm.DB, rc *redis.RedisClient, sio *socketio_types.SocketServer,
	code, requesterID string) (*redis_models.GameRoom, *redis_models.RoomPlayer, error) {

	unlock := lockRoom(code)
	defer unlock()

	room, err := rc.GetGameRoom(code)
	if err != nil {
		return nil, nil, ErrRoomNotFound
	}
	if room.HostPlayerID != requesterID {
		return nil, nil, ErrNotHost
	}
	if room.Status != redis_models.StatusLobby {
		return nil, nil, ErrGameStarted
	}
	if len(room.Players) >= room.MaxPlayers {
		return nil, nil, ErrRoomFull
	}

	bots := 0
	for _, p := range room.Players {
		if p.IsBot {
			bots++
		}
	}
	bot := &redis_models.RoomPlayer{
		// Synthetic session id; bots never authenticate with it
		ID:          uuid.NewString(),
		Name:        dedupName(room, fmt.Sprintf("%s %d", game_constants.BotNamePrefix, bots+1)),
		PlayerIndex: lowestFreeIndex(room),
		IsBot:       true,
		IsConnected: true,
		Scorecard:   yahtzee.Scorecard{},
	}
	room.Players = append(room.Players, bot)
	room.Bump()

	if err := db.Create(&models.Player{
		ID:          bot.ID,
		RoomCode:    code,
		DisplayName: bot.Name,
		PlayerIndex: bot.PlayerIndex,
		IsBot:       true,
	}).Error; err != nil {
		log.Printf("[BOT-ADD-ERROR] Error creating bot row: %v", err)
		return nil, nil, fmt.Errorf("error adding bot: %v", err)
	}
	if err := rc.SaveGameRoom(room); err != nil {
		return nil, nil, fmt.Errorf("error saving room state: %v", err)
	}

	emitToRoom(sio, code, "player_joined", gin.H{
		"player_index": bot.PlayerIndex,
		"name":         bot.Name,
		"is_bot":       true,
		"players":      playerSummaries(room),
		"version":      room.Version,
	})
	log.Printf("[BOT-ADD] Bot %s added to room %s", bot.Name, code)
	return room, bot, nil
}

// StartGame moves the room from lobby to playing: turn order is ascending
// player index, round 1, host only, at least 2 players.
func StartGame(db *gorm.DB, rc *redis.RedisClient, sio *socketio_types.SocketServer,
	code, requesterID string) (*redis_models.GameRoom, error) {

	unlock := lockRoom(code)
	defer unlock()

	room, err := rc.GetGameRoom(code)
	if err != nil {
		return nil, ErrRoomNotFound
	}
	if room.HostPlayerID != requesterID {
		return nil, ErrNotHost
	}
	if room.Status != redis_models.StatusLobby {
		return nil, ErrGameStarted
	}
	if len(room.Players) < game_constants.MinPlayers {
		return nil, ErrNotEnoughPlayers
	}

	now := time.Now()
	room.Status = redis_models.StatusPlaying
	room.CurrentTurnIndex = 0
	room.CurrentRound = 1
	room.StartedAt = now
	room.ResetTurn()
	room.Bump()

	if err := db.Model(&models.GameRoom{}).Where("code = ?", code).
		Updates(map[string]interface{}{"status": "playing", "started_at": now}).Error; err != nil {
		log.Printf("[START-ERROR] Error updating room row: %v", err)
		return nil, fmt.Errorf("error starting game: %v", err)
	}
	if err := rc.SaveGameRoom(room); err != nil {
		return nil, fmt.Errorf("error saving room state: %v", err)
	}

	emitToRoom(sio, code, "game_started", gin.H{
		"turn_order":                turnOrder(room),
		"current_turn_player_index": room.CurrentTurnIndex,
		"current_round":             room.CurrentRound,
		"version":                   room.Version,
	})
	log.Printf("[START] Game started in room %s with %d players", code, len(room.Players))
	return room, nil
}

// QuitRoom removes a player. In the lobby the seat is freed and indexes stay
// contiguous; during a game the player leaves the rotation but their filled
// categories keep counting. A room left without active humans (or below the
// player minimum) finalizes immediately with partial scorecards.
func QuitRoom(db *gorm.DB, rc *redis.RedisClient, sio *socketio_types.SocketServer,
	code, playerID string) (string, *redis_models.GameRoom, *FinalResult, error) {

	unlock := lockRoom(code)
	defer unlock()

	room, err := rc.GetGameRoom(code)
	if err != nil {
		return "", nil, nil, ErrRoomNotFound
	}
	player := room.PlayerByID(playerID)
	if player == nil {
		return "", nil, nil, ErrPlayerNotFound
	}

	if room.Status == redis_models.StatusLobby {
		if err := removeLobbyPlayer(db, rc, sio, room, player); err != nil {
			return "", nil, nil, err
		}
		return "left", room, nil, nil
	}

	if room.Status == redis_models.StatusFinished {
		return "finished", room, computeFinalResult(room), nil
	}

	player.HasLeft = true
	player.IsConnected = false
	room.Bump()
	log.Printf("[QUIT] Player %s left room %s mid-game", player.Name, code)

	emitToRoom(sio, code, "player_left", gin.H{
		"player_index": player.PlayerIndex,
		"name":         player.Name,
		"version":      room.Version,
	})

	humans := 0
	for _, p := range room.ActivePlayers() {
		if !p.IsBot {
			humans++
		}
	}
	if humans == 0 || len(room.ActivePlayers()) < game_constants.MinPlayers {
		final, err := finishGameLocked(db, sio, room)
		if err != nil {
			return "", nil, nil, err
		}
		if err := rc.SaveGameRoom(room); err != nil {
			return "", nil, nil, fmt.Errorf("error saving room state: %v", err)
		}
		return "finished", room, final, nil
	}

	// Keep the game moving if the quitter held the turn
	if room.CurrentTurnIndex == player.PlayerIndex {
		progress, err := progressLocked(db, rc, sio, room, nil)
		if err != nil {
			return "", nil, nil, err
		}
		if progress.Finished {
			if err := rc.SaveGameRoom(room); err != nil {
				return "", nil, nil, fmt.Errorf("error saving room state: %v", err)
			}
			return "finished", room, progress.Final, nil
		}
	}

	if err := rc.SaveGameRoom(room); err != nil {
		return "", nil, nil, fmt.Errorf("error saving room state: %v", err)
	}
	return "left", room, nil, nil
}

func removeLobbyPlayer(db *gorm.DB, rc *redis.RedisClient, sio *socketio_types.SocketServer,
	room *redis_models.GameRoom, player *redis_models.RoomPlayer) error {

	kept := make([]*redis_models.RoomPlayer, 0, len(room.Players))
	for _, p := range room.Players {
		if p.ID != player.ID {
			kept = append(kept, p)
		}
	}
	// Reindex so player indexes stay contiguous from 0
	for i, p := range kept {
		p.PlayerIndex = i
	}
	room.Players = kept
	room.Bump()

	if err := db.Where("id = ?", player.ID).Delete(&models.Player{}).Error; err != nil {
		log.Printf("[QUIT-ERROR] Error deleting player row: %v", err)
	}

	if len(room.Players) == 0 {
		log.Printf("[QUIT] Room %s is empty, deleting", room.Code)
		if err := rc.DeleteGameRoom(room.Code); err != nil {
			return fmt.Errorf("error deleting room state: %v", err)
		}
		if err := db.Where("code = ?", room.Code).Delete(&models.GameRoom{}).Error; err != nil {
			log.Printf("[QUIT-ERROR] Error deleting room row: %v", err)
		}
		releaseRoomLock(room.Code)
		return nil
	}

	// Host succession: lowest remaining index inherits the room
	if room.HostPlayerID == player.ID {
		room.HostPlayerID = room.Players[0].ID
		log.Printf("[QUIT] Host left room %s, %s is the new host", room.Code, room.Players[0].Name)
	}

	for i, p := range room.Players {
		if err := db.Model(&models.Player{}).Where("id = ?", p.ID).
			Update("player_index", i).Error; err != nil {
			log.Printf("[QUIT-ERROR] Error reindexing player row: %v", err)
		}
	}
	if err := rc.SaveGameRoom(room); err != nil {
		return fmt.Errorf("error saving room state: %v", err)
	}

	emitToRoom(sio, room.Code, "player_left", gin.H{
		"player_index": player.PlayerIndex,
		"name":         player.Name,
		"players":      playerSummaries(room),
		"version":      room.Version,
	})
	return nil
}

func turnOrder(room *redis_models.GameRoom) []int {
	order := make([]int, 0, len(room.Players))
	for _, p := range room.ActivePlayers() {
		order = append(order, p.PlayerIndex)
	}
	return order
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > game_constants.MaxNameLength {
		return "", ErrInvalidName
	}
	return name, nil
}

// dedupName suffixes a counter when the display name is already taken in the
// room: "Ana", "Ana (2)", "Ana (3)", ... The base is truncated so the result
// still fits the display name column.
func dedupName(room *redis_models.GameRoom, name string) string {
	taken := make(map[string]bool, len(room.Players))
	for _, p := range room.Players {
		taken[p.Name] = true
	}
	if !taken[name] {
		return name
	}
	for n := 2; ; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		base := []rune(name)
		if len(base)+len(suffix) > game_constants.MaxNameLength {
			base = base[:game_constants.MaxNameLength-len(suffix)]
		}
		candidate := string(base) + suffix
		if !taken[candidate] {
			return candidate
		}
	}
}

func lowestFreeIndex(room *redis_models.GameRoom) int {
	used := make(map[int]bool, len(room.Players))
	for _, p := range room.Players {
		used[p.PlayerIndex] = true
	}
	for i := 0; ; i++ {
		if !used[i] {
			return i
		}
	}
}
