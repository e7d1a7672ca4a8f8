package game_flow

import (
	redis_models "Yatzler/models/redis"
	"Yatzler/services/redis"
	socketio_types "Yatzler/services/socket_io/types"
	"Yatzler/services/yahtzee"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// emitToRoom broadcasts an advisory event to every client in the room.
// Broadcasts are not the authority: clients reconcile against the room
// version, so duplicate or late deliveries are safe. Nil sio happens in
// unit tests only.
func emitToRoom(sio *socketio_types.SocketServer, roomCode string, event string, payload gin.H) {
	if sio == nil || sio.Sio_server == nil {
		return
	}
	sio.Sio_server.To(socket.Room(roomCode)).Emit(event, payload)
}

func playerSummaries(room *redis_models.GameRoom) []gin.H {
	players := make([]gin.H, 0, len(room.Players))
	for _, p := range room.Players {
		players = append(players, gin.H{
			"player_index": p.PlayerIndex,
			"name":         p.Name,
			"is_bot":       p.IsBot,
			"is_connected": p.IsConnected,
			"has_left":     p.HasLeft,
		})
	}
	return players
}

// GetRoomState loads the room under its lock and returns the poll snapshot.
func GetRoomState(rc *redis.RedisClient, code string) (gin.H, error) {
	unlock := lockRoom(code)
	defer unlock()

	room, err := rc.GetGameRoom(code)
	if err != nil {
		return nil, ErrRoomNotFound
	}
	return RoomStateResponse(room), nil
}

// RoomStateResponse is the full-state snapshot served to polling clients as
// the reconciliation fallback next to the event stream.
func RoomStateResponse(room *redis_models.GameRoom) gin.H {
	scorecards := make([]gin.H, 0, len(room.Players))
	for _, p := range room.Players {
		scorecards = append(scorecards, gin.H{
			"player_index": p.PlayerIndex,
			"scorecard":    p.Scorecard,
			"totals":       yahtzee.ComputeTotals(p.Scorecard),
		})
	}
	return gin.H{
		"code":                      room.Code,
		"status":                    room.Status,
		"version":                   room.Version,
		"players":                   playerSummaries(room),
		"current_turn_player_index": room.CurrentTurnIndex,
		"current_round":             room.CurrentRound,
		"game_state": gin.H{
			"dice":       room.Dice,
			"held":       room.Held,
			"roll_count": room.RollCount,
			"scorecards": scorecards,
		},
	}
}
