package handlers

import (
	"Yatzler/services/game_flow"
	"Yatzler/services/redis"
	socketio_types "Yatzler/services/socket_io/types"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"
)

// HandleDisconnecting drops the connection from the registry and lets the
// game layer decide whether a grace timer is needed.
func HandleDisconnecting(roomCode, playerID string, sio *socketio_types.SocketServer,
	db *gorm.DB, redisClient *redis.RedisClient) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Printf("[DISCONNECT] Player %s disconnecting from room %s", playerID, roomCode)
		sio.RemoveConnection(playerID)
		game_flow.HandlePlayerDisconnect(db, redisClient, sio, roomCode, playerID)
	}
}

// HandleGetRoomState answers an explicit resync request with the full
// authoritative snapshot, the same shape the HTTP poll returns.
func HandleGetRoomState(roomCode, playerID string, client *socket.Socket,
	redisClient *redis.RedisClient) func(args ...interface{}) {
	return func(args ...interface{}) {
		state, err := game_flow.GetRoomState(redisClient, roomCode)
		if err != nil {
			client.Emit("error", gin.H{"error": "Room not found"})
			return
		}
		client.Emit("room_state", state)
	}
}
