package socketio_utils

import (
	"Yatzler/middleware"
	"Yatzler/utils"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"
)

// VerifyPlayerConnection authenticates a socket.io client from its handshake
// auth data. The token is the one minted when the player created or joined
// the room, so a valid token pins the connection to a room seat. The seat is
// re-checked against the database in case the room was swept meanwhile.
func VerifyPlayerConnection(client *socket.Socket, db *gorm.DB) (success bool, roomCode, playerID string) {
	authData, ok := client.Handshake().Auth.(map[string]interface{})
	if !ok {
		fmt.Println("No auth data provided in handshake!")
		client.Emit("error", gin.H{"error": "Authentication failed: missing auth data"})
		return false, "", ""
	}

	token, exists := authData["authorization"].(string)
	if !exists {
		fmt.Println("No authorization token provided in handshake!")
		client.Emit("error", gin.H{"error": "Authentication failed: missing authorization token"})
		return false, "", ""
	}

	claims, err := middleware.ParseSessionToken(strings.TrimPrefix(token, "Bearer "))
	if err != nil {
		fmt.Println("Error decoding session token:", err)
		client.Emit("error", gin.H{"error": "Authentication failed: invalid session token"})
		return false, "", ""
	}

	inRoom, err := utils.IsPlayerInRoom(db, claims.RoomCode, claims.PlayerID)
	if err != nil {
		fmt.Println("Database error checking seat:", err)
		client.Emit("error", gin.H{"error": "Database error"})
		return false, "", ""
	}
	if !inRoom {
		client.Emit("error", gin.H{"error": "Authentication failed: seat no longer exists"})
		return false, "", ""
	}

	return true, claims.RoomCode, claims.PlayerID
}
