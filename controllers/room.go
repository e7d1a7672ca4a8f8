package controllers

import (
	"Yatzler/middleware"
	"Yatzler/services/game_flow"
	"Yatzler/services/redis"
	socketio_types "Yatzler/services/socket_io/types"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type createRoomRequest struct {
	Name string `json:"name" binding:"required"`
}

type joinRoomRequest struct {
	Name     string `json:"name"`
	PlayerID string `json:"player_id"`
}

// @Summary Creates a new room
// @Description Creates a room with the caller as host and returns the join code and a session token
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body controllers.createRoomRequest true "host display name"
// @Success 200 {object} object{code=string,player_id=string,player_index=integer,token=string,version=integer}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /rooms [post]
func CreateRoom(db *gorm.DB, redisClient *redis.RedisClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, game_flow.ErrInvalidName)
			return
		}

		room, host, err := game_flow.CreateRoom(db, redisClient, req.Name)
		if err != nil {
			respondError(c, err)
			return
		}

		token, err := middleware.MintSessionToken(room.Code, host.ID)
		if err != nil {
			log.Printf("[TOKEN-ERROR] Could not mint session token: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "INTERNAL", "message": "could not create session"})
			return
		}
		middleware.StoreSessionToken(c, token)

		c.JSON(http.StatusOK, gin.H{
			"code":         room.Code,
			"player_id":    host.ID,
			"player_index": host.PlayerIndex,
			"token":        token,
			"version":      room.Version,
		})
	}
}

// @Summary Joins an existing room
// @Description Joins by code, or resumes an existing seat when player_id is supplied
// @Tags rooms
// @Accept json
// @Produce json
// @Param code path string true "room join code"
// @Param request body controllers.joinRoomRequest true "display name, or player_id to rejoin"
// @Success 200 {object} object{code=string,player_id=string,player_index=integer,token=string,version=integer}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /rooms/{code}/join [post]
func JoinRoom(db *gorm.DB, redisClient *redis.RedisClient, sio *socketio_types.SocketServer) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		var req joinRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, game_flow.ErrInvalidName)
			return
		}

		room, player, err := game_flow.JoinRoom(db, redisClient, sio, code, req.Name, req.PlayerID)
		if err != nil {
			respondError(c, err)
			return
		}

		token, err := middleware.MintSessionToken(room.Code, player.ID)
		if err != nil {
			log.Printf("[TOKEN-ERROR] Could not mint session token: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "INTERNAL", "message": "could not create session"})
			return
		}
		middleware.StoreSessionToken(c, token)

		c.JSON(http.StatusOK, gin.H{
			"code":         room.Code,
			"player_id":    player.ID,
			"player_index": player.PlayerIndex,
			"name":         player.Name,
			"token":        token,
			"version":      room.Version,
		})
	}
}

// @Summary Adds a computer player to the lobby
// @Description Host only; fills a free seat with a bot
// @Tags rooms
// @Produce json
// @Param Authorization header string true "Bearer session token"
// @Param code path string true "room join code"
// @Success 200 {object} object{player_index=integer,name=string,version=integer}
// @Failure 403 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Security ApiKeyAuth
// @Router /rooms/{code}/bots [post]
func AddBot(db *gorm.DB, redisClient *redis.RedisClient, sio *socketio_types.SocketServer) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := middleware.ClaimsFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		room, bot, err := game_flow.AddBot(db, redisClient, sio, c.Param("code"), claims.PlayerID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"player_index": bot.PlayerIndex,
			"name":         bot.Name,
			"version":      room.Version,
		})
	}
}

// @Summary Starts the game
// @Description Host only; locks the roster and begins round 1
// @Tags rooms
// @Produce json
// @Param Authorization header string true "Bearer session token"
// @Param code path string true "room join code"
// @Success 200 {object} object{status=string,current_round=integer,version=integer}
// @Failure 403 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Security ApiKeyAuth
// @Router /rooms/{code}/start [post]
func StartGame(db *gorm.DB, redisClient *redis.RedisClient, sio *socketio_types.SocketServer) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := middleware.ClaimsFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		room, err := game_flow.StartGame(db, redisClient, sio, c.Param("code"), claims.PlayerID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":                    room.Status,
			"current_round":             room.CurrentRound,
			"current_turn_player_index": room.CurrentTurnIndex,
			"version":                   room.Version,
		})
	}
}

// @Summary Returns the full room snapshot
// @Description Polling endpoint; clients reconcile against the returned version
// @Tags rooms
// @Produce json
// @Param code path string true "room join code"
// @Success 200 {object} object{code=string,status=string,version=integer}
// @Failure 404 {object} object{error=string}
// @Router /rooms/{code} [get]
func GetRoomState(redisClient *redis.RedisClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := game_flow.GetRoomState(redisClient, c.Param("code"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, state)
	}
}
