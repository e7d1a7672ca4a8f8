package controllers

import (
	"Yatzler/middleware"
	models "Yatzler/models/postgres"
	"Yatzler/services/game_flow"
	"Yatzler/services/redis"
	socketio_types "Yatzler/services/socket_io/types"
	"Yatzler/services/yahtzee"
	"Yatzler/utils"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type rollRequest struct {
	Held []bool `json:"held"`
}

type scoreRequest struct {
	Category string `json:"category" binding:"required"`
}

// @Summary Rolls the dice
// @Description First roll of a turn rolls all five dice; later rolls keep the held positions
// @Tags game
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer session token"
// @Param code path string true "room join code"
// @Param request body controllers.rollRequest false "held mask, ignored on the first roll"
// @Success 200 {object} object{dice=[]integer,roll_count=integer,version=integer}
// @Failure 409 {object} object{error=string}
// @Security ApiKeyAuth
// @Router /rooms/{code}/roll [post]
func Roll(redisClient *redis.RedisClient, sio *socketio_types.SocketServer) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := middleware.ClaimsFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req rollRequest
		// Body is optional: an empty body means no dice held
		_ = c.ShouldBindJSON(&req)

		outcome, err := game_flow.SubmitRoll(redisClient, sio, c.Param("code"), claims.PlayerID, req.Held)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, outcome)
	}
}

// @Summary Scores the current dice into a category
// @Description Fills the chosen scorecard slot and ends the turn; bot turns triggered by the move ride along in the reply
// @Tags game
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer session token"
// @Param code path string true "room join code"
// @Param request body controllers.scoreRequest true "category to fill"
// @Success 200 {object} object{score=integer,next_player_index=integer,game_finished=boolean,version=integer}
// @Failure 409 {object} object{error=string}
// @Security ApiKeyAuth
// @Router /rooms/{code}/score [post]
func Score(db *gorm.DB, redisClient *redis.RedisClient, sio *socketio_types.SocketServer) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := middleware.ClaimsFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req scoreRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, game_flow.ErrUnknownCategory)
			return
		}

		outcome, err := game_flow.SubmitScore(db, redisClient, sio, c.Param("code"),
			claims.PlayerID, yahtzee.Category(req.Category))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, outcome)
	}
}

// @Summary Leaves the room
// @Description In the lobby the seat is freed; mid-game the player is removed from the rotation and the game may finish early
// @Tags game
// @Produce json
// @Param Authorization header string true "Bearer session token"
// @Param code path string true "room join code"
// @Success 200 {object} object{result=string,version=integer}
// @Failure 404 {object} object{error=string}
// @Security ApiKeyAuth
// @Router /rooms/{code}/quit [post]
func Quit(db *gorm.DB, redisClient *redis.RedisClient, sio *socketio_types.SocketServer) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := middleware.ClaimsFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		result, room, final, err := game_flow.QuitRoom(db, redisClient, sio, c.Param("code"), claims.PlayerID)
		if err != nil {
			respondError(c, err)
			return
		}

		resp := gin.H{"result": result}
		if room != nil {
			resp["version"] = room.Version
		}
		if final != nil {
			resp["final"] = final
		}
		c.JSON(http.StatusOK, resp)
	}
}

// @Summary Skips the current player's turn
// @Description Host only; resolves a stalled turn without waiting out the disconnect grace period
// @Tags game
// @Produce json
// @Param Authorization header string true "Bearer session token"
// @Param code path string true "room join code"
// @Success 200 {object} object{player_index=integer,category=string,score=integer,version=integer}
// @Failure 403 {object} object{error=string}
// @Security ApiKeyAuth
// @Router /rooms/{code}/skip [post]
func Skip(db *gorm.DB, redisClient *redis.RedisClient, sio *socketio_types.SocketServer) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := middleware.ClaimsFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		outcome, err := game_flow.SkipTurn(db, redisClient, sio, c.Param("code"), claims.PlayerID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, outcome)
	}
}

// @Summary Returns the persisted results of a finished game
// @Description Reads the write-once score rows; available even after the room itself expired
// @Tags game
// @Produce json
// @Param code path string true "room join code"
// @Success 200 {array} object{player_index=integer,display_name=string,grand_total=integer,winner=boolean}
// @Failure 404 {object} object{error=string}
// @Router /rooms/{code}/scores [get]
func GetRoomScores(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var scores []models.GameScore
		if err := db.Where("room_code = ?", c.Param("code")).
			Order("player_index").Find(&scores).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "INTERNAL", "message": err.Error()})
			return
		}
		if len(scores) == 0 {
			if _, err := utils.CheckRoomExists(db, c.Param("code")); err != nil {
				respondError(c, game_flow.ErrRoomNotFound)
				return
			}
			// Room exists but has not finished yet
		}
		c.JSON(http.StatusOK, gin.H{"scores": scores})
	}
}
