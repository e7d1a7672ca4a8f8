package routes

import (
	"Yatzler/controllers"
	"Yatzler/middleware"
	"Yatzler/services/redis"
	socketio_types "Yatzler/services/socket_io/types"
	utils "Yatzler/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisClient *redis.RedisClient,
	sio *socketio_types.SocketServer) {

	// utils global
	router.Use(utils.ErrorHandler())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	// Room discovery needs no session: the code is the capability
	api.POST("/rooms", controllers.CreateRoom(db, redisClient))
	api.POST("/rooms/:code/join", controllers.JoinRoom(db, redisClient, sio))
	api.GET("/rooms/:code", controllers.GetRoomState(redisClient))
	api.GET("/rooms/:code/scores", controllers.GetRoomScores(db))

	// Everything that moves game state requires a seat token
	game := api.Group("/rooms/:code")
	game.Use(middleware.AuthRequired)
	{
		game.POST("/bots", controllers.AddBot(db, redisClient, sio))
		game.POST("/start", controllers.StartGame(db, redisClient, sio))
		game.POST("/roll", controllers.Roll(redisClient, sio))
		game.POST("/score", controllers.Score(db, redisClient, sio))
		game.POST("/quit", controllers.Quit(db, redisClient, sio))
		game.POST("/skip", controllers.Skip(db, redisClient, sio))
	}
}
