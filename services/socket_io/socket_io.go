package socket_io

import (
	"Yatzler/services/game_flow"
	"Yatzler/services/redis"
	"Yatzler/services/socket_io/handlers"
	socketio_types "Yatzler/services/socket_io/types"
	socketio_utils "Yatzler/services/socket_io/utils"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

func (sio *MySocketServer) Start(router *gin.Engine, db *gorm.DB, redisClient *redis.RedisClient) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	sio.PlayerConnections = make(map[string]*socket.Socket)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		success, roomCode, playerID := socketio_utils.VerifyPlayerConnection(client, db)
		if !success {
			return
		}

		(*socketio_types.SocketServer)(sio).AddConnection(playerID, client)
		client.Join(socket.Room(roomCode))
		fmt.Println("Player connected:", playerID, "room:", roomCode)

		// A connection with a valid seat token is always a (re)connection
		// from the game's point of view: clear any pending skip timer
		game_flow.HandlePlayerReconnect(redisClient, roomCode, playerID)

		// Explicit full-state resync, same payload as the HTTP poll
		client.On("get_room_state", handlers.HandleGetRoomState(roomCode, playerID, client, redisClient))

		// NOTE: will remove sio connection from map and may arm the grace timer
		client.On("disconnecting", handlers.HandleDisconnecting(roomCode, playerID,
			(*socketio_types.SocketServer)(sio), db, redisClient))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	SignalC := make(chan os.Signal, 1)

	signal.Notify(SignalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range SignalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				sio.Sio_server.Close(nil)
				os.Exit(0)
			}
		}
	}()

	fmt.Println("Socket server started")
}
