package socket_io

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"

	"github.com/sunshinecool/games-backend/services/rooms"
	"github.com/sunshinecool/games-backend/services/socket_io/handlers"
	socketio_types "github.com/sunshinecool/games-backend/services/socket_io/types"
	socketio_utils "github.com/sunshinecool/games-backend/services/socket_io/utils"
)

type MySocketServer socketio_types.SocketServer

// Start mounts the socket.io server on the gin router and registers the
// per-connection event handlers. The directory is the only shared game
// state; every handler goes through it.
func (sio *MySocketServer) Start(router *gin.Engine, directory *rooms.Directory) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// Ping settings match the original deployment: generous, to survive
	// polling fallback on slow networks.
	c.SetPingInterval(25 * time.Second)
	c.SetPingTimeout(60 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	countdowns := socketio_utils.NewCountdowns()

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)
		self := (*socketio_types.SocketServer)(sio)

		self.AddConnection(string(client.Id()), client)
		log.Printf("[CONNECT] Client connected: %s", client.Id())

		// Join a game room; creates the table on first reference
		client.On("joinGame", handlers.HandleJoinGame(directory, client, self, countdowns))

		// Signal readiness to start the next round
		client.On("playerReady", handlers.HandlePlayerReady(directory, client, self, countdowns))

		// Place a bet during the betting phase
		client.On("placeBet", handlers.HandlePlaceBet(directory, client, self, countdowns))

		// Turn actions, valid only for the current player
		client.On("hit", handlers.HandleHit(directory, client, self, countdowns))
		client.On("stand", handlers.HandleStand(directory, client, self, countdowns))
		client.On("doubleDown", handlers.HandleDoubleDown(directory, client, self, countdowns))

		// Forced reset from any phase
		client.On("resetGame", handlers.HandleResetGame(directory, client, self, countdowns))

		// Skip the gameOver countdown
		client.On("nextGame", handlers.HandleNextGame(directory, client, self, countdowns))

		// Log a table dump and reply with its snapshot, requester only
		client.On("debugGameState", handlers.HandleDebugGameState(directory, client))

		// NOTE: removes the player from their table and reaps empty games
		client.On("disconnecting", handlers.HandleDisconnecting(directory, client, self, countdowns))
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
