package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sunshinecool/games-backend/services/rooms"
	socketio_types "github.com/sunshinecool/games-backend/services/socket_io/types"
)

// Health is the liveness probe the frontend polls before opening a socket.
func Health(directory *rooms.Directory, sio *socketio_types.SocketServer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"websocket":   true,
			"rooms":       directory.Count(),
			"connections": sio.Count(),
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
