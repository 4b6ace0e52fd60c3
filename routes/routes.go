package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sunshinecool/games-backend/controllers"
	"github.com/sunshinecool/games-backend/services/rooms"
	socketio_types "github.com/sunshinecool/games-backend/services/socket_io/types"
)

// SetupRoutes configures the REST surface. The realtime traffic goes over
// socket.io; these endpoints only exist for liveness probes.
func SetupRoutes(router *gin.Engine, directory *rooms.Directory, sio *socketio_types.SocketServer) {
	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.GET("/health", controllers.Health(directory, sio))
}
