package handlers

import (
	"log"

	"github.com/zishang520/socket.io/v2/socket"

	"github.com/sunshinecool/games-backend/services/blackjack"
	"github.com/sunshinecool/games-backend/services/rooms"
	socketio_types "github.com/sunshinecool/games-backend/services/socket_io/types"
	socketio_utils "github.com/sunshinecool/games-backend/services/socket_io/utils"
)

// HandleDisconnecting removes the player from whichever table they were at,
// whatever the phase. An emptied table is dropped from the directory and its
// countdown cancelled.
func HandleDisconnecting(directory *rooms.Directory, client *socket.Socket,
	sio *socketio_types.SocketServer, countdowns *socketio_utils.Countdowns) func(args ...interface{}) {
	return func(args ...interface{}) {
		playerID := string(client.Id())
		log.Printf("[DISCONNECT] Client disconnecting: %s", playerID)

		if g, ok := directory.FindByPlayer(playerID); ok {
			dispatch(directory, sio, countdowns, client, g, blackjack.Command{
				Type:     blackjack.CmdLeave,
				PlayerID: playerID,
			})
		}

		sio.RemoveConnection(playerID)
		log.Printf("[DISCONNECT] Client disconnected: %s", playerID)
	}
}
