package handlers

import (
	"log"

	"github.com/zishang520/socket.io/v2/socket"

	"github.com/sunshinecool/games-backend/services/blackjack"
	"github.com/sunshinecool/games-backend/services/rooms"
	socketio_types "github.com/sunshinecool/games-backend/services/socket_io/types"
	socketio_utils "github.com/sunshinecool/games-backend/services/socket_io/utils"
)

// HandlePlayerReady marks the sender ready; once every seated player is
// ready and enough of them are present, the table moves to betting.
func HandlePlayerReady(directory *rooms.Directory, client *socket.Socket,
	sio *socketio_types.SocketServer, countdowns *socketio_utils.Countdowns) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := socketio_utils.Payload(args)
		if !ok {
			return
		}
		roomID, ok := socketio_utils.PayloadString(payload, "roomId")
		if !ok || roomID == "" {
			return
		}
		g, ok := directory.Get(roomID)
		if !ok {
			log.Printf("[READY-ERROR] No game for room %s", roomID)
			return
		}

		log.Printf("[READY] Player %s ready in room %s", client.Id(), roomID)
		dispatch(directory, sio, countdowns, client, g, blackjack.Command{
			Type:     blackjack.CmdReady,
			PlayerID: string(client.Id()),
		})
	}
}
