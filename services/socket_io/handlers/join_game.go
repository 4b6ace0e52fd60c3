package handlers

import (
	"log"

	"github.com/google/uuid"
	"github.com/zishang520/socket.io/v2/socket"

	"github.com/sunshinecool/games-backend/services/blackjack"
	"github.com/sunshinecool/games-backend/services/rooms"
	socketio_types "github.com/sunshinecool/games-backend/services/socket_io/types"
	socketio_utils "github.com/sunshinecool/games-backend/services/socket_io/utils"
)

// HandleJoinGame seats a player in a room, creating the table on first
// reference. A request without a roomId gets a fresh UUID room. A request
// whose playerName matches someone already at the table is treated as a
// reconnection and takes over that seat.
func HandleJoinGame(directory *rooms.Directory, client *socket.Socket,
	sio *socketio_types.SocketServer, countdowns *socketio_utils.Countdowns) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := socketio_utils.Payload(args)
		if !ok {
			log.Printf("[JOIN-ERROR] Malformed joinGame payload from %s", client.Id())
			return
		}
		playerName, ok := socketio_utils.PayloadString(payload, "playerName")
		if !ok || playerName == "" {
			log.Printf("[JOIN-ERROR] Missing playerName from %s", client.Id())
			return
		}
		roomID, _ := socketio_utils.PayloadString(payload, "roomId")
		if roomID == "" {
			roomID = uuid.NewString()
		}

		log.Printf("[JOIN] Player %s (%s) joining room %s", playerName, client.Id(), roomID)

		g := directory.GetOrCreate(roomID)
		client.Join(socket.Room(roomID))

		dispatch(directory, sio, countdowns, client, g, blackjack.Command{
			Type:       blackjack.CmdJoin,
			PlayerID:   string(client.Id()),
			PlayerName: playerName,
		})
	}
}
