package handlers

import (
	"log"

	"github.com/zishang520/socket.io/v2/socket"

	"github.com/sunshinecool/games-backend/services/blackjack"
	"github.com/sunshinecool/games-backend/services/rooms"
	socketio_types "github.com/sunshinecool/games-backend/services/socket_io/types"
	socketio_utils "github.com/sunshinecool/games-backend/services/socket_io/utils"
)

// HandleResetGame forces the table back to the waiting phase from any phase,
// cancelling a pending countdown.
func HandleResetGame(directory *rooms.Directory, client *socket.Socket,
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
			return
		}

		log.Printf("[RESET] Forced reset of room %s by %s", roomID, client.Id())
		dispatch(directory, sio, countdowns, client, g, blackjack.Command{
			Type:     blackjack.CmdReset,
			PlayerID: string(client.Id()),
		})
	}
}

// HandleNextGame starts the next round early during the gameOver countdown.
// Outside gameOver the sender alone gets an error reply and the table is
// untouched.
func HandleNextGame(directory *rooms.Directory, client *socket.Socket,
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
			return
		}

		log.Printf("[NEXT-GAME] Requested for room %s by %s", roomID, client.Id())
		dispatch(directory, sio, countdowns, client, g, blackjack.Command{
			Type:     blackjack.CmdNextGame,
			PlayerID: string(client.Id()),
		})
	}
}
