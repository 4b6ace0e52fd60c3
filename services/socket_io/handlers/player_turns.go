package handlers

import (
	"log"

	"github.com/zishang520/socket.io/v2/socket"

	"github.com/sunshinecool/games-backend/services/blackjack"
	"github.com/sunshinecool/games-backend/services/rooms"
	socketio_types "github.com/sunshinecool/games-backend/services/socket_io/types"
	socketio_utils "github.com/sunshinecool/games-backend/services/socket_io/utils"
)

// Turn actions share one shape: valid only during the playing phase and only
// for the player whose turn it is; anything else is a silent no-op inside
// the state machine.

func HandleHit(directory *rooms.Directory, client *socket.Socket,
	sio *socketio_types.SocketServer, countdowns *socketio_utils.Countdowns) func(args ...interface{}) {
	return turnAction(directory, client, sio, countdowns, blackjack.CmdHit, "HIT")
}

func HandleStand(directory *rooms.Directory, client *socket.Socket,
	sio *socketio_types.SocketServer, countdowns *socketio_utils.Countdowns) func(args ...interface{}) {
	return turnAction(directory, client, sio, countdowns, blackjack.CmdStand, "STAND")
}

// HandleDoubleDown doubles the sender's bet, deals exactly one card and ends
// their turn. Requires chips >= current bet.
func HandleDoubleDown(directory *rooms.Directory, client *socket.Socket,
	sio *socketio_types.SocketServer, countdowns *socketio_utils.Countdowns) func(args ...interface{}) {
	return turnAction(directory, client, sio, countdowns, blackjack.CmdDoubleDown, "DOUBLE")
}

func turnAction(directory *rooms.Directory, client *socket.Socket,
	sio *socketio_types.SocketServer, countdowns *socketio_utils.Countdowns,
	cmdType blackjack.CommandType, tag string) func(args ...interface{}) {
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

		log.Printf("[%s] Player %s in room %s", tag, client.Id(), roomID)
		dispatch(directory, sio, countdowns, client, g, blackjack.Command{
			Type:     cmdType,
			PlayerID: string(client.Id()),
		})
	}
}
