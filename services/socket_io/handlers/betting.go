package handlers

import (
	"log"

	"github.com/zishang520/socket.io/v2/socket"

	"github.com/sunshinecool/games-backend/services/blackjack"
	"github.com/sunshinecool/games-backend/services/rooms"
	socketio_types "github.com/sunshinecool/games-backend/services/socket_io/types"
	socketio_utils "github.com/sunshinecool/games-backend/services/socket_io/utils"
)

// HandlePlaceBet records the sender's bet during the betting phase. Amounts
// outside 0 < amount <= chips are dropped silently. The last valid bet
// triggers the deal synchronously.
func HandlePlaceBet(directory *rooms.Directory, client *socket.Socket,
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
		amount, ok := socketio_utils.PayloadInt(payload, "amount")
		if !ok {
			log.Printf("[BET-ERROR] Non-numeric amount from %s in room %s", client.Id(), roomID)
			return
		}
		g, ok := directory.Get(roomID)
		if !ok {
			return
		}

		log.Printf("[BET] Player %s bets %d in room %s", client.Id(), amount, roomID)
		dispatch(directory, sio, countdowns, client, g, blackjack.Command{
			Type:     blackjack.CmdBet,
			PlayerID: string(client.Id()),
			Amount:   amount,
		})
	}
}
