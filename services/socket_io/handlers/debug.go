package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"

	"github.com/sunshinecool/games-backend/services/rooms"
	socketio_utils "github.com/sunshinecool/games-backend/services/socket_io/utils"
)

// HandleDebugGameState dumps a table to the server log and replies to the
// requester alone with a fresh sanitized snapshot. The table is not mutated
// and nothing is broadcast to the room.
func HandleDebugGameState(directory *rooms.Directory, client *socket.Socket) func(args ...interface{}) {
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

		g.Mu.Lock()
		snapshot := g.Snapshot()
		g.Mu.Unlock()

		log.Printf("[DEBUG] Room %s: phase=%s currentPlayer=%s dealerScore=%d",
			roomID, snapshot.GamePhase, snapshot.CurrentPlayer, snapshot.Dealer.Score)
		for _, p := range snapshot.Players {
			log.Printf("[DEBUG] - %s (%s): status=%s score=%d bet=%d chips=%d",
				p.Name, p.ID, p.Status, p.Score, p.Bet, p.Chips)
		}

		client.Emit("gameStateUpdate", gin.H{"gameState": snapshot})
	}
}
