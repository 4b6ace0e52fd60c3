package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"

	"github.com/sunshinecool/games-backend/models/game"
	"github.com/sunshinecool/games-backend/services/blackjack"
	"github.com/sunshinecool/games-backend/services/rooms"
	socketio_types "github.com/sunshinecool/games-backend/services/socket_io/types"
	socketio_utils "github.com/sunshinecool/games-backend/services/socket_io/utils"
)

// dispatch runs one command against a table under its lock and carries out
// the resulting effects: room broadcasts, point-to-point replies, countdown
// scheduling and directory cleanup. Every event handler funnels through
// here so the lock discipline lives in exactly one place.
func dispatch(directory *rooms.Directory, sio *socketio_types.SocketServer,
	countdowns *socketio_utils.Countdowns, client *socket.Socket,
	g *game.Game, cmd blackjack.Command) {

	g.Mu.Lock()
	eff := blackjack.Apply(g, cmd)
	snapshot := g.Snapshot()
	var joined game.PlayerSnapshot
	if eff.Joined != nil {
		joined = eff.Joined.Snapshot()
	}
	g.Mu.Unlock()

	if eff.ErrorMessage != "" {
		log.Printf("[DISPATCH] Rejected command type %d in room %s: %s", cmd.Type, g.ID, eff.ErrorMessage)
		client.Emit("error", gin.H{"message": eff.ErrorMessage})
		return
	}

	room := socket.Room(g.ID)

	if eff.Joined != nil {
		client.Emit("playerJoined", gin.H{"player": joined, "gameState": snapshot})
		client.To(room).Emit("playerJoined", gin.H{"player": joined, "gameState": snapshot})
	}
	if eff.Left != nil {
		sio.Sio_server.To(room).Emit("playerLeft", gin.H{
			"playerId":   eff.Left.ID,
			"playerName": eff.Left.Name,
			"gameState":  snapshot,
		})
	}
	if eff.Broadcast {
		sio.Sio_server.To(room).Emit("gameStateUpdate", gin.H{"gameState": snapshot})
	}

	if eff.StopCountdown {
		countdowns.Cancel(g.ID)
	}
	if eff.StartCountdown {
		countdowns.Start(g.ID, func() bool {
			return tick(sio, g)
		})
	}
	if eff.RemoveGame {
		countdowns.Cancel(g.ID)
		directory.Remove(g.ID)
		log.Printf("[ROOMS] Removed empty game %s", g.ID)
	}
}

// tick advances the gameOver countdown by one second and reports whether
// the countdown is finished (reset applied, or made stale by an explicit
// reset that won the race).
func tick(sio *socketio_types.SocketServer, g *game.Game) bool {
	g.Mu.Lock()
	eff := blackjack.Apply(g, blackjack.Command{Type: blackjack.CmdTick})
	snapshot := g.Snapshot()
	g.Mu.Unlock()

	if eff.Broadcast {
		sio.Sio_server.To(socket.Room(g.ID)).Emit("gameStateUpdate", gin.H{"gameState": snapshot})
	}
	return eff.StopCountdown
}
