package blackjack

import "github.com/sunshinecool/games-backend/models/game"

// CommandType enumerates every inbound table action, plus the two
// transitions that are not client-initiated: Leave (disconnect) and Tick
// (the gameOver countdown).
type CommandType int

const (
	CmdJoin CommandType = iota
	CmdReady
	CmdBet
	CmdHit
	CmdStand
	CmdDoubleDown
	CmdReset
	CmdNextGame
	CmdLeave
	CmdTick
)

// Command is one requested transition. PlayerID is the sender's connection
// id; PlayerName is set for CmdJoin only, Amount for CmdBet only.
type Command struct {
	Type       CommandType
	PlayerID   string
	PlayerName string
	Amount     int
}

// Effects tells the dispatch layer what to do after a transition. The state
// machine itself never touches the transport or any timer, which keeps it
// testable without a live connection.
type Effects struct {
	// Broadcast: the room needs a fresh gameStateUpdate.
	Broadcast bool
	// Joined / Left carry the player a playerJoined/playerLeft event is
	// about. Nil when the command was not a join/leave.
	Joined *game.Player
	Left   *game.Player
	// ErrorMessage is replied point-to-point to the sender, never broadcast.
	ErrorMessage string
	// StartCountdown / StopCountdown schedule or cancel the room's
	// once-per-second gameOver countdown.
	StartCountdown bool
	StopCountdown  bool
	// RemoveGame: the table is empty and the directory should drop it.
	RemoveGame bool
}
