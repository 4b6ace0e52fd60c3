package game

import (
	game_constants "github.com/sunshinecool/games-backend/constants/game"
)

// Player statuses. Status is the per-round sub-state of one player, distinct
// from the game phase.
const (
	StatusWaiting   = "waiting"
	StatusReady     = "ready"
	StatusBetPlaced = "betPlaced"
	StatusPlaying   = "playing"
	StatusStand     = "stand"
	StatusBust      = "bust"
	StatusWin       = "win"
	StatusLose      = "lose"
	StatusPush      = "push"
)

// Player is one seat at a table. ID is the socket id of the current
// connection and is reassigned in place on reconnect; chips live as long as
// the Game does.
type Player struct {
	ID       string
	Name     string
	Chips    int
	Cards    []Card
	Score    int
	Bet      int
	Status   string
	IsDealer bool
}

func NewPlayer(id, name string) *Player {
	return &Player{
		ID:     id,
		Name:   name,
		Chips:  game_constants.StartingChips,
		Cards:  []Card{},
		Status: StatusWaiting,
	}
}

// ResetForNextRound clears per-round state. Chips and the dealer flag carry
// over.
func (p *Player) ResetForNextRound() {
	p.Cards = []Card{}
	p.Score = 0
	p.Bet = 0
	p.Status = StatusWaiting
}
