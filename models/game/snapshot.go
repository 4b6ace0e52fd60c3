package game

// Snapshot is the sanitized view of a table that gets broadcast to its room.
// The deck and any scheduling internals never leave the server; everything
// else (cards, scores, bets, chips) is public at this table.

type PlayerSnapshot struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Chips    int    `json:"chips"`
	Cards    []Card `json:"cards"`
	Score    int    `json:"score"`
	Bet      int    `json:"bet"`
	Status   string `json:"status"`
	IsDealer bool   `json:"isDealer"`
}

type DealerSnapshot struct {
	Cards []Card `json:"cards"`
	Score int    `json:"score"`
}

type Snapshot struct {
	ID             string           `json:"id"`
	Players        []PlayerSnapshot `json:"players"`
	WaitingPlayers []PlayerSnapshot `json:"waitingPlayers"`
	Dealer         DealerSnapshot   `json:"dealer"`
	GamePhase      string           `json:"gamePhase"`
	Pot            int              `json:"pot"`
	CurrentBet     int              `json:"currentBet"`
	CurrentPlayer  string           `json:"currentPlayer"`
	Message        string           `json:"message"`
	Winners        []string         `json:"winners"`
	ResetTimer     int              `json:"resetTimer"`
}

// Snapshot copies the player's public state. Card slices are copied so a
// marshal after the lock is released cannot race a later draw.
func (p *Player) Snapshot() PlayerSnapshot {
	return PlayerSnapshot{
		ID:       p.ID,
		Name:     p.Name,
		Chips:    p.Chips,
		Cards:    append([]Card{}, p.Cards...),
		Score:    p.Score,
		Bet:      p.Bet,
		Status:   p.Status,
		IsDealer: p.IsDealer,
	}
}

// Snapshot builds the broadcast payload. The caller holds g.Mu.
func (g *Game) Snapshot() Snapshot {
	players := make([]PlayerSnapshot, 0, len(g.Players))
	for _, p := range g.Players {
		players = append(players, p.Snapshot())
	}
	waiting := make([]PlayerSnapshot, 0, len(g.WaitingPlayers))
	for _, p := range g.WaitingPlayers {
		waiting = append(waiting, p.Snapshot())
	}
	winners := g.Winners
	if winners == nil {
		winners = []string{}
	}
	return Snapshot{
		ID:             g.ID,
		Players:        players,
		WaitingPlayers: waiting,
		Dealer: DealerSnapshot{
			Cards: append([]Card{}, g.Dealer.Cards...),
			Score: g.Dealer.Score,
		},
		GamePhase:     g.Phase,
		Pot:           g.Pot,
		CurrentBet:    g.CurrentBet,
		CurrentPlayer: g.CurrentPlayer,
		Message:       g.Message,
		Winners:       append([]string{}, winners...),
		ResetTimer:    g.ResetTimer,
	}
}
