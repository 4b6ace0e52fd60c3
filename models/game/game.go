package game

import "sync"

// Game phases, in the order a round moves through them.
const (
	PhaseWaiting    = "waiting"
	PhaseBetting    = "betting"
	PhasePlaying    = "playing"
	PhaseDealerTurn = "dealerTurn"
	PhaseGameOver   = "gameOver"
)

// Dealer is the house hand. It holds no chips and has no status.
type Dealer struct {
	Cards []Card
	Score int
}

// Game is one blackjack table. Every mutation happens under Mu, held by the
// dispatch layer for the full handling of a single action, so a round never
// interleaves with another action on the same table. Different tables share
// nothing.
type Game struct {
	Mu sync.Mutex

	ID      string
	Players []*Player
	// WaitingPlayers joined mid-round and are merged into Players at the
	// next reset. Non-empty only while Phase != waiting.
	WaitingPlayers []*Player
	Dealer         Dealer
	Deck           *Deck
	Phase          string
	// CurrentPlayer is the id of the player to act during the playing
	// phase; empty otherwise. A lookup reference only, never ownership.
	CurrentPlayer string
	Pot           int
	CurrentBet    int
	Message       string
	Winners       []string
	ResetTimer    int
}

func New(id string) *Game {
	return &Game{
		ID:      id,
		Players: []*Player{},
		Deck:    NewDeck(),
		Phase:   PhaseWaiting,
		Message: "Waiting for players...",
	}
}

// FindPlayer returns the seated player with the given connection id, or nil.
// Waiting players have no seat yet and are not returned.
func (g *Game) FindPlayer(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindPlayerByName scans seated players first, then the waiting list. Used
// for name-based reconnection; with duplicate names the first match in join
// order wins.
func (g *Game) FindPlayerByName(name string) *Player {
	for _, p := range g.Players {
		if p.Name == name {
			return p
		}
	}
	for _, p := range g.WaitingPlayers {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// HasPlayer reports whether the connection id belongs to this table, seated
// or waiting.
func (g *Game) HasPlayer(id string) bool {
	if g.FindPlayer(id) != nil {
		return true
	}
	for _, p := range g.WaitingPlayers {
		if p.ID == id {
			return true
		}
	}
	return false
}

// PlayerIndex returns the seat index for a connection id, or -1.
func (g *Game) PlayerIndex(id string) int {
	for i, p := range g.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// AllPlayersHaveStatus reports whether every seated player is in the given
// status. False for an empty table.
func (g *Game) AllPlayersHaveStatus(status string) bool {
	for _, p := range g.Players {
		if p.Status != status {
			return false
		}
	}
	return len(g.Players) > 0
}

// Empty reports whether nobody is seated or waiting.
func (g *Game) Empty() bool {
	return len(g.Players) == 0 && len(g.WaitingPlayers) == 0
}
