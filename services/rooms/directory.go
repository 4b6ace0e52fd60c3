package rooms

import (
	"sync"

	"github.com/sunshinecool/games-backend/models/game"
)

// Directory owns every live table, keyed by room id. It replaces any
// process-wide registry: one instance is created at startup and injected
// into the socket layer, so tests can build as many as they want.
type Directory struct {
	mu    sync.RWMutex
	games map[string]*game.Game
}

func NewDirectory() *Directory {
	return &Directory{games: make(map[string]*game.Game)}
}

// GetOrCreate returns the room's table, creating it with a fresh shuffled
// deck on first reference.
func (d *Directory) GetOrCreate(roomID string) *game.Game {
	d.mu.Lock()
	defer d.mu.Unlock()
	if g, ok := d.games[roomID]; ok {
		return g
	}
	g := game.New(roomID)
	d.games[roomID] = g
	return g
}

func (d *Directory) Get(roomID string) (*game.Game, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	g, ok := d.games[roomID]
	return g, ok
}

func (d *Directory) Remove(roomID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.games, roomID)
}

// FindByPlayer scans every table for the connection id, seated or waiting.
// Linear in tables×players, which is fine at the expected cardinality; runs
// on every disconnect regardless of phase.
func (d *Directory) FindByPlayer(playerID string) (*game.Game, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, g := range d.games {
		g.Mu.Lock()
		found := g.HasPlayer(playerID)
		g.Mu.Unlock()
		if found {
			return g, true
		}
	}
	return nil, false
}

func (d *Directory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.games)
}
