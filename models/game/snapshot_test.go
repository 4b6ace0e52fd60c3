package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotNeverLeaksTheDeck(t *testing.T) {
	g := New("room-1")
	g.Players = append(g.Players, NewPlayer("sock-1", "alice"))

	raw, err := json.Marshal(g.Snapshot())
	assert.NoError(t, err)

	var fields map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &fields))
	assert.NotContains(t, fields, "deck")
	assert.NotContains(t, fields, "Deck")

	assert.Contains(t, fields, "players")
	assert.Contains(t, fields, "gamePhase")
	assert.Contains(t, fields, "currentPlayer")
	assert.Contains(t, fields, "resetTimer")
}

func TestSnapshotUsesEmptyCollectionsNotNull(t *testing.T) {
	g := New("room-2")
	g.Players = append(g.Players, NewPlayer("sock-1", "alice"))

	raw, err := json.Marshal(g.Snapshot())
	assert.NoError(t, err)

	body := string(raw)
	assert.Contains(t, body, `"cards":[]`)
	assert.Contains(t, body, `"winners":[]`)
	assert.Contains(t, body, `"waitingPlayers":[]`)
	assert.NotContains(t, body, "null")
}

func TestSnapshotCopiesCards(t *testing.T) {
	g := New("room-3")
	p := NewPlayer("sock-1", "alice")
	p.Cards = []Card{{Suit: "♠", Value: 10}}
	g.Players = append(g.Players, p)

	snap := g.Snapshot()
	p.Cards[0] = Card{Suit: "♥", Value: 2}

	assert.Equal(t, Card{Suit: "♠", Value: 10}, snap.Players[0].Cards[0])
}
