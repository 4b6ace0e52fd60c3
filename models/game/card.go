package game

import "fmt"

// Suits in deck-building order. The wire format keeps the raw glyphs and
// values 1..13 (ace low) that the frontend renders directly.
var Suits = []string{"♠", "♥", "♦", "♣"}

const (
	AceValue      = 1
	MaxCardValue  = 13
	ValuesPerSuit = 13
)

// Card is immutable once created.
type Card struct {
	Suit  string `json:"suit"`
	Value int    `json:"value"`
}

func (c Card) String() string {
	return fmt.Sprintf("%d%s", c.Value, c.Suit)
}
