package game

import "math/rand"

// Deck is a shuffled stack of cards. Draw takes from the top (the end of the
// slice). An exhausted deck is replaced with a fresh shuffled 52 instead of
// failing; at 52 cards and a handful of players that never happens in a
// single round, but it must not crash mid-hand.
type Deck struct {
	cards []Card
}

func NewDeck() *Deck {
	return &Deck{cards: shuffledCards()}
}

// NewDeckFromCards builds a deck with a fixed order, top of the stack last.
func NewDeckFromCards(cards []Card) *Deck {
	return &Deck{cards: append([]Card(nil), cards...)}
}

func shuffledCards() []Card {
	cards := make([]Card, 0, len(Suits)*ValuesPerSuit)
	for _, suit := range Suits {
		for value := 1; value <= MaxCardValue; value++ {
			cards = append(cards, Card{Suit: suit, Value: value})
		}
	}
	// Fisher-Yates
	for i := len(cards) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return cards
}

func (d *Deck) Draw() Card {
	if len(d.cards) == 0 {
		d.cards = shuffledCards()
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}
