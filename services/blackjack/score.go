package blackjack

import (
	game_constants "github.com/sunshinecool/games-backend/constants/game"
	"github.com/sunshinecool/games-backend/models/game"
)

// Score computes the blackjack total of a hand. Face cards count 10. Every
// ace counts 1 first; at most one ace can then be upgraded to 11 without
// busting, since two soft aces already total 22.
func Score(cards []game.Card) int {
	score := 0
	aces := 0
	for _, c := range cards {
		switch {
		case c.Value == game.AceValue:
			aces++
			score++
		case c.Value > game_constants.FaceCardScore:
			score += game_constants.FaceCardScore
		default:
			score += c.Value
		}
	}
	if aces > 0 && score+game_constants.SoftAceScore-1 <= game_constants.BustLimit {
		score += game_constants.SoftAceScore - 1
	}
	return score
}
