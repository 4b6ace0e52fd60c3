package blackjack

import (
	"fmt"
	"strings"

	game_constants "github.com/sunshinecool/games-backend/constants/game"
	"github.com/sunshinecool/games-backend/models/game"
)

// settleRound compares every hand still standing against the dealer and
// applies the chip deltas: win pays the bet, lose costs it, push returns it.
// Busted players already paid when they busted and are skipped. The winners
// list collects win and push names for the announcement.
func settleRound(g *game.Game) Effects {
	dealerBust := g.Dealer.Score > game_constants.BustLimit
	winners := []string{}

	for _, p := range g.Players {
		if p.Status != game.StatusPlaying && p.Status != game.StatusStand {
			continue
		}
		switch {
		case dealerBust || p.Score > g.Dealer.Score:
			p.Status = game.StatusWin
			p.Chips += p.Bet
			winners = append(winners, p.Name)
		case p.Score < g.Dealer.Score:
			p.Status = game.StatusLose
			p.Chips -= p.Bet
		default:
			p.Status = game.StatusPush
			winners = append(winners, p.Name)
		}
	}

	g.Winners = winners
	g.Phase = game.PhaseGameOver
	g.ResetTimer = game_constants.ResetCountdownSeconds
	if len(winners) > 0 {
		g.Message = fmt.Sprintf("Game over! Congratulations %s!", strings.Join(winners, ", "))
	} else {
		g.Message = "Game over! Dealer wins."
	}
	return Effects{Broadcast: true, StartCountdown: true}
}
