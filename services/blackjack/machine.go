package blackjack

import (
	"fmt"

	game_constants "github.com/sunshinecool/games-backend/constants/game"
	"github.com/sunshinecool/games-backend/models/game"
)

// Apply runs a single command against a table and returns the side effects
// the caller must carry out. The caller holds g.Mu for the whole call.
//
// Invalid actions (wrong phase, not the sender's turn, bad bet amount,
// unknown sender) are silent no-ops: the table is left untouched and nothing
// is broadcast. The one exception is nextGame outside the gameOver phase,
// which produces a point-to-point error reply.
func Apply(g *game.Game, cmd Command) Effects {
	switch cmd.Type {
	case CmdJoin:
		return applyJoin(g, cmd)
	case CmdReady:
		return applyReady(g, cmd)
	case CmdBet:
		return applyBet(g, cmd)
	case CmdHit:
		return applyHit(g, cmd)
	case CmdStand:
		return applyStand(g, cmd)
	case CmdDoubleDown:
		return applyDoubleDown(g, cmd)
	case CmdReset:
		return applyReset(g)
	case CmdNextGame:
		return applyNextGame(g)
	case CmdLeave:
		return applyLeave(g, cmd)
	case CmdTick:
		return applyTick(g)
	}
	return Effects{}
}

func applyJoin(g *game.Game, cmd Command) Effects {
	// Name-based reconnection: a returning player takes over their old
	// seat, chips and hand included. With duplicate names the first match
	// in join order wins.
	if p := g.FindPlayerByName(cmd.PlayerName); p != nil {
		old := p.ID
		p.ID = cmd.PlayerID
		if g.CurrentPlayer == old {
			g.CurrentPlayer = cmd.PlayerID
		}
		g.Message = fmt.Sprintf("%s reconnected.", p.Name)
		return Effects{Broadcast: true, Joined: p}
	}

	p := game.NewPlayer(cmd.PlayerID, cmd.PlayerName)
	if g.Empty() {
		// First joiner carries the dealer flag for the table's lifetime.
		p.IsDealer = true
		g.Message = fmt.Sprintf("%s joined as dealer. Waiting for more players...", p.Name)
	} else {
		g.Message = fmt.Sprintf("%s joined the game.", p.Name)
	}

	if g.Phase == game.PhaseWaiting {
		g.Players = append(g.Players, p)
	} else {
		// A round is running; the newcomer sits out until the next reset.
		g.WaitingPlayers = append(g.WaitingPlayers, p)
		g.Message = fmt.Sprintf("%s joined and will play next round.", p.Name)
	}
	return Effects{Broadcast: true, Joined: p}
}

func applyReady(g *game.Game, cmd Command) Effects {
	p := g.FindPlayer(cmd.PlayerID)
	if p == nil || g.Phase != game.PhaseWaiting {
		return Effects{}
	}
	p.Status = game.StatusReady
	g.Message = fmt.Sprintf("%s is ready to play.", p.Name)

	if g.AllPlayersHaveStatus(game.StatusReady) {
		if len(g.Players) >= game_constants.MinPlayersToStart {
			g.Phase = game.PhaseBetting
			g.Message = "Place your bets!"
		} else {
			g.Message = "Waiting for more players..."
		}
	}
	return Effects{Broadcast: true}
}

func applyBet(g *game.Game, cmd Command) Effects {
	p := g.FindPlayer(cmd.PlayerID)
	if p == nil || g.Phase != game.PhaseBetting {
		return Effects{}
	}
	if cmd.Amount <= 0 || cmd.Amount > p.Chips {
		// Invalid bets are dropped without touching the table.
		return Effects{}
	}

	// Re-betting before the deal replaces the previous bet.
	g.Pot += cmd.Amount - p.Bet
	p.Bet = cmd.Amount
	p.Status = game.StatusBetPlaced
	g.CurrentBet = cmd.Amount
	g.Message = fmt.Sprintf("%s placed a bet of %d.", p.Name, cmd.Amount)

	if g.AllPlayersHaveStatus(game.StatusBetPlaced) {
		// The deal happens synchronously inside the last placeBet.
		dealInitialCards(g)
	}
	return Effects{Broadcast: true}
}

// dealInitialCards starts the round: two cards per bettor, two for the
// dealer, first seat in join order to act.
func dealInitialCards(g *game.Game) {
	for _, p := range g.Players {
		if p.Status != game.StatusBetPlaced {
			continue
		}
		cards := make([]game.Card, 0, game_constants.InitialHandSize)
		for i := 0; i < game_constants.InitialHandSize; i++ {
			cards = append(cards, g.Deck.Draw())
		}
		p.Cards = cards
		p.Score = Score(p.Cards)
		p.Status = game.StatusPlaying
	}

	g.Dealer.Cards = []game.Card{g.Deck.Draw(), g.Deck.Draw()}
	g.Dealer.Score = Score(g.Dealer.Cards)

	g.Phase = game.PhasePlaying
	g.CurrentPlayer = g.Players[0].ID
	g.Message = fmt.Sprintf("%s's turn.", g.Players[0].Name)
}

func applyHit(g *game.Game, cmd Command) Effects {
	p := g.FindPlayer(cmd.PlayerID)
	if p == nil || g.Phase != game.PhasePlaying || g.CurrentPlayer != cmd.PlayerID {
		return Effects{}
	}

	p.Cards = append(p.Cards, g.Deck.Draw())
	p.Score = Score(p.Cards)

	if p.Score > game_constants.BustLimit {
		// A bust pays its bet immediately; payout skips busted players.
		p.Status = game.StatusBust
		p.Chips -= p.Bet
		g.Message = fmt.Sprintf("%s busts!", p.Name)
		return advanceTurn(g)
	}
	g.Message = fmt.Sprintf("%s hits.", p.Name)
	return Effects{Broadcast: true}
}

func applyStand(g *game.Game, cmd Command) Effects {
	p := g.FindPlayer(cmd.PlayerID)
	if p == nil || g.Phase != game.PhasePlaying || g.CurrentPlayer != cmd.PlayerID {
		return Effects{}
	}
	p.Status = game.StatusStand
	g.Message = fmt.Sprintf("%s stands.", p.Name)
	return advanceTurn(g)
}

func applyDoubleDown(g *game.Game, cmd Command) Effects {
	p := g.FindPlayer(cmd.PlayerID)
	if p == nil || g.Phase != game.PhasePlaying || g.CurrentPlayer != cmd.PlayerID {
		return Effects{}
	}
	// Bets never move chips up front, so doubling is allowed only when the
	// stack covers the doubled bet in full. A doubled loss then settles to
	// exactly -bet without going negative.
	if p.Chips < p.Bet*2 {
		return Effects{}
	}

	p.Bet *= 2
	g.Pot += p.Bet / 2

	// Exactly one card, then the turn ends either way.
	p.Cards = append(p.Cards, g.Deck.Draw())
	p.Score = Score(p.Cards)

	if p.Score > game_constants.BustLimit {
		p.Status = game.StatusBust
		p.Chips -= p.Bet
		g.Message = fmt.Sprintf("%s busts after doubling down!", p.Name)
	} else {
		p.Status = game.StatusStand
		g.Message = fmt.Sprintf("%s doubles down and stands.", p.Name)
	}
	return advanceTurn(g)
}

// advanceTurn moves play to the next seat still in the hand, skipping bust
// and stand. When the scan wraps back to the current seat nobody is left to
// act and the dealer plays out.
func advanceTurn(g *game.Game) Effects {
	current := g.PlayerIndex(g.CurrentPlayer)
	if current < 0 {
		return Effects{Broadcast: true}
	}
	n := len(g.Players)
	for i := 1; i < n; i++ {
		p := g.Players[(current+i)%n]
		if p.Status == game.StatusPlaying {
			g.CurrentPlayer = p.ID
			g.Message = fmt.Sprintf("%s's turn.", p.Name)
			return Effects{Broadcast: true}
		}
	}
	return dealerPlay(g)
}

// dealerPlay runs the house hand to completion: hit while under 17, stand at
// 17 or more (hard 17 rule), then settle the round. Not a client action.
func dealerPlay(g *game.Game) Effects {
	g.Phase = game.PhaseDealerTurn
	g.CurrentPlayer = ""
	g.Message = "Dealer is playing..."

	for g.Dealer.Score < game_constants.DealerStandScore {
		g.Dealer.Cards = append(g.Dealer.Cards, g.Deck.Draw())
		g.Dealer.Score = Score(g.Dealer.Cards)
	}
	return settleRound(g)
}

func applyReset(g *game.Game) Effects {
	// Forced reset works from any phase.
	resetRound(g)
	return Effects{Broadcast: true, StopCountdown: true}
}

func applyNextGame(g *game.Game) Effects {
	if g.Phase != game.PhaseGameOver {
		return Effects{ErrorMessage: "Next game can only be started after the current game is over"}
	}
	resetRound(g)
	return Effects{Broadcast: true, StopCountdown: true}
}

func applyLeave(g *game.Game, cmd Command) Effects {
	for i, p := range g.WaitingPlayers {
		if p.ID == cmd.PlayerID {
			g.WaitingPlayers = append(g.WaitingPlayers[:i], g.WaitingPlayers[i+1:]...)
			g.Message = fmt.Sprintf("%s left the game.", p.Name)
			return leaveEffects(g, p)
		}
	}
	for i, p := range g.Players {
		if p.ID == cmd.PlayerID {
			g.Players = append(g.Players[:i], g.Players[i+1:]...)
			g.Message = fmt.Sprintf("%s left the game.", p.Name)
			// If this was the current player the hand stalls until a
			// reset; the turn pointer is left dangling on purpose.
			return leaveEffects(g, p)
		}
	}
	return Effects{}
}

func leaveEffects(g *game.Game, p *game.Player) Effects {
	if g.Empty() {
		return Effects{Left: p, RemoveGame: true, StopCountdown: true}
	}
	return Effects{Broadcast: true, Left: p}
}

// applyTick is driven by the countdown scheduler once per second while the
// table is in gameOver.
func applyTick(g *game.Game) Effects {
	if g.Phase != game.PhaseGameOver {
		// An explicit reset won the race; the ticker is stale.
		return Effects{StopCountdown: true}
	}
	g.ResetTimer--
	if g.ResetTimer <= 0 {
		resetRound(g)
		return Effects{Broadcast: true, StopCountdown: true}
	}
	return Effects{Broadcast: true}
}

// resetRound returns the table to the waiting phase. Chips carry over,
// everything else is per-round state; players admitted mid-round take their
// seats now.
func resetRound(g *game.Game) {
	for _, p := range g.Players {
		p.ResetForNextRound()
	}
	for _, p := range g.WaitingPlayers {
		p.ResetForNextRound()
		g.Players = append(g.Players, p)
	}
	g.WaitingPlayers = nil
	g.Dealer = game.Dealer{}
	g.Deck = game.NewDeck()
	g.Phase = game.PhaseWaiting
	g.Pot = 0
	g.CurrentBet = 0
	g.CurrentPlayer = ""
	g.Winners = nil
	g.ResetTimer = 0
	g.Message = "Game reset. Waiting for players to be ready..."
}
