// Package sim runs seeded CPU-vs-CPU Catch Five games through the public
// engine transitions, re-checking the card conservation invariant after
// every step. It exists both as a soak test for the engine and as the
// repo's process surface for tuning the agent heuristics.
package sim

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/PGD3311/Catch-Five-Arena-sub001/engine"
	"github.com/PGD3311/Catch-Five-Arena-sub001/engine/agent"
)

// maxSteps bounds a single game so an engine bug cannot hang a batch.
const maxSteps = 10000

// Config controls a simulated game or batch.
type Config struct {
	Seed        uint64
	DeckColor   string
	TargetScore int
	Logger      *logrus.Logger
}

func (c Config) logger() *logrus.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logrus.StandardLogger()
}

// Result is the outcome of one simulated game.
type Result struct {
	GameID      uuid.UUID
	WinnerTeam  int
	Rounds      int
	Sets        int // rounds in which the bidding team was set
	FinalScores map[int]int
	Tension     float64 // final tension reading before game over
}

// Stats aggregates a batch of games.
type Stats struct {
	Games     int
	TeamWins  map[int]int
	AvgRounds float64
	SetRate   float64
}

// RunGame plays one full game with every seat driven by the agent
// heuristics, invoking the exact transitions a human seat would. The
// conservation invariant is validated after every transition; a violation
// aborts the game with an error.
func RunGame(cfg Config) (Result, error) {
	log := cfg.logger()
	res := Result{GameID: uuid.New(), WinnerTeam: -1}

	g := engine.NewGame(cfg.DeckColor, cfg.TargetScore, cfg.Seed)
	g = engine.StartDealerDraw(g)
	g = engine.FinalizeDealerDraw(g)
	if err := engine.ValidateNoDuplicates(g, "deal"); err != nil {
		return res, err
	}

	for step := 0; step < maxSteps; step++ {
		var err error
		context := string(g.Phase)

		switch g.Phase {
		case engine.PhaseBidding:
			g, err = stepBid(g)

		case engine.PhaseTrumpSelection:
			bidder := g.Players[g.PlayerIndexByID(g.BidderID)]
			g, err = engine.SelectTrump(g, agent.TrumpChoice(bidder.Hand, g.WasForcedBid))

		case engine.PhaseDiscardTrump:
			bidder := g.Players[g.PlayerIndexByID(g.BidderID)]
			g, err = engine.DiscardTrumpCard(g, agent.TrumpToDiscard(bidder.Hand, *g.TrumpSuit))

		case engine.PhasePurgeDraw:
			g = engine.PerformPurgeAndDraw(g)

		case engine.PhasePlaying:
			res.Tension = engine.ComputeTension(g)
			g, err = stepPlay(g)

		case engine.PhaseScoring:
			res.Rounds++
			if g.RoundResult != nil && !g.RoundResult.BidMade {
				res.Sets++
			}
			log.WithFields(logrus.Fields{
				"game":   res.GameID,
				"round":  res.Rounds,
				"scores": g.RoundScores,
				"bid":    g.HighBid,
				"made":   g.RoundResult != nil && g.RoundResult.BidMade,
			}).Debug("round scored")
			g = engine.Continue(g)

		case engine.PhaseGameOver:
			winner := engine.WinningTeam(g)
			if winner != nil {
				res.WinnerTeam = winner.ID
			}
			res.FinalScores = map[int]int{
				g.Teams[0].ID: g.Teams[0].Score,
				g.Teams[1].ID: g.Teams[1].Score,
			}
			return res, nil

		default:
			return res, fmt.Errorf("sim: unexpected phase %s", g.Phase)
		}

		if err != nil {
			return res, fmt.Errorf("sim: step %d (%s): %w", step, context, err)
		}
		if err := engine.ValidateNoDuplicates(g, context); err != nil {
			return res, err
		}
	}
	return res, fmt.Errorf("sim: game exceeded %d steps without finishing", maxSteps)
}

// stepBid drives one bidding turn through the agent.
func stepBid(g engine.GameState) (engine.GameState, error) {
	seat := g.CurrentPlayerIndex
	placed := 0
	for i := range g.Players {
		if g.Players[i].Bid != nil {
			placed++
		}
	}
	isDealer := seat == g.DealerIndex
	allOthersPassed := placed == engine.NumPlayers-1 && g.HighBid == 0
	amount := agent.Bid(g.Players[seat].Hand, g.HighBid, isDealer, allOthersPassed)
	return engine.ProcessBid(g, amount)
}

// stepPlay drives one card play through the agent.
func stepPlay(g engine.GameState) (engine.GameState, error) {
	seat := g.CurrentPlayerIndex
	p := g.Players[seat]
	card := agent.CardToPlay(p.ID, p.Hand, g.CurrentTrick, g.TrumpSuit, partnerID(&g, seat))
	return engine.PlayCard(g, card)
}

// partnerID returns the teammate's player ID for a seat.
func partnerID(g *engine.GameState, seat int) string {
	team := g.TeamByID(g.Players[seat].TeamID)
	if team == nil {
		return ""
	}
	for _, id := range team.PlayerIDs {
		if id != g.Players[seat].ID {
			return id
		}
	}
	return ""
}

// RunBatch plays n seeded games and aggregates the outcomes. Game seeds
// derive deterministically from cfg.Seed so batches replay exactly.
func RunBatch(cfg Config, n int) (Stats, error) {
	log := cfg.logger()
	stats := Stats{TeamWins: make(map[int]int)}

	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}
	totalRounds, totalSets := 0, 0
	for i := 0; i < n; i++ {
		// splitmix-style stream of per-game seeds
		seed += 0x9E3779B97F4A7C15
		gameCfg := cfg
		gameCfg.Seed = seed

		res, err := RunGame(gameCfg)
		if err != nil {
			return stats, fmt.Errorf("game %d: %w", i, err)
		}
		stats.Games++
		stats.TeamWins[res.WinnerTeam]++
		totalRounds += res.Rounds
		totalSets += res.Sets

		log.WithFields(logrus.Fields{
			"game":   res.GameID,
			"winner": res.WinnerTeam,
			"rounds": res.Rounds,
			"sets":   res.Sets,
			"scores": res.FinalScores,
		}).Info("game finished")
	}

	if stats.Games > 0 {
		stats.AvgRounds = float64(totalRounds) / float64(stats.Games)
	}
	if totalRounds > 0 {
		stats.SetRate = float64(totalSets) / float64(totalRounds)
	}
	return stats, nil
}
