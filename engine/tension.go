package engine

// Tension estimator: a purely advisory scalar in [0, 1] describing how
// close or contested the current situation is. Consumed by UI pacing and
// telemetry, never by rule enforcement.

// Tunable blend weights. They sum to 1 so the clamp only guards rounding.
const (
	tensionWeightProximity = 0.35 // leading team's closeness to the target
	tensionWeightMargin    = 0.25 // how close the two team scores are
	tensionWeightBid       = 0.15 // height of the contract
	tensionWeightLateness  = 0.10 // trick number within the round
	tensionWeightDanger    = 0.15 // bidder running behind bid pace
)

// ComputeTension scores the current game situation in [0, 1]. Pre-round
// phases (setup, dealer draw, dealing) are always 0.
func ComputeTension(g GameState) float64 {
	switch g.Phase {
	case PhaseSetup, PhaseDealerDraw, PhaseDealing:
		return 0
	}

	target := float64(g.TargetScore)
	best := 0.0
	for _, t := range g.Teams {
		if p := float64(t.Score) / target; p > best {
			best = p
		}
	}
	proximity := clamp01(best)

	gap := float64(g.Teams[0].Score - g.Teams[1].Score)
	if gap < 0 {
		gap = -gap
	}
	margin := clamp01(1 - gap/target)

	bid := 0.0
	if g.HighBid > 0 {
		bid = float64(g.HighBid-MinBid) / float64(MaxBid-MinBid)
	}

	lateness := 0.0
	if g.Phase == PhasePlaying || g.Phase == PhaseScoring {
		lateness = clamp01(float64(g.TrickNumber) / float64(TricksPerRound))
	}

	danger := bidderDanger(g, lateness)

	v := tensionWeightProximity*proximity +
		tensionWeightMargin*margin +
		tensionWeightBid*bid +
		tensionWeightLateness*lateness +
		tensionWeightDanger*danger
	return clamp01(v)
}

// bidderDanger estimates whether the bidding team is running behind the
// pace its bid requires, weighted toward the end of the round where a set
// becomes hard to escape.
func bidderDanger(g GameState, lateness float64) float64 {
	if g.Phase != PhasePlaying || g.BidderID == "" || g.TrumpSuit == nil {
		return 0
	}
	bidderTeam := g.TeamOfPlayer(g.BidderID)
	secured := float64(EstimateRunningPoints(g.Players, bidderTeam, g.TrumpSuit))
	pace := float64(g.HighBid) * float64(g.TrickNumber-1) / float64(TricksPerRound)
	if secured >= pace {
		return 0
	}
	shortfall := clamp01((pace - secured) / float64(g.HighBid))
	return shortfall * lateness
}

// EstimateRunningPoints sums the High/Low/Jack/Five point-equivalents a
// team has already captured mid-round, applying the same categorical rules
// as round scoring to the partial capture information: High and Low
// compare only among trump captured so far.
func EstimateRunningPoints(players [4]Player, teamID int, trump *Suit) int {
	if trump == nil {
		return 0
	}
	var highCard, lowCard *Card
	highTeam, lowTeam := -1, -1
	points := 0

	for i := range players {
		for _, c := range players[i].TricksWon {
			if c.Suit != *trump {
				continue
			}
			if highCard == nil || c.Rank > highCard.Rank {
				card := c
				highCard = &card
				highTeam = players[i].TeamID
			}
			if lowCard == nil || c.Rank < lowCard.Rank {
				card := c
				lowCard = &card
				lowTeam = players[i].TeamID
			}
			if c.Rank == Jack && players[i].TeamID == teamID {
				points += JackPoints
			}
			if c.Rank == Five && players[i].TeamID == teamID {
				points += FivePoints
			}
		}
	}
	if highTeam == teamID {
		points += HighPoints
	}
	if lowTeam == teamID {
		points += LowPoints
	}
	return points
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
