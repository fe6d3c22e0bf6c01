package engine

// ScoreBreakdown is the category-by-category result of a round, for the
// scoring transition and UI display. Team fields hold a team ID or -1 when
// the category was not awarded.
type ScoreBreakdown struct {
	HighTeam int    `json:"highTeam"`
	HighCard string `json:"highCard"`
	LowTeam  int    `json:"lowTeam"`
	LowCard  string `json:"lowCard"`
	JackTeam int    `json:"jackTeam"`
	FiveTeam int    `json:"fiveTeam"`

	// GameTeam wins the Game point on a strict majority of game count; a
	// tie awards it to neither team.
	GameTeam   int         `json:"gameTeam"`
	GameCounts map[int]int `json:"gameCounts"`

	// TeamPoints maps team ID to categorical points earned this round,
	// before the set penalty.
	TeamPoints map[int]int `json:"teamPoints"`

	BidderTeam int  `json:"bidderTeam"`
	BidAmount  int  `json:"bidAmount"`
	BidMade    bool `json:"bidMade"`

	// TeamChanges maps team ID to the signed score change applied to the
	// running total: earned points, or -BidAmount for a set bidder team.
	TeamChanges map[int]int `json:"teamChanges"`
}

// CalculateRoundScores computes the five categorical points over all cards
// captured in TricksWon this round. High and Low go to the team holding
// the highest and lowest captured trump; Jack and Five go to the team that
// captured the Jack and Five of trump, when captured at all; Game goes to
// the team with the strictly higher game count across every captured card
// regardless of suit. Cards that were never captured (left in the stock or
// slept pool) award nothing.
//
// The set penalty is not applied here; see the scoring transition.
func CalculateRoundScores(players [4]Player, teams [2]Team, trump *Suit) ScoreBreakdown {
	result := ScoreBreakdown{
		HighTeam:   -1,
		LowTeam:    -1,
		JackTeam:   -1,
		FiveTeam:   -1,
		GameTeam:   -1,
		BidderTeam: -1,
		GameCounts: make(map[int]int, NumTeams),
		TeamPoints: make(map[int]int, NumTeams),
	}
	for _, t := range teams {
		result.GameCounts[t.ID] = 0
		result.TeamPoints[t.ID] = 0
	}
	if trump == nil {
		return result
	}

	var highCard, lowCard *Card
	for i := range players {
		teamID := players[i].TeamID
		for _, c := range players[i].TricksWon {
			result.GameCounts[teamID] += c.Rank.GamePoints()
			if c.Suit != *trump {
				continue
			}
			if highCard == nil || c.Rank > highCard.Rank {
				card := c
				highCard = &card
				result.HighTeam = teamID
			}
			if lowCard == nil || c.Rank < lowCard.Rank {
				card := c
				lowCard = &card
				result.LowTeam = teamID
			}
			if c.Rank == Jack {
				result.JackTeam = teamID
			}
			if c.Rank == Five {
				result.FiveTeam = teamID
			}
		}
	}
	if highCard != nil {
		result.HighCard = highCard.ID
	}
	if lowCard != nil {
		result.LowCard = lowCard.ID
	}

	c0 := result.GameCounts[teams[0].ID]
	c1 := result.GameCounts[teams[1].ID]
	if c0 > c1 {
		result.GameTeam = teams[0].ID
	} else if c1 > c0 {
		result.GameTeam = teams[1].ID
	}

	if result.HighTeam >= 0 {
		result.TeamPoints[result.HighTeam] += HighPoints
	}
	if result.LowTeam >= 0 {
		result.TeamPoints[result.LowTeam] += LowPoints
	}
	if result.JackTeam >= 0 {
		result.TeamPoints[result.JackTeam] += JackPoints
	}
	if result.FiveTeam >= 0 {
		result.TeamPoints[result.FiveTeam] += FivePoints
	}
	if result.GameTeam >= 0 {
		result.TeamPoints[result.GameTeam] += GamePoints
	}
	return result
}

// applySetPenalty fills in the bid outcome and the signed per-team score
// changes. A bidder team earning fewer points than its bid contributes
// exactly -bid to its running score, regardless of what it earned; the
// opposing team always keeps its earned points.
func applySetPenalty(result *ScoreBreakdown, bidderTeam, bidAmount int) {
	result.BidderTeam = bidderTeam
	result.BidAmount = bidAmount
	result.BidMade = result.TeamPoints[bidderTeam] >= bidAmount
	result.TeamChanges = make(map[int]int, NumTeams)
	for teamID, pts := range result.TeamPoints {
		if teamID == bidderTeam && !result.BidMade {
			result.TeamChanges[teamID] = -bidAmount
		} else {
			result.TeamChanges[teamID] = pts
		}
	}
}
