package engine

import "testing"

// TestComputeTensionPreRoundPhases: nothing is at stake before the deal.
func TestComputeTensionPreRoundPhases(t *testing.T) {
	g := NewGame("blue", 0, 1)
	for _, phase := range []Phase{PhaseSetup, PhaseDealerDraw, PhaseDealing} {
		g.Phase = phase
		if v := ComputeTension(g); v != 0 {
			t.Errorf("phase %s: expected 0, got %f", phase, v)
		}
	}
}

// TestComputeTensionBounded: the estimate stays in [0, 1] across extreme
// score configurations.
func TestComputeTensionBounded(t *testing.T) {
	cases := [][2]int{{0, 0}, {30, 30}, {-9, 30}, {30, -9}, {-18, -18}, {40, 2}}
	for _, scores := range cases {
		g := NewGame("blue", 31, 1)
		g.Phase = PhasePlaying
		g.Teams[0].Score = scores[0]
		g.Teams[1].Score = scores[1]
		g.HighBid = MaxBid
		g.TrickNumber = TricksPerRound

		v := ComputeTension(g)
		if v < 0 || v > 1 {
			t.Errorf("scores %v: tension %f out of range", scores, v)
		}
	}
}

// TestComputeTensionRisesNearTarget: a team near the target is tenser than
// a fresh game.
func TestComputeTensionRisesNearTarget(t *testing.T) {
	early := NewGame("blue", 31, 1)
	early.Phase = PhaseBidding

	late := early.clone()
	late.Teams[0].Score = 29
	late.Teams[1].Score = 27

	if ComputeTension(late) <= ComputeTension(early) {
		t.Error("near-target game should be tenser than a fresh one")
	}
}

// TestComputeTensionBidderBehindPace: a bidder with nothing secured late in
// the round raises tension above the same position with the bid in hand.
func TestComputeTensionBidderBehindPace(t *testing.T) {
	s := Spades
	behind := NewGame("blue", 31, 1)
	behind.Phase = PhasePlaying
	behind.TrumpSuit = &s
	behind.HighBid = MaxBid
	behind.BidderID = behind.Players[0].ID
	behind.TrickNumber = 5

	secured := behind.clone()
	// Bidding team (seats 0 and 2) captured the Five and the round's top and
	// bottom trump so far.
	secured.Players[0].TricksWon = []Card{
		NewCard(Ace, Spades), NewCard(Five, Spades), NewCard(Two, Spades),
	}

	if ComputeTension(behind) <= ComputeTension(secured) {
		t.Error("bidder behind pace should be tenser than bidder on pace")
	}
}

// TestEstimateRunningPointsPartialCapture applies the category rules to
// mid-round captures.
func TestEstimateRunningPointsPartialCapture(t *testing.T) {
	players, _ := makeCapturedRound([4][]Card{
		{NewCard(King, Spades), NewCard(Five, Spades)}, // team 0
		{NewCard(Three, Spades)},                       // team 1
		{},
		{},
	})
	trump := suitPtr(Spades)

	// Team 0: High (KS so far) + Five = 6. Low (3S) belongs to team 1.
	if got := EstimateRunningPoints(players, 0, trump); got != HighPoints+FivePoints {
		t.Errorf("team 0: expected %d, got %d", HighPoints+FivePoints, got)
	}
	if got := EstimateRunningPoints(players, 1, trump); got != LowPoints {
		t.Errorf("team 1: expected %d, got %d", LowPoints, got)
	}
}

// TestEstimateRunningPointsNilTrump never panics and scores nothing.
func TestEstimateRunningPointsNilTrump(t *testing.T) {
	players, _ := makeCapturedRound([4][]Card{{NewCard(Ace, Spades)}, {}, {}, {}})
	if got := EstimateRunningPoints(players, 0, nil); got != 0 {
		t.Errorf("expected 0 with no trump, got %d", got)
	}
}
