package engine

import (
	"fmt"
	"sort"
)

// Seat identity and display defaults. Team 0 holds seats 0/2, team 1
// holds seats 1/3.
var (
	defaultNames = [4]string{"North", "East", "South", "West"}
	defaultTeams = [2]string{"North/South", "East/West"}
)

// NewGame returns a fresh game in the setup phase with the full deck in
// the stock. Callers may adjust player names and IsHuman flags on the
// returned value before starting the dealer draw.
func NewGame(deckColor string, targetScore int, seed uint64) GameState {
	if targetScore <= 0 {
		targetScore = DefaultTargetScore
	}
	var g GameState
	g.Phase = PhaseSetup
	g.DeckColor = deckColor
	g.TargetScore = targetScore
	g.RNG = seed
	if g.RNG == 0 {
		g.RNG = 1 // xorshift can't start at 0
	}
	for i := 0; i < NumPlayers; i++ {
		g.Players[i] = Player{
			ID:     fmt.Sprintf("seat-%d", i),
			Name:   defaultNames[i],
			TeamID: i % NumTeams,
		}
	}
	for t := 0; t < NumTeams; t++ {
		g.Teams[t] = Team{
			ID:        t,
			Name:      defaultTeams[t],
			PlayerIDs: [2]string{g.Players[t].ID, g.Players[t+2].ID},
		}
	}
	g.Stock = NewDeck()
	g.DealerIndex = -1
	return g
}

// StartDealerDraw moves a setup-phase game into the dealer draw. Silent
// no-op in any other phase.
func StartDealerDraw(g GameState) GameState {
	if g.Phase != PhaseSetup {
		return g
	}
	next := g.clone()
	next.Phase = PhaseDealerDraw
	return next
}

// FinalizeDealerDraw resolves the dealer draw: each seat is assigned one
// card off a shuffled deck and the highest card deals. Rank ties break by
// suit order so the result is always unique. The draw is recorded in
// DealerDraw for display and the same call proceeds straight through
// dealing. Silent no-op outside the dealer-draw phase.
func FinalizeDealerDraw(g GameState) GameState {
	if g.Phase != PhaseDealerDraw {
		return g
	}
	next := g.clone()
	next.shuffleInPlace(next.Stock)

	next.DealerDraw = append([]Card(nil), next.Stock[:NumPlayers]...)
	dealer := 0
	for i := 1; i < NumPlayers; i++ {
		if drawKey(next.DealerDraw[i]) > drawKey(next.DealerDraw[dealer]) {
			dealer = i
		}
	}
	next.DealerIndex = dealer
	next.Phase = PhaseDealing
	return DealCards(next)
}

// drawKey orders dealer-draw cards: rank first, suit as tiebreak.
func drawKey(c Card) int { return int(c.Rank)*4 + int(c.Suit) }

// DealCards shuffles the stock and deals nine cards to each seat,
// clockwise from the dealer's left, leaving sixteen in the stock. Bidding
// opens with the seat after the dealer. Silent no-op outside dealing.
func DealCards(g GameState) GameState {
	if g.Phase != PhaseDealing {
		return g
	}
	next := g.clone()
	next.shuffleInPlace(next.Stock)

	for c := 0; c < DealtHandSize; c++ {
		for off := 1; off <= NumPlayers; off++ {
			seat := (next.DealerIndex + off) % NumPlayers
			top := len(next.Stock) - 1
			next.Players[seat].Hand = append(next.Players[seat].Hand, next.Stock[top])
			next.Stock = next.Stock[:top]
		}
	}

	next.Phase = PhaseBidding
	next.CurrentPlayerIndex = nextSeat(next.DealerIndex)
	return next
}

// ProcessBid applies a bid for the current seat: 0 to pass, or an amount
// in [MinBid, MaxBid] strictly above the current high bid. Each seat bids
// exactly once, clockwise from the dealer's left. When the dealer would
// pass after three passes, the bid is converted into the forced minimum:
// the round cannot proceed with no bidder. The last bid moves the game to
// trump selection with the bidder holding the lead.
func ProcessBid(g GameState, amount int) (GameState, error) {
	if g.Phase != PhaseBidding {
		return g, fmt.Errorf("bid: not in bidding phase (phase %s)", g.Phase)
	}
	seat := g.CurrentPlayerIndex
	if g.Players[seat].Bid != nil {
		return g, fmt.Errorf("bid: seat %d has already bid this round", seat)
	}

	forced := false
	if amount == 0 {
		if seat == g.DealerIndex && g.HighBid == 0 {
			// Dealer cannot pass out the round.
			amount = MinBid
			forced = true
		}
	} else {
		if amount < MinBid || amount > MaxBid {
			return g, fmt.Errorf("bid: amount %d outside [%d, %d]", amount, MinBid, MaxBid)
		}
		if amount <= g.HighBid {
			return g, fmt.Errorf("bid: amount %d does not beat high bid %d", amount, g.HighBid)
		}
	}

	next := g.clone()
	bid := amount
	next.Players[seat].Bid = &bid
	if amount > 0 {
		next.HighBid = amount
		next.BidderID = next.Players[seat].ID
		next.WasForcedBid = forced
	}

	if next.bidsPlaced() == NumPlayers {
		bidderSeat := next.PlayerIndexByID(next.BidderID)
		next.Phase = PhaseTrumpSelection
		next.CurrentPlayerIndex = bidderSeat
		next.LeadPlayerIndex = bidderSeat
		return next, nil
	}
	next.CurrentPlayerIndex = nextSeat(seat)
	return next, nil
}

// bidsPlaced counts seats that have bid this round.
func (g *GameState) bidsPlaced() int {
	n := 0
	for i := range g.Players {
		if g.Players[i].Bid != nil {
			n++
		}
	}
	return n
}

// SelectTrump records the bidder's trump suit and moves to the trump
// discard step.
func SelectTrump(g GameState, suit Suit) (GameState, error) {
	if g.Phase != PhaseTrumpSelection {
		return g, fmt.Errorf("select trump: not in trump selection phase (phase %s)", g.Phase)
	}
	if !suit.Valid() {
		return g, fmt.Errorf("select trump: invalid suit %d", int(suit))
	}
	next := g.clone()
	s := suit
	next.TrumpSuit = &s
	next.Phase = PhaseDiscardTrump
	return next, nil
}

// DiscardTrumpCard discards one card from the bidder's hand to the discard
// pile. The card must be of the trump suit unless the bidder holds no
// trump at all.
func DiscardTrumpCard(g GameState, card Card) (GameState, error) {
	if g.Phase != PhaseDiscardTrump {
		return g, fmt.Errorf("discard trump: not in discard phase (phase %s)", g.Phase)
	}
	seat := g.PlayerIndexByID(g.BidderID)
	if seat < 0 {
		return g, fmt.Errorf("discard trump: no bidder recorded")
	}
	if _, ok := handContains(g.Players[seat].Hand, card.ID); !ok {
		return g, fmt.Errorf("discard trump: card %s not in bidder's hand", card.ID)
	}
	if g.TrumpSuit != nil && card.Suit != *g.TrumpSuit && holdsSuit(g.Players[seat].Hand, *g.TrumpSuit) {
		return g, fmt.Errorf("discard trump: %s is not a trump card", card.ID)
	}

	next := g.clone()
	removeCard(&next.Players[seat].Hand, card.ID)
	next.DiscardPile = append(next.DiscardPile, card)
	next.Phase = PhasePurgeDraw
	return next, nil
}

func holdsSuit(hand []Card, suit Suit) bool {
	for _, c := range hand {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

// PerformPurgeAndDraw sleeps every non-trump card in every hand, then
// draws each hand back to six cards, clockwise from the dealer's left.
// The stock replenishes from the discard pile and then the slept pool when
// it runs dry, so the draw can always complete. A hand holding more than
// six trump sleeps its lowest trumps instead. Every hand holds exactly six
// cards afterward and the game enters play with the bidder on lead.
// Silent no-op outside the purge-draw phase.
func PerformPurgeAndDraw(g GameState) GameState {
	if g.Phase != PhasePurgeDraw {
		return g
	}
	next := g.clone()
	trump := *next.TrumpSuit

	for i := range next.Players {
		kept := next.Players[i].Hand[:0:0]
		for _, c := range next.Players[i].Hand {
			if c.Suit == trump {
				kept = append(kept, c)
			} else {
				next.SleptCards = append(next.SleptCards, c)
			}
		}
		next.Players[i].Hand = kept
	}

	for off := 1; off <= NumPlayers; off++ {
		seat := (next.DealerIndex + off) % NumPlayers
		hand := &next.Players[seat].Hand

		// Overflow: more than six trump means the weakest sleep.
		for len(*hand) > PlayHandSize {
			low := 0
			for i := 1; i < len(*hand); i++ {
				if (*hand)[i].Rank < (*hand)[low].Rank {
					low = i
				}
			}
			next.SleptCards = append(next.SleptCards, (*hand)[low])
			*hand = append((*hand)[:low], (*hand)[low+1:]...)
		}

		for len(*hand) < PlayHandSize {
			card, ok := next.drawFromStock()
			if !ok {
				break
			}
			*hand = append(*hand, card)
		}
	}

	bidderSeat := next.PlayerIndexByID(next.BidderID)
	next.Phase = PhasePlaying
	next.TrickNumber = 1
	next.CurrentTrick = nil
	next.CurrentPlayerIndex = bidderSeat
	next.LeadPlayerIndex = bidderSeat
	return next
}

// drawFromStock pops the top stock card, reshuffling the discard pile and
// then the slept pool into the stock when empty.
func (g *GameState) drawFromStock() (Card, bool) {
	if len(g.Stock) == 0 && len(g.DiscardPile) > 0 {
		g.Stock = append(g.Stock, g.DiscardPile...)
		g.DiscardPile = nil
		g.shuffleInPlace(g.Stock)
	}
	if len(g.Stock) == 0 && len(g.SleptCards) > 0 {
		g.Stock = append(g.Stock, g.SleptCards...)
		g.SleptCards = nil
		g.shuffleInPlace(g.Stock)
	}
	if len(g.Stock) == 0 {
		return Card{}, false
	}
	top := len(g.Stock) - 1
	card := g.Stock[top]
	g.Stock = g.Stock[:top]
	return card, true
}

// PlayCard plays a card for the current seat. The play must be legal under
// CanPlayCard. A fourth card resolves the trick: the winner captures all
// four cards, the trick is recorded for replay, and the winner leads the
// next trick. After the sixth trick the round is scored, the set penalty
// applied, and the game moves to the scoring phase.
func PlayCard(g GameState, card Card) (GameState, error) {
	if g.Phase != PhasePlaying {
		return g, fmt.Errorf("play: not in playing phase (phase %s)", g.Phase)
	}
	seat := g.CurrentPlayerIndex
	hand := g.Players[seat].Hand
	if _, ok := handContains(hand, card.ID); !ok {
		return g, fmt.Errorf("play: card %s not in seat %d's hand", card.ID, seat)
	}
	if !CanPlayCard(card, hand, g.CurrentTrick, g.TrumpSuit) {
		return g, fmt.Errorf("play: card %s is not a legal play", card.ID)
	}

	next := g.clone()
	removeCard(&next.Players[seat].Hand, card.ID)
	next.CurrentTrick = append(next.CurrentTrick, TrickPlay{
		PlayerID: next.Players[seat].ID,
		Card:     card,
	})

	if len(next.CurrentTrick) < NumPlayers {
		next.CurrentPlayerIndex = nextSeat(seat)
		return next, nil
	}

	winnerID := DetermineTrickWinner(next.CurrentTrick, next.TrumpSuit)
	winnerSeat := next.PlayerIndexByID(winnerID)
	for _, tp := range next.CurrentTrick {
		next.Players[winnerSeat].TricksWon = append(next.Players[winnerSeat].TricksWon, tp.Card)
	}
	next.LastTrick = next.CurrentTrick
	next.LastTrickWinnerID = winnerID
	next.CurrentTrick = nil
	next.CurrentPlayerIndex = winnerSeat
	next.LeadPlayerIndex = winnerSeat

	if next.TrickNumber >= TricksPerRound {
		next.scoreRound()
		return next, nil
	}
	next.TrickNumber++
	return next, nil
}

// scoreRound computes the categorical scores, applies the set penalty, and
// updates the running team totals. This is the only place team scores
// change.
func (g *GameState) scoreRound() {
	breakdown := CalculateRoundScores(g.Players, g.Teams, g.TrumpSuit)
	applySetPenalty(&breakdown, g.TeamOfPlayer(g.BidderID), g.HighBid)

	g.RoundScores = copyIntMap(breakdown.TeamChanges)
	for i := range g.Teams {
		g.Teams[i].Score += breakdown.TeamChanges[g.Teams[i].ID]
	}
	g.RoundResult = &breakdown
	g.Phase = PhaseScoring
}

// CheckGameOver reports whether a team has reached the target score. Only
// meaningful at or after scoring.
func CheckGameOver(g GameState) bool {
	for _, t := range g.Teams {
		if t.Score >= g.TargetScore {
			return true
		}
	}
	return false
}

// WinningTeam returns a copy of the winning team, or nil while no team
// has reached the target. When both teams cross the target in the same
// round, the bidder's team wins if and only if it made its bid; otherwise
// the higher-scoring team wins, with a score tie going against the set
// bidder.
func WinningTeam(g GameState) *Team {
	var over []Team
	for _, t := range g.Teams {
		if t.Score >= g.TargetScore {
			over = append(over, t)
		}
	}
	switch len(over) {
	case 0:
		return nil
	case 1:
		t := over[0]
		return &t
	}

	bidderTeam := g.TeamOfPlayer(g.BidderID)
	if g.RoundResult != nil && g.RoundResult.BidMade {
		t := *g.TeamByID(bidderTeam)
		return &t
	}
	if over[0].Score != over[1].Score {
		t := over[0]
		if over[1].Score > over[0].Score {
			t = over[1]
		}
		return &t
	}
	for _, t := range over {
		if t.ID != bidderTeam {
			winner := t
			return &winner
		}
	}
	t := over[0]
	return &t
}

// StartNewRound carries teams and scores into the next round: the deal
// rotates, every per-round field resets, and a fresh deck is dealt. The
// round opens directly in bidding. Silent no-op outside scoring.
func StartNewRound(g GameState) GameState {
	if g.Phase != PhaseScoring {
		return g
	}
	next := g.clone()
	next.DealerIndex = nextSeat(next.DealerIndex)
	next.resetRound()
	next.Phase = PhaseDealing
	return DealCards(next)
}

// resetRound clears all per-round state and returns the full deck to the
// stock. Teams, scores, dealer, deck color, and the RNG stream carry over.
func (g *GameState) resetRound() {
	for i := range g.Players {
		g.Players[i].Hand = nil
		g.Players[i].TricksWon = nil
		g.Players[i].Bid = nil
	}
	g.TrumpSuit = nil
	g.HighBid = 0
	g.BidderID = ""
	g.WasForcedBid = false
	g.CurrentTrick = nil
	g.TrickNumber = 0
	g.LeadPlayerIndex = 0
	g.RoundScores = nil
	g.RoundResult = nil
	g.Stock = NewDeck()
	g.DiscardPile = nil
	g.SleptCards = nil
	g.LastTrick = nil
	g.LastTrickWinnerID = ""
	g.DealerDraw = nil
	g.TurnStartTime = nil
}

// Continue advances past a completed round or game. From scoring it either
// starts the next round or, when a team has reached the target, ends the
// game. From game-over it produces a brand-new game with the same seats
// and settings but reset scores. Silent no-op in any other phase.
func Continue(g GameState) GameState {
	switch g.Phase {
	case PhaseScoring:
		if CheckGameOver(g) {
			next := g.clone()
			next.Phase = PhaseGameOver
			return next
		}
		return StartNewRound(g)
	case PhaseGameOver:
		fresh := NewGame(g.DeckColor, g.TargetScore, g.RNG)
		fresh.nextRand() // decorrelate the new game's shuffles
		for i := range fresh.Players {
			fresh.Players[i].Name = g.Players[i].Name
			fresh.Players[i].IsHuman = g.Players[i].IsHuman
		}
		for t := range fresh.Teams {
			fresh.Teams[t].Name = g.Teams[t].Name
		}
		return fresh
	default:
		return g
	}
}

// SortHand sorts the given seat's hand for display: trump grouped first in
// descending rank once trump is chosen, then the remaining suits in fixed
// order, descending rank within each. Silent no-op for an invalid seat.
func SortHand(g GameState, seat int) GameState {
	if seat < 0 || seat >= NumPlayers {
		return g
	}
	next := g.clone()
	hand := next.Players[seat].Hand
	key := func(c Card) int {
		k := int(c.Suit)*100 + (100 - int(c.Rank))
		if next.TrumpSuit != nil && c.Suit == *next.TrumpSuit {
			k -= 1000
		}
		return k
	}
	sort.SliceStable(hand, func(i, j int) bool { return key(hand[i]) < key(hand[j]) })
	return next
}
