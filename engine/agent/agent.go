// Package agent provides CPU decision heuristics for Catch Five seats.
//
// Every function is pure and operates only on information the seat could
// see at the table: its own hand, the trick so far, and public bid state.
// The heuristics are advisory, since any legal choice satisfies the
// engine, but they never return an illegal card or an out-of-range bid.
package agent

import (
	engine "github.com/PGD3311/Catch-Five-Arena-sub001/engine"
)

// caliber weights a rank's worth when evaluating a suit as candidate
// trump. The Five dominates (worth 5 points captured), then the point
// cards and top ranks.
func caliber(r engine.Rank) int {
	switch r {
	case engine.Five:
		return 5
	case engine.Ace:
		return 3
	case engine.King:
		return 3
	case engine.Jack:
		return 3
	case engine.Queen:
		return 2
	case engine.Ten:
		return 1
	default:
		return 1
	}
}

// suitStrength scores hand as if suit were trump.
func suitStrength(hand []engine.Card, suit engine.Suit) int {
	s := 0
	for _, c := range hand {
		if c.Suit == suit {
			s += caliber(c.Rank)
		}
	}
	return s
}

// bestSuit returns the strongest candidate trump suit and its strength.
// Ties break toward the suit with more cards, then fixed suit order.
func bestSuit(hand []engine.Card) (engine.Suit, int) {
	best := engine.Hearts
	bestScore := -1
	bestCount := -1
	for _, s := range engine.Suits {
		score := suitStrength(hand, s)
		count := 0
		for _, c := range hand {
			if c.Suit == s {
				count++
			}
		}
		if score > bestScore || (score == bestScore && count > bestCount) {
			best, bestScore, bestCount = s, score, count
		}
	}
	return best, bestScore
}

// Bid chooses a bid for the seat: 0 to pass, or an amount above
// currentHighBid within the engine's bounds. A dealer facing three passes
// is forced and always returns at least the minimum.
func Bid(hand []engine.Card, currentHighBid int, isDealer, allOthersPassed bool) int {
	_, strength := bestSuit(hand)

	// Roughly: a strength of 6 (three ordinary trump) justifies the floor,
	// every two strength above that buys one more point of bid.
	bid := 0
	if strength >= 6 {
		bid = engine.MinBid + (strength-6)/2
	}
	if bid > engine.MaxBid {
		bid = engine.MaxBid
	}
	if bid <= currentHighBid {
		bid = 0
	}

	if bid == 0 && isDealer && allOthersPassed && currentHighBid == 0 {
		return engine.MinBid
	}
	return bid
}

// TrumpChoice picks the trump suit for the winning bidder: the suit the
// hand is strongest in. A forced bid considers every suit; a voluntary
// bid prefers suits held at least three deep, falling back to the overall
// best when none qualifies.
func TrumpChoice(hand []engine.Card, wasForcedBid bool) engine.Suit {
	overall, _ := bestSuit(hand)
	if wasForcedBid {
		return overall
	}
	best := overall
	bestScore := -1
	for _, s := range engine.Suits {
		count := 0
		for _, c := range hand {
			if c.Suit == s {
				count++
			}
		}
		if count < 3 {
			continue
		}
		if score := suitStrength(hand, s); score > bestScore {
			best, bestScore = s, score
		}
	}
	return best
}

// TrumpToDiscard picks the trump card the bidder can best spare: the
// lowest caliber, lowest rank trump held. A hand with no trump at all
// (the engine permits the discard then) gives up its lowest card.
func TrumpToDiscard(hand []engine.Card, trump engine.Suit) engine.Card {
	pool := make([]engine.Card, 0, len(hand))
	for _, c := range hand {
		if c.Suit == trump {
			pool = append(pool, c)
		}
	}
	if len(pool) == 0 {
		pool = hand
	}
	worst := pool[0]
	for _, c := range pool[1:] {
		if discardKey(c) < discardKey(worst) {
			worst = c
		}
	}
	return worst
}

func discardKey(c engine.Card) int { return caliber(c.Rank)*16 + int(c.Rank) }

// CardToPlay chooses a legal card for the seat holding playerID. Strategy:
// when the partner already has the trick locked in, shed cheaply; when the
// trick can be won, win it with the cheapest winning card; otherwise shed
// the least valuable card, protecting the Five of trump for as long as a
// cover exists.
func CardToPlay(playerID string, hand []engine.Card, trickSoFar []engine.TrickPlay, trump *engine.Suit, partnerID string) engine.Card {
	legal := engine.LegalPlays(hand, trickSoFar, trump)
	if len(legal) == 0 {
		// Defensive: the engine never asks with no legal play available.
		return hand[0]
	}
	if len(legal) == 1 {
		return legal[0]
	}

	if len(trickSoFar) == 0 {
		return bestLead(legal, trump)
	}

	partnerWinning := partnerID != "" &&
		engine.DetermineTrickWinner(trickSoFar, trump) == partnerID &&
		len(trickSoFar) >= 2

	if !partnerWinning {
		if c, ok := cheapestWinner(playerID, legal, trickSoFar, trump); ok {
			return c
		}
	}
	return cheapestShed(legal, trump)
}

// bestLead opens a trick: the strongest card by caliber and rank, but the
// Five of trump is never led while another lead exists, it is worth too
// much to expose.
func bestLead(legal []engine.Card, trump *engine.Suit) engine.Card {
	best := legal[0]
	bestScore := -1
	for _, c := range legal {
		if isTrumpFive(c, trump) && len(legal) > 1 {
			continue
		}
		score := caliber(c.Rank)*16 + int(c.Rank)
		if c.Suit == suitOrNone(trump) {
			score += 64
		}
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

// cheapestWinner finds the lowest-ranked legal card that would currently
// win the trick.
func cheapestWinner(playerID string, legal []engine.Card, trickSoFar []engine.TrickPlay, trump *engine.Suit) (engine.Card, bool) {
	var winner engine.Card
	found := false
	for _, c := range legal {
		if isTrumpFive(c, trump) {
			continue // never spend the Five to win; it scores by being captured safely
		}
		trial := append(append([]engine.TrickPlay(nil), trickSoFar...), engine.TrickPlay{PlayerID: playerID, Card: c})
		if engine.DetermineTrickWinner(trial, trump) != playerID {
			continue
		}
		if !found || c.Rank < winner.Rank {
			winner, found = c, true
		}
	}
	return winner, found
}

// cheapestShed throws the least valuable card: lowest game count, then
// lowest rank, avoiding trump and especially the Five of trump while any
// alternative exists.
func cheapestShed(legal []engine.Card, trump *engine.Suit) engine.Card {
	best := legal[0]
	bestScore := 1 << 30
	for _, c := range legal {
		score := c.Rank.GamePoints()*16 + int(c.Rank)
		if trump != nil && c.Suit == *trump {
			score += 512
		}
		if isTrumpFive(c, trump) {
			score += 4096
		}
		if score < bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

func isTrumpFive(c engine.Card, trump *engine.Suit) bool {
	return trump != nil && c.Suit == *trump && c.Rank == engine.Five
}

func suitOrNone(trump *engine.Suit) engine.Suit {
	if trump == nil {
		return engine.Suit(-1)
	}
	return *trump
}
