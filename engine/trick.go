package engine

// DetermineTrickWinner returns the PlayerID of the winning play in a
// complete or partial trick. If any trump was played, the highest trump
// wins; otherwise the highest card of the lead suit (the suit of the first
// play) wins. Off-suit non-trump plays never win. An empty trick returns
// "". A nil trump degrades to lead-suit-only comparison.
func DetermineTrickWinner(trick []TrickPlay, trump *Suit) string {
	if len(trick) == 0 {
		return ""
	}
	leadSuit := trick[0].Card.Suit
	best := 0
	for i := 1; i < len(trick); i++ {
		c := trick[i].Card
		b := trick[best].Card

		if trump != nil {
			if c.Suit == *trump && b.Suit != *trump {
				best = i
				continue
			}
			if c.Suit != *trump && b.Suit == *trump {
				continue
			}
		}

		if c.Suit == b.Suit {
			if c.Rank > b.Rank {
				best = i
			}
			continue
		}

		// Differing non-trump suits: only the lead suit can take over.
		if b.Suit != leadSuit && c.Suit == leadSuit {
			best = i
		}
	}
	return trick[best].PlayerID
}

// CanPlayCard reports whether playing card from hand is legal against the
// trick so far. Leading allows any card. Otherwise the player must follow
// the lead suit if able, except that trump may always be played as a ruff;
// a player void in the lead suit may play anything.
func CanPlayCard(card Card, hand []Card, trickSoFar []TrickPlay, trump *Suit) bool {
	if _, ok := handContains(hand, card.ID); !ok {
		return false
	}
	if len(trickSoFar) == 0 {
		return true
	}
	leadSuit := trickSoFar[0].Card.Suit
	if card.Suit == leadSuit {
		return true
	}
	if trump != nil && card.Suit == *trump {
		return true
	}
	for _, c := range hand {
		if c.Suit == leadSuit {
			return false
		}
	}
	return true
}

// LegalPlays returns the subset of hand playable against the trick so far,
// in hand order.
func LegalPlays(hand []Card, trickSoFar []TrickPlay, trump *Suit) []Card {
	out := make([]Card, 0, len(hand))
	for _, c := range hand {
		if CanPlayCard(c, hand, trickSoFar, trump) {
			out = append(out, c)
		}
	}
	return out
}
