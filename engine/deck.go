package engine

// DeckSize is the full card universe: 13 ranks across 4 suits.
const DeckSize = 52

// NewDeck returns the 52-card universe in deterministic construction
// order: suits in Suits order, ranks ascending within each suit.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for _, r := range Ranks {
			deck = append(deck, NewCard(r, s))
		}
	}
	return deck
}

// ShuffleDeck returns a fresh permutation of deck using a seeded
// xorshift64 Fisher-Yates pass. The input slice is never mutated.
func ShuffleDeck(deck []Card, seed uint64) []Card {
	shuffled := append([]Card(nil), deck...)
	rng := seed
	if rng == 0 {
		rng = 1 // xorshift can't start at 0
	}
	next := func() uint64 {
		rng ^= rng << 13
		rng ^= rng >> 7
		rng ^= rng << 17
		return rng
	}
	for i := len(shuffled) - 1; i > 0; i-- {
		j := int(next() % uint64(i+1))
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// shuffleInPlace runs Fisher-Yates over cards using the state RNG.
func (g *GameState) shuffleInPlace(cards []Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := int(g.randN(uint64(i + 1)))
		cards[i], cards[j] = cards[j], cards[i]
	}
}
