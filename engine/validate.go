package engine

import "fmt"

// ValidateNoDuplicates checks the card conservation invariant: across all
// hands, the trick in progress, the stock, the discard pile, the slept
// pool, and every seat's captured cards, each of the 52 card IDs appears
// exactly once. LastTrick and DealerDraw are display copies of cards that
// live in an authoritative zone and are not counted.
//
// A non-nil return means the engine corrupted the deck: a programming
// bug, not a user error. The context string tags the failing transition
// for diagnostics. Callers should invoke this after every mutation in
// tests and non-production builds.
func ValidateNoDuplicates(g GameState, context string) error {
	seen := make(map[string]string, DeckSize)
	total := 0

	add := func(zone string, c Card) error {
		total++
		if prev, dup := seen[c.ID]; dup {
			return fmt.Errorf("card conservation violated (%s): %s present in both %s and %s", context, c.ID, prev, zone)
		}
		seen[c.ID] = zone
		return nil
	}

	for i := range g.Players {
		for _, c := range g.Players[i].Hand {
			if err := add(fmt.Sprintf("hand[%d]", i), c); err != nil {
				return err
			}
		}
		for _, c := range g.Players[i].TricksWon {
			if err := add(fmt.Sprintf("tricksWon[%d]", i), c); err != nil {
				return err
			}
		}
	}
	for _, tp := range g.CurrentTrick {
		if err := add("currentTrick", tp.Card); err != nil {
			return err
		}
	}
	for _, zone := range []struct {
		name  string
		cards []Card
	}{
		{"stock", g.Stock},
		{"discardPile", g.DiscardPile},
		{"sleptCards", g.SleptCards},
	} {
		for _, c := range zone.cards {
			if err := add(zone.name, c); err != nil {
				return err
			}
		}
	}

	if total != DeckSize {
		return fmt.Errorf("card conservation violated (%s): %d cards tracked, want %d", context, total, DeckSize)
	}
	return nil
}
