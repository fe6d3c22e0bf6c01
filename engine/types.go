// Package engine implements the Catch Five card game rules.
//
// The engine is a pure, deterministic state machine: every transition takes
// a GameState value plus an action payload and returns a new GameState value
// (or the input state unchanged for a rejected input). It performs no I/O
// and holds no shared state; callers own serialization of transitions.
package engine

import (
	"fmt"
	"time"
)

// Suit identifies one of the four French suits.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists all four suits in deck-construction order.
var Suits = [4]Suit{Hearts, Diamonds, Clubs, Spades}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Valid reports whether s is one of the four playable suits.
func (s Suit) Valid() bool { return s >= Hearts && s <= Spades }

// Rank is the face rank of a card. Numeric values double as the trick
// comparison order: Two lowest, Ace highest.
type Rank int

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// Ranks lists all thirteen ranks in deck-construction order.
var Ranks = [13]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// GamePoints returns the "game count" value of the rank used for the Game
// category: Ace=4, King=3, Queen=2, Jack=1, Ten=10, all others 0.
func (r Rank) GamePoints() int {
	switch r {
	case Ace:
		return 4
	case King:
		return 3
	case Queen:
		return 2
	case Jack:
		return 1
	case Ten:
		return 10
	default:
		return 0
	}
}

// Card is a single card in the 52-card universe. ID is the stable
// rank+suit composite ("5H", "AS") assigned at deck construction; it is
// the identity used for hand lookups and conservation checks.
type Card struct {
	Rank Rank   `json:"rank"`
	Suit Suit   `json:"suit"`
	ID   string `json:"id"`
}

// NewCard constructs a card with its canonical ID.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit, ID: rank.String() + suit.String()}
}

func (c Card) String() string { return c.ID }

// TrickPlay is one card played into the current trick.
type TrickPlay struct {
	PlayerID string `json:"playerId"`
	Card     Card   `json:"card"`
}

// Player is one of the four seats.
type Player struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IsHuman bool   `json:"isHuman"`
	TeamID  int    `json:"teamId"`
	Hand    []Card `json:"hand"`

	// Bid is nil before the seat has bid this round, 0 for a pass, and a
	// positive amount otherwise.
	Bid *int `json:"bid"`

	// TricksWon is the flat bag of cards captured this round, not grouped
	// by trick.
	TricksWon []Card `json:"tricksWon"`
}

// Team is one of the two partnerships. Score is the running game total and
// is only mutated by the scoring transition.
type Team struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Score     int       `json:"score"`
	PlayerIDs [2]string `json:"playerIds"`
}

// Phase tags the state machine position.
type Phase string

const (
	PhaseSetup          Phase = "setup"
	PhaseDealerDraw     Phase = "dealer-draw"
	PhaseDealing        Phase = "dealing"
	PhaseBidding        Phase = "bidding"
	PhaseTrumpSelection Phase = "trump-selection"
	PhaseDiscardTrump   Phase = "discard-trump"
	PhasePurgeDraw      Phase = "purge-draw"
	PhasePlaying        Phase = "playing"
	PhaseScoring        Phase = "scoring"
	PhaseGameOver       Phase = "game-over"
)

// GameState is the single source of truth for one game. It is treated as
// an immutable value: transitions deep-copy before mutating.
type GameState struct {
	Phase              Phase      `json:"phase"`
	Players            [4]Player  `json:"players"`
	Teams              [2]Team    `json:"teams"`
	CurrentPlayerIndex int        `json:"currentPlayerIndex"`
	DealerIndex        int        `json:"dealerIndex"`
	TrumpSuit          *Suit      `json:"trumpSuit"`
	HighBid            int        `json:"highBid"`
	BidderID           string     `json:"bidderId"`
	WasForcedBid       bool       `json:"wasForcedBid"`

	CurrentTrick    []TrickPlay `json:"currentTrick"`
	TrickNumber     int         `json:"trickNumber"`
	LeadPlayerIndex int         `json:"leadPlayerIndex"`

	RoundScores map[int]int     `json:"roundScores"`
	RoundResult *ScoreBreakdown `json:"roundResult"`

	DeckColor   string `json:"deckColor"`
	Stock       []Card `json:"stock"`
	DiscardPile []Card `json:"discardPile"`
	SleptCards  []Card `json:"sleptCards"`
	TargetScore int    `json:"targetScore"`

	// LastTrick and DealerDraw hold display copies: their cards also live
	// in an authoritative zone (winner's TricksWon; the dealt deck) and
	// are excluded from conservation counting.
	LastTrick         []TrickPlay `json:"lastTrick"`
	LastTrickWinnerID string      `json:"lastTrickWinnerId"`
	DealerDraw        []Card      `json:"dealerDraw"`

	// TurnStartTime is set and cleared by the external turn-timer
	// collaborator; the engine carries it but never interprets it.
	TurnStartTime *time.Time `json:"turnStartTime"`

	// RNG is the xorshift64 state driving every shuffle. Seeded once at
	// game creation so full games replay deterministically.
	RNG uint64 `json:"-"`
}

// nextRand advances the xorshift64 state.
func (g *GameState) nextRand() uint64 {
	x := g.RNG
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	g.RNG = x
	return x
}

// randN returns a random number in [0, n).
func (g *GameState) randN(n uint64) uint64 {
	return g.nextRand() % n
}

// clone returns a deep copy of the state. Nested slices and maps are
// duplicated so the caller's previous snapshot is never aliased.
func (g GameState) clone() GameState {
	next := g
	for i := range next.Players {
		next.Players[i].Hand = append([]Card(nil), g.Players[i].Hand...)
		next.Players[i].TricksWon = append([]Card(nil), g.Players[i].TricksWon...)
		if g.Players[i].Bid != nil {
			b := *g.Players[i].Bid
			next.Players[i].Bid = &b
		}
	}
	if g.TrumpSuit != nil {
		s := *g.TrumpSuit
		next.TrumpSuit = &s
	}
	next.CurrentTrick = append([]TrickPlay(nil), g.CurrentTrick...)
	next.LastTrick = append([]TrickPlay(nil), g.LastTrick...)
	next.Stock = append([]Card(nil), g.Stock...)
	next.DiscardPile = append([]Card(nil), g.DiscardPile...)
	next.SleptCards = append([]Card(nil), g.SleptCards...)
	next.DealerDraw = append([]Card(nil), g.DealerDraw...)
	next.RoundScores = copyIntMap(g.RoundScores)
	if g.RoundResult != nil {
		r := *g.RoundResult
		r.GameCounts = copyIntMap(g.RoundResult.GameCounts)
		r.TeamPoints = copyIntMap(g.RoundResult.TeamPoints)
		r.TeamChanges = copyIntMap(g.RoundResult.TeamChanges)
		next.RoundResult = &r
	}
	if g.TurnStartTime != nil {
		t := *g.TurnStartTime
		next.TurnStartTime = &t
	}
	return next
}

func copyIntMap(m map[int]int) map[int]int {
	if m == nil {
		return nil
	}
	out := make(map[int]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// PlayerIndexByID returns the seat index for a player ID, or -1.
func (g *GameState) PlayerIndexByID(id string) int {
	for i := range g.Players {
		if g.Players[i].ID == id {
			return i
		}
	}
	return -1
}

// TeamByID returns the team with the given ID, or nil.
func (g *GameState) TeamByID(id int) *Team {
	for i := range g.Teams {
		if g.Teams[i].ID == id {
			return &g.Teams[i]
		}
	}
	return nil
}

// TeamOfPlayer returns the team ID for a player ID, or -1.
func (g *GameState) TeamOfPlayer(playerID string) int {
	idx := g.PlayerIndexByID(playerID)
	if idx < 0 {
		return -1
	}
	return g.Players[idx].TeamID
}

// CurrentPlayer returns the seat whose turn it is.
func (g *GameState) CurrentPlayer() *Player {
	return &g.Players[g.CurrentPlayerIndex]
}

// nextSeat advances a seat index clockwise.
func nextSeat(i int) int { return (i + 1) % NumPlayers }

// handContains reports whether the hand holds the card with the given ID
// and returns its position.
func handContains(hand []Card, cardID string) (int, bool) {
	for i, c := range hand {
		if c.ID == cardID {
			return i, true
		}
	}
	return -1, false
}

// removeCard deletes the card with the given ID from the hand, preserving
// order. Returns false if absent.
func removeCard(hand *[]Card, cardID string) bool {
	i, ok := handContains(*hand, cardID)
	if !ok {
		return false
	}
	*hand = append((*hand)[:i], (*hand)[i+1:]...)
	return true
}
