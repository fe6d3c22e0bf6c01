package engine

// Fixed table parameters for Catch Five.
const (
	NumPlayers = 4
	NumTeams   = 2

	// DealtHandSize cards go to each seat, leaving StockSize in the stock.
	DealtHandSize = 9
	StockSize     = DeckSize - NumPlayers*DealtHandSize // 16

	// PlayHandSize is the hand size after purge-and-draw; one trick per
	// card, so it is also the number of tricks in a round.
	PlayHandSize   = 6
	TricksPerRound = PlayHandSize

	// MinBid is the bidding floor and the forced dealer bid when all four
	// seats pass. MaxBid is the total of categorical points available in a
	// round: High 1 + Low 1 + Jack 1 + Five 5 + Game 1.
	MinBid = 2
	MaxBid = 9

	// Category point values.
	HighPoints = 1
	LowPoints  = 1
	JackPoints = 1
	FivePoints = 5
	GamePoints = 1

	// DefaultTargetScore ends the game when a team reaches it.
	DefaultTargetScore = 31
)
