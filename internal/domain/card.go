package domain

import "strconv"

// Suit identifies one of the four French suits.
type Suit string

const (
	SuitHearts   Suit = "H"
	SuitDiamonds Suit = "D"
	SuitClubs    Suit = "C"
	SuitSpades   Suit = "S"
)

// Suits lists every suit in deck-building order.
var Suits = []Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}

// Symbol returns the pip glyph for display strings.
func (s Suit) Symbol() string {
	switch s {
	case SuitHearts:
		return "♥"
	case SuitDiamonds:
		return "♦"
	case SuitClubs:
		return "♣"
	case SuitSpades:
		return "♠"
	}
	return "?"
}

// Face card ranks. Number cards use their pip count, 2..10.
const (
	RankJack  = 11
	RankQueen = 12
	RankKing  = 13
	RankAce   = 14
)

// Card is a single playing card. The zero value is not a valid card;
// the comparable value type makes hand membership checks plain ==.
type Card struct {
	Suit Suit `json:"suit"`
	Rank int  `json:"rank"` // 2..14
}

// CardValue scores one card: number cards count their pips, face cards
// ten, aces eleven.
func CardValue(c Card) int {
	switch {
	case c.Rank == RankAce:
		return 11
	case c.Rank >= RankJack:
		return 10
	default:
		return c.Rank
	}
}

func (c Card) String() string {
	label := strconv.Itoa(c.Rank)
	switch c.Rank {
	case RankJack:
		label = "J"
	case RankQueen:
		label = "Q"
	case RankKing:
		label = "K"
	case RankAce:
		label = "A"
	}
	return label + c.Suit.Symbol()
}
