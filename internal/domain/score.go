package domain

import (
	"strconv"
	"strings"
)

// Winner identifies the outcome of comparing two scored hands.
type Winner string

const (
	WinnerPlayer   Winner = "player"
	WinnerOpponent Winner = "opponent"
	WinnerDraw     Winner = "draw"
)

// HandScore aggregates a hand's value per suit. MaxSuitTotal is the
// best single suit, the Thirty-One count.
type HandScore struct {
	BySuit       map[Suit]int `json:"by_suit"`
	MaxSuitTotal int          `json:"max_suit_total"`
	Display      string       `json:"display"`
}

// ScoreHand sums card values per suit. Display lists per-suit totals in
// the order suits first appear in the hand, e.g. "20♥ 5♣".
func ScoreHand(hand []Card) HandScore {
	bySuit := make(map[Suit]int, 4)
	order := make([]Suit, 0, 4)
	for _, c := range hand {
		if _, seen := bySuit[c.Suit]; !seen {
			order = append(order, c.Suit)
		}
		bySuit[c.Suit] += CardValue(c)
	}

	best := 0
	parts := make([]string, 0, len(order))
	for _, s := range order {
		if bySuit[s] > best {
			best = bySuit[s]
		}
		parts = append(parts, strconv.Itoa(bySuit[s])+s.Symbol())
	}

	return HandScore{BySuit: bySuit, MaxSuitTotal: best, Display: strings.Join(parts, " ")}
}

// CompareHands decides a showdown by strict MaxSuitTotal comparison.
// Equal totals are a draw.
func CompareHands(player, opponent HandScore) Winner {
	switch {
	case player.MaxSuitTotal > opponent.MaxSuitTotal:
		return WinnerPlayer
	case player.MaxSuitTotal < opponent.MaxSuitTotal:
		return WinnerOpponent
	default:
		return WinnerDraw
	}
}
