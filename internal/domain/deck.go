package domain

import (
	"errors"
	"math/rand"
)

// ErrEmptyDeck is returned when a draw or deal needs more cards than remain.
var ErrEmptyDeck = errors.New("deck is empty")

// NewDeck returns an ordered 52-card deck.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, s := range Suits {
		for r := 2; r <= RankAce; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// DrawTop removes the top card of the deck.
func DrawTop(deck []Card) (Card, []Card, error) {
	if len(deck) == 0 {
		return Card{}, deck, ErrEmptyDeck
	}
	return deck[0], deck[1:], nil
}

// Deal holds the result of the initial deal.
type Deal struct {
	Hands     [2][]Card
	Upcard    Card
	Remaining []Card
}

// DealInitial deals three cards to each seat and turns the seventh card
// face up to start the discard pile.
func DealInitial(deck []Card) (Deal, error) {
	if len(deck) < 7 {
		return Deal{}, ErrEmptyDeck
	}
	var d Deal
	d.Hands[SeatPlayer] = append([]Card{}, deck[0:3]...)
	d.Hands[SeatOpponent] = append([]Card{}, deck[3:6]...)
	d.Upcard = deck[6]
	d.Remaining = append([]Card{}, deck[7:]...)
	return d, nil
}
